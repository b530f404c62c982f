package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stoykov15/lifeos/internal/api/middleware"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

// TaskHandler handles HTTP requests for task records.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	Title    string `json:"title"    validate:"required"`
	Type     string `json:"type"     validate:"omitempty,oneof=work personal"`
	Priority string `json:"priority" validate:"omitempty,oneof=low normal high"`
	DueDate  string `json:"due_date"`
}

type updateTaskRequest struct {
	Title    string `json:"title"    validate:"required"`
	Done     bool   `json:"done"`
	Type     string `json:"type"     validate:"required,oneof=work personal"`
	Priority string `json:"priority" validate:"required,oneof=low normal high"`
	DueDate  string `json:"due_date"`
}

// List returns all tasks owned by the authenticated user.
func (h *TaskHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tasks, err := h.service.ListTasks(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create adds a new task for the authenticated user.
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	task, err := h.service.CreateTask(c.Request().Context(), user.ID, ports.CreateTaskInput{
		Title:    req.Title,
		Type:     req.Type,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Update replaces all mutable fields of an owned task.
func (h *TaskHandler) Update(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	task, err := h.service.UpdateTask(c.Request().Context(), user.ID, taskID, ports.UpdateTaskInput{
		Title:    req.Title,
		Done:     req.Done,
		Type:     req.Type,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes an owned task.
func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if err := h.service.DeleteTask(c.Request().Context(), user.ID, taskID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "Task deleted"})
}

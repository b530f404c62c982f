package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

const defaultTaskPriority = "normal"

// TaskService implements task CRUD scoped to the authenticated owner.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID int64, input ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		UserID:   userID,
		Title:    input.Title,
		Done:     false,
		Type:     input.Type,
		Priority: input.Priority,
		DueDate:  input.DueDate,
	}
	if task.Type == "" {
		task.Type = domain.TaskTypePersonal
	}
	if task.Priority == "" {
		task.Priority = defaultTaskPriority
	}

	id, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	task.ID = id

	s.log.Debug().Int64("user_id", userID).Int64("task_id", id).Msg("task created")
	return task, nil
}

// UpdateTask replaces all mutable fields of an owned task.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		ID:       taskID,
		UserID:   userID,
		Title:    input.Title,
		Done:     input.Done,
		Type:     input.Type,
		Priority: input.Priority,
		DueDate:  input.DueDate,
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return s.repo.Delete(ctx, userID, taskID)
}

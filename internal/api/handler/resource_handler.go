package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stoykov15/lifeos/internal/api/middleware"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

// ResourceHandler handles HTTP requests for saved resources.
type ResourceHandler struct {
	service ports.ResourceService
}

func NewResourceHandler(service ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

type saveResourceRequest struct {
	Label  string `json:"label"  validate:"required"`
	Type   string `json:"type"   validate:"omitempty,oneof=article book tool"`
	URL    string `json:"url"    validate:"required,url"`
	Status string `json:"status" validate:"omitempty,oneof=to_read reading done"`
}

// List returns all resources owned by the authenticated user.
func (h *ResourceHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	resources, err := h.service.ListResources(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// Create saves a new resource.
func (h *ResourceHandler) Create(c echo.Context) error {
	var req saveResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	resource, err := h.service.SaveResource(c.Request().Context(), user.ID, ports.SaveResourceInput{
		Label:  req.Label,
		Type:   req.Type,
		URL:    req.URL,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resource)
}

// Update replaces all fields of an owned resource.
func (h *ResourceHandler) Update(c echo.Context) error {
	resourceID, err := pathID(c)
	if err != nil {
		return err
	}

	var req saveResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	resource, err := h.service.UpdateResource(c.Request().Context(), user.ID, resourceID, ports.SaveResourceInput{
		Label:  req.Label,
		Type:   req.Type,
		URL:    req.URL,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resource)
}

// Delete removes an owned resource.
func (h *ResourceHandler) Delete(c echo.Context) error {
	resourceID, err := pathID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if err := h.service.DeleteResource(c.Request().Context(), user.ID, resourceID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "Resource deleted"})
}

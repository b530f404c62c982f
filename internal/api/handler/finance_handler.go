package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stoykov15/lifeos/internal/api/middleware"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

// FinanceHandler handles HTTP requests for finance entries.
type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

type addFinanceEntryRequest struct {
	Type     string  `json:"type"     validate:"required,oneof=income expense"`
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount"   validate:"required"`
	Note     string  `json:"note"`
}

// List returns all finance entries owned by the authenticated user.
func (h *FinanceHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	entries, err := h.service.ListEntries(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create records a new income or expense movement.
func (h *FinanceHandler) Create(c echo.Context) error {
	var req addFinanceEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	entry, err := h.service.AddEntry(c.Request().Context(), user.ID, ports.AddFinanceEntryInput{
		Type:     req.Type,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Delete removes an owned finance entry.
func (h *FinanceHandler) Delete(c echo.Context) error {
	entryID, err := pathID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if err := h.service.DeleteEntry(c.Request().Context(), user.ID, entryID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "Entry deleted"})
}

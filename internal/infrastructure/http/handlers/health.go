package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

type dependencyStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string             `json:"status"`
	Dependencies []dependencyStatus `json:"dependencies"`
}

// HealthHandler answers liveness probes.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessHandler answers readiness probes by checking dependencies.
type ReadinessHandler struct {
	pool *pgxpool.Pool
}

func NewReadinessHandler(pool *pgxpool.Pool) *ReadinessHandler {
	return &ReadinessHandler{pool: pool}
}

// Readiness pings the database and reports per-dependency status.
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{Status: "ready"}
	code := http.StatusOK

	pg := dependencyStatus{Name: "postgres", Status: "ok"}
	if err := h.pool.Ping(ctx); err != nil {
		pg.Status = "unavailable"
		pg.Error = err.Error()
		resp.Status = "not ready"
		code = http.StatusServiceUnavailable
	}
	resp.Dependencies = append(resp.Dependencies, pg)

	return c.JSON(code, resp)
}

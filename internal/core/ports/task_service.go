package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task.
// Type and Priority fall back to "personal" / "normal" when empty.
type CreateTaskInput struct {
	Title    string
	Type     string
	Priority string
	DueDate  string
}

// UpdateTaskInput is a full replacement of a task's mutable fields.
type UpdateTaskInput struct {
	Title    string
	Done     bool
	Type     string
	Priority string
	DueDate  string
}

// TaskService defines use-case operations for tasks. Every operation is
// scoped to the authenticated owner.
type TaskService interface {
	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID int64, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

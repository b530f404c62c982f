package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Mutations are
// scoped by both task id and owner id; implementations return
// domain.ErrTaskNotFound when no owned row matches.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, userID, taskID int64) error
}

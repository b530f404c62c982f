package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// ResourceRepository defines persistence operations for saved resources.
// Mutations are scoped by owner id; implementations return
// domain.ErrResourceNotFound when no owned row matches.
type ResourceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Resource, error)
	Create(ctx context.Context, resource *domain.Resource) (int64, error)
	Update(ctx context.Context, resource *domain.Resource) error
	Delete(ctx context.Context, userID, resourceID int64) error
}

package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// SaveResourceInput carries the fields accepted when saving a resource.
// Type and Status fall back to "article" / "to_read" when empty.
type SaveResourceInput struct {
	Label  string
	Type   string
	URL    string
	Status string
}

// ResourceService defines use-case operations for saved resources.
type ResourceService interface {
	ListResources(ctx context.Context, userID int64) ([]domain.Resource, error)
	SaveResource(ctx context.Context, userID int64, input SaveResourceInput) (*domain.Resource, error)
	UpdateResource(ctx context.Context, userID, resourceID int64, input SaveResourceInput) (*domain.Resource, error)
	DeleteResource(ctx context.Context, userID, resourceID int64) error
}

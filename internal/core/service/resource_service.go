package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

const (
	defaultResourceType   = "article"
	defaultResourceStatus = "to_read"
)

// ResourceService manages a user's saved reading/learning items.
type ResourceService struct {
	repo ports.ResourceRepository
	log  zerolog.Logger
}

func NewResourceService(repo ports.ResourceRepository, log zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, log: log}
}

func (s *ResourceService) ListResources(ctx context.Context, userID int64) ([]domain.Resource, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ResourceService) SaveResource(ctx context.Context, userID int64, input ports.SaveResourceInput) (*domain.Resource, error) {
	resource := &domain.Resource{
		UserID: userID,
		Label:  input.Label,
		Type:   input.Type,
		URL:    input.URL,
		Status: input.Status,
	}
	if resource.Type == "" {
		resource.Type = defaultResourceType
	}
	if resource.Status == "" {
		resource.Status = defaultResourceStatus
	}

	id, err := s.repo.Create(ctx, resource)
	if err != nil {
		return nil, err
	}
	resource.ID = id

	s.log.Debug().Int64("user_id", userID).Int64("resource_id", id).Msg("resource saved")
	return resource, nil
}

func (s *ResourceService) UpdateResource(ctx context.Context, userID, resourceID int64, input ports.SaveResourceInput) (*domain.Resource, error) {
	resource := &domain.Resource{
		ID:     resourceID,
		UserID: userID,
		Label:  input.Label,
		Type:   input.Type,
		URL:    input.URL,
		Status: input.Status,
	}
	if err := s.repo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) DeleteResource(ctx context.Context, userID, resourceID int64) error {
	return s.repo.Delete(ctx, userID, resourceID)
}

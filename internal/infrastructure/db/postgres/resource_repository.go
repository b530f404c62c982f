package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// ResourceRepository persists saved resources in Postgres.
type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Resource, error) {
	const query = `
		SELECT id, user_id, label, type, url, status
		FROM resources
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	resources := []domain.Resource{}
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.UserID, &res.Label, &res.Type, &res.URL, &res.Status); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *ResourceRepository) Create(ctx context.Context, resource *domain.Resource) (int64, error) {
	const query = `
		INSERT INTO resources (user_id, label, type, url, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		resource.UserID, resource.Label, resource.Type, resource.URL, resource.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert resource: %w", err)
	}
	return id, nil
}

func (r *ResourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	const query = `
		UPDATE resources
		SET label = $3, type = $4, url = $5, status = $6
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query,
		resource.ID, resource.UserID, resource.Label, resource.Type, resource.URL, resource.Status,
	)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, userID, resourceID int64) error {
	const query = `DELETE FROM resources WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, resourceID, userID)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

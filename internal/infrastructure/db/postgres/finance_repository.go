package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// FinanceRepository persists finance entries in Postgres.
type FinanceRepository struct {
	pool *pgxpool.Pool
}

func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{pool: pool}
}

func (r *FinanceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FinanceEntry, error) {
	const query = `
		SELECT id, user_id, type, category, amount, note, timestamp
		FROM finances
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list finance entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.FinanceEntry{}
	for rows.Next() {
		var (
			e    domain.FinanceEntry
			note *string
			ts   *time.Time
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Category, &e.Amount, &note, &ts); err != nil {
			return nil, fmt.Errorf("scan finance entry: %w", err)
		}
		e.Note = fromNullable(note)
		if ts != nil {
			e.Timestamp = *ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *FinanceRepository) Create(ctx context.Context, entry *domain.FinanceEntry) (int64, error) {
	const query = `
		INSERT INTO finances (user_id, type, category, amount, note, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		entry.UserID, entry.Type, entry.Category, entry.Amount, toNullable(entry.Note), entry.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert finance entry: %w", err)
	}
	return id, nil
}

func (r *FinanceRepository) Delete(ctx context.Context, userID, entryID int64) error {
	const query = `DELETE FROM finances WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("delete finance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFinanceEntryNotFound
	}
	return nil
}

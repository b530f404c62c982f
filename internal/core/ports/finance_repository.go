package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// FinanceRepository defines persistence operations for finance entries.
// Delete is scoped by owner id and returns domain.ErrFinanceEntryNotFound
// when no owned row matches.
type FinanceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.FinanceEntry, error)
	Create(ctx context.Context, entry *domain.FinanceEntry) (int64, error)
	Delete(ctx context.Context, userID, entryID int64) error
}

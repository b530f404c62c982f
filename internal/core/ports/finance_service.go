package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// AddFinanceEntryInput carries the fields accepted when recording a movement.
// The entry timestamp is assigned server-side at insertion time.
type AddFinanceEntryInput struct {
	Type     string
	Category string
	Amount   float64
	Note     string
}

// FinanceService defines use-case operations for finance entries.
type FinanceService interface {
	ListEntries(ctx context.Context, userID int64) ([]domain.FinanceEntry, error)
	AddEntry(ctx context.Context, userID int64, input AddFinanceEntryInput) (*domain.FinanceEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}

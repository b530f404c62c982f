package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

// FinanceService records and lists income/expense movements per user.
type FinanceService struct {
	repo ports.FinanceRepository
	log  zerolog.Logger
}

func NewFinanceService(repo ports.FinanceRepository, log zerolog.Logger) *FinanceService {
	return &FinanceService{repo: repo, log: log}
}

func (s *FinanceService) ListEntries(ctx context.Context, userID int64) ([]domain.FinanceEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// AddEntry persists a new movement, stamping it with the server clock.
func (s *FinanceService) AddEntry(ctx context.Context, userID int64, input ports.AddFinanceEntryInput) (*domain.FinanceEntry, error) {
	entry := &domain.FinanceEntry{
		UserID:    userID,
		Type:      input.Type,
		Category:  input.Category,
		Amount:    input.Amount,
		Note:      input.Note,
		Timestamp: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	s.log.Debug().Int64("user_id", userID).Str("type", entry.Type).Msg("finance entry added")
	return entry, nil
}

func (s *FinanceService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	return s.repo.Delete(ctx, userID, entryID)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

type stubFinanceRepo struct {
	entries map[int64]*domain.FinanceEntry
	nextID  int64
}

func newStubFinanceRepo() *stubFinanceRepo {
	return &stubFinanceRepo{entries: map[int64]*domain.FinanceEntry{}, nextID: 1}
}

func (r *stubFinanceRepo) ListByUser(_ context.Context, userID int64) ([]domain.FinanceEntry, error) {
	var out []domain.FinanceEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *stubFinanceRepo) Create(_ context.Context, entry *domain.FinanceEntry) (int64, error) {
	id := r.nextID
	r.nextID++
	clone := *entry
	clone.ID = id
	r.entries[id] = &clone
	return id, nil
}

func (r *stubFinanceRepo) Delete(_ context.Context, userID, entryID int64) error {
	existing, ok := r.entries[entryID]
	if !ok || existing.UserID != userID {
		return domain.ErrFinanceEntryNotFound
	}
	delete(r.entries, entryID)
	return nil
}

func TestAddEntryStampsTimestamp(t *testing.T) {
	svc := NewFinanceService(newStubFinanceRepo(), zerolog.Nop())

	before := time.Now().UTC()
	entry, err := svc.AddEntry(context.Background(), 1, ports.AddFinanceEntryInput{
		Type:     domain.FinanceTypeExpense,
		Category: "groceries",
		Amount:   54.30,
	})
	if err != nil {
		t.Fatalf("AddEntry returned error: %v", err)
	}
	after := time.Now().UTC()

	if entry.ID == 0 {
		t.Error("expected assigned id")
	}
	if entry.Timestamp.Before(before) || entry.Timestamp.After(after) {
		t.Errorf("Timestamp = %v, want between %v and %v", entry.Timestamp, before, after)
	}
}

func TestListEntriesScopedToOwner(t *testing.T) {
	svc := NewFinanceService(newStubFinanceRepo(), zerolog.Nop())

	if _, err := svc.AddEntry(context.Background(), 1, ports.AddFinanceEntryInput{
		Type: domain.FinanceTypeIncome, Category: "salary", Amount: 4200,
	}); err != nil {
		t.Fatalf("AddEntry returned error: %v", err)
	}

	mine, err := svc.ListEntries(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListEntries returned error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("owner sees %d entries, want 1", len(mine))
	}

	theirs, err := svc.ListEntries(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListEntries returned error: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("other user sees %d foreign entries", len(theirs))
	}
}

func TestDeleteEntryCrossUser(t *testing.T) {
	svc := NewFinanceService(newStubFinanceRepo(), zerolog.Nop())

	entry, err := svc.AddEntry(context.Background(), 1, ports.AddFinanceEntryInput{
		Type: domain.FinanceTypeExpense, Category: "rent", Amount: 1200,
	})
	if err != nil {
		t.Fatalf("AddEntry returned error: %v", err)
	}

	if err := svc.DeleteEntry(context.Background(), 2, entry.ID); !errors.Is(err, domain.ErrFinanceEntryNotFound) {
		t.Errorf("cross-user delete = %v, want ErrFinanceEntryNotFound", err)
	}
	if err := svc.DeleteEntry(context.Background(), 1, entry.ID); err != nil {
		t.Errorf("owner delete returned error: %v", err)
	}
}

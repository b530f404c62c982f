package domain

import (
	"errors"
	"time"
)

const (
	FinanceTypeIncome  = "income"
	FinanceTypeExpense = "expense"
)

var ErrFinanceEntryNotFound = errors.New("finance entry not found")

// FinanceEntry records a single income or expense movement.
type FinanceEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

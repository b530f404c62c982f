package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// ProfileSetup carries the fields persisted by the one-time profile setup.
type ProfileSetup struct {
	MonthlyIncome float64
	Goal          string
	FixedExpenses map[string]float64
}

// UserRepository is the credential store consumed by the auth core.
// Implementations return domain.ErrUserNotFound when no row matches and
// domain.ErrUserExists when an insert violates email uniqueness.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateSetup(ctx context.Context, id int64, setup ProfileSetup) error
	Delete(ctx context.Context, id int64) error
}

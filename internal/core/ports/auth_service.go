package ports

import (
	"context"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Email format is
// validated at the transport layer before this input is built.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthService defines the use-case operations of the authentication core.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (int64, error)
	Login(ctx context.Context, email, password string) (string, error)
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, user *domain.User) error
	CompleteSetup(ctx context.Context, user *domain.User, setup ProfileSetup) error
}

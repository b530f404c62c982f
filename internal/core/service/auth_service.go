package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

// AuthService orchestrates registration, login, identity resolution and the
// account mutations that depend on a verified identity.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a new account and returns its id. The password is stored
// only as a bcrypt hash; profile fields start at their defaults.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (int64, error) {
	if input.Password != input.ConfirmPassword {
		return 0, domain.ErrPasswordMismatch
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return 0, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Email:         input.Email,
		PasswordHash:  hash,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		MonthlyIncome: 0,
		FixedExpenses: map[string]float64{},
		Currency:      "USD",
		SetupComplete: false,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return 0, err
	}

	s.log.Info().Int64("user_id", id).Msg("user registered")
	return id, nil
}

// Login verifies credentials and issues a bearer token with the account
// email as subject. Unknown email and wrong password fail with the same
// error so responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return token, nil
}

// ResolveIdentity maps a bearer token to the current user record. A token
// can outlive its account: the signature still verifies but the lookup
// fails with domain.ErrUserNotFound.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the stored hash after re-verifying the current
// password. Previously issued tokens stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return domain.ErrIncorrectPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}

// DeleteAccount hard-deletes the user row. Irreversible.
func (s *AuthService) DeleteAccount(ctx context.Context, user *domain.User) error {
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("account deleted")
	return nil
}

// CompleteSetup persists the profile fields and forces setup_complete to
// true. Values are stored as given; absent fields persist as zero values.
func (s *AuthService) CompleteSetup(ctx context.Context, user *domain.User, setup ports.ProfileSetup) error {
	if setup.FixedExpenses == nil {
		setup.FixedExpenses = map[string]float64{}
	}
	if err := s.users.UpdateSetup(ctx, user.ID, setup); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("profile setup completed")
	return nil
}

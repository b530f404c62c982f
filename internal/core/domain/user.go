package domain

import "errors"

// Sentinel errors for the authentication core. Services return these
// unwrapped so the HTTP layer can map them to status codes with errors.Is.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect current password")
)

// User models an account holder. PasswordHash never leaves the credential
// store / hasher boundary and is excluded from every JSON response.
type User struct {
	ID            int64              `json:"id"`
	Email         string             `json:"email"`
	PasswordHash  string             `json:"-"`
	FirstName     string             `json:"first_name,omitempty"`
	LastName      string             `json:"last_name,omitempty"`
	MonthlyIncome float64            `json:"monthly_income"`
	FixedExpenses map[string]float64 `json:"fixed_expenses"`
	Currency      string             `json:"currency"`
	Goal          string             `json:"goal,omitempty"`
	SetupComplete bool               `json:"setup_complete"`
}

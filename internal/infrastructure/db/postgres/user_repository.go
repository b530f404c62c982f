package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

const uniqueViolation = "23505"

// UserRepository persists user identity records in Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, email, password_hash, first_name, last_name,
		       monthly_income, fixed_expenses, currency, goal, setup_complete
		FROM users
		WHERE email = $1
	`
	var (
		u         domain.User
		firstName *string
		lastName  *string
		goal      *string
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &firstName, &lastName,
		&u.MonthlyIncome, &u.FixedExpenses, &u.Currency, &goal, &u.SetupComplete,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	u.FirstName = fromNullable(firstName)
	u.LastName = fromNullable(lastName)
	u.Goal = fromNullable(goal)
	if u.FixedExpenses == nil {
		u.FixedExpenses = map[string]float64{}
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	const query = `
		INSERT INTO users (email, password_hash, first_name, last_name,
		                   monthly_income, fixed_expenses, currency, goal, setup_complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Email, user.PasswordHash, toNullable(user.FirstName), toNullable(user.LastName),
		user.MonthlyIncome, user.FixedExpenses, user.Currency, toNullable(user.Goal), user.SetupComplete,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, domain.ErrUserExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateSetup persists the profile fields and flips setup_complete in a
// single statement, so concurrent writers cannot interleave a partial state.
func (r *UserRepository) UpdateSetup(ctx context.Context, id int64, setup ports.ProfileSetup) error {
	const query = `
		UPDATE users
		SET monthly_income = $2, goal = $3, fixed_expenses = $4, setup_complete = TRUE
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, setup.MonthlyIncome, toNullable(setup.Goal), setup.FixedExpenses)
	if err != nil {
		return fmt.Errorf("update setup: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// toNullable maps "" to NULL for optional text columns.
func toNullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

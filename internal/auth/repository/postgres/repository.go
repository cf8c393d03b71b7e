package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByIdentifier returns (nil, nil) when no user matches, so absence never
// surfaces as an error the caller could accidentally leak.
func (r *PostgresRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, password_salt,
		       email_code, email_code_expires_at,
		       failed_login_attempts, is_blocked, last_login_at,
		       created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, identifier)

	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.PasswordSalt,
		&user.EmailCode, &user.EmailCodeExpiresAt,
		&user.FailedLoginAttempts, &user.IsBlocked, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by identifier: %w", err)
	}

	return &user, nil
}

// IncrementFailedAttempts is a single-row atomic increment; updated_at doubles
// as the last-attempt time used for lockout-duration calculation.
func (r *PostgresRepository) IncrementFailedAttempts(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1, updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to increment failed attempts: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ResetFailedAttempts(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = 0, last_login_at = now(), updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to reset failed attempts: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetEmailCode(ctx context.Context, identifier, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET email_code = $2, email_code_expires_at = $3, updated_at = now()
		WHERE email = $1
	`, identifier, code, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set email code: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, identifier, method string, success bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, identifier, method, successful, attempt_time)
		VALUES ($1, $2, $3, $4, now())
	`, uuid.NewString(), identifier, method, success)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}

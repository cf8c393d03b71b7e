package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_code_sender.go -package=mocks github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain CodeSender

import (
	"context"
	"time"
)

// UserRepository is the credential store gateway. Counter mutations must be
// atomic single-row writes so concurrent attempts on the same identifier
// never lose increments.
type UserRepository interface {
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	IncrementFailedAttempts(ctx context.Context, id int64) error
	ResetFailedAttempts(ctx context.Context, id int64) error
	SetEmailCode(ctx context.Context, identifier, code string, expiresAt time.Time) error
	RecordLoginAttempt(ctx context.Context, identifier, method string, success bool) error
}

// CodeSender delivers a one-time authentication code to the given address.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

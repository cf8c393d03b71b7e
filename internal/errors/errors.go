package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUserNotFound is raised when an identifier resolves to no user. The
	// handler layer normalizes it so responses never reveal whether an
	// identifier is registered.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers every credential failure visible to a
	// caller. Internal causes are wrapped around it for logging and must
	// never reach a response body.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountLockedError signals a timed lockout. Remaining is for user-facing
// messaging only; enumeration-sensitive endpoints must collapse this into the
// same response as ErrInvalidCredentials.
type AccountLockedError struct {
	Attempts  int
	Remaining time.Duration
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked for %s after %d failed attempts",
		e.Remaining.Round(time.Second), e.Attempts)
}

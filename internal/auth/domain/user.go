package domain

import "time"

// User is the credential store's view of an account. The core only mutates
// the failed-attempt counter, the email-code fields and the timestamps;
// creation and deletion belong to external CRUD services.
type User struct {
	ID                  int64
	Email               string
	Name                *string
	PasswordHash        *string
	PasswordSalt        *string
	EmailCode           *string
	EmailCodeExpiresAt  *time.Time
	FailedLoginAttempts int
	IsBlocked           bool
	LastLoginAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasPassword reports whether the password method is configured for the user.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != "" &&
		u.PasswordSalt != nil && *u.PasswordSalt != ""
}

// AuthResult is what a successful authentication returns to the caller.
// It never exposes internal state such as attempt counts or lockout timing.
type AuthResult struct {
	Token  string
	UserID string
}

// MethodParams is the tagged union of per-method credentials, resolved by the
// facade before a strategy runs.
type MethodParams struct {
	Kind     string
	Code     string
	Password string
}

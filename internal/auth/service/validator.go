package service

import (
	"fmt"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	autherror "github.com/e-strategiapublica/sol-ms-auth/internal/errors"
)

// UserValidator runs the validation pipeline on a freshly read user snapshot.
// Failures wrap ErrInvalidCredentials so the boundary sees one error class
// while the internal cause stays available for logging.
type UserValidator struct {
	lockout *LockoutPolicy
	crypto  CryptoService
}

func NewUserValidator(lockout *LockoutPolicy, crypto CryptoService) *UserValidator {
	return &UserValidator{lockout: lockout, crypto: crypto}
}

// ValidateAccess checks existence, the permanent block flag, the permanent
// attempt threshold and any active timed lockout. The attempt count is the
// value read at lookup, before this request's increment.
func (v *UserValidator) ValidateAccess(user *domain.User) error {
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if user.IsBlocked {
		return fmt.Errorf("user is blocked: %w", autherror.ErrInvalidCredentials)
	}

	if v.lockout.ShouldBlockUser(user.FailedLoginAttempts) {
		return fmt.Errorf("permanent attempt threshold exceeded: %w", autherror.ErrInvalidCredentials)
	}

	lastAttempt := &user.UpdatedAt
	if v.lockout.IsAccountLocked(user.FailedLoginAttempts, lastAttempt) {
		return &autherror.AccountLockedError{
			Attempts:  user.FailedLoginAttempts,
			Remaining: v.lockout.RemainingLockoutTime(user.FailedLoginAttempts, lastAttempt),
		}
	}

	return nil
}

// ValidatePasswordCredential checks the password method is configured.
func (v *UserValidator) ValidatePasswordCredential(user *domain.User) error {
	if !user.HasPassword() {
		return fmt.Errorf("password not set for this user: %w", autherror.ErrInvalidCredentials)
	}
	return nil
}

// ValidateEmailCode checks a code is active and unexpired. Expiry is a hard
// failure even when the stored code string matches; it is the sole
// invalidation mechanism for issued codes.
func (v *UserValidator) ValidateEmailCode(user *domain.User) error {
	if user.EmailCode == nil || *user.EmailCode == "" || user.EmailCodeExpiresAt == nil {
		return fmt.Errorf("no active email code: %w", autherror.ErrInvalidCredentials)
	}

	if v.crypto.IsCodeExpired(*user.EmailCodeExpiresAt) {
		return fmt.Errorf("email code expired: %w", autherror.ErrInvalidCredentials)
	}

	return nil
}

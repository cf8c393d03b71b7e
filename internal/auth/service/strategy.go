package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	"go.uber.org/zap"
)

// AuthenticationStrategy is the common contract both credential methods
// implement. Every failure class visible to the caller is one of the three
// error kinds in internal/errors; internal causes are logged, not returned.
type AuthenticationStrategy interface {
	Authenticate(ctx context.Context, identifier string, params domain.MethodParams, existingToken string) (*domain.AuthResult, error)
}

// NormalizeIdentifier case-normalizes an email identifier before lookup.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// strategyBase carries the collaborators and the accept/reject tails shared
// by both strategies.
type strategyBase struct {
	repo      domain.UserRepository
	tokens    TokenComposer
	validator *UserValidator
	logger    *zap.Logger
}

// accept resets the attempt counter and composes the session token, merging
// into the caller-supplied token when one is presented.
func (b *strategyBase) accept(ctx context.Context, user *domain.User, method, existingToken string) (*domain.AuthResult, error) {
	if err := b.repo.ResetFailedAttempts(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := b.repo.RecordLoginAttempt(ctx, user.Email, method, true); err != nil {
		b.logger.Warn("failed to record login attempt",
			zap.String("identifier", user.Email), zap.Error(err))
	}

	now := time.Now()

	var (
		token string
		err   error
	)
	if existingToken != "" {
		token, err = b.tokens.Merge(existingToken, user.ID, method, now)
	} else {
		token, err = b.tokens.Issue(user.ID, method, now)
	}
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		Token:  token,
		UserID: strconv.FormatInt(user.ID, 10),
	}, nil
}

// reject logs the internal cause, records the failed attempt and propagates
// the error unchanged for the boundary to normalize.
func (b *strategyBase) reject(ctx context.Context, identifier, method string, cause error) (*domain.AuthResult, error) {
	b.logger.Info("authentication rejected",
		zap.String("identifier", identifier),
		zap.String("method", method),
		zap.Error(cause))

	if err := b.repo.RecordLoginAttempt(ctx, identifier, method, false); err != nil {
		b.logger.Warn("failed to record login attempt",
			zap.String("identifier", identifier), zap.Error(err))
	}

	return nil, cause
}

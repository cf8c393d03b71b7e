package service

import (
	"context"
	"fmt"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	autherror "github.com/e-strategiapublica/sol-ms-auth/internal/errors"
	"github.com/e-strategiapublica/sol-ms-auth/pkg/constant"
	"go.uber.org/zap"
)

type PasswordStrategy struct {
	strategyBase
	comparator *TimingSafeComparator
}

func NewPasswordStrategy(
	repo domain.UserRepository,
	tokens TokenComposer,
	comparator *TimingSafeComparator,
	validator *UserValidator,
	logger *zap.Logger,
) *PasswordStrategy {
	return &PasswordStrategy{
		strategyBase: strategyBase{repo: repo, tokens: tokens, validator: validator, logger: logger},
		comparator:   comparator,
	}
}

func (s *PasswordStrategy) Authenticate(ctx context.Context, identifier string, params domain.MethodParams, existingToken string) (*domain.AuthResult, error) {
	if params.Kind != constant.MethodPassword {
		return nil, fmt.Errorf("password strategy received %q params", params.Kind)
	}

	identifier = NormalizeIdentifier(identifier)

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// The attempt is counted before validity is known; a validation failure
	// later on cannot suppress it. The success path compensates via the
	// reset in accept.
	if user != nil {
		if err := s.repo.IncrementFailedAttempts(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	var storedHash *string
	if user != nil {
		storedHash = user.PasswordHash
	}
	match := s.comparator.SafeComparePassword(params.Password, storedHash, user != nil)

	if err := s.validator.ValidateAccess(user); err != nil {
		return s.reject(ctx, identifier, constant.MethodPassword, err)
	}
	if err := s.validator.ValidatePasswordCredential(user); err != nil {
		return s.reject(ctx, identifier, constant.MethodPassword, err)
	}

	if !match {
		return s.reject(ctx, identifier, constant.MethodPassword,
			fmt.Errorf("password mismatch: %w", autherror.ErrInvalidCredentials))
	}

	return s.accept(ctx, user, constant.MethodPassword, existingToken)
}

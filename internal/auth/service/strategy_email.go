package service

import (
	"context"
	"fmt"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	autherror "github.com/e-strategiapublica/sol-ms-auth/internal/errors"
	"github.com/e-strategiapublica/sol-ms-auth/pkg/constant"
	"go.uber.org/zap"
)

type EmailCodeStrategy struct {
	strategyBase
	comparator *TimingSafeComparator
}

func NewEmailCodeStrategy(
	repo domain.UserRepository,
	tokens TokenComposer,
	comparator *TimingSafeComparator,
	validator *UserValidator,
	logger *zap.Logger,
) *EmailCodeStrategy {
	return &EmailCodeStrategy{
		strategyBase: strategyBase{repo: repo, tokens: tokens, validator: validator, logger: logger},
		comparator:   comparator,
	}
}

func (s *EmailCodeStrategy) Authenticate(ctx context.Context, identifier string, params domain.MethodParams, existingToken string) (*domain.AuthResult, error) {
	if params.Kind != constant.MethodEmail {
		return nil, fmt.Errorf("email strategy received %q params", params.Kind)
	}

	identifier = NormalizeIdentifier(identifier)

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// Count the attempt before validity is known; see PasswordStrategy.
	if user != nil {
		if err := s.repo.IncrementFailedAttempts(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	var storedCode *string
	if user != nil {
		storedCode = user.EmailCode
	}
	match := s.comparator.SafeCompareEmailCode(params.Code, storedCode, user != nil)

	if err := s.validator.ValidateAccess(user); err != nil {
		return s.reject(ctx, identifier, constant.MethodEmail, err)
	}
	// Expiry is a hard failure even when the code string matches; issued
	// codes are never cleared, expiry alone invalidates them.
	if err := s.validator.ValidateEmailCode(user); err != nil {
		return s.reject(ctx, identifier, constant.MethodEmail, err)
	}

	if !match {
		return s.reject(ctx, identifier, constant.MethodEmail,
			fmt.Errorf("email code mismatch: %w", autherror.ErrInvalidCredentials))
	}

	return s.accept(ctx, user, constant.MethodEmail, existingToken)
}

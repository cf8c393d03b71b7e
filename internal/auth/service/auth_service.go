package service

import (
	"context"
	"fmt"
	"time"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	autherror "github.com/e-strategiapublica/sol-ms-auth/internal/errors"
	"github.com/e-strategiapublica/sol-ms-auth/pkg/constant"
	"go.uber.org/zap"
)

// AuthService selects a verification strategy by method and exposes the
// public operations. All collaborators arrive through the constructor; there
// are no ambient globals.
type AuthService struct {
	repo             domain.UserRepository
	sender           domain.CodeSender
	crypto           CryptoService
	emailStrategy    AuthenticationStrategy
	passwordStrategy AuthenticationStrategy
	codeLength       int
	codeExpiry       time.Duration
	logger           *zap.Logger
}

func NewAuthService(
	repo domain.UserRepository,
	sender domain.CodeSender,
	crypto CryptoService,
	emailStrategy AuthenticationStrategy,
	passwordStrategy AuthenticationStrategy,
	codeLength int,
	codeExpiry time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		repo:             repo,
		sender:           sender,
		crypto:           crypto,
		emailStrategy:    emailStrategy,
		passwordStrategy: passwordStrategy,
		codeLength:       codeLength,
		codeExpiry:       codeExpiry,
		logger:           logger,
	}
}

func (s *AuthService) AuthenticateWithEmail(ctx context.Context, identifier, code, existingToken string) (*domain.AuthResult, error) {
	params := domain.MethodParams{Kind: constant.MethodEmail, Code: code}
	return s.emailStrategy.Authenticate(ctx, identifier, params, existingToken)
}

func (s *AuthService) AuthenticateWithPassword(ctx context.Context, identifier, password, existingToken string) (*domain.AuthResult, error) {
	params := domain.MethodParams{Kind: constant.MethodPassword, Password: password}
	return s.passwordStrategy.Authenticate(ctx, identifier, params, existingToken)
}

// SendEmailAuthCode stores a fresh one-time code and mails it. It may return
// ErrUserNotFound; the handler is responsible for collapsing "sent" and "no
// such user" into an identical response.
func (s *AuthService) SendEmailAuthCode(ctx context.Context, identifier string) error {
	identifier = NormalizeIdentifier(identifier)

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if user.IsBlocked {
		return fmt.Errorf("user is blocked: %w", autherror.ErrInvalidCredentials)
	}

	code, err := s.crypto.RandomNumericCode(s.codeLength)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(s.codeExpiry)

	if err := s.repo.SetEmailCode(ctx, identifier, code, expiresAt); err != nil {
		return err
	}

	if err := s.sender.SendCode(ctx, identifier, code); err != nil {
		s.logger.Error("failed to send email code",
			zap.String("identifier", identifier), zap.Error(err))
		return fmt.Errorf("failed to send email code: %w", err)
	}

	s.logger.Info("email code sent", zap.String("identifier", identifier))

	return nil
}

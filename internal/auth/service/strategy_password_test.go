package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/e-strategiapublica/sol-ms-auth/config"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/service"
	autherror "github.com/e-strategiapublica/sol-ms-auth/internal/errors"
	"github.com/e-strategiapublica/sol-ms-auth/internal/mocks"
	"github.com/e-strategiapublica/sol-ms-auth/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type strategyDeps struct {
	repo       *mocks.MockUserRepository
	crypto     *service.BcryptCryptoService
	comparator *service.TimingSafeComparator
	validator  *service.UserValidator
	tokens     *service.TokenService
}

func newStrategyDeps(t *testing.T, ctrl *gomock.Controller) *strategyDeps {
	t.Helper()

	crypto := service.NewCryptoService(bcrypt.MinCost)
	comparator, err := service.NewTimingSafeComparator(crypto, 6)
	require.NoError(t, err)

	lockout := service.NewLockoutPolicy(
		config.DefaultLockoutThresholds,
		config.DefaultLockoutDurations,
		config.DefaultPermanentBlockThreshold,
	)

	return &strategyDeps{
		repo:       mocks.NewMockUserRepository(ctrl),
		crypto:     crypto,
		comparator: comparator,
		validator:  service.NewUserValidator(lockout, crypto),
		tokens:     service.NewTokenService("test-secret", 24),
	}
}

func (d *strategyDeps) passwordStrategy() *service.PasswordStrategy {
	return service.NewPasswordStrategy(d.repo, d.tokens, d.comparator, d.validator, zap.NewNop())
}

func (d *strategyDeps) emailStrategy() *service.EmailCodeStrategy {
	return service.NewEmailCodeStrategy(d.repo, d.tokens, d.comparator, d.validator, zap.NewNop())
}

// passwordUser builds a user with the given bcrypt-hashed password and
// failed-attempt count; updated_at is the last attempt time.
func passwordUser(t *testing.T, crypto service.CryptoService, password string, attempts int, lastAttempt time.Time) *domain.User {
	t.Helper()

	hash, err := crypto.Hash(password)
	require.NoError(t, err)
	salt := hash[:29]

	return &domain.User{
		ID:                  42,
		Email:               "user@example.com",
		PasswordHash:        &hash,
		PasswordSalt:        &salt,
		FailedLoginAttempts: attempts,
		CreatedAt:           lastAttempt.Add(-24 * time.Hour),
		UpdatedAt:           lastAttempt,
	}
}

func passwordParams(password string) domain.MethodParams {
	return domain.MethodParams{Kind: constant.MethodPassword, Password: password}
}

func TestPasswordStrategy_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 1, time.Now())
	s := deps.passwordStrategy()

	gomock.InOrder(
		deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil),
		deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil),
		deps.repo.EXPECT().ResetFailedAttempts(gomock.Any(), user.ID).Return(nil),
		deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, true).Return(nil),
	)

	result, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "42", result.UserID)

	claims, err := deps.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Contains(t, claims.Methods, constant.MethodPassword)
	assert.Equal(t, claims.Methods[constant.MethodPassword], claims.NotBefore.Unix())
}

func TestPasswordStrategy_NormalizesIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 0, time.Now())
	s := deps.passwordStrategy()

	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().ResetFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, true).Return(nil)

	_, err := s.Authenticate(context.Background(), "  User@Example.COM ", passwordParams("password123"), "")
	require.NoError(t, err)
}

func TestPasswordStrategy_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 1, time.Now())
	s := deps.passwordStrategy()

	// The increment lands before the comparison outcome is known; no reset
	// follows on the failure path.
	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, false).Return(nil)

	result, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("wrong"), "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestPasswordStrategy_NonexistentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	s := deps.passwordStrategy()

	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "ghost@example.com").Return(nil, nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), "ghost@example.com", constant.MethodPassword, false).Return(nil)

	result, err := s.Authenticate(context.Background(), "ghost@example.com", passwordParams("anything"), "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
}

func TestPasswordStrategy_BlockedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 0, time.Now())
	user.IsBlocked = true
	s := deps.passwordStrategy()

	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, false).Return(nil)

	result, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestPasswordStrategy_LockoutBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	s := deps.passwordStrategy()

	t.Run("4 prior failures: wrong password rejected but not locked", func(t *testing.T) {
		user := passwordUser(t, deps.crypto, "password123", 4, time.Now())

		deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
		deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
		deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, false).Return(nil)

		_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("wrong"), "")

		var locked *autherror.AccountLockedError
		assert.False(t, errors.As(err, &locked))
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("5 prior failures: locked even with the right password", func(t *testing.T) {
		user := passwordUser(t, deps.crypto, "password123", 5, time.Now())

		// An attempt during an active lockout still counts, so escalation
		// keeps working inside the window.
		deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
		deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
		deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, false).Return(nil)

		_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "")

		var locked *autherror.AccountLockedError
		require.True(t, errors.As(err, &locked))
		assert.Equal(t, 5, locked.Attempts)
		assert.Greater(t, locked.Remaining, time.Duration(0))
		assert.LessOrEqual(t, locked.Remaining, 5*time.Minute)
	})

	t.Run("5 prior failures but window elapsed: succeeds", func(t *testing.T) {
		user := passwordUser(t, deps.crypto, "password123", 5, time.Now().Add(-10*time.Minute))

		deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
		deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
		deps.repo.EXPECT().ResetFailedAttempts(gomock.Any(), user.ID).Return(nil)
		deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, true).Return(nil)

		_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "")
		assert.NoError(t, err)
	})
}

func TestPasswordStrategy_PermanentThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 50, time.Now().Add(-48*time.Hour))
	s := deps.passwordStrategy()

	// Terminal: rejected even with the right password and no active window.
	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, false).Return(nil)

	_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "")
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestPasswordStrategy_PasswordNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 0, time.Now())
	user.PasswordHash = nil
	user.PasswordSalt = nil
	s := deps.passwordStrategy()

	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, false).Return(nil)

	_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("anything"), "")
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestPasswordStrategy_MergesExistingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 0, time.Now())
	s := deps.passwordStrategy()

	existing, err := deps.tokens.Issue(user.ID, constant.MethodEmail, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().ResetFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, true).Return(nil)

	result, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), existing)
	require.NoError(t, err)

	claims, err := deps.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Contains(t, claims.Methods, constant.MethodEmail)
	assert.Contains(t, claims.Methods, constant.MethodPassword)
	assert.Equal(t, claims.Methods[constant.MethodPassword], claims.NotBefore.Unix())
}

func TestPasswordStrategy_MalformedExistingTokenStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	user := passwordUser(t, deps.crypto, "password123", 0, time.Now())
	s := deps.passwordStrategy()

	deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
	deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().ResetFailedAttempts(gomock.Any(), user.ID).Return(nil)
	deps.repo.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, constant.MethodPassword, true).Return(nil)

	result, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "garbage-token")
	require.NoError(t, err)

	claims, err := deps.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{constant.MethodPassword: claims.NotBefore.Unix()}, claims.Methods)
}

func TestPasswordStrategy_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps := newStrategyDeps(t, ctrl)
	s := deps.passwordStrategy()

	t.Run("lookup failure propagates", func(t *testing.T) {
		dbErr := errors.New("db down")
		deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(nil, dbErr)

		_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("x"), "")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("increment failure aborts before any comparison result is used", func(t *testing.T) {
		user := passwordUser(t, deps.crypto, "password123", 0, time.Now())
		dbErr := errors.New("db down")

		deps.repo.EXPECT().FindByIdentifier(gomock.Any(), "user@example.com").Return(user, nil)
		deps.repo.EXPECT().IncrementFailedAttempts(gomock.Any(), user.ID).Return(dbErr)

		_, err := s.Authenticate(context.Background(), "user@example.com", passwordParams("password123"), "")
		assert.ErrorIs(t, err, dbErr)
	})
}

package main

import (
	"context"
	"log"

	"github.com/e-strategiapublica/sol-ms-auth/config"
	"github.com/e-strategiapublica/sol-ms-auth/db"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/domain"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/email"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/handler"
	repo "github.com/e-strategiapublica/sol-ms-auth/internal/auth/repository/postgres"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	crypto := service.NewCryptoService(cfg.BcryptCost)

	comparator, err := service.NewTimingSafeComparator(crypto, cfg.EmailCodeLength)
	if err != nil {
		logger.Fatal("comparator setup failed", zap.Error(err))
	}

	lockout := service.NewLockoutPolicy(cfg.LockoutThresholds, cfg.LockoutDurations, cfg.PermanentBlockThreshold)
	validator := service.NewUserValidator(lockout, crypto)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryHours)

	emailStrategy := service.NewEmailCodeStrategy(userRepo, tokenService, comparator, validator, logger)
	passwordStrategy := service.NewPasswordStrategy(userRepo, tokenService, comparator, validator, logger)

	authService := service.NewAuthService(
		userRepo, newCodeSender(cfg, logger), crypto,
		emailStrategy, passwordStrategy,
		cfg.EmailCodeLength, cfg.EmailCodeExpiry, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newCodeSender(cfg *config.Config, logger *zap.Logger) domain.CodeSender {
	if cfg.EmailMode == "smtp" {
		return email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}
	return email.NewLogSender(logger)
}

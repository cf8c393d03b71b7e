package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/dto"
	"github.com/e-strategiapublica/sol-ms-auth/internal/auth/service"
	autherror "github.com/e-strategiapublica/sol-ms-auth/internal/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) AuthenticateWithEmail(c *fiber.Ctx) error {
	var input dto.AuthenticateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	result, err := h.authService.AuthenticateWithEmail(
		c.UserContext(), input.Identifier, input.Params.Code, bearerToken(c))
	if err != nil {
		return h.authFailure(c, err)
	}

	c.Set("Link", fmt.Sprintf("</users/%s>; rel=\"related\"", result.UserID))

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{Token: result.Token})
}

func (h *AuthHandler) AuthenticateWithPassword(c *fiber.Ctx) error {
	var input dto.AuthenticateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	result, err := h.authService.AuthenticateWithPassword(
		c.UserContext(), input.Identifier, input.Params.Password, bearerToken(c))
	if err != nil {
		return h.authFailure(c, err)
	}

	c.Set("Link", fmt.Sprintf("</users/%s>; rel=\"related\"", result.UserID))

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{Token: result.Token})
}

// SendEmailCode collapses "sent" and "user not found" into one response so
// the endpoint cannot be used to enumerate registered identifiers.
func (h *AuthHandler) SendEmailCode(c *fiber.Ctx) error {
	var input dto.SendCodeInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c)
	}

	err := h.authService.SendEmailAuthCode(c.UserContext(), input.Identifier)
	if err != nil && !errors.Is(err, autherror.ErrUserNotFound) {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return unauthorized(c)
		}

		h.logger.Error("send email code error", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:      "Internal Server Error",
			Message:    "Failed to send email code",
			StatusCode: fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{
		Message: "Email code sent successfully",
	})
}

// authFailure maps every authentication error kind to one indistinguishable
// 401 body. Lockout details never reach the response.
func (h *AuthHandler) authFailure(c *fiber.Ctx, err error) error {
	var locked *autherror.AccountLockedError
	switch {
	case errors.Is(err, autherror.ErrUserNotFound),
		errors.Is(err, autherror.ErrInvalidCredentials),
		errors.As(err, &locked):
		return unauthorized(c)
	default:
		h.logger.Error("authentication error", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:      "Internal Server Error",
			Message:    "An unexpected error occurred",
			StatusCode: fiber.StatusInternalServerError,
		})
	}
}

func bearerToken(c *fiber.Ctx) string {
	return strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:      "Bad Request",
		Message:    "invalid input",
		StatusCode: fiber.StatusBadRequest,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:      "Unauthorized",
		Message:    "Invalid credentials",
		StatusCode: fiber.StatusUnauthorized,
	})
}

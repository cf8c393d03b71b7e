package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/method/email", h.AuthenticateWithEmail)
	auth.Post("/method/email/send", h.SendEmailCode)
	auth.Post("/method/pass", h.AuthenticateWithPassword)
}

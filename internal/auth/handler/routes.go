package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/verify-otp", h.VerifyOTP)
	app.Post("/api/v1/mfa/finalize", h.FinalizeMFALogin)
	app.Post("/api/v1/oauth/google", h.GoogleLogin)
	app.Post("/api/v1/password-reset", h.RequestPasswordReset)

	// Security dashboard endpoints
	me := app.Group("/api/v1/me", h.RequireAuth())
	me.Post("/logout", h.Logout)
	me.Get("/audit-logs", h.GetAuditLog)
	me.Get("/sessions", h.GetSessions)
	me.Patch("/mfa", h.ToggleMFA)
}

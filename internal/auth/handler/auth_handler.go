package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/manas360online-source/authentication-system/internal/auth/dto"
	"github.com/manas360online-source/authentication-system/internal/auth/service"
	autherror "github.com/manas360online-source/authentication-system/internal/errors"
)

type AuthHandler struct {
	authService *service.AuthService
	tokens      service.TokenGenerator
}

func NewAuthHandler(authService *service.AuthService, tokens service.TokenGenerator) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// statusForError translates the service error taxonomy to HTTP codes.
func statusForError(err error) int {
	switch {
	case autherror.IsLockout(err):
		return fiber.StatusTooManyRequests
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidOTPCode):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrAccountNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}

func loginResultJSON(res *dto.LoginResult) fiber.Map {
	return fiber.Map{
		"account":      dto.NewAccountOutput(res.Account),
		"token":        res.Token,
		"mfa_required": res.MFARequired,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	account, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"account": dto.NewAccountOutput(account),
		"message": "Registration successful. Please verify your email.",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(loginResultJSON(result))
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input dto.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	verified, err := h.authService.VerifyOTP(c.Context(), input.Email, input.Code)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"verified": verified})
}

func (h *AuthHandler) FinalizeMFALogin(c *fiber.Ctx) error {
	var input dto.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	result, err := h.authService.FinalizeMFALogin(c.Context(), input.Email, input.Code)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(loginResultJSON(result))
}

func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	result, err := h.authService.GoogleLogin(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(loginResultJSON(result))
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.PasswordResetInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.authService.RequestPasswordReset(c.Context(), input.Email); err != nil {
		return errorJSON(c, err)
	}

	// Same answer whether or not the email is registered.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "If the email is registered, reset instructions have been sent.",
	})
}

// RequireAuth verifies the Bearer token and stores the account id for the
// dashboard handlers.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const prefix = "Bearer "
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing or malformed token"})
		}

		claims, err := h.tokens.VerifyAccessToken(strings.TrimPrefix(authHeader, prefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("account_id", claims.AccountID)
		return c.Next()
	}
}

func accountID(c *fiber.Ctx) string {
	id, _ := c.Locals("account_id").(string)
	return id
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context(), accountID(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) GetAuditLog(c *fiber.Ctx) error {
	entries, err := h.authService.GetAuditLog(c.Context(), accountID(c))
	if err != nil {
		return errorJSON(c, err)
	}

	out := make([]dto.AuditEntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryOutput{
			ID:        e.ID,
			AccountID: e.AccountID,
			Event:     string(e.Event),
			Status:    string(e.Status),
			IPAddress: e.IPAddress,
			Timestamp: e.Timestamp,
			Details:   e.Details,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) GetSessions(c *fiber.Ctx) error {
	records, err := h.authService.GetSessions(c.Context(), accountID(c))
	if err != nil {
		return errorJSON(c, err)
	}

	out := make([]dto.SessionOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.SessionOutput{
			ID:         r.ID,
			AccountID:  r.AccountID,
			Device:     r.Device,
			IPAddress:  r.IPAddress,
			Location:   r.Location,
			LastActive: r.LastActive,
			Current:    r.Current,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ToggleMFA(c *fiber.Ctx) error {
	var input dto.ToggleMFAInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	found, err := h.authService.ToggleMFA(c.Context(), accountID(c), input.Enabled)
	if err != nil {
		return errorJSON(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "account not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"mfa_enabled": input.Enabled})
}

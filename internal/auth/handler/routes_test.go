package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
	"github.com/manas360online-source/authentication-system/internal/auth/handler"
	"github.com/manas360online-source/authentication-system/internal/auth/service"
)

// TestRegisterRoutes verifies that all public routes are mounted correctly.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, h, _ := newHandlerApp(ctrl)
	handler.RegisterRoutes(app, h)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/register"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodPost, "/api/v1/verify-otp"},
		{http.MethodPost, "/api/v1/mfa/finalize"},
		{http.MethodPost, "/api/v1/oauth/google"},
		{http.MethodPost, "/api/v1/password-reset"},
		{http.MethodPost, "/api/v1/me/logout"},
		{http.MethodGet, "/api/v1/me/audit-logs"},
		{http.MethodGet, "/api/v1/me/sessions"},
		{http.MethodPatch, "/api/v1/me/mfa"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't.
			// The handlers themselves return other codes (e.g. 400 or 401
			// for missing bodies/tokens), which is fine for this check.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// TestRequireAuthMiddleware provides focused testing for the dashboard
// endpoints behind the Bearer-token check.
func TestRequireAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, h, deps := newHandlerApp(ctrl)
	handler.RegisterRoutes(app, h)

	sessionsRoute := "/api/v1/me/sessions"

	t.Run("fails without auth header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, sessionsRoute, nil)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, sessionsRoute, nil)
		req.Header.Set("Authorization", "BearerInvalidToken") // No space
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fails with invalid token", func(t *testing.T) {
		deps.tokens.EXPECT().VerifyAccessToken("bad-token").Return(nil, fmt.Errorf("invalid token"))

		req := httptest.NewRequest(http.MethodGet, sessionsRoute, nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("succeeds with valid token", func(t *testing.T) {
		claims := &service.JWTCustomClaims{AccountID: "acct-1", Email: "test@example.com"}

		// 1. Middleware checks the token
		deps.tokens.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)
		// 2. Middleware passes, handler runs against the session provider
		deps.sessions.EXPECT().ListByAccount(gomock.Any(), "acct-1").
			Return([]domain.SessionRecord{{ID: "sess_1", AccountID: "acct-1", Current: true}}, nil)

		req := httptest.NewRequest(http.MethodGet, sessionsRoute, nil)
		req.Header.Set("Authorization", "Bearer good-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

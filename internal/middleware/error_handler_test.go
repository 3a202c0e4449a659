package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFailingApp(production bool, err error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(production),
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandler_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperr.NewValidation("Destination is required"), http.StatusBadRequest},
		{"invalid credentials", apperr.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperr.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked refresh token", apperr.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"not owner", apperr.ErrNotOwner, http.StatusForbidden},
		{"travel not found", apperr.ErrTravelNotFound, http.StatusNotFound},
		{"place not found", apperr.ErrPlaceNotFound, http.StatusNotFound},
		{"duplicate user", apperr.ErrDuplicateUser, http.StatusConflict},
		{"unanticipated", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newFailingApp(true, tt.err)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, float64(tt.wantStatus), body["status"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

// Every authentication failure must carry the same client-visible message.
func TestErrorHandler_NoAuthOracle(t *testing.T) {
	authFailures := []error{
		apperr.ErrInvalidCredentials,
		apperr.ErrTokenExpired,
		apperr.ErrTokenInvalid,
		apperr.ErrRefreshTokenNotFound,
		apperr.ErrRefreshTokenRevoked,
		apperr.ErrRefreshTokenExpired,
	}

	for _, failure := range authFailures {
		app := newFailingApp(true, failure)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)

		body := decodeBody(t, resp)
		assert.Equal(t, "Unauthorized", body["message"])
	}
}

func TestErrorHandler_DetailVisibility(t *testing.T) {
	t.Run("production hides detail", func(t *testing.T) {
		app := newFailingApp(true, apperr.ErrTravelNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)

		body := decodeBody(t, resp)
		assert.NotContains(t, body, "detail")
	})

	t.Run("development exposes detail", func(t *testing.T) {
		app := newFailingApp(false, apperr.ErrTravelNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)

		body := decodeBody(t, resp)
		assert.Contains(t, body, "detail")
	})
}

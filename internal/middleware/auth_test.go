package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookshelf-api/internal/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(testWriter{t})

	app := fiber.New()
	app.Use(NewAuthMiddleware(tokens, logger).Authenticate())
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": UserID(c),
			"email":   UserEmail(c),
		})
	})
	return app, tokens
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	app, tokens := newTestApp(t)

	token, err := tokens.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	for _, header := range []string{"Bearer", "Bearer ", token, "Basic " + token} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	app, _ := newTestApp(t)

	// Same secret, already-expired lifetime.
	expired, err := auth.NewTokenManager("test-secret", time.Nanosecond)
	require.NoError(t, err)
	token, err := expired.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	app, tokens := newTestApp(t)

	token, err := tokens.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

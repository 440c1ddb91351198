package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/bookhaven/bookshelf-api/internal/auth"
	apperrors "github.com/bookhaven/bookshelf-api/pkg/errors"
)

// Context keys for the identity resolved by the gate.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// AuthMiddleware is the single authentication chokepoint for protected routes.
type AuthMiddleware struct {
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewAuthMiddleware(tokens *auth.TokenManager, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate extracts and verifies the bearer token, then attaches the
// resolved identity to the request context. A missing or malformed header is
// a 401; a token that fails verification is a 403.
func (a *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return authError(c, apperrors.CodeMissingToken, "Access token missing")
		}

		tokenString := authHeader[len(bearerPrefix):]
		if tokenString == "" {
			return authError(c, apperrors.CodeMissingToken, "Access token missing")
		}

		claims, err := a.tokens.Verify(tokenString)
		if err != nil {
			a.logger.WithError(err).WithField("path", c.Path()).Debug("Token verification failed")
			return authError(c, apperrors.CodeInvalidToken, "Invalid or expired token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)

		return c.Next()
	}
}

func authError(c *fiber.Ctx, code apperrors.ErrorCode, message string) error {
	appErr := apperrors.NewAppError(code, message, nil)
	return c.Status(appErr.HTTPStatus()).JSON(appErr.ToErrorResponse())
}

// UserID extracts the authenticated user ID from the request context.
func UserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals(LocalUserID).(string); ok {
		return userID
	}
	return ""
}

// UserEmail extracts the authenticated user email from the request context.
func UserEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals(LocalUserEmail).(string); ok {
		return email
	}
	return ""
}

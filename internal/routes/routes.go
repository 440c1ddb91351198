package routes

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"github.com/bookhaven/bookshelf-api/internal/auth"
	"github.com/bookhaven/bookshelf-api/internal/config"
	"github.com/bookhaven/bookshelf-api/internal/metrics"
	"github.com/bookhaven/bookshelf-api/internal/middleware"
	"github.com/bookhaven/bookshelf-api/internal/storage"
	apperrors "github.com/bookhaven/bookshelf-api/pkg/errors"
)

// Setup configures all API routes
func Setup(app *fiber.App, cfg *config.Config, logger *logrus.Logger, tokens *auth.TokenManager, users storage.UserStore, books storage.BookStore, db *sql.DB) {
	authHandler := NewAuthHandler(users, tokens, logger)
	bookHandler := NewBookHandler(books, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokens, logger)

	app.Use(metrics.HTTPMetricsMiddleware())

	// Liveness and readiness (no auth required)
	app.Get("/test", livenessCheck)
	app.Get("/healthz", healthCheck)
	app.Get("/readyz", readinessCheck(db))

	// Metrics endpoint (no auth required)
	app.Get(cfg.Observability.MetricsPath, metrics.PrometheusHandler())

	// Swagger documentation endpoint (no auth required)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public endpoints - no auth required)
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Book routes (bearer-protected)
	bookRoutes := app.Group("/books")
	bookRoutes.Use(authMiddleware.Authenticate())
	bookRoutes.Post("/", bookHandler.Create)
	bookRoutes.Get("/", bookHandler.List)
	bookRoutes.Get("/:bookId", bookHandler.Get)
	bookRoutes.Put("/:bookId", bookHandler.Update)
	bookRoutes.Delete("/:bookId", bookHandler.Delete)

	// 404 handler
	app.Use(notFoundHandler)
}

// respondError writes the standardized error body for the given code.
func respondError(c *fiber.Ctx, code apperrors.ErrorCode, message string) error {
	appErr := apperrors.NewAppError(code, message, nil)
	return c.Status(appErr.HTTPStatus()).JSON(appErr.ToErrorResponse())
}

// livenessCheck answers the plain liveness probe
// @Summary Liveness probe
// @Description Check if the server is responding
// @Tags System
// @Produce json
// @Success 200 {string} string "Server is working"
// @Router /test [get]
func livenessCheck(c *fiber.Ctx) error {
	return c.JSON("Server API is working")
}

// healthCheck returns the health status of the service
// @Summary Health check
// @Description Check if the service is healthy
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Healthy"
// @Router /healthz [get]
func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "bookshelf-api",
	})
}

// readinessCheck checks if the service is ready to accept traffic
// @Summary Readiness check
// @Description Check if the service can reach its database
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Ready"
// @Failure 503 {object} map[string]interface{} "Not ready"
// @Router /readyz [get]
func readinessCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			if err := db.PingContext(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":    "not ready",
					"reason":    "database unavailable",
					"timestamp": time.Now().UTC(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "bookshelf-api",
		})
	}
}

// notFoundHandler handles 404 errors
func notFoundHandler(c *fiber.Ctx) error {
	return respondError(c, apperrors.CodeNotFound, "The requested resource was not found")
}

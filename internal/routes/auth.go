package routes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bookhaven/bookshelf-api/internal/auth"
	"github.com/bookhaven/bookshelf-api/internal/metrics"
	"github.com/bookhaven/bookshelf-api/internal/models"
	"github.com/bookhaven/bookshelf-api/internal/storage"
	apperrors "github.com/bookhaven/bookshelf-api/pkg/errors"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	users  storage.UserStore
	tokens *auth.TokenManager
	logger *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users storage.UserStore, tokens *auth.TokenManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with a unique username and email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.RegisterResponse
// @Failure 400 {object} errors.ErrorResponse "Missing fields"
// @Failure 409 {object} errors.ErrorResponse "Username or email already exists"
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.CodeBadRequest, "Invalid request body")
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return respondError(c, apperrors.CodeBadRequest,
			"All fields (username, password, firstname, lastname, email) are required; missing: "+strings.Join(missing, ", "))
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.WithError(err).Error("Failed to hash password")
		return respondError(c, apperrors.CodeInternalError, "Failed to process password")
	}

	user := &models.User{
		UserID:       uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
	}

	if err := h.users.Create(c.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateUsername):
			return respondError(c, apperrors.CodeConflict, "Username already exists")
		case errors.Is(err, storage.ErrDuplicateEmail):
			return respondError(c, apperrors.CodeConflict, "Email already exists")
		default:
			h.logger.WithError(err).Error("Failed to create user")
			return respondError(c, apperrors.CodeInternalError, "Server error")
		}
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":  user.UserID,
		"username": user.Username,
	}).Info("User registered successfully")

	return c.Status(fiber.StatusCreated).JSON(models.RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// Login handles user login
// @Summary Login with email and password
// @Description Authenticate and return a bearer token valid for two hours
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} errors.ErrorResponse "Unknown email or wrong password"
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.CodeBadRequest, "Invalid request body")
	}

	user, err := h.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Message text distinguishes this case from a wrong password.
			// Known enumeration leak, kept pending a product decision.
			metrics.RecordLoginAttempt("not_found")
			return respondError(c, apperrors.CodeBadRequest, "User not found")
		}
		h.logger.WithError(err).Error("Failed to look up user")
		metrics.RecordLoginAttempt("error")
		return respondError(c, apperrors.CodeInternalError, "Server error")
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.logger.WithField("user_id", user.UserID).Warn("Invalid password")
		metrics.RecordLoginAttempt("bad_password")
		return respondError(c, apperrors.CodeBadRequest, "Password is not valid")
	}

	token, err := h.tokens.Issue(user.UserID, user.Email)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue token")
		metrics.RecordLoginAttempt("error")
		return respondError(c, apperrors.CodeInternalError, "Failed to generate token")
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":  user.UserID,
		"username": user.Username,
	}).Info("User logged in successfully")
	metrics.RecordLoginAttempt("success")

	return c.JSON(models.LoginResponse{
		Message: "Login successfully",
		Token:   token,
		User:    user,
	})
}

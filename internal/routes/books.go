package routes

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/bookhaven/bookshelf-api/internal/middleware"
	"github.com/bookhaven/bookshelf-api/internal/models"
	"github.com/bookhaven/bookshelf-api/internal/storage"
	apperrors "github.com/bookhaven/bookshelf-api/pkg/errors"
)

// BookHandler handles book CRUD endpoints
type BookHandler struct {
	books  storage.BookStore
	logger *logrus.Logger
}

// NewBookHandler creates a new book handler
func NewBookHandler(books storage.BookStore, logger *logrus.Logger) *BookHandler {
	return &BookHandler{
		books:  books,
		logger: logger,
	}
}

// Create handles book creation
// @Summary Add a new book
// @Description Create a book owned by the authenticated user
// @Tags Books
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body models.BookRequest true "Book data"
// @Success 201 {object} models.BookResponse
// @Failure 400 {object} errors.ErrorResponse "Missing fields"
// @Failure 401 {object} errors.ErrorResponse "Missing token"
// @Failure 403 {object} errors.ErrorResponse "Invalid token"
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	req, ok := parseBookRequest(c)
	if !ok {
		return nil
	}

	book := &models.Book{
		UserID:        middleware.UserID(c),
		Title:         req.Title,
		BookName:      req.BookName,
		Author:        req.Author,
		Description:   req.Description,
		PublishedDate: time.Now().UTC(),
		CategoryID:    req.CategoryID,
	}

	if err := h.books.Create(c.Context(), book); err != nil {
		h.logger.WithError(err).Error("Failed to create book")
		return respondError(c, apperrors.CodeInternalError, "Server error")
	}

	h.logger.WithFields(logrus.Fields{
		"book_id": book.BookID,
		"user_id": book.UserID,
	}).Info("Book created successfully")

	return c.Status(fiber.StatusCreated).JSON(models.BookResponse{
		Message: "Book created successfully",
		Book:    book,
	})
}

// List handles filtered, paginated book listing
// @Summary Get all books (with optional filters)
// @Description Case-insensitive substring filters on author and title, exact match on category
// @Tags Books
// @Security Bearer
// @Produce json
// @Param author query string false "Filter by author's name"
// @Param category_id query int false "Filter by category ID"
// @Param title query string false "Search by title"
// @Param page query int false "Page number for pagination"
// @Param limit query int false "Number of items per page"
// @Success 200 {array} models.Book
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	filter := storage.BookFilter{
		Author:     c.Query("author"),
		Title:      c.Query("title"),
		CategoryID: c.QueryInt("category_id"),
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
	}

	books, err := h.books.List(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list books")
		return respondError(c, apperrors.CodeInternalError, "Server error")
	}

	return c.JSON(books)
}

// Get handles fetching a single book
// @Summary Get a book by ID
// @Tags Books
// @Security Bearer
// @Produce json
// @Param bookId path int true "The ID of the book"
// @Success 200 {object} models.BookResponse
// @Failure 404 {object} errors.ErrorResponse "Book not found"
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /books/{bookId} [get]
func (h *BookHandler) Get(c *fiber.Ctx) error {
	bookID, ok := parseBookID(c)
	if !ok {
		return nil
	}

	book, err := h.books.GetByID(c.Context(), bookID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, apperrors.CodeNotFound, "Book not found")
		}
		h.logger.WithError(err).Error("Failed to get book")
		return respondError(c, apperrors.CodeInternalError, "Server error")
	}

	return c.JSON(models.BookResponse{
		Message: "Book retrieved successfully",
		Book:    book,
	})
}

// Update handles owner-only book updates
// @Summary Update a book
// @Description Only the user that created the book may update it
// @Tags Books
// @Security Bearer
// @Accept json
// @Produce json
// @Param bookId path int true "ID of the book to update"
// @Param request body models.BookRequest true "Book data"
// @Success 200 {object} models.BookResponse
// @Failure 400 {object} errors.ErrorResponse "Missing fields"
// @Failure 403 {object} errors.ErrorResponse "Not the owner"
// @Failure 404 {object} errors.ErrorResponse "Book not found"
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /books/{bookId} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	bookID, ok := parseBookID(c)
	if !ok {
		return nil
	}
	req, ok := parseBookRequest(c)
	if !ok {
		return nil
	}

	book, err := h.books.Update(c.Context(), bookID, middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return respondError(c, apperrors.CodeNotFound, "Book not found")
		case errors.Is(err, storage.ErrNotOwner):
			return respondError(c, apperrors.CodeForbidden, "You do not have permission to edit this book")
		default:
			h.logger.WithError(err).Error("Failed to update book")
			return respondError(c, apperrors.CodeInternalError, "Server error")
		}
	}

	h.logger.WithFields(logrus.Fields{
		"book_id": book.BookID,
		"user_id": book.UserID,
	}).Info("Book updated successfully")

	return c.JSON(models.BookResponse{
		Message: "The book has been updated successfully",
		Book:    book,
	})
}

// Delete handles owner-only book deletion
// @Summary Delete a book
// @Description Only the user that created the book may delete it
// @Tags Books
// @Security Bearer
// @Produce json
// @Param bookId path int true "ID of the book to delete"
// @Success 200 {object} models.BookDeletedResponse
// @Failure 403 {object} errors.ErrorResponse "Not the owner"
// @Failure 404 {object} errors.ErrorResponse "Book not found"
// @Failure 500 {object} errors.ErrorResponse "Internal error"
// @Router /books/{bookId} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	bookID, ok := parseBookID(c)
	if !ok {
		return nil
	}

	book, err := h.books.Delete(c.Context(), bookID, middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return respondError(c, apperrors.CodeNotFound, "Book not found")
		case errors.Is(err, storage.ErrNotOwner):
			return respondError(c, apperrors.CodeForbidden, "You do not have permission to delete this book")
		default:
			h.logger.WithError(err).Error("Failed to delete book")
			return respondError(c, apperrors.CodeInternalError, "Server error")
		}
	}

	h.logger.WithFields(logrus.Fields{
		"book_id": book.BookID,
		"user_id": book.UserID,
	}).Info("Book deleted successfully")

	return c.JSON(models.BookDeletedResponse{
		Message: "Book deleted successfully",
		Deleted: book,
	})
}

// parseBookID reads the :bookId path parameter. On failure the 404 response
// has already been written and ok is false.
func parseBookID(c *fiber.Ctx) (int64, bool) {
	bookID, err := strconv.ParseInt(c.Params("bookId"), 10, 64)
	if err != nil || bookID < 1 {
		respondError(c, apperrors.CodeNotFound, "Book not found") //nolint:errcheck
		return 0, false
	}
	return bookID, true
}

// parseBookRequest decodes and validates the shared create/update payload.
// On failure the 400 response has already been written and ok is false.
func parseBookRequest(c *fiber.Ctx) (*models.BookRequest, bool) {
	var req models.BookRequest
	if err := c.BodyParser(&req); err != nil {
		respondError(c, apperrors.CodeBadRequest, "Invalid request body") //nolint:errcheck
		return nil, false
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		respondError(c, apperrors.CodeBadRequest, "Incomplete information: "+strings.Join(missing, ", ")) //nolint:errcheck
		return nil, false
	}
	return &req, true
}

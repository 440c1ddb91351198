// Package storage defines the persistence contracts used by the HTTP handlers
// and the sentinel errors they translate into responses.
package storage

import (
	"context"
	"errors"

	"github.com/bookhaven/bookshelf-api/internal/models"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner indicates the record exists but belongs to another user.
	ErrNotOwner = errors.New("record owned by another user")
	// ErrDuplicateUsername indicates the username unique constraint fired.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail indicates the email unique constraint fired.
	ErrDuplicateEmail = errors.New("email already exists")
)

// BookFilter narrows and pages a book listing. Author and Title are
// case-insensitive substring matches; CategoryID is an exact match when > 0.
type BookFilter struct {
	Author     string
	Title      string
	CategoryID int
	Page       int
	Limit      int
}

// UserStore persists user accounts. Uniqueness of username and email is
// enforced by the store itself; Create reports violations via
// ErrDuplicateUsername / ErrDuplicateEmail.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// BookStore persists catalog entries. Update and Delete are conditional on
// ownership: a mismatch yields ErrNotOwner and leaves the record unchanged.
type BookStore interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, bookID int64) (*models.Book, error)
	List(ctx context.Context, filter BookFilter) ([]models.Book, error)
	Update(ctx context.Context, bookID int64, ownerID string, in *models.BookRequest) (*models.Book, error)
	Delete(ctx context.Context, bookID int64, ownerID string) (*models.Book, error)
}

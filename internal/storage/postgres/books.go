package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bookhaven/bookshelf-api/internal/models"
	"github.com/bookhaven/bookshelf-api/internal/storage"
)

const bookColumns = `book_id, user_id, title, book_name, author, description,
	published_date, category_id, created_at, updated_at`

// BookRepository implements storage.BookStore on PostgreSQL.
type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, book *models.Book) (err error) {
	start := time.Now()
	defer func() { observe("insert_book", start, err) }()

	query := `INSERT INTO books (user_id, title, book_name, author, description, published_date, category_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING book_id, created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query,
		book.UserID, book.Title, book.BookName, book.Author, book.Description,
		book.PublishedDate, book.CategoryID,
	).Scan(&book.BookID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, bookID int64) (_ *models.Book, err error) {
	start := time.Now()
	defer func() { observe("select_book", start, err) }()

	query := `SELECT ` + bookColumns + ` FROM books WHERE book_id = $1`

	book := &models.Book{}
	err = scanBook(r.db.QueryRowContext(ctx, query, bookID), book)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select book: %w", err)
	}
	return book, nil
}

func (r *BookRepository) List(ctx context.Context, filter storage.BookFilter) (_ []models.Book, err error) {
	start := time.Now()
	defer func() { observe("list_books", start, err) }()

	query, args := buildListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := scanBook(rows, &book); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// Update mutates a book in a single conditional statement. The ownership
// predicate is part of the UPDATE itself, so a stale read can never let a
// non-owner through.
func (r *BookRepository) Update(ctx context.Context, bookID int64, ownerID string, in *models.BookRequest) (_ *models.Book, err error) {
	start := time.Now()
	defer func() { observe("update_book", start, err) }()

	query := `UPDATE books
	          SET title = $3, book_name = $4, author = $5, description = $6,
	              category_id = $7, updated_at = now()
	          WHERE book_id = $1 AND user_id = $2
	          RETURNING ` + bookColumns

	book := &models.Book{}
	err = scanBook(r.db.QueryRowContext(ctx, query,
		bookID, ownerID, in.Title, in.BookName, in.Author, in.Description, in.CategoryID,
	), book)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyMiss(ctx, bookID)
		}
		return nil, fmt.Errorf("update book: %w", err)
	}
	return book, nil
}

// Delete removes a book, conditional on ownership like Update.
func (r *BookRepository) Delete(ctx context.Context, bookID int64, ownerID string) (_ *models.Book, err error) {
	start := time.Now()
	defer func() { observe("delete_book", start, err) }()

	query := `DELETE FROM books WHERE book_id = $1 AND user_id = $2 RETURNING ` + bookColumns

	book := &models.Book{}
	err = scanBook(r.db.QueryRowContext(ctx, query, bookID, ownerID), book)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyMiss(ctx, bookID)
		}
		return nil, fmt.Errorf("delete book: %w", err)
	}
	return book, nil
}

// classifyMiss distinguishes "no such book" from "book owned by someone else"
// after a conditional mutation touched zero rows.
func (r *BookRepository) classifyMiss(ctx context.Context, bookID int64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE book_id = $1)`, bookID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check book existence: %w", err)
	}
	if exists {
		return storage.ErrNotOwner
	}
	return storage.ErrNotFound
}

// buildListQuery assembles the filtered, paginated listing statement.
// Results are ordered by descending book_id so pages are stable as new books
// are inserted.
func buildListQuery(filter storage.BookFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + bookColumns + ` FROM books`)

	var conditions []string
	var args []interface{}

	if filter.Author != "" {
		args = append(args, "%"+filter.Author+"%")
		conditions = append(conditions, fmt.Sprintf("author ILIKE $%d", len(args)))
	}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	args = append(args, limit, (page-1)*limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY book_id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	return sb.String(), args
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(s scanner, book *models.Book) error {
	return s.Scan(
		&book.BookID, &book.UserID, &book.Title, &book.BookName, &book.Author,
		&book.Description, &book.PublishedDate, &book.CategoryID,
		&book.CreatedAt, &book.UpdatedAt,
	)
}

package models

import "time"

// Book represents a catalog entry. UserID references the creating user and is
// set once at creation.
type Book struct {
	BookID        int64     `json:"book_id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	BookName      string    `json:"book_name"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	PublishedDate time.Time `json:"published_date"`
	CategoryID    int       `json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookRequest represents the create/update payload for a book
type BookRequest struct {
	Title       string `json:"title"`
	BookName    string `json:"book_name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CategoryID  int    `json:"category_id"`
}

// MissingFields lists the required book fields that are absent.
func (r *BookRequest) MissingFields() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.BookName == "" {
		missing = append(missing, "book_name")
	}
	if r.Author == "" {
		missing = append(missing, "author")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if r.CategoryID == 0 {
		missing = append(missing, "category_id")
	}
	return missing
}

// BookResponse wraps a single book with a human-readable message
type BookResponse struct {
	Message string `json:"message"`
	Book    *Book  `json:"book"`
}

// BookDeletedResponse is returned after a successful delete
type BookDeletedResponse struct {
	Message string `json:"message"`
	Deleted *Book  `json:"deleted"`
}

package routes

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bookhaven/bookshelf-api/internal/models"
	"github.com/bookhaven/bookshelf-api/internal/storage"
)

// fakeUserStore is an in-memory storage.UserStore with the same uniqueness
// semantics as the PostgreSQL implementation.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by user_id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return storage.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	s.users[user.UserID] = &clone
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

// fakeBookStore is an in-memory storage.BookStore mirroring the filtering,
// ordering, and conditional-mutation semantics of the PostgreSQL
// implementation.
type fakeBookStore struct {
	mu     sync.Mutex
	books  map[int64]*models.Book
	nextID int64
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: make(map[int64]*models.Book), nextID: 1}
}

func (s *fakeBookStore) Create(_ context.Context, book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	book.BookID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	clone := *book
	s.books[book.BookID] = &clone
	return nil
}

func (s *fakeBookStore) GetByID(_ context.Context, bookID int64) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[bookID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *book
	return &clone, nil
}

func (s *fakeBookStore) List(_ context.Context, filter storage.BookFilter) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Book, 0)
	for _, book := range s.books {
		if filter.Author != "" && !containsFold(book.Author, filter.Author) {
			continue
		}
		if filter.Title != "" && !containsFold(book.Title, filter.Title) {
			continue
		}
		if filter.CategoryID > 0 && book.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, *book)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].BookID > matched[j].BookID })

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.Book{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *fakeBookStore) Update(_ context.Context, bookID int64, ownerID string, in *models.BookRequest) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[bookID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if book.UserID != ownerID {
		return nil, storage.ErrNotOwner
	}
	book.Title = in.Title
	book.BookName = in.BookName
	book.Author = in.Author
	book.Description = in.Description
	book.CategoryID = in.CategoryID
	book.UpdatedAt = time.Now().UTC()
	clone := *book
	return &clone, nil
}

func (s *fakeBookStore) Delete(_ context.Context, bookID int64, ownerID string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[bookID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if book.UserID != ownerID {
		return nil, storage.ErrNotOwner
	}
	delete(s.books, bookID)
	return book, nil
}

// containsFold mimics ILIKE '%needle%'.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

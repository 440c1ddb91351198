package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookhaven/bookshelf-api/internal/models"
	"github.com/bookhaven/bookshelf-api/internal/storage"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository implements storage.UserStore on PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The unique constraints on username and email are
// the authoritative conflict signal; there is no prior existence check.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (err error) {
	start := time.Now()
	defer func() { observe("insert_user", start, err) }()

	query := `INSERT INTO users (user_id, username, email, password, firstname, lastname)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query,
		user.UserID, user.Username, user.Email, user.PasswordHash, user.Firstname, user.Lastname,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return storage.ErrDuplicateEmail
			default:
				return storage.ErrDuplicateUsername
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (_ *models.User, err error) {
	start := time.Now()
	defer func() { observe("select_user", start, err) }()

	query := fmt.Sprintf(
		`SELECT user_id, username, email, password, firstname, lastname, created_at, updated_at
		 FROM users WHERE %s = $1`, column)

	user := &models.User{}
	err = r.db.QueryRowContext(ctx, query, value).Scan(
		&user.UserID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Firstname, &user.Lastname, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select user by %s: %w", column, err)
	}
	return user, nil
}

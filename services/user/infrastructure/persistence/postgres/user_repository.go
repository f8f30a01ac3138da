package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/listkeeper/pkg/database"
	userdomain "github.com/ghuser/listkeeper/services/user/domain"
	"github.com/ghuser/listkeeper/services/user/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Save persists a new user. The unique index on email is the backstop for
// concurrent registrations; its violation maps to ErrEmailTaken.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (id, name, email, password_hash, password_salt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.DB().ExecContext(ctx, q,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.PasswordSalt,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return userdomain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email address. A missing account maps to
// ErrInvalidCredentials so callers cannot probe which emails are registered.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, password_salt, created_at
		FROM users
		WHERE email = $1`

	var u models.User
	err := r.db.DB().QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PasswordSalt, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

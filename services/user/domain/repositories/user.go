package repositories

import (
	"context"

	"github.com/ghuser/listkeeper/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Save persists a new user. Returns ErrEmailTaken when the email
	// address is already registered.
	Save(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a user by email address. Returns
	// ErrInvalidCredentials when no account matches, so lookup failures
	// are indistinguishable from password failures.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

package store

import (
	"context"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The plaintext Password is hashed before
	// the row is written and the returned user carries the
	// server-assigned ID. Returns ErrEmailExists if the email is
	// already taken (case-insensitive).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by exact email match. Used by login;
	// the returned user includes the password hash for verification.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)

	// Update applies a partial update to the user with the given ID and
	// returns the resulting row. Fields absent from the patch are left
	// untouched. A plaintext Password in the patch is hashed before it
	// is stored. Returns ErrUserNotFound if the user does not exist and
	// ErrEmptyPatch when the patch carries no fields.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// Delete removes a user and returns the deleted row as
	// confirmation. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/subplane/subplane-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext passwords are never persisted.
	// Returns ErrEmailExists or ErrMobileExists if a unique constraint is
	// violated (both match ErrUserExists).
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByEmailOrMobile retrieves a user matching either the email or the
	// mobile number. Used by the signup uniqueness check; note this
	// query-then-insert pattern is not race-free on its own, so Create's
	// constraint handling is the authoritative backstop.
	// Returns ErrUserNotFound if no user matches.
	GetByEmailOrMobile(ctx context.Context, email, mobile string) (*domain.User, error)
}

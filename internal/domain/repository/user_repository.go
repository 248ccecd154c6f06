// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"skillhub/internal/domain/entity"
)

// Domain-specific errors for user persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a create violates the unique index on
	// email or on (provider, providerUserId). Callers resolving the
	// find-or-create race re-run the lookup when they see this error.
	ErrDuplicateUser = errors.New("duplicate user")
)

// UserRepository defines the standard operations for user persistence.
// The backing store enforces uniqueness on email and on
// (provider, providerUserId); Create surfaces violations as ErrDuplicateUser.
type UserRepository interface {
	// FindByID retrieves a single user by their document ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their login identifier.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByProvider retrieves a user by their external provider binding.
	FindByProvider(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.User, error)

	// ExistsByEmail reports whether a user record exists for the login identifier.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

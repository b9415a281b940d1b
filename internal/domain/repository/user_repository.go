// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user lookup matches no record.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a create or update would duplicate an email.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (already normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. ID and timestamps are assigned when zero.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites name, email and password hash, and refreshes UpdatedAt.
	Update(ctx context.Context, user *entity.User) error
}

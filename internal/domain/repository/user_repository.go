// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows user listings for staff administration screens.
type UserFilter struct {
	Role     *entity.Role
	BranchID *uuid.UUID
	IsActive *bool
	Limit    int
	Offset   int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// List retrieves users matching the filter, newest first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePushToken stores the device push token for a user.
	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error
}

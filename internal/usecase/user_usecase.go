// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Phone     string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   *entity.AddressSnapshot
}

// LoginInput defines the data required for a user to log in. The phone
// number is the login identifier.
type LoginInput struct {
	Phone    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// UpdateProfileInput defines the mutable profile fields. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	FirstName               *string
	LastName                *string
	Email                   *string
	Address                 *entity.AddressSnapshot
	NotificationPreferences *entity.NotificationPreferences
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RefreshTokenOutput returns the renewed token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account and returns it with tokens.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates a user by phone and password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)

	// GetProfile returns the account of the authenticated user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial profile changes.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// UpdatePushToken stores the device push token used by the notification
	// worker.
	UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"laundrypro/internal/delivery/http/middleware"
	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and profile handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest represents the request body for customer registration.
type RegisterRequest struct {
	Phone     string                  `json:"phone" validate:"required"`
	Email     string                  `json:"email" validate:"omitempty,email"`
	Password  string                  `json:"password" validate:"required,min=8"`
	FirstName string                  `json:"first_name" validate:"required"`
	LastName  string                  `json:"last_name" validate:"required"`
	Address   *entity.AddressSnapshot `json:"address,omitempty"`
}

// Register handles the customer registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user":          output.User,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	}, "Account registered successfully")
}

// LoginRequest represents the request body for the login endpoint.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request. The phone number is the login identifier.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":          output.User,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	}, "Login successful")
}

// RefreshTokenRequest represents the request body for the token refresh
// endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	}, "Token refreshed successfully")
}

// GetProfile returns the authenticated user's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "Authentication required")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfileRequest represents the request body for partial profile
// changes. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName               *string                         `json:"first_name,omitempty"`
	LastName                *string                         `json:"last_name,omitempty"`
	Email                   *string                         `json:"email,omitempty" validate:"omitempty,email"`
	Address                 *entity.AddressSnapshot         `json:"address,omitempty"`
	NotificationPreferences *entity.NotificationPreferences `json:"notification_preferences,omitempty"`
}

// UpdateProfile handles partial profile updates for the authenticated user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), actor.UserID, usecase.UpdateProfileInput{
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Email:                   req.Email,
		Address:                 req.Address,
		NotificationPreferences: req.NotificationPreferences,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// UpdatePushTokenRequest represents the request body for storing a device
// push token.
type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required"`
}

// UpdatePushToken stores the device push token used for push delivery.
func (h *UserHandler) UpdatePushToken(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "Authentication required")
	}

	var req UpdatePushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePushToken(c.Request().Context(), actor.UserID, req.PushToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "updated"}, "Push token updated successfully")
}

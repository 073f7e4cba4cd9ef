// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation. It is built by
// the auth middleware from the access token claims.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsStaff reports whether the actor works at a branch or administers the
// platform.
func (a Actor) IsStaff() bool {
	return a.Role == entity.RoleStaff || a.Role == entity.RoleAdmin
}

// IsAdmin reports whether the actor has unrestricted access.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// Provenance carries the request metadata recorded in the activity log.
type Provenance struct {
	IPAddress string
	UserAgent string
}

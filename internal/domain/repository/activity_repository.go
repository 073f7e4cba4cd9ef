package repository

import (
	"context"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityFilter narrows activity log listings. Nil fields are ignored.
type ActivityFilter struct {
	UserID     *uuid.UUID
	EntityType string
	EntityID   *uuid.UUID
	Limit      int
	Offset     int
}

// ActivityRepository defines the interface for the append-only audit trail.
type ActivityRepository interface {
	// Create persists a single activity log entry.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// List retrieves activity entries matching the filter, newest first.
	List(ctx context.Context, filter ActivityFilter) ([]*entity.ActivityLog, error)
}

package repository

import (
	"context"
	"errors"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByUser retrieves notifications for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead stamps a notification as read. It is a no-op when the
	// notification does not belong to the user.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead stamps every unread notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// MarkSent stamps a notification as delivered through its push channel.
	MarkSent(ctx context.Context, id uuid.UUID) error
}

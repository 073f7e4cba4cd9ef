package usecase

import (
	"context"

	"laundrypro/internal/domain/entity"
	"laundrypro/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListNotificationsInput narrows a user's notification listing.
type ListNotificationsInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// --- Output DTOs ---

// ListNotificationsOutput returns one page of notifications with the
// caller's unread count.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// NotificationUsecase defines the interface for the in-app notification
// feed and the worker-side push delivery.
type NotificationUsecase interface {
	// ListMyNotifications returns the acting user's notifications, newest
	// first, together with their unread count.
	ListMyNotifications(ctx context.Context, userID uuid.UUID, input ListNotificationsInput) (*ListNotificationsOutput, error)

	// MarkRead stamps one of the acting user's notifications as read.
	// Notifications of other users are silently ignored.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead stamps every unread notification of the acting user.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// ProcessNotificationEvent delivers a queued notification event through
	// the push channel and stamps it as sent. Called by the worker.
	ProcessNotificationEvent(ctx context.Context, event *service.NotificationEvent) error
}

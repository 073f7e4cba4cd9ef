package service

import (
	"context"
)

// NotificationEvent represents a notification fan-out job consumed by the
// push worker.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	OrderID        string `json:"order_id,omitempty"`
	OrderNumber    string `json:"order_number,omitempty"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

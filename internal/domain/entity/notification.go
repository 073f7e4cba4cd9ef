// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by the order and issue workflows.
const (
	NotificationOrderCreated      = "order_created"
	NotificationOrderStatusUpdate = "order_status_update"
	NotificationIssueResolved     = "issue_resolved"
)

// Delivery channels a notification may be fanned out on.
const (
	ChannelInApp = "in_app"
	ChannelSMS   = "sms"
	ChannelEmail = "email"
	ChannelPush  = "push"
)

// Notification is an append-only record created as a side effect of order
// and issue mutations. It is never created directly by a user-facing
// endpoint.
type Notification struct {
	ID       uuid.UUID  `json:"id"`
	UserID   uuid.UUID  `json:"user_id"`
	OrderID  *uuid.UUID `json:"order_id,omitempty"`
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	Channels []string   `json:"channels"`
	ReadAt   *time.Time `json:"read_at,omitempty"`
	SentAt   *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

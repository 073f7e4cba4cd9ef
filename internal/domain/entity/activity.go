// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity-log actions written by the order workflow.
const (
	ActionOrderCreated  = "order_created"
	ActionStatusUpdated = "status_updated"
	ActionStaffAssigned = "staff_assigned"
)

// ActivityLog is an append-only audit record of a mutation: who acted, what
// changed, and the request provenance it arrived with.
type ActivityLog struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	OldValues  string     `json:"old_values,omitempty"`
	NewValues  string     `json:"new_values,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

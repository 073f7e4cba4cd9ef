// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PickupType describes how garments move between the customer and the branch.
type PickupType string

const (
	// PickupTypePickup means the branch collects the garments.
	PickupTypePickup PickupType = "pickup"
	// PickupTypeDropoff means the customer brings the garments in.
	PickupTypeDropoff PickupType = "dropoff"
	// PickupTypeDelivery means the branch both collects and delivers.
	PickupTypeDelivery PickupType = "delivery"
)

// Valid reports whether the pickup type is one of the known values.
func (p PickupType) Valid() bool {
	switch p {
	case PickupTypePickup, PickupTypeDropoff, PickupTypeDelivery:
		return true
	}

	return false
}

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusReceived  OrderStatus = "RECEIVED"
	StatusWashing   OrderStatus = "WASHING"
	StatusIroning   OrderStatus = "IRONING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// statusSequence is the normal forward path of an order. CANCELLED sits
// outside the sequence as a side exit from any non-terminal state.
var statusSequence = []OrderStatus{
	StatusPending,
	StatusReceived,
	StatusWashing,
	StatusIroning,
	StatusReady,
	StatusDelivered,
}

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}

	return s.sequenceIndex() >= 0
}

// IsTerminal reports whether the order can no longer change state.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Label returns the human-readable form used in customer-facing messages,
// e.g. "WASHING" -> "washing".
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReceived:
		return "received"
	case StatusWashing:
		return "washing"
	case StatusIroning:
		return "ironing"
	case StatusReady:
		return "ready"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	}

	return string(s)
}

func (s OrderStatus) sequenceIndex() int {
	for i, st := range statusSequence {
		if st == s {
			return i
		}
	}

	return -1
}

// CanTransition reports whether a regular (non-override) transition from one
// status to another is allowed: one step forward along the sequence, or a
// jump to CANCELLED from any non-terminal state.
func CanTransition(from, to OrderStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}

	fromIdx := from.sequenceIndex()
	toIdx := to.sequenceIndex()
	if fromIdx < 0 || toIdx < 0 {
		return false
	}

	return toIdx == fromIdx+1
}

// AddressSnapshot is an address captured at order-creation time. It is
// denormalized on purpose: edits to the customer's saved address never change
// where an already-placed order is picked up or delivered.
type AddressSnapshot struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Instructions string `json:"instructions,omitempty"`
}

// OrderItem is a single line of an order. Items are created in one batch with
// the order and are immutable afterwards; a change requires a new order.
type OrderItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalPrice float64   `json:"total_price"`
	Color      string    `json:"color,omitempty"`
	Brand      string    `json:"brand,omitempty"`
	Size       string    `json:"size,omitempty"`
	FabricType string    `json:"fabric_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Order is the central entity of the platform. Orders are never deleted,
// only transitioned; DELIVERED and CANCELLED are terminal.
type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  uuid.UUID `json:"customer_id"`
	BranchID    uuid.UUID `json:"branch_id"`
	ServiceID   uuid.UUID `json:"service_id"`

	PickupType           PickupType       `json:"pickup_type"`
	PickupAddress        AddressSnapshot  `json:"pickup_address"`
	PickupScheduledFor   time.Time        `json:"pickup_scheduled_for"`
	PickupCompletedAt    *time.Time       `json:"pickup_completed_at,omitempty"`
	DeliveryAddress      *AddressSnapshot `json:"delivery_address,omitempty"`
	DeliveryScheduledFor *time.Time       `json:"delivery_scheduled_for,omitempty"`
	DeliveryCompletedAt  *time.Time       `json:"delivery_completed_at,omitempty"`

	Items       []OrderItem `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	DeliveryFee float64     `json:"delivery_fee"`
	ExpressFee  float64     `json:"express_fee"`
	Discount    float64     `json:"discount"`
	TotalAmount float64     `json:"total_amount"`

	IsExpress     bool        `json:"is_express"`
	PriorityScore int         `json:"priority_score"`
	PromisedBy    time.Time   `json:"promised_by"`
	Status        OrderStatus `json:"status"`
	Notes         string      `json:"notes,omitempty"`
	InternalNotes string      `json:"internal_notes,omitempty"`

	AssignedStaffID *uuid.UUID `json:"assigned_staff_id,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Customer      *User    `json:"customer,omitempty"`
	Service       *Service `json:"service,omitempty"`
	Branch        *Branch  `json:"branch,omitempty"`
	AssignedStaff *User    `json:"assigned_staff,omitempty"`
}

// FormatOrderNumber renders a human-readable order number, e.g.
// "LRN-2026-000042". Sequences are zero-padded to six digits and are strictly
// increasing within a year.
func FormatOrderNumber(prefix string, year int, sequence int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, sequence)
}

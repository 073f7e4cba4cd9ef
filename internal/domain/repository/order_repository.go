package repository

import (
	"context"
	"errors"
	"time"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Nil fields are ignored.
type OrderFilter struct {
	CustomerID    *uuid.UUID
	BranchID      *uuid.UUID
	ServiceID     *uuid.UUID
	AssignedStaff *uuid.UUID
	Status        *entity.OrderStatus
	IsExpress     *bool
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its items in one insert batch.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items and related records preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByOrderNumber retrieves an order by its public order number.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// List retrieves orders matching the filter, express first, then newest.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Count returns the number of orders matching the filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// Update persists changed fields of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// NextOrderNumber atomically increments and returns the per-year order
	// sequence. Two concurrent calls never observe the same value.
	NextOrderNumber(ctx context.Context, year int) (int64, error)
}

package usecase

import (
	"context"
	"time"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is a single line of a new order.
type OrderItemInput struct {
	ItemName   string
	Quantity   int
	UnitPrice  float64
	Color      string
	Brand      string
	Size       string
	FabricType string
}

// CreateOrderInput defines the data required to place a new order.
type CreateOrderInput struct {
	ServiceID            uuid.UUID
	BranchID             uuid.UUID
	PickupType           entity.PickupType
	PickupAddress        entity.AddressSnapshot
	PickupScheduledFor   time.Time
	DeliveryAddress      *entity.AddressSnapshot
	DeliveryScheduledFor *time.Time
	Items                []OrderItemInput
	IsExpress            bool
	Notes                string
}

// ListOrdersInput narrows an order listing. Scoping by role is applied on
// top of these filters.
type ListOrdersInput struct {
	Status *entity.OrderStatus
	Limit  int
	Offset int
}

// UpdateStatusInput defines a status transition request.
type UpdateStatusInput struct {
	NewStatus entity.OrderStatus
	Notes     string
}

// SubmitReviewInput defines a customer rating of a delivered order.
type SubmitReviewInput struct {
	Rating         int
	ServiceQuality *int
	Timeliness     *int
	Communication  *int
	Comment        string
}

// --- Output DTOs ---

// ListOrdersOutput returns one page of orders with the unpaged total.
type ListOrdersOutput struct {
	Orders []*entity.Order
	Total  int64
}

// TrackingOutput is the public tracking projection of an order.
type TrackingOutput struct {
	OrderNumber string                `json:"order_number"`
	Status      entity.OrderStatus    `json:"status"`
	IsExpress   bool                  `json:"is_express"`
	PromisedBy  time.Time             `json:"promised_by"`
	Timeline    []entity.TrackingStep `json:"timeline"`
}

// OrderUsecase defines the interface for the order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder places a new order for the acting customer: it validates
	// the service, computes the pricing breakdown, allocates the next order
	// number and persists the order with its items atomically.
	CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput, prov Provenance) (*entity.Order, error)

	// GetOrder fetches one order. Customers may only read their own orders;
	// staff are scoped to their branch.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns orders scoped to the caller's role: customers see
	// their own, staff their branch, admins everything.
	ListOrders(ctx context.Context, actor Actor, input ListOrdersInput) (*ListOrdersOutput, error)

	// UpdateStatus advances an order along the fulfillment sequence. Staff
	// may move one step forward or cancel; admins may jump to any
	// non-identical status out of a non-terminal state.
	UpdateStatus(ctx context.Context, actor Actor, orderID uuid.UUID, input UpdateStatusInput, prov Provenance) (*entity.Order, error)

	// CancelOrder cancels the acting customer's own order while it is still
	// pending.
	CancelOrder(ctx context.Context, actor Actor, orderID uuid.UUID, prov Provenance) (*entity.Order, error)

	// AssignStaff sets the staff member responsible for an order.
	AssignStaff(ctx context.Context, actor Actor, orderID, staffID uuid.UUID, prov Provenance) (*entity.Order, error)

	// TrackOrder projects an order onto the public six-step timeline. No
	// authentication is required; the order number is the capability.
	TrackOrder(ctx context.Context, orderNumber string) (*TrackingOutput, error)

	// TrackingQR renders a PNG QR code pointing at the tracking page.
	TrackingQR(ctx context.Context, orderNumber string) ([]byte, error)

	// SubmitReview records the customer's rating of a delivered order.
	SubmitReview(ctx context.Context, actor Actor, orderID uuid.UUID, input SubmitReviewInput) (*entity.Review, error)
}

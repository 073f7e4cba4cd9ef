package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber string    `gorm:"type:varchar(20);unique;not null"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null"`

	PickupType string `gorm:"type:varchar(20);not null"`
	// PickupAddress and DeliveryAddress are JSON snapshots frozen at creation.
	PickupAddress        datatypes.JSON `gorm:"type:jsonb;not null"`
	PickupScheduledFor   time.Time      `gorm:"not null"`
	PickupCompletedAt    *time.Time
	DeliveryAddress      datatypes.JSON `gorm:"type:jsonb"`
	DeliveryScheduledFor *time.Time
	DeliveryCompletedAt  *time.Time

	Subtotal    float64 `gorm:"type:decimal(12,2);not null"`
	DeliveryFee float64 `gorm:"type:decimal(12,2);not null"`
	ExpressFee  float64 `gorm:"type:decimal(12,2);not null;default:0"`
	Discount    float64 `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount float64 `gorm:"type:decimal(12,2);not null"`

	IsExpress     bool      `gorm:"not null;default:false"`
	PriorityScore int       `gorm:"not null;default:5"`
	PromisedBy    time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes         string    `gorm:"type:text"`
	InternalNotes string    `gorm:"type:text"`

	AssignedStaffID *uuid.UUID `gorm:"type:uuid;index"`
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Items         []OrderItemModel `gorm:"foreignKey:OrderID"`
	Customer      *UserModel       `gorm:"foreignKey:CustomerID"`
	Service       *ServiceModel    `gorm:"foreignKey:ServiceID"`
	Branch        *BranchModel     `gorm:"foreignKey:BranchID"`
	AssignedStaff *UserModel       `gorm:"foreignKey:AssignedStaffID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Rows are inserted once with the order and never updated.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName   string    `gorm:"type:varchar(100);not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  float64   `gorm:"type:decimal(12,2);not null"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null"`
	Color      string    `gorm:"type:varchar(50)"`
	Brand      string    `gorm:"type:varchar(50)"`
	Size       string    `gorm:"type:varchar(20)"`
	FabricType string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderCounterModel is the GORM-specific struct for the 'order_counters' table.
// One row per year backs the atomic order number sequence.
type OrderCounterModel struct {
	Year       int   `gorm:"primaryKey"`
	LastNumber int64 `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderCounterModel) TableName() string {
	return "order_counters"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The unique index on OrderID enforces one review per order.
type ReviewModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID  `gorm:"type:uuid;unique;not null"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	StaffID        *uuid.UUID `gorm:"type:uuid;index"`
	Rating         int        `gorm:"not null"`
	ServiceQuality *int
	Timeliness     *int
	Communication  *int
	Comment        string `gorm:"type:text"`
	CreatedAt      time.Time

	Order *OrderModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

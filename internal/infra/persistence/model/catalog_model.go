package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Category         string     `gorm:"type:varchar(20);not null;index"`
	ServiceType      string     `gorm:"type:varchar(50);not null"`
	BasePrice        float64    `gorm:"type:decimal(12,2);not null"`
	PricingUnit      string     `gorm:"type:varchar(20);not null;default:'per_item'"`
	EstimatedHours   int        `gorm:"not null"`
	IsExpress        bool       `gorm:"not null;default:false"`
	BranchID         *uuid.UUID `gorm:"type:uuid;index"`
	Description      string     `gorm:"type:text"`
	CareInstructions string     `gorm:"type:text"`
	IsActive         bool       `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Branch *BranchModel `gorm:"foreignKey:BranchID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// BranchModel is the GORM-specific struct for the 'branches' table.
type BranchModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name    string    `gorm:"type:varchar(100);not null"`
	Address string    `gorm:"type:varchar(255);not null"`
	City    string    `gorm:"type:varchar(100);not null"`
	State   string    `gorm:"type:varchar(100);not null"`
	LGA     string    `gorm:"column:lga;type:varchar(100)"`
	Phone   string    `gorm:"type:varchar(20)"`
	Email   string    `gorm:"type:varchar(255)"`
	// Latitude/Longitude are nullable; branches without coordinates are
	// skipped by proximity queries.
	Latitude     *float64       `gorm:"type:decimal(10,8)"`
	Longitude    *float64       `gorm:"type:decimal(11,8)"`
	OpeningHours datatypes.JSON `gorm:"type:jsonb"`
	IsActive     bool           `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Aggregates populated by stats queries only; not real columns.
	OrderCount int64 `gorm:"->;-:migration"`
	StaffCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (BranchModel) TableName() string {
	return "branches"
}

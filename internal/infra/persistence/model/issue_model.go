package model

import (
	"time"

	"github.com/google/uuid"
)

// IssueModel is the GORM-specific struct for the 'issues' table.
type IssueModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReporterID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	IssueType   string     `gorm:"type:varchar(30);not null"`
	Severity    string     `gorm:"type:varchar(20);not null;default:'medium';index"`
	Description string     `gorm:"type:text;not null"`
	Status      string     `gorm:"type:varchar(20);not null;default:'OPEN';index"`

	ResolvedByID       *uuid.UUID `gorm:"type:uuid"`
	ResolutionNotes    string     `gorm:"type:text"`
	CompensationAmount *float64   `gorm:"type:decimal(12,2)"`
	CompensationType   string     `gorm:"type:varchar(30)"`
	ResolvedAt         *time.Time
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time

	Order      *OrderModel `gorm:"foreignKey:OrderID"`
	Reporter   *UserModel  `gorm:"foreignKey:ReporterID"`
	ResolvedBy *UserModel  `gorm:"foreignKey:ResolvedByID"`
}

// TableName explicitly sets the table name for GORM.
func (IssueModel) TableName() string {
	return "issues"
}

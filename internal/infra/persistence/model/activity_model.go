package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
// The table is append-only; rows are never updated or deleted.
type ActivityLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	OrderID    *uuid.UUID     `gorm:"type:uuid;index"`
	Action     string         `gorm:"type:varchar(50);not null"`
	EntityType string         `gorm:"type:varchar(50);not null"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	OldValues  datatypes.JSON `gorm:"type:jsonb"`
	NewValues  datatypes.JSON `gorm:"type:jsonb"`
	IPAddress  string         `gorm:"type:varchar(45)"`
	UserAgent  string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

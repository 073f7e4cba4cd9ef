package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Rows are written as side effects of order and issue mutations.
type NotificationModel struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID *uuid.UUID `gorm:"type:uuid;index"`
	Type    string     `gorm:"type:varchar(40);not null"`
	Title   string     `gorm:"type:varchar(200);not null"`
	Message string     `gorm:"type:text;not null"`
	// Channels is a JSON array of channel names, e.g. ["in_app","push"].
	Channels  datatypes.JSON `gorm:"type:jsonb"`
	ReadAt    *time.Time     `gorm:"index"`
	SentAt    *time.Time
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// The phone number is the login identifier; email is optional.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Phone        string    `gorm:"type:varchar(20);unique;not null"`
	Email        string    `gorm:"type:varchar(255);index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'CUSTOMER';index"`
	// Address is a JSON snapshot: street, city, state, instructions.
	Address                 datatypes.JSON `gorm:"type:jsonb"`
	ProfilePictureURL       string         `gorm:"type:text"`
	PushToken               string         `gorm:"type:text"`
	NotificationPreferences datatypes.JSON `gorm:"type:jsonb"`
	IsActive                bool           `gorm:"not null;default:true"`
	IsVerified              bool           `gorm:"not null;default:false"`
	LastLoginAt             *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
	DeletedAt               *time.Time `gorm:"index"`

	StaffProfile *StaffProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StaffProfileModel mirrors the 'staff_profiles' table. UserID references users.id (UUID).
type StaffProfileModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID      `gorm:"type:uuid;unique;not null"`
	BranchID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role        string         `gorm:"type:varchar(50)"`
	EmployeeID  string         `gorm:"type:varchar(50);unique"`
	Permissions datatypes.JSON `gorm:"type:jsonb"`
	Salary      float64        `gorm:"type:decimal(12,2)"`
	IsActive    bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffProfileModel) TableName() string {
	return "staff_profiles"
}

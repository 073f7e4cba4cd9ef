// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the access level of an account.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}

	return false
}

// NotificationPreferences captures which channels a user has opted into.
type NotificationPreferences struct {
	SMS      bool `json:"sms"`
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// User is the core account entity. The phone number is the login identifier;
// email is optional. A user may additionally carry a StaffProfile when they
// work at a branch.
type User struct {
	ID                      uuid.UUID               `json:"id"`
	Phone                   string                  `json:"phone"`
	Email                   string                  `json:"email,omitempty"`
	PasswordHash            string                  `json:"-"`
	FirstName               string                  `json:"first_name"`
	LastName                string                  `json:"last_name"`
	Role                    Role                    `json:"role"`
	Address                 *AddressSnapshot        `json:"address,omitempty"`
	ProfilePictureURL       string                  `json:"profile_picture_url,omitempty"`
	PushToken               string                  `json:"-"`
	NotificationPreferences NotificationPreferences `json:"notification_preferences"`
	IsActive                bool                    `json:"is_active"`
	IsVerified              bool                    `json:"is_verified"`
	LastLoginAt             *time.Time              `json:"last_login_at,omitempty"`
	CreatedAt               time.Time               `json:"created_at"`
	UpdatedAt               time.Time               `json:"updated_at"`

	StaffProfile *StaffProfile `json:"staff_profile,omitempty"`
}

// FullName returns the display name used in notifications and listings.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// StaffProfile links a user to the branch they work at.
// The average rating is derived from reviews at read time and is never
// maintained incrementally.
type StaffProfile struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	BranchID    uuid.UUID       `json:"branch_id"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions,omitempty"`
	EmployeeID  string          `json:"employee_id,omitempty"`
	Salary      float64         `json:"salary,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

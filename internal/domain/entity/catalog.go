// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory groups service offerings for filtering and pricing tiers.
type ServiceCategory string

const (
	CategoryBasic     ServiceCategory = "BASIC"
	CategoryPremium   ServiceCategory = "PREMIUM"
	CategoryExpress   ServiceCategory = "EXPRESS"
	CategoryCorporate ServiceCategory = "CORPORATE"
)

// Service is a catalog offering such as wash-and-fold or dry cleaning.
// EstimatedHours feeds the promised-by deadline of every order placed
// against the service.
type Service struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Category         ServiceCategory `json:"category"`
	ServiceType      string          `json:"service_type"`
	BasePrice        float64         `json:"base_price"`
	PricingUnit      string          `json:"pricing_unit"`
	EstimatedHours   int             `json:"estimated_hours"`
	IsExpress        bool            `json:"is_express"`
	BranchID         *uuid.UUID      `json:"branch_id,omitempty"`
	Description      string          `json:"description,omitempty"`
	CareInstructions string          `json:"care_instructions,omitempty"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Branch *Branch `json:"branch,omitempty"`
}

// Coordinates is a geographic point for a branch location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours maps a weekday name to its open/close times. A day with
// Open == "closed" has no business hours.
type OpeningHours map[string]DayHours

// DayHours is the opening window of a single weekday.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close,omitempty"`
}

// Branch is a physical laundry location.
type Branch struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	LGA          string       `json:"lga,omitempty"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	OpeningHours OpeningHours `json:"opening_hours,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	OrderCount int `json:"order_count,omitempty"`
	StaffCount int `json:"staff_count,omitempty"`
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer rating of a delivered order. Staff average ratings
// are recomputed from reviews at read time.
type Review struct {
	ID             uuid.UUID  `json:"id"`
	OrderID        uuid.UUID  `json:"order_id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	StaffID        *uuid.UUID `json:"staff_id,omitempty"`
	Rating         int        `json:"rating"`
	ServiceQuality *int       `json:"service_quality,omitempty"`
	Timeliness     *int       `json:"timeliness,omitempty"`
	Communication  *int       `json:"communication,omitempty"`
	Comment        string     `json:"comment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

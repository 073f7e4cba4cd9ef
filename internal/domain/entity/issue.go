// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IssueType classifies a customer-reported problem.
type IssueType string

const (
	IssueDamaged   IssueType = "damaged"
	IssueLost      IssueType = "lost"
	IssueDelay     IssueType = "delay"
	IssueStain     IssueType = "stain"
	IssueWrongItem IssueType = "wrong_item"
	IssueOther     IssueType = "other"
)

// Valid reports whether the issue type is one of the known values.
func (t IssueType) Valid() bool {
	switch t {
	case IssueDamaged, IssueLost, IssueDelay, IssueStain, IssueWrongItem, IssueOther:
		return true
	}

	return false
}

// IssueSeverity ranks how urgent a reported problem is.
type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)

// Valid reports whether the severity is one of the known values.
func (s IssueSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}

	return false
}

// IssueStatus is the workflow state of an issue. RESOLVED and CLOSED are
// terminal and are reached only through an explicit resolve action.
type IssueStatus string

const (
	IssueOpen          IssueStatus = "OPEN"
	IssueInvestigating IssueStatus = "INVESTIGATING"
	IssueResolved      IssueStatus = "RESOLVED"
	IssueClosed        IssueStatus = "CLOSED"
)

// Issue records a customer-reported problem, optionally linked to an order.
// Its workflow is independent of the order lifecycle.
type Issue struct {
	ID          uuid.UUID     `json:"id"`
	ReporterID  uuid.UUID     `json:"reporter_id"`
	OrderID     *uuid.UUID    `json:"order_id,omitempty"`
	IssueType   IssueType     `json:"issue_type"`
	Severity    IssueSeverity `json:"severity"`
	Description string        `json:"description"`
	Status      IssueStatus   `json:"status"`

	ResolvedByID       *uuid.UUID `json:"resolved_by_id,omitempty"`
	ResolutionNotes    string     `json:"resolution_notes,omitempty"`
	CompensationAmount *float64   `json:"compensation_amount,omitempty"`
	CompensationType   string     `json:"compensation_type,omitempty"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Order      *Order `json:"order,omitempty"`
	Reporter   *User  `json:"reporter,omitempty"`
	ResolvedBy *User  `json:"resolved_by,omitempty"`
}

package repository

import (
	"context"
	"errors"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIssueNotFound is a domain-specific error returned when an issue is not found.
var ErrIssueNotFound = errors.New("issue not found")

// IssueFilter narrows issue listings. Nil fields are ignored.
type IssueFilter struct {
	Status   *entity.IssueStatus
	Severity *entity.IssueSeverity
	BranchID *uuid.UUID
	OrderID  *uuid.UUID
	Limit    int
	Offset   int
}

// IssueRepository defines the interface for issue persistence.
type IssueRepository interface {
	// Create persists a new issue report.
	Create(ctx context.Context, issue *entity.Issue) error

	// FindByID retrieves an issue with its order and reporter preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error)

	// List retrieves issues matching the filter, most severe and newest first.
	List(ctx context.Context, filter IssueFilter) ([]*entity.Issue, error)

	// Update persists changed fields of an existing issue.
	Update(ctx context.Context, issue *entity.Issue) error

	// CountOpen returns the number of issues not yet resolved or closed.
	CountOpen(ctx context.Context) (int64, error)
}

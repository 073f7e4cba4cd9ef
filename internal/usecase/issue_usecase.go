package usecase

import (
	"context"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ReportIssueInput defines a new customer-reported problem.
type ReportIssueInput struct {
	OrderID     *uuid.UUID
	IssueType   entity.IssueType
	Severity    entity.IssueSeverity
	Description string
}

// ListIssuesInput narrows the admin issue listing.
type ListIssuesInput struct {
	Status   *entity.IssueStatus
	Severity *entity.IssueSeverity
	Limit    int
	Offset   int
}

// ResolveIssueInput defines the resolution of an issue, optionally with a
// compensation record.
type ResolveIssueInput struct {
	ResolutionNotes    string
	CompensationAmount *float64
	CompensationType   string
}

// IssueUsecase defines the interface for the issue workflow.
type IssueUsecase interface {
	// ReportIssue records a new OPEN issue for the acting user. When an
	// order is referenced, customers may only report against their own.
	ReportIssue(ctx context.Context, actor Actor, input ReportIssueInput) (*entity.Issue, error)

	// ListIssues returns issues for the admin screens, most severe first.
	ListIssues(ctx context.Context, input ListIssuesInput) ([]*entity.Issue, error)

	// GetIssue fetches one issue with its order and reporter.
	GetIssue(ctx context.Context, id uuid.UUID) (*entity.Issue, error)

	// ResolveIssue moves an issue to RESOLVED, stamps the resolver and
	// compensation, and notifies the original reporter. Issues already
	// resolved or closed are rejected.
	ResolveIssue(ctx context.Context, actor Actor, issueID uuid.UUID, input ResolveIssueInput) (*entity.Issue, error)
}

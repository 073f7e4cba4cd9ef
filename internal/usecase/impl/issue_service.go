package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "laundrypro/internal/delivery/context"
	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// issueService implements the IssueUsecase interface.
type issueService struct {
	issueRepo repository.IssueRepository
	orderRepo repository.OrderRepository
	effects   *sideEffects
	logger    *slog.Logger
}

// IssueServiceParams holds dependencies for IssueService, injected by Fx.
type IssueServiceParams struct {
	fx.In

	IssueRepo repository.IssueRepository
	OrderRepo repository.OrderRepository
	Effects   *sideEffects
	Logger    *slog.Logger
}

// NewIssueService is the constructor for issueService.
func NewIssueService(params IssueServiceParams) usecase.IssueUsecase {
	return &issueService{
		issueRepo: params.IssueRepo,
		orderRepo: params.OrderRepo,
		effects:   params.Effects,
		logger:    params.Logger,
	}
}

func (srv *issueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportIssue records a new OPEN issue for the acting user.
func (srv *issueService) ReportIssue(ctx context.Context, actor usecase.Actor, input usecase.ReportIssueInput) (*entity.Issue, error) {
	if !input.IssueType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown issue type")
	}
	if !input.Severity.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown severity")
	}
	if input.Description == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("description is required")
	}

	if input.OrderID != nil {
		order, err := srv.orderRepo.FindByID(ctx, *input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return nil, domainerrors.ErrOrderNotFound.WrapMessage("referenced order does not exist")
			}

			return nil, errors.Wrap(err, "failed to find referenced order")
		}
		if actor.Role == entity.RoleCustomer && order.CustomerID != actor.UserID {
			return nil, domainerrors.ErrOrderAccessDenied.WrapMessage("order belongs to another customer")
		}
	}

	issue := &entity.Issue{
		ReporterID:  actor.UserID,
		OrderID:     input.OrderID,
		IssueType:   input.IssueType,
		Severity:    input.Severity,
		Description: input.Description,
		Status:      entity.IssueOpen,
	}

	if err := srv.issueRepo.Create(ctx, issue); err != nil {
		return nil, errors.Wrap(err, "failed to create issue")
	}

	srv.log(ctx).Info("Issue reported",
		slog.Any("issueID", issue.ID),
		slog.String("type", string(issue.IssueType)),
		slog.String("severity", string(issue.Severity)))

	return issue, nil
}

// ListIssues returns issues for the admin screens, most severe first.
func (srv *issueService) ListIssues(ctx context.Context, input usecase.ListIssuesInput) ([]*entity.Issue, error) {
	issues, err := srv.issueRepo.List(ctx, repository.IssueFilter{
		Status:   input.Status,
		Severity: input.Severity,
		Limit:    clampPageSize(input.Limit),
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list issues")
	}

	return issues, nil
}

// GetIssue fetches one issue with its order and reporter.
func (srv *issueService) GetIssue(ctx context.Context, id uuid.UUID) (*entity.Issue, error) {
	issue, err := srv.issueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			return nil, domainerrors.ErrIssueNotFound.WrapMessage("issue does not exist")
		}

		return nil, errors.Wrap(err, "failed to find issue by id")
	}

	return issue, nil
}

// ResolveIssue moves an issue to RESOLVED and notifies the reporter.
func (srv *issueService) ResolveIssue(ctx context.Context, actor usecase.Actor, issueID uuid.UUID, input usecase.ResolveIssueInput) (*entity.Issue, error) {
	if input.ResolutionNotes == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resolution notes are required")
	}
	if input.CompensationAmount != nil && *input.CompensationAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("compensation amount cannot be negative")
	}

	issue, err := srv.GetIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if issue.Status == entity.IssueResolved || issue.Status == entity.IssueClosed {
		return nil, domainerrors.ErrIssueAlreadyResolved.WrapMessage("issue is already " + string(issue.Status))
	}

	now := time.Now()
	resolverID := actor.UserID
	issue.Status = entity.IssueResolved
	issue.ResolvedByID = &resolverID
	issue.ResolutionNotes = input.ResolutionNotes
	issue.CompensationAmount = input.CompensationAmount
	issue.CompensationType = input.CompensationType
	issue.ResolvedAt = &now

	if err := srv.issueRepo.Update(ctx, issue); err != nil {
		return nil, errors.Wrap(err, "failed to resolve issue")
	}

	srv.log(ctx).Info("Issue resolved", slog.Any("issueID", issue.ID), slog.Any("resolverID", resolverID))
	srv.effects.IssueResolved(ctx, issue)

	return issue, nil
}

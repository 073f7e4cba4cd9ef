package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	mockRepo "laundrypro/internal/mocks/repository"
	mockSvc "laundrypro/internal/mocks/service"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// issueServiceFixtures holds all test dependencies for issue service tests.
type issueServiceFixtures struct {
	service          usecase.IssueUsecase
	issueRepo        *mockRepo.MockIssueRepository
	orderRepo        *mockRepo.MockOrderRepository
	notificationRepo *mockRepo.MockNotificationRepository
	activityRepo     *mockRepo.MockActivityRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestIssueService(t *testing.T) issueServiceFixtures {
	issueRepo := mockRepo.NewMockIssueRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewIssueService(IssueServiceParams{
		IssueRepo: issueRepo,
		OrderRepo: orderRepo,
		Effects:   createTestEffects(notificationRepo, activityRepo, publisher, logger),
		Logger:    logger,
	})

	return issueServiceFixtures{
		service:          svc,
		issueRepo:        issueRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		publisher:        publisher,
	}
}

func TestIssueService_ReportIssue_Success(t *testing.T) {
	fx := createTestIssueService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: customerID}, nil)

	fx.issueRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Issue")).
		Run(func(ctx context.Context, issue *entity.Issue) {
			issue.ID = uuid.New()
		}).
		Return(nil)

	issue, err := fx.service.ReportIssue(ctx, customerActor(customerID), usecase.ReportIssueInput{
		OrderID:     &orderID,
		IssueType:   entity.IssueStain,
		Severity:    entity.SeverityHigh,
		Description: "Ink stain on the left sleeve after washing.",
	})
	require.NoError(t, err)
	require.NotNil(t, issue)

	assert.Equal(t, entity.IssueOpen, issue.Status)
	assert.Equal(t, customerID, issue.ReporterID)
	assert.Equal(t, entity.IssueStain, issue.IssueType)
}

func TestIssueService_ReportIssue_UnknownType(t *testing.T) {
	fx := createTestIssueService(t)

	issue, err := fx.service.ReportIssue(context.Background(), customerActor(uuid.New()), usecase.ReportIssueInput{
		IssueType:   "shrunk",
		Severity:    entity.SeverityLow,
		Description: "Sweater is two sizes smaller.",
	})
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIssueService_ReportIssue_ForeignOrder(t *testing.T) {
	fx := createTestIssueService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: uuid.New()}, nil)

	issue, err := fx.service.ReportIssue(ctx, customerActor(uuid.New()), usecase.ReportIssueInput{
		OrderID:     &orderID,
		IssueType:   entity.IssueDelay,
		Severity:    entity.SeverityMedium,
		Description: "Order is two days late.",
	})
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}

func TestIssueService_ResolveIssue_WithCompensation(t *testing.T) {
	fx := createTestIssueService(t)

	ctx := context.Background()
	adminID := uuid.New()
	reporterID := uuid.New()
	issueID := uuid.New()

	existing := &entity.Issue{
		ID:          issueID,
		ReporterID:  reporterID,
		IssueType:   entity.IssueDamaged,
		Severity:    entity.SeverityHigh,
		Description: "Button ripped off the coat.",
		Status:      entity.IssueOpen,
	}

	fx.issueRepo.EXPECT().FindByID(ctx, issueID).Return(existing, nil)
	fx.issueRepo.EXPECT().Update(ctx, existing).Return(nil)

	var notified *entity.Notification
	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			notified = notification
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	amount := 2500.0
	issue, err := fx.service.ResolveIssue(ctx, adminActor(adminID), issueID, usecase.ResolveIssueInput{
		ResolutionNotes:    "Coat repaired, customer refunded the service fee.",
		CompensationAmount: &amount,
		CompensationType:   "refund",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.IssueResolved, issue.Status)
	require.NotNil(t, issue.ResolvedByID)
	assert.Equal(t, adminID, *issue.ResolvedByID)
	require.NotNil(t, issue.ResolvedAt)

	require.NotNil(t, notified)
	assert.Equal(t, reporterID, notified.UserID)
	assert.Equal(t, "Your reported issue has been resolved with a refund of 2500.00.", notified.Message)
}

func TestIssueService_ResolveIssue_AlreadyResolved(t *testing.T) {
	fx := createTestIssueService(t)

	ctx := context.Background()
	issueID := uuid.New()

	fx.issueRepo.EXPECT().
		FindByID(ctx, issueID).
		Return(&entity.Issue{ID: issueID, Status: entity.IssueResolved}, nil)

	issue, err := fx.service.ResolveIssue(ctx, adminActor(uuid.New()), issueID, usecase.ResolveIssueInput{
		ResolutionNotes: "Closing again.",
	})
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.ErrorIs(t, err, domainerrors.ErrIssueAlreadyResolved)
}

func TestIssueService_ResolveIssue_NegativeCompensation(t *testing.T) {
	fx := createTestIssueService(t)

	amount := -50.0
	issue, err := fx.service.ResolveIssue(context.Background(), adminActor(uuid.New()), uuid.New(), usecase.ResolveIssueInput{
		ResolutionNotes:    "Refund.",
		CompensationAmount: &amount,
	})
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIssueService_ListIssues_FiltersForwarded(t *testing.T) {
	fx := createTestIssueService(t)

	ctx := context.Background()
	status := entity.IssueOpen
	severity := entity.SeverityCritical

	fx.issueRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.IssueFilter) bool {
			return filter.Status != nil && *filter.Status == status &&
				filter.Severity != nil && *filter.Severity == severity &&
				filter.Limit == 20
		})).
		Return([]*entity.Issue{{ID: uuid.New(), Status: status}}, nil)

	issues, err := fx.service.ListIssues(ctx, usecase.ListIssuesInput{Status: &status, Severity: &severity})
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestIssueService_GetIssue_NotFound(t *testing.T) {
	fx := createTestIssueService(t)

	ctx := context.Background()
	issueID := uuid.New()

	fx.issueRepo.EXPECT().
		FindByID(ctx, issueID).
		Return(nil, repository.ErrIssueNotFound)

	issue, err := fx.service.GetIssue(ctx, issueID)
	require.Error(t, err)
	assert.Nil(t, issue)
	assert.ErrorIs(t, err, domainerrors.ErrIssueNotFound)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	mockRepo "laundrypro/internal/mocks/repository"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewReportService(ReportServiceParams{
		ReportRepo: reportRepo,
		ReviewRepo: reviewRepo,
		Logger:     logger,
	})

	return reportServiceFixtures{
		service:    svc,
		reportRepo: reportRepo,
		reviewRepo: reviewRepo,
	}
}

func TestReportService_Dashboard_Today(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.reportRepo.EXPECT().
		DashboardCounts(ctx, (*uuid.UUID)(nil), mock.MatchedBy(func(since time.Time) bool {
			return since.Hour() == 0 && since.Minute() == 0 && since.Second() == 0
		})).
		Return(&repository.DashboardCounts{
			OrderCount:     12,
			Revenue:        45000,
			StatusCounts:   map[entity.OrderStatus]int64{entity.StatusWashing: 4, entity.StatusReady: 2},
			DeliveredCount: 4,
			OnTimeCount:    3,
			ActiveBranches: 3,
			OpenIssues:     1,
		}, nil)

	output, err := fx.service.Dashboard(ctx, usecase.ReportInput{})
	require.NoError(t, err)

	assert.Equal(t, usecase.WindowToday, output.Window)
	assert.Equal(t, int64(12), output.OrderCount)
	assert.Equal(t, float64(45000), output.Revenue)
	assert.Equal(t, int64(4), output.DeliveredOrders)
	assert.Equal(t, 75, output.OnTimeRate)
	assert.Equal(t, int64(1), output.OpenIssues)
}

func TestReportService_Dashboard_NoDeliveredOrders(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.reportRepo.EXPECT().
		DashboardCounts(ctx, (*uuid.UUID)(nil), mock.AnythingOfType("time.Time")).
		Return(&repository.DashboardCounts{OrderCount: 2}, nil)

	output, err := fx.service.Dashboard(ctx, usecase.ReportInput{Window: usecase.WindowWeek})
	require.NoError(t, err)
	assert.Equal(t, 0, output.OnTimeRate)
}

func TestReportService_Dashboard_UnknownWindow(t *testing.T) {
	fx := createTestReportService(t)

	output, err := fx.service.Dashboard(context.Background(), usecase.ReportInput{Window: "fortnight"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Dashboard_BranchScoped(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	branchID := uuid.New()

	fx.reportRepo.EXPECT().
		DashboardCounts(ctx, &branchID, mock.AnythingOfType("time.Time")).
		Return(&repository.DashboardCounts{OrderCount: 5}, nil)

	output, err := fx.service.Dashboard(ctx, usecase.ReportInput{Window: usecase.WindowMonth, BranchID: &branchID})
	require.NoError(t, err)
	assert.Equal(t, usecase.WindowMonth, output.Window)
	assert.Equal(t, int64(5), output.OrderCount)
}

func TestReportService_Revenue_WeekWindow(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.reportRepo.EXPECT().
		RevenueByDay(ctx, (*uuid.UUID)(nil), mock.MatchedBy(func(since time.Time) bool {
			return time.Since(since) > 6*24*time.Hour && time.Since(since) < 8*24*time.Hour
		}), mock.AnythingOfType("time.Time")).
		Return([]repository.RevenuePoint{
			{Date: time.Now().AddDate(0, 0, -1), OrderCount: 3, Revenue: 9000},
			{Date: time.Now(), OrderCount: 5, Revenue: 15500},
		}, nil)

	output, err := fx.service.Revenue(ctx, usecase.ReportInput{Window: usecase.WindowWeek})
	require.NoError(t, err)
	assert.Equal(t, usecase.WindowWeek, output.Window)
	require.Len(t, output.Points, 2)
	assert.Equal(t, float64(15500), output.Points[1].Revenue)
}

func TestReportService_StaffPerformance_MergesRatings(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	staffA := uuid.New()
	staffB := uuid.New()

	fx.reportRepo.EXPECT().
		StaffPerformance(ctx, (*uuid.UUID)(nil), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]repository.StaffPerformance{
			{StaffID: staffA, Name: "Amaka Obi", OrdersHandled: 14, DeliveredCount: 12, OnTimeCount: 11},
			{StaffID: staffB, Name: "Tunde Bello", OrdersHandled: 9, DeliveredCount: 7, OnTimeCount: 7},
		}, nil)

	fx.reviewRepo.EXPECT().
		AverageRatingsByStaff(ctx, []uuid.UUID{staffA, staffB}).
		Return(map[uuid.UUID]float64{staffA: 4.5}, nil)

	entries, err := fx.service.StaffPerformance(ctx, usecase.ReportInput{Window: usecase.WindowMonth})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 4.5, entries[0].AverageRating)
	assert.Equal(t, float64(0), entries[1].AverageRating)
	assert.Equal(t, int64(14), entries[0].OrdersHandled)
}

func TestReportService_StaffPerformance_RatingLookupFailureIsSoft(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	staffID := uuid.New()

	fx.reportRepo.EXPECT().
		StaffPerformance(ctx, (*uuid.UUID)(nil), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]repository.StaffPerformance{
			{StaffID: staffID, Name: "Amaka Obi", OrdersHandled: 3},
		}, nil)

	fx.reviewRepo.EXPECT().
		AverageRatingsByStaff(ctx, []uuid.UUID{staffID}).
		Return(nil, errors.New("connection reset"))

	entries, err := fx.service.StaffPerformance(ctx, usecase.ReportInput{Window: usecase.WindowYear})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(0), entries[0].AverageRating)
}

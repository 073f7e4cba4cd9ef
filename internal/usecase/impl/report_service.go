package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "laundrypro/internal/delivery/context"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard aggregates order, revenue and issue figures over the window.
func (srv *reportService) Dashboard(ctx context.Context, input usecase.ReportInput) (*usecase.DashboardOutput, error) {
	window, since, err := resolveWindow(input.Window, time.Now())
	if err != nil {
		return nil, err
	}

	counts, err := srv.reportRepo.DashboardCounts(ctx, input.BranchID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to gather dashboard counts")
	}

	return &usecase.DashboardOutput{
		Window:          window,
		OrderCount:      counts.OrderCount,
		Revenue:         counts.Revenue,
		StatusCounts:    counts.StatusCounts,
		DeliveredOrders: counts.DeliveredCount,
		OnTimeRate:      onTimeRate(counts.OnTimeCount, counts.DeliveredCount),
		ActiveBranches:  counts.ActiveBranches,
		OpenIssues:      counts.OpenIssues,
	}, nil
}

// Revenue returns per-day order counts and revenue over the window.
func (srv *reportService) Revenue(ctx context.Context, input usecase.ReportInput) (*usecase.RevenueOutput, error) {
	now := time.Now()
	window, since, err := resolveWindow(input.Window, now)
	if err != nil {
		return nil, err
	}

	points, err := srv.reportRepo.RevenueByDay(ctx, input.BranchID, since, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate revenue")
	}

	return &usecase.RevenueOutput{Window: window, Points: points}, nil
}

// StaffPerformance returns per-staff workload aggregates over the window,
// busiest first, with read-time average ratings merged in.
func (srv *reportService) StaffPerformance(ctx context.Context, input usecase.ReportInput) ([]usecase.StaffPerformanceEntry, error) {
	now := time.Now()
	_, since, err := resolveWindow(input.Window, now)
	if err != nil {
		return nil, err
	}

	rows, err := srv.reportRepo.StaffPerformance(ctx, input.BranchID, since, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate staff performance")
	}

	staffIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		staffIDs = append(staffIDs, row.StaffID)
	}
	ratings, err := srv.reviewRepo.AverageRatingsByStaff(ctx, staffIDs)
	if err != nil {
		// Ratings are decoration on the workload figures.
		srv.log(ctx).Warn("Failed to load staff ratings", slog.Any("error", err))
		ratings = map[uuid.UUID]float64{}
	}

	entries := make([]usecase.StaffPerformanceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, usecase.StaffPerformanceEntry{
			StaffID:        row.StaffID,
			Name:           row.Name,
			BranchID:       row.BranchID,
			OrdersHandled:  row.OrdersHandled,
			DeliveredCount: row.DeliveredCount,
			OnTimeCount:    row.OnTimeCount,
			AverageRating:  ratings[row.StaffID],
		})
	}

	return entries, nil
}

// resolveWindow maps a window name to its start time. Today is truncated to
// midnight; the larger windows are now-minus-offset.
func resolveWindow(window string, now time.Time) (string, time.Time, error) {
	switch window {
	case "", usecase.WindowToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		return usecase.WindowToday, midnight, nil
	case usecase.WindowWeek:
		return window, now.AddDate(0, 0, -7), nil
	case usecase.WindowMonth:
		return window, now.AddDate(0, -1, 0), nil
	case usecase.WindowYear:
		return window, now.AddDate(-1, 0, 0), nil
	}

	return "", time.Time{}, domainerrors.ErrValidationFailed.WrapMessage("unknown report window")
}

// onTimeRate computes round(onTime/delivered*100); zero delivered orders
// yields 0, not an error.
func onTimeRate(onTime, delivered int64) int {
	if delivered == 0 {
		return 0
	}

	return int(math.Round(float64(onTime) / float64(delivered) * 100))
}

package usecase

import (
	"context"

	"laundrypro/internal/domain/entity"
	"laundrypro/internal/domain/repository"

	"github.com/google/uuid"
)

// Report windows accepted by the dashboard and analytics endpoints.
const (
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
	WindowYear  = "year"
)

// --- Input DTOs ---

// ReportInput selects the aggregation window and optional branch scope.
type ReportInput struct {
	Window   string
	BranchID *uuid.UUID
}

// --- Output DTOs ---

// DashboardOutput is the admin dashboard aggregate view.
type DashboardOutput struct {
	Window          string                       `json:"window"`
	OrderCount      int64                        `json:"order_count"`
	Revenue         float64                      `json:"revenue"`
	StatusCounts    map[entity.OrderStatus]int64 `json:"status_counts"`
	DeliveredOrders int64                        `json:"delivered_orders"`
	OnTimeRate      int                          `json:"on_time_rate"`
	ActiveBranches  int64                        `json:"active_branches"`
	OpenIssues      int64                        `json:"open_issues"`
}

// RevenueOutput is the per-day revenue report.
type RevenueOutput struct {
	Window string                    `json:"window"`
	Points []repository.RevenuePoint `json:"points"`
}

// StaffPerformanceEntry is one staff member's aggregate workload together
// with their read-time average rating.
type StaffPerformanceEntry struct {
	StaffID        uuid.UUID  `json:"staff_id"`
	Name           string     `json:"name"`
	BranchID       *uuid.UUID `json:"branch_id,omitempty"`
	OrdersHandled  int64      `json:"orders_handled"`
	DeliveredCount int64      `json:"delivered_count"`
	OnTimeCount    int64      `json:"on_time_count"`
	AverageRating  float64    `json:"average_rating"`
}

// ReportUsecase defines the read-only aggregation operations behind the
// admin dashboards.
type ReportUsecase interface {
	// Dashboard aggregates order, revenue and issue figures over the window.
	// The on-time rate is 0 when no orders were delivered in the window.
	Dashboard(ctx context.Context, input ReportInput) (*DashboardOutput, error)

	// Revenue returns per-day order counts and revenue over the window.
	Revenue(ctx context.Context, input ReportInput) (*RevenueOutput, error)

	// StaffPerformance returns per-staff workload aggregates over the
	// window, busiest first.
	StaffPerformance(ctx context.Context, input ReportInput) ([]StaffPerformanceEntry, error)
}

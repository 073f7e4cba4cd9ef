package repository

import (
	"context"
	"time"

	"laundrypro/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardCounts holds the raw aggregates behind the admin dashboard.
// Derived figures such as the on-time rate are computed in the use case layer.
type DashboardCounts struct {
	OrderCount     int64
	Revenue        float64
	StatusCounts   map[entity.OrderStatus]int64
	DeliveredCount int64
	OnTimeCount    int64
	ActiveBranches int64
	OpenIssues     int64
}

// RevenuePoint is one day of the revenue report.
type RevenuePoint struct {
	Date       time.Time
	OrderCount int64
	Revenue    float64
}

// StaffPerformance summarizes one staff member's handled workload.
type StaffPerformance struct {
	StaffID        uuid.UUID
	Name           string
	BranchID       *uuid.UUID
	OrdersHandled  int64
	DeliveredCount int64
	OnTimeCount    int64
}

// ReportRepository defines read-only aggregate queries for reporting.
type ReportRepository interface {
	// DashboardCounts gathers the aggregates for the admin dashboard over
	// orders created at or after since. The branch filter is optional; nil
	// means platform-wide.
	DashboardCounts(ctx context.Context, branchID *uuid.UUID, since time.Time) (*DashboardCounts, error)

	// RevenueByDay returns per-day order counts and delivered revenue within
	// the half-open interval [from, to).
	RevenueByDay(ctx context.Context, branchID *uuid.UUID, from, to time.Time) ([]RevenuePoint, error)

	// StaffPerformance returns workload aggregates per staff member within
	// the half-open interval [from, to).
	StaffPerformance(ctx context.Context, branchID *uuid.UUID, from, to time.Time) ([]StaffPerformance, error)
}

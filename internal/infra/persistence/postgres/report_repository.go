package postgres

import (
	"context"
	"time"

	"laundrypro/internal/domain/entity"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface with
// aggregate SQL queries. All methods are read-only.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// DashboardCounts gathers the aggregates for the admin dashboard over
// orders created at or after since.
func (repo *reportRepository) DashboardCounts(ctx context.Context, branchID *uuid.UUID, since time.Time) (*repository.DashboardCounts, error) {
	counts := &repository.DashboardCounts{
		StatusCounts: make(map[entity.OrderStatus]int64),
	}

	orders := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("created_at >= ?", since)
		if branchID != nil {
			query = query.Where("branch_id = ?", *branchID)
		}

		return query
	}

	if err := orders().Count(&counts.OrderCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders in window")
	}

	var revenue *float64
	if err := orders().
		Select("SUM(total_amount)").
		Where("status <> ?", string(entity.StatusCancelled)).
		Scan(&revenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue in window")
	}
	if revenue != nil {
		counts.Revenue = *revenue
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := orders().
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}
	for _, row := range statusRows {
		counts.StatusCounts[entity.OrderStatus(row.Status)] = row.Count
	}

	delivered := orders().Where("status = ?", string(entity.StatusDelivered))
	if err := delivered.Count(&counts.DeliveredCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count delivered orders")
	}
	if err := orders().
		Where("status = ? AND completed_at IS NOT NULL AND completed_at <= promised_by", string(entity.StatusDelivered)).
		Count(&counts.OnTimeCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count on-time orders")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.BranchModel{}).
		Where("is_active = ?", true).
		Count(&counts.ActiveBranches).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active branches")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.IssueModel{}).
		Where("status IN ?", []string{string(entity.IssueOpen), string(entity.IssueInvestigating)}).
		Count(&counts.OpenIssues).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count open issues")
	}

	return counts, nil
}

// RevenueByDay returns per-day order counts and delivered revenue within
// the half-open interval [from, to).
func (repo *reportRepository) RevenueByDay(ctx context.Context, branchID *uuid.UUID, from, to time.Time) ([]repository.RevenuePoint, error) {
	var rows []struct {
		Day        time.Time
		OrderCount int64
		Revenue    *float64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("DATE_TRUNC('day', created_at) AS day, COUNT(*) AS order_count, SUM(total_amount) AS revenue").
		Where("created_at >= ? AND created_at < ? AND status <> ?", from, to, string(entity.StatusCancelled)).
		Group("day").
		Order("day ASC")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate revenue by day")
	}

	points := make([]repository.RevenuePoint, 0, len(rows))
	for _, row := range rows {
		point := repository.RevenuePoint{
			Date:       row.Day,
			OrderCount: row.OrderCount,
		}
		if row.Revenue != nil {
			point.Revenue = *row.Revenue
		}
		points = append(points, point)
	}

	return points, nil
}

// StaffPerformance returns workload aggregates per staff member within the
// half-open interval [from, to).
func (repo *reportRepository) StaffPerformance(ctx context.Context, branchID *uuid.UUID, from, to time.Time) ([]repository.StaffPerformance, error) {
	var rows []struct {
		StaffID        uuid.UUID
		FirstName      string
		LastName       string
		BranchID       *uuid.UUID
		OrdersHandled  int64
		DeliveredCount int64
		OnTimeCount    int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(`orders.assigned_staff_id AS staff_id,
			users.first_name, users.last_name,
			staff_profiles.branch_id,
			COUNT(*) AS orders_handled,
			COUNT(*) FILTER (WHERE orders.status = 'DELIVERED') AS delivered_count,
			COUNT(*) FILTER (WHERE orders.status = 'DELIVERED' AND orders.completed_at <= orders.promised_by) AS on_time_count`).
		Joins("JOIN users ON users.id = orders.assigned_staff_id").
		Joins("LEFT JOIN staff_profiles ON staff_profiles.user_id = users.id").
		Where("orders.assigned_staff_id IS NOT NULL").
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Group("orders.assigned_staff_id, users.first_name, users.last_name, staff_profiles.branch_id").
		Order("orders_handled DESC")
	if branchID != nil {
		query = query.Where("orders.branch_id = ?", *branchID)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate staff performance")
	}

	performance := make([]repository.StaffPerformance, 0, len(rows))
	for _, row := range rows {
		name := row.FirstName
		if row.LastName != "" {
			if name != "" {
				name += " "
			}
			name += row.LastName
		}
		performance = append(performance, repository.StaffPerformance{
			StaffID:        row.StaffID,
			Name:           name,
			BranchID:       row.BranchID,
			OrdersHandled:  row.OrdersHandled,
			DeliveredCount: row.DeliveredCount,
			OnTimeCount:    row.OnTimeCount,
		})
	}

	return performance, nil
}

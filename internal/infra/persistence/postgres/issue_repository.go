package postgres

import (
	"context"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// issueRepository implements the repository.IssueRepository interface using GORM.
type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository is the constructor for issueRepository.
func NewIssueRepository(db *gorm.DB) repository.IssueRepository {
	return &issueRepository{db: db}
}

// Create persists a new issue report.
func (repo *issueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	issueM := fromIssueDomain(issue)

	if err := repo.db.WithContext(ctx).Create(issueM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order or reporter reference")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create issue")
	}

	issue.ID = issueM.ID
	issue.CreatedAt = issueM.CreatedAt
	issue.UpdatedAt = issueM.UpdatedAt

	return nil
}

// FindByID retrieves an issue with its order and reporter preloaded.
func (repo *issueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error) {
	var issueM model.IssueModel

	if err := repo.db.WithContext(ctx).
		Preload("Order").
		Preload("Reporter").
		Preload("ResolvedBy").
		Where("id = ?", id).
		First(&issueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIssueNotFound
		}

		return nil, errors.Wrap(err, "failed to find issue by id")
	}

	return toIssueDomain(&issueM), nil
}

// List retrieves issues matching the filter, most severe and newest first.
func (repo *issueRepository) List(ctx context.Context, filter repository.IssueFilter) ([]*entity.Issue, error) {
	var issueModels []*model.IssueModel

	query := repo.db.WithContext(ctx).
		Preload("Order").
		Preload("Reporter").
		Order(`CASE severity
			WHEN 'critical' THEN 0
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3 END, created_at DESC`)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", string(*filter.Severity))
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.BranchID != nil {
		query = query.Joins("JOIN orders ON orders.id = issues.order_id").
			Where("orders.branch_id = ?", *filter.BranchID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&issueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list issues")
	}

	issues := make([]*entity.Issue, 0, len(issueModels))
	for _, issueM := range issueModels {
		issues = append(issues, toIssueDomain(issueM))
	}

	return issues, nil
}

// Update persists changed fields of an existing issue.
func (repo *issueRepository) Update(ctx context.Context, issue *entity.Issue) error {
	issueM := fromIssueDomain(issue)

	result := repo.db.WithContext(ctx).
		Model(&model.IssueModel{}).
		Where("id = ?", issue.ID).
		Updates(issueM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update issue")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIssueNotFound
	}

	return nil
}

// CountOpen returns the number of issues not yet resolved or closed.
func (repo *issueRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.IssueModel{}).
		Where("status IN ?", []string{string(entity.IssueOpen), string(entity.IssueInvestigating)}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count open issues")
	}

	return count, nil
}

// --- Mapper Functions ---

// toIssueDomain converts a GORM IssueModel to a domain Issue entity.
func toIssueDomain(data *model.IssueModel) *entity.Issue {
	if data == nil {
		return nil
	}

	return &entity.Issue{
		ID:                 data.ID,
		ReporterID:         data.ReporterID,
		OrderID:            data.OrderID,
		IssueType:          entity.IssueType(data.IssueType),
		Severity:           entity.IssueSeverity(data.Severity),
		Description:        data.Description,
		Status:             entity.IssueStatus(data.Status),
		ResolvedByID:       data.ResolvedByID,
		ResolutionNotes:    data.ResolutionNotes,
		CompensationAmount: data.CompensationAmount,
		CompensationType:   data.CompensationType,
		ResolvedAt:         data.ResolvedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Order:              toOrderDomain(data.Order),
		Reporter:           toUserDomain(data.Reporter),
		ResolvedBy:         toUserDomain(data.ResolvedBy),
	}
}

// fromIssueDomain converts a domain Issue entity to a GORM IssueModel.
func fromIssueDomain(data *entity.Issue) *model.IssueModel {
	if data == nil {
		return nil
	}

	return &model.IssueModel{
		ID:                 data.ID,
		ReporterID:         data.ReporterID,
		OrderID:            data.OrderID,
		IssueType:          string(data.IssueType),
		Severity:           string(data.Severity),
		Description:        data.Description,
		Status:             string(data.Status),
		ResolvedByID:       data.ResolvedByID,
		ResolutionNotes:    data.ResolutionNotes,
		CompensationAmount: data.CompensationAmount,
		CompensationType:   data.CompensationType,
		ResolvedAt:         data.ResolvedAt,
	}
}

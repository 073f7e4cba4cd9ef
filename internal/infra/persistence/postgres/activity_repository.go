package postgres

import (
	"context"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a single activity log entry.
func (repo *activityRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM := fromActivityDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// List retrieves activity entries matching the filter, newest first.
func (repo *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	var logModels []*model.ActivityLogModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toActivityDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toActivityDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:         data.ID,
		UserID:     data.UserID,
		OrderID:    data.OrderID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		OldValues:  string(data.OldValues),
		NewValues:  string(data.NewValues),
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		CreatedAt:  data.CreatedAt,
	}
}

func fromActivityDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:         data.ID,
		UserID:     data.UserID,
		OrderID:    data.OrderID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		OldValues:  datatypes.JSON(data.OldValues),
		NewValues:  datatypes.JSON(data.NewValues),
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
	}
}

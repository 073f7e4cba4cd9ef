package postgres

import (
	"context"
	"encoding/json"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// FindServiceByID retrieves a single laundry service by its unique ID.
func (repo *catalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// ListServices retrieves services matching the filter, ordered by name.
func (repo *catalogRepository) ListServices(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.BranchID != nil {
		// Branch-scoped services plus platform-wide ones.
		query = query.Where("branch_id = ? OR branch_id IS NULL", *filter.BranchID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// CreateService persists a new laundry service.
func (repo *catalogRepository) CreateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBranchNotFound.WrapMessage("invalid branch reference")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// UpdateService modifies an existing laundry service.
func (repo *catalogRepository) UpdateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(serviceM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// DeleteService removes a laundry service permanently.
func (repo *catalogRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// FindBranchByID retrieves a single branch by its unique ID.
func (repo *catalogRepository) FindBranchByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var branchM model.BranchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&branchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch by id")
	}

	return toBranchDomain(&branchM), nil
}

// ListBranches retrieves branches, active ones first.
func (repo *catalogRepository) ListBranches(ctx context.Context, activeOnly bool) ([]*entity.Branch, error) {
	var branchModels []*model.BranchModel

	query := repo.db.WithContext(ctx).Order("is_active DESC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&branchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	branches := make([]*entity.Branch, 0, len(branchModels))
	for _, branchM := range branchModels {
		branches = append(branches, toBranchDomain(branchM))
	}

	return branches, nil
}

// ListBranchesWithStats retrieves branches together with their order and
// staff counts for the admin overview.
func (repo *catalogRepository) ListBranchesWithStats(ctx context.Context) ([]*entity.Branch, error) {
	var branchModels []*model.BranchModel

	err := repo.db.WithContext(ctx).
		Model(&model.BranchModel{}).
		Select(`branches.*,
			(SELECT COUNT(*) FROM orders WHERE orders.branch_id = branches.id) AS order_count,
			(SELECT COUNT(*) FROM staff_profiles WHERE staff_profiles.branch_id = branches.id AND staff_profiles.is_active) AS staff_count`).
		Order("branches.name ASC").
		Find(&branchModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list branches with stats")
	}

	branches := make([]*entity.Branch, 0, len(branchModels))
	for _, branchM := range branchModels {
		branch := toBranchDomain(branchM)
		branch.OrderCount = int(branchM.OrderCount)
		branch.StaffCount = int(branchM.StaffCount)
		branches = append(branches, branch)
	}

	return branches, nil
}

// CreateBranch persists a new branch.
func (repo *catalogRepository) CreateBranch(ctx context.Context, branch *entity.Branch) error {
	branchM := fromBranchDomain(branch)

	if err := repo.db.WithContext(ctx).Create(branchM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create branch")
	}

	branch.ID = branchM.ID
	branch.CreatedAt = branchM.CreatedAt
	branch.UpdatedAt = branchM.UpdatedAt

	return nil
}

// UpdateBranch modifies an existing branch.
func (repo *catalogRepository) UpdateBranch(ctx context.Context, branch *entity.Branch) error {
	branchM := fromBranchDomain(branch)

	result := repo.db.WithContext(ctx).
		Model(&model.BranchModel{}).
		Where("id = ?", branch.ID).
		Updates(branchM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update branch")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBranchNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:               data.ID,
		Name:             data.Name,
		Category:         entity.ServiceCategory(data.Category),
		ServiceType:      data.ServiceType,
		BasePrice:        data.BasePrice,
		PricingUnit:      data.PricingUnit,
		EstimatedHours:   data.EstimatedHours,
		IsExpress:        data.IsExpress,
		BranchID:         data.BranchID,
		Description:      data.Description,
		CareInstructions: data.CareInstructions,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		Branch:           toBranchDomain(data.Branch),
	}
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:               data.ID,
		Name:             data.Name,
		Category:         string(data.Category),
		ServiceType:      data.ServiceType,
		BasePrice:        data.BasePrice,
		PricingUnit:      data.PricingUnit,
		EstimatedHours:   data.EstimatedHours,
		IsExpress:        data.IsExpress,
		BranchID:         data.BranchID,
		Description:      data.Description,
		CareInstructions: data.CareInstructions,
		IsActive:         data.IsActive,
	}
}

// toBranchDomain converts a GORM BranchModel to a domain Branch entity.
func toBranchDomain(data *model.BranchModel) *entity.Branch {
	if data == nil {
		return nil
	}

	branch := &entity.Branch{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		LGA:       data.LGA,
		Phone:     data.Phone,
		Email:     data.Email,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		branch.Coordinates = &entity.Coordinates{Lat: *data.Latitude, Lng: *data.Longitude}
	}
	if len(data.OpeningHours) > 0 {
		_ = json.Unmarshal(data.OpeningHours, &branch.OpeningHours)
	}

	return branch
}

// fromBranchDomain converts a domain Branch entity to a GORM BranchModel.
func fromBranchDomain(data *entity.Branch) *model.BranchModel {
	if data == nil {
		return nil
	}

	branchM := &model.BranchModel{
		ID:       data.ID,
		Name:     data.Name,
		Address:  data.Address,
		City:     data.City,
		State:    data.State,
		LGA:      data.LGA,
		Phone:    data.Phone,
		Email:    data.Email,
		IsActive: data.IsActive,
	}
	if data.Coordinates != nil {
		lat, lng := data.Coordinates.Lat, data.Coordinates.Lng
		branchM.Latitude = &lat
		branchM.Longitude = &lng
	}
	if len(data.OpeningHours) > 0 {
		hours, _ := json.Marshal(data.OpeningHours)
		branchM.OpeningHours = hours
	}

	return branchM
}

package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "laundrypro/internal/delivery/context"
	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNearbyLimit = 5

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListServices returns catalog services, active only for public callers.
func (srv *catalogService) ListServices(ctx context.Context, input usecase.ListServicesInput) ([]*entity.Service, error) {
	services, err := srv.catalogRepo.ListServices(ctx, repository.ServiceFilter{
		Category:   input.Category,
		BranchID:   input.BranchID,
		ActiveOnly: !input.IncludeInactive,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// GetService fetches one catalog service.
func (srv *catalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := srv.catalogRepo.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound.WrapMessage("service does not exist")
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return svc, nil
}

// CreateService adds a service to the catalog.
func (srv *catalogService) CreateService(ctx context.Context, input usecase.CreateServiceInput) (*entity.Service, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("service name is required")
	}
	if input.BasePrice <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("base price must be positive")
	}
	if input.EstimatedHours <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("estimated hours must be positive")
	}

	svc := &entity.Service{
		Name:             input.Name,
		Category:         input.Category,
		ServiceType:      input.ServiceType,
		BasePrice:        input.BasePrice,
		PricingUnit:      input.PricingUnit,
		EstimatedHours:   input.EstimatedHours,
		IsExpress:        input.IsExpress,
		BranchID:         input.BranchID,
		Description:      input.Description,
		CareInstructions: input.CareInstructions,
		IsActive:         true,
	}

	if err := srv.catalogRepo.CreateService(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service created", slog.Any("serviceID", svc.ID), slog.String("name", svc.Name))

	return svc, nil
}

// UpdateService applies partial changes to a service.
func (srv *catalogService) UpdateService(ctx context.Context, id uuid.UUID, input usecase.UpdateServiceInput) (*entity.Service, error) {
	svc, err := srv.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Category != nil {
		svc.Category = *input.Category
	}
	if input.BasePrice != nil {
		if *input.BasePrice <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("base price must be positive")
		}
		svc.BasePrice = *input.BasePrice
	}
	if input.PricingUnit != nil {
		svc.PricingUnit = *input.PricingUnit
	}
	if input.EstimatedHours != nil {
		if *input.EstimatedHours <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("estimated hours must be positive")
		}
		svc.EstimatedHours = *input.EstimatedHours
	}
	if input.IsExpress != nil {
		svc.IsExpress = *input.IsExpress
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.CareInstructions != nil {
		svc.CareInstructions = *input.CareInstructions
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}

	if err := srv.catalogRepo.UpdateService(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return svc, nil
}

// DeleteService removes a service, deactivating instead when orders still
// reference it so order history stays intact.
func (srv *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := srv.GetService(ctx, id)
	if err != nil {
		return err
	}

	serviceID := svc.ID
	referencing, err := srv.orderRepo.Count(ctx, repository.OrderFilter{ServiceID: &serviceID})
	if err != nil {
		return errors.Wrap(err, "failed to count orders referencing service")
	}

	if referencing > 0 {
		svc.IsActive = false
		if err := srv.catalogRepo.UpdateService(ctx, svc); err != nil {
			return errors.Wrap(err, "failed to deactivate service")
		}
		srv.log(ctx).Info("Service deactivated instead of deleted",
			slog.Any("serviceID", svc.ID), slog.Int64("referencingOrders", referencing))

		return nil
	}

	if err := srv.catalogRepo.DeleteService(ctx, svc.ID); err != nil {
		return errors.Wrap(err, "failed to delete service")
	}

	srv.log(ctx).Info("Service deleted", slog.Any("serviceID", svc.ID))

	return nil
}

// ListBranches returns active branches for customer-facing listings.
func (srv *catalogService) ListBranches(ctx context.Context) ([]*entity.Branch, error) {
	branches, err := srv.catalogRepo.ListBranches(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	return branches, nil
}

// ListBranchesWithStats returns every branch with order and staff counts.
func (srv *catalogService) ListBranchesWithStats(ctx context.Context) ([]*entity.Branch, error) {
	branches, err := srv.catalogRepo.ListBranchesWithStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list branches with stats")
	}

	return branches, nil
}

// GetBranch fetches one branch.
func (srv *catalogService) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, err := srv.catalogRepo.FindBranchByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return nil, domainerrors.ErrBranchNotFound.WrapMessage("branch does not exist")
		}

		return nil, errors.Wrap(err, "failed to find branch by id")
	}

	return branch, nil
}

// NearbyBranches returns active branches ordered by distance from the given
// point, closest first. Branches without coordinates are skipped.
func (srv *catalogService) NearbyBranches(ctx context.Context, lat, lng float64, limit int) ([]usecase.NearbyBranch, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}
	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	branches, err := srv.catalogRepo.ListBranches(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	origin := orb.Point{lng, lat}
	nearby := make([]usecase.NearbyBranch, 0, len(branches))
	for _, branch := range branches {
		if branch.Coordinates == nil {
			continue
		}
		nearby = append(nearby, usecase.NearbyBranch{
			Branch:         branch,
			DistanceMeters: geo.Distance(origin, orb.Point{branch.Coordinates.Lng, branch.Coordinates.Lat}),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// CreateBranch adds a branch location.
func (srv *catalogService) CreateBranch(ctx context.Context, input usecase.CreateBranchInput) (*entity.Branch, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("branch name is required")
	}
	if input.Address == "" || input.City == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("branch address and city are required")
	}

	branch := &entity.Branch{
		Name:         input.Name,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		LGA:          input.LGA,
		Phone:        input.Phone,
		Email:        input.Email,
		Coordinates:  input.Coordinates,
		OpeningHours: input.OpeningHours,
		IsActive:     true,
	}

	if err := srv.catalogRepo.CreateBranch(ctx, branch); err != nil {
		return nil, errors.Wrap(err, "failed to create branch")
	}

	srv.log(ctx).Info("Branch created", slog.Any("branchID", branch.ID), slog.String("name", branch.Name))

	return branch, nil
}

// UpdateBranch applies partial changes to a branch.
func (srv *catalogService) UpdateBranch(ctx context.Context, id uuid.UUID, input usecase.UpdateBranchInput) (*entity.Branch, error) {
	branch, err := srv.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = *input.Address
	}
	if input.City != nil {
		branch.City = *input.City
	}
	if input.State != nil {
		branch.State = *input.State
	}
	if input.LGA != nil {
		branch.LGA = *input.LGA
	}
	if input.Phone != nil {
		branch.Phone = *input.Phone
	}
	if input.Email != nil {
		branch.Email = *input.Email
	}
	if input.Coordinates != nil {
		branch.Coordinates = input.Coordinates
	}
	if input.OpeningHours != nil {
		branch.OpeningHours = input.OpeningHours
	}
	if input.IsActive != nil {
		branch.IsActive = *input.IsActive
	}

	if err := srv.catalogRepo.UpdateBranch(ctx, branch); err != nil {
		return nil, errors.Wrap(err, "failed to update branch")
	}

	return branch, nil
}

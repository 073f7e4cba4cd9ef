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
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		OrderRepo:   orderRepo,
		Logger:      logger,
	})

	return catalogServiceFixtures{
		service:     svc,
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
	}
}

func TestCatalogService_ListServices_ActiveOnlyByDefault(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		ListServices(ctx, mock.MatchedBy(func(filter repository.ServiceFilter) bool {
			return filter.ActiveOnly
		})).
		Return([]*entity.Service{{ID: uuid.New(), Name: "Wash & Fold", IsActive: true}}, nil)

	services, err := fx.service.ListServices(ctx, usecase.ListServicesInput{})
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestCatalogService_CreateService_Validation(t *testing.T) {
	fx := createTestCatalogService(t)

	svc, err := fx.service.CreateService(context.Background(), usecase.CreateServiceInput{
		Name:           "Dry Cleaning",
		BasePrice:      0,
		EstimatedHours: 24,
	})
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateService_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		CreateService(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(ctx context.Context, service *entity.Service) {
			service.ID = uuid.New()
		}).
		Return(nil)

	svc, err := fx.service.CreateService(ctx, usecase.CreateServiceInput{
		Name:           "Dry Cleaning",
		Category:       entity.CategoryPremium,
		BasePrice:      2000,
		PricingUnit:    "per_item",
		EstimatedHours: 48,
	})
	require.NoError(t, err)
	assert.True(t, svc.IsActive)
	assert.Equal(t, float64(2000), svc.BasePrice)
}

func TestCatalogService_DeleteService_DeactivatesWhenReferenced(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	svc := &entity.Service{ID: serviceID, Name: "Ironing", IsActive: true}

	fx.catalogRepo.EXPECT().FindServiceByID(ctx, serviceID).Return(svc, nil)
	fx.orderRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.ServiceID != nil && *filter.ServiceID == serviceID
		})).
		Return(3, nil)
	fx.catalogRepo.EXPECT().UpdateService(ctx, svc).Return(nil)

	err := fx.service.DeleteService(ctx, serviceID)
	require.NoError(t, err)
	assert.False(t, svc.IsActive)
}

func TestCatalogService_DeleteService_HardDeleteWhenUnreferenced(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{ID: serviceID, Name: "Ironing"}, nil)
	fx.orderRepo.EXPECT().
		Count(ctx, mock.AnythingOfType("repository.OrderFilter")).
		Return(0, nil)
	fx.catalogRepo.EXPECT().DeleteService(ctx, serviceID).Return(nil)

	err := fx.service.DeleteService(ctx, serviceID)
	require.NoError(t, err)
}

func TestCatalogService_UpdateService_RejectsNonPositivePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{ID: serviceID, BasePrice: 1500}, nil)

	badPrice := -10.0
	svc, err := fx.service.UpdateService(ctx, serviceID, usecase.UpdateServiceInput{BasePrice: &badPrice})
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_NearbyBranches_SortedByDistance(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// Origin is central Lagos; Ikeja is closer than Epe, and the branch
	// without coordinates must be skipped.
	ikeja := &entity.Branch{
		ID:          uuid.New(),
		Name:        "Ikeja",
		IsActive:    true,
		Coordinates: &entity.Coordinates{Lat: 6.6018, Lng: 3.3515},
	}
	epe := &entity.Branch{
		ID:          uuid.New(),
		Name:        "Epe",
		IsActive:    true,
		Coordinates: &entity.Coordinates{Lat: 6.5841, Lng: 3.9844},
	}
	unplaced := &entity.Branch{ID: uuid.New(), Name: "Unplaced", IsActive: true}

	fx.catalogRepo.EXPECT().
		ListBranches(ctx, true).
		Return([]*entity.Branch{epe, unplaced, ikeja}, nil)

	nearby, err := fx.service.NearbyBranches(ctx, 6.5244, 3.3792, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	assert.Equal(t, "Ikeja", nearby[0].Branch.Name)
	assert.Equal(t, "Epe", nearby[1].Branch.Name)
	assert.Less(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
	assert.Greater(t, nearby[0].DistanceMeters, float64(0))
}

func TestCatalogService_NearbyBranches_LimitApplied(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	branches := make([]*entity.Branch, 0, 8)
	for i := 0; i < 8; i++ {
		branches = append(branches, &entity.Branch{
			ID:          uuid.New(),
			IsActive:    true,
			Coordinates: &entity.Coordinates{Lat: 6.5 + float64(i)*0.01, Lng: 3.37},
		})
	}

	fx.catalogRepo.EXPECT().
		ListBranches(ctx, true).
		Return(branches, nil)

	nearby, err := fx.service.NearbyBranches(ctx, 6.5244, 3.3792, 0)
	require.NoError(t, err)
	assert.Len(t, nearby, defaultNearbyLimit)
}

func TestCatalogService_NearbyBranches_RejectsBadCoordinates(t *testing.T) {
	fx := createTestCatalogService(t)

	nearby, err := fx.service.NearbyBranches(context.Background(), 91.0, 3.3792, 5)
	require.Error(t, err)
	assert.Nil(t, nearby)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateBranch_RequiresAddress(t *testing.T) {
	fx := createTestCatalogService(t)

	branch, err := fx.service.CreateBranch(context.Background(), usecase.CreateBranchInput{
		Name: "Yaba",
	})
	require.Error(t, err)
	assert.Nil(t, branch)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetBranch_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	branchID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindBranchByID(ctx, branchID).
		Return(nil, repository.ErrBranchNotFound)

	branch, err := fx.service.GetBranch(ctx, branchID)
	require.Error(t, err)
	assert.Nil(t, branch)
	assert.ErrorIs(t, err, domainerrors.ErrBranchNotFound)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundrypro/config"
	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	mockRepo "laundrypro/internal/mocks/repository"
	mockSvc "laundrypro/internal/mocks/service"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service          usecase.OrderUsecase
	txManager        *mockRepo.MockTransactionManager
	orderRepo        *mockRepo.MockOrderRepository
	userRepo         *mockRepo.MockUserRepository
	catalogRepo      *mockRepo.MockCatalogRepository
	reviewRepo       *mockRepo.MockReviewRepository
	qrService        *mockSvc.MockQRCodeService
	notificationRepo *mockRepo.MockNotificationRepository
	activityRepo     *mockRepo.MockActivityRepository
	publisher        *mockSvc.MockEventPublisher
}

// createTestEffects builds a sideEffects with a synchronous dispatcher so
// tests observe notifications and activity entries deterministically.
func createTestEffects(notificationRepo repository.NotificationRepository, activityRepo repository.ActivityRepository, publisher *mockSvc.MockEventPublisher, logger *slog.Logger) *sideEffects {
	effects := NewSideEffects(SideEffectsParams{
		NotificationRepo: notificationRepo,
		ActivityRepo:     activityRepo,
		Publisher:        publisher,
		Logger:           logger,
	})
	effects.dispatch = func(fn func()) { fn() }

	return effects
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		UserRepo:    userRepo,
		CatalogRepo: catalogRepo,
		ReviewRepo:  reviewRepo,
		QRService:   qrService,
		Effects:     createTestEffects(notificationRepo, activityRepo, publisher, logger),
		Config:      &config.Config{},
		Logger:      logger,
	})

	return orderServiceFixtures{
		service:          service,
		txManager:        txManager,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		catalogRepo:      catalogRepo,
		reviewRepo:       reviewRepo,
		qrService:        qrService,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		publisher:        publisher,
	}
}

func customerActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Role: entity.RoleCustomer}
}

func staffActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Role: entity.RoleStaff}
}

func adminActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Role: entity.RoleAdmin}
}

func (fx orderServiceFixtures) expectCreateOrderTx(t *testing.T, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCatalogRepository().Return(fx.catalogRepo)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})
}

func TestOrderService_CreateOrder_ExpressDelivery(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	serviceID := uuid.New()
	branchID := uuid.New()
	pickupAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	input := usecase.CreateOrderInput{
		ServiceID:          serviceID,
		BranchID:           branchID,
		PickupType:         entity.PickupTypeDelivery,
		PickupAddress:      entity.AddressSnapshot{Street: "12 Rue du Lavoir", City: "Douala"},
		PickupScheduledFor: pickupAt,
		Items: []usecase.OrderItemInput{
			{ItemName: "Shirt", Quantity: 2, UnitPrice: 500},
			{ItemName: "Suit", Quantity: 1, UnitPrice: 2000},
		},
		IsExpress: true,
	}

	fx.expectCreateOrderTx(t, ctx)

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{ID: serviceID, IsActive: true, EstimatedHours: 48}, nil)

	fx.catalogRepo.EXPECT().
		FindBranchByID(ctx, branchID).
		Return(&entity.Branch{ID: branchID, IsActive: true}, nil)

	fx.orderRepo.EXPECT().
		NextOrderNumber(ctx, time.Now().Year()).
		Return(42, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)
	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, customerActor(customerID), input, usecase.Provenance{})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.FormatOrderNumber("LRN", time.Now().Year(), 42), order.OrderNumber)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, float64(3000), order.Subtotal)
	assert.Equal(t, float64(1500), order.DeliveryFee)
	assert.Equal(t, float64(1500), order.ExpressFee)
	assert.Equal(t, float64(0), order.Discount)
	assert.Equal(t, float64(6000), order.TotalAmount)
	assert.Equal(t, 10, order.PriorityScore)
	assert.Equal(t, pickupAt.Add(48*time.Hour), order.PromisedBy)
	require.Len(t, order.Items, 2)
	assert.Equal(t, float64(1000), order.Items[0].TotalPrice)
	assert.Equal(t, float64(2000), order.Items[1].TotalPrice)
}

func TestOrderService_CreateOrder_DropoffStandard(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	branchID := uuid.New()

	input := usecase.CreateOrderInput{
		ServiceID:          serviceID,
		BranchID:           branchID,
		PickupType:         entity.PickupTypeDropoff,
		PickupScheduledFor: time.Now().Add(2 * time.Hour),
		Items: []usecase.OrderItemInput{
			{ItemName: "Dress", Quantity: 1, UnitPrice: 1200},
		},
	}

	fx.expectCreateOrderTx(t, ctx)

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{ID: serviceID, IsActive: true, EstimatedHours: 24}, nil)
	fx.catalogRepo.EXPECT().
		FindBranchByID(ctx, branchID).
		Return(&entity.Branch{ID: branchID, IsActive: true}, nil)
	fx.orderRepo.EXPECT().
		NextOrderNumber(ctx, time.Now().Year()).
		Return(7, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)
	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, customerActor(uuid.New()), input, usecase.Provenance{})
	require.NoError(t, err)

	assert.Equal(t, float64(1200), order.Subtotal)
	assert.Equal(t, float64(500), order.DeliveryFee)
	assert.Equal(t, float64(0), order.ExpressFee)
	assert.Equal(t, float64(1700), order.TotalAmount)
	assert.Equal(t, 5, order.PriorityScore)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	input := usecase.CreateOrderInput{
		ServiceID:          uuid.New(),
		BranchID:           uuid.New(),
		PickupType:         entity.PickupTypePickup,
		PickupScheduledFor: time.Now().Add(time.Hour),
	}

	order, err := fx.service.CreateOrder(context.Background(), customerActor(uuid.New()), input, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_CreateOrder_InactiveService(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	input := usecase.CreateOrderInput{
		ServiceID:          serviceID,
		BranchID:           uuid.New(),
		PickupType:         entity.PickupTypePickup,
		PickupScheduledFor: time.Now().Add(time.Hour),
		Items: []usecase.OrderItemInput{
			{ItemName: "Shirt", Quantity: 1, UnitPrice: 500},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCatalogRepository().Return(fx.catalogRepo)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)

			return fn(factory)
		})

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{ID: serviceID, IsActive: false}, nil)

	order, err := fx.service.CreateOrder(ctx, customerActor(uuid.New()), input, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestOrderService_UpdateStatus_OneStepForward(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staffID := uuid.New()
	branchID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "LRN-2026-000042",
		CustomerID:  uuid.New(),
		BranchID:    branchID,
		Status:      entity.StatusWashing,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, staffID).
		Return(&entity.User{
			ID:           staffID,
			Role:         entity.RoleStaff,
			StaffProfile: &entity.StaffProfile{UserID: staffID, BranchID: branchID},
		}, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	var notified *entity.Notification
	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			notified = notification
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)
	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, staffActor(staffID), orderID, usecase.UpdateStatusInput{NewStatus: entity.StatusIroning}, usecase.Provenance{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusIroning, updated.Status)
	require.NotNil(t, notified)
	assert.Equal(t, "Your order LRN-2026-000042 is now ironing.", notified.Message)
}

func TestOrderService_UpdateStatus_RejectsSkippingSteps(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staffID := uuid.New()
	branchID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:       orderID,
		BranchID: branchID,
		Status:   entity.StatusWashing,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, staffID).
		Return(&entity.User{
			ID:           staffID,
			Role:         entity.RoleStaff,
			StaffProfile: &entity.StaffProfile{UserID: staffID, BranchID: branchID},
		}, nil)

	updated, err := fx.service.UpdateStatus(ctx, staffActor(staffID), orderID, usecase.UpdateStatusInput{NewStatus: entity.StatusReady}, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateStatus_RejectsLeavingTerminalState(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:     orderID,
		Status: entity.StatusDelivered,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	updated, err := fx.service.UpdateStatus(ctx, adminActor(adminID), orderID, usecase.UpdateStatusInput{NewStatus: entity.StatusWashing}, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateStatus_AdminOverrideJump(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "LRN-2026-000011",
		Status:      entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)
	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, adminActor(adminID), orderID, usecase.UpdateStatusInput{NewStatus: entity.StatusReady}, usecase.Provenance{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, updated.Status)
}

func TestOrderService_UpdateStatus_DeliveredStampsCompletion(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "LRN-2026-000099",
		Status:      entity.StatusReady,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)
	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, adminActor(adminID), orderID, usecase.UpdateStatusInput{NewStatus: entity.StatusDelivered}, usecase.Provenance{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, updated.Status)
	require.NotNil(t, updated.DeliveryCompletedAt)
	require.NotNil(t, updated.CompletedAt)
	assert.WithinDuration(t, time.Now(), *updated.CompletedAt, time.Minute)
}

func TestOrderService_CancelOrder_Pending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "LRN-2026-000005",
		CustomerID:  customerID,
		Status:      entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	fx.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)
	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	cancelled, err := fx.service.CancelOrder(ctx, customerActor(customerID), orderID, usecase.Provenance{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_AlreadyInProgress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:         orderID,
		CustomerID: customerID,
		Status:     entity.StatusWashing,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	cancelled, err := fx.service.CancelOrder(ctx, customerActor(customerID), orderID, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_CancelOrder_OtherCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	cancelled, err := fx.service.CancelOrder(ctx, customerActor(uuid.New()), orderID, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}

func TestOrderService_GetOrder_CustomerCannotReadOthers(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.StatusWashing,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, customerActor(uuid.New()), orderID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}

func TestOrderService_GetOrder_StaffOtherBranchDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staffID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:       orderID,
		BranchID: uuid.New(),
		Status:   entity.StatusReceived,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, staffID).
		Return(&entity.User{
			ID:           staffID,
			Role:         entity.RoleStaff,
			StaffProfile: &entity.StaffProfile{UserID: staffID, BranchID: uuid.New()},
		}, nil)

	got, err := fx.service.GetOrder(ctx, staffActor(staffID), orderID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}

func TestOrderService_ListOrders_CustomerScope(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.CustomerID != nil && *filter.CustomerID == customerID && filter.Limit == 20
		})).
		Return([]*entity.Order{{ID: uuid.New(), CustomerID: customerID}}, nil)
	fx.orderRepo.EXPECT().
		Count(ctx, mock.AnythingOfType("repository.OrderFilter")).
		Return(1, nil)

	output, err := fx.service.ListOrders(ctx, customerActor(customerID), usecase.ListOrdersInput{})
	require.NoError(t, err)
	assert.Len(t, output.Orders, 1)
	assert.Equal(t, int64(1), output.Total)
}

func TestOrderService_AssignStaff_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	staffID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "LRN-2026-000021",
		Status:      entity.StatusReceived,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, staffID).
		Return(&entity.User{ID: staffID, Role: entity.RoleStaff}, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	fx.activityRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	updated, err := fx.service.AssignStaff(ctx, adminActor(adminID), orderID, staffID, usecase.Provenance{})
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedStaffID)
	assert.Equal(t, staffID, *updated.AssignedStaffID)
}

func TestOrderService_AssignStaff_RejectsCustomerAssignee(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	staffID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusReceived}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, staffID).
		Return(&entity.User{ID: staffID, Role: entity.RoleCustomer}, nil)

	updated, err := fx.service.AssignStaff(ctx, adminActor(uuid.New()), orderID, staffID, usecase.Provenance{})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_TrackOrder_Timeline(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	pickupAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	order := &entity.Order{
		ID:                 uuid.New(),
		OrderNumber:        "LRN-2026-000042",
		Status:             entity.StatusWashing,
		IsExpress:          true,
		PickupScheduledFor: pickupAt,
		PromisedBy:         pickupAt.Add(24 * time.Hour),
	}

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "LRN-2026-000042").
		Return(order, nil)

	tracking, err := fx.service.TrackOrder(ctx, "LRN-2026-000042")
	require.NoError(t, err)
	assert.Equal(t, "LRN-2026-000042", tracking.OrderNumber)
	assert.Equal(t, entity.StatusWashing, tracking.Status)
	assert.True(t, tracking.IsExpress)
	require.Len(t, tracking.Timeline, 6)

	completed := make([]bool, 0, len(tracking.Timeline))
	for _, step := range tracking.Timeline {
		completed = append(completed, step.Completed)
	}
	assert.Equal(t, []bool{true, true, true, false, false, false}, completed)
}

func TestOrderService_TrackOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "LRN-2026-999999").
		Return(nil, repository.ErrOrderNotFound)

	tracking, err := fx.service.TrackOrder(ctx, "LRN-2026-999999")
	require.Error(t, err)
	assert.Nil(t, tracking)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_TrackingQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "LRN-2026-000042").
		Return(&entity.Order{OrderNumber: "LRN-2026-000042"}, nil)
	fx.qrService.EXPECT().
		GenerateTrackingQR("LRN-2026-000042").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.TrackingQR(ctx, "LRN-2026-000042")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_SubmitReview_Delivered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	staffID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:              orderID,
		OrderNumber:     "LRN-2026-000042",
		CustomerID:      customerID,
		AssignedStaffID: &staffID,
		Status:          entity.StatusDelivered,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	quality := 5
	review, err := fx.service.SubmitReview(ctx, customerActor(customerID), orderID, usecase.SubmitReviewInput{
		Rating:         4,
		ServiceQuality: &quality,
		Comment:        "Crisp collars.",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, orderID, review.OrderID)
	require.NotNil(t, review.StaffID)
	assert.Equal(t, staffID, *review.StaffID)
}

func TestOrderService_SubmitReview_NotDelivered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: customerID, Status: entity.StatusReady}, nil)

	review, err := fx.service.SubmitReview(ctx, customerActor(customerID), orderID, usecase.SubmitReviewInput{Rating: 5})
	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotAllowed)
}

func TestOrderService_SubmitReview_RatingOutOfRange(t *testing.T) {
	fx := createTestOrderService(t)

	review, err := fx.service.SubmitReview(context.Background(), customerActor(uuid.New()), uuid.New(), usecase.SubmitReviewInput{Rating: 6})
	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/domain/service"
	mockRepo "laundrypro/internal/mocks/repository"
	mockSvc "laundrypro/internal/mocks/service"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification
// service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	pushSender       *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		PushSender:       pushSender,
		Logger:           logger,
	})

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushSender:       pushSender,
	}
}

func TestNotificationService_ListMyNotifications(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		ListByUser(ctx, userID, false, 20, 0).
		Return([]*entity.Notification{
			{ID: uuid.New(), UserID: userID, Title: "Order update"},
		}, nil)
	fx.notificationRepo.EXPECT().
		CountUnread(ctx, userID).
		Return(1, nil)

	output, err := fx.service.ListMyNotifications(ctx, userID, usecase.ListNotificationsInput{})
	require.NoError(t, err)
	assert.Len(t, output.Notifications, 1)
	assert.Equal(t, int64(1), output.UnreadCount)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, notificationID, userID).
		Return(nil)

	err := fx.service.MarkRead(ctx, userID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_ProcessNotificationEvent_Delivers(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	event := &service.NotificationEvent{
		NotificationID: notificationID.String(),
		UserID:         userID.String(),
		OrderNumber:    "LRN-2026-000042",
		Type:           entity.NotificationOrderStatusUpdate,
		Title:          "Order update",
		Body:           "Your order LRN-2026-000042 is now washing.",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, PushToken: "fcm-token-123"}, nil)

	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, "fcm-token-123", event.Title, event.Body, map[string]string{
			"type":            entity.NotificationOrderStatusUpdate,
			"notification_id": notificationID.String(),
			"order_number":    "LRN-2026-000042",
		}).
		Return(nil)

	fx.notificationRepo.EXPECT().
		MarkSent(ctx, notificationID).
		Return(nil)

	err := fx.service.ProcessNotificationEvent(ctx, event)
	require.NoError(t, err)
}

func TestNotificationService_ProcessNotificationEvent_NoPushToken(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	event := &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserID:         userID.String(),
		Type:           entity.NotificationOrderCreated,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	err := fx.service.ProcessNotificationEvent(ctx, event)
	require.NoError(t, err)
}

func TestNotificationService_ProcessNotificationEvent_UnknownUserDropped(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	event := &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserID:         userID.String(),
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ProcessNotificationEvent(ctx, event)
	require.NoError(t, err)
}

func TestNotificationService_ProcessNotificationEvent_MalformedUserID(t *testing.T) {
	fx := createTestNotificationService(t)

	event := &service.NotificationEvent{
		NotificationID: uuid.New().String(),
		UserID:         "not-a-uuid",
	}

	err := fx.service.ProcessNotificationEvent(context.Background(), event)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_ProcessNotificationEvent_PushFailureIsReturned(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	event := &service.NotificationEvent{
		NotificationID: notificationID.String(),
		UserID:         userID.String(),
		Type:           entity.NotificationOrderCreated,
		Title:          "Order placed",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, PushToken: "fcm-token-123"}, nil)

	fx.pushSender.EXPECT().
		SendSingleNotification(ctx, "fcm-token-123", event.Title, event.Body, map[string]string{
			"type":            entity.NotificationOrderCreated,
			"notification_id": notificationID.String(),
		}).
		Return(errors.New("fcm unavailable"))

	err := fx.service.ProcessNotificationEvent(ctx, event)
	require.Error(t, err)
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "laundrypro/internal/delivery/context"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/domain/service"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pushSender       service.NotificationService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	PushSender       service.NotificationService
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		pushSender:       params.PushSender,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyNotifications returns the acting user's notifications, newest first.
func (srv *notificationService) ListMyNotifications(ctx context.Context, userID uuid.UUID, input usecase.ListNotificationsInput) (*usecase.ListNotificationsOutput, error) {
	notifications, err := srv.notificationRepo.ListByUser(ctx, userID, input.UnreadOnly, clampPageSize(input.Limit), input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead stamps one of the acting user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead stamps every unread notification of the acting user.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// ProcessNotificationEvent delivers a queued notification event through the
// push channel and stamps it as sent. Errors are returned so the queue can
// redeliver.
func (srv *notificationService) ProcessNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event carries a malformed user id")
	}
	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event carries a malformed notification id")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The owner is gone; drop the event instead of retrying forever.
			srv.log(ctx).Warn("Dropping notification event for unknown user", slog.String("userID", event.UserID))

			return nil
		}

		return errors.Wrap(err, "failed to load notification owner")
	}

	if user.PushToken == "" {
		srv.log(ctx).Debug("User has no push token, skipping push delivery", slog.Any("userID", user.ID))

		return nil
	}

	data := map[string]string{
		"type":            event.Type,
		"notification_id": event.NotificationID,
	}
	if event.OrderNumber != "" {
		data["order_number"] = event.OrderNumber
	}

	if err := srv.pushSender.SendSingleNotification(ctx, user.PushToken, event.Title, event.Body, data); err != nil {
		return errors.Wrap(err, "failed to send push notification")
	}

	if err := srv.notificationRepo.MarkSent(ctx, notificationID); err != nil {
		srv.log(ctx).Warn("Push delivered but sent stamp failed", slog.Any("notificationID", notificationID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Push notification delivered",
		slog.Any("userID", user.ID),
		slog.String("type", event.Type))

	return nil
}

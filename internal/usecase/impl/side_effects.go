// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "laundrypro/internal/delivery/context"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/domain/service"
	"laundrypro/internal/usecase"

	"go.uber.org/fx"
)

// sideEffects emits the notification rows, activity log entries and pubsub
// events that accompany order and issue mutations. Emission is best-effort:
// it runs after the primary write on a detached context, and failures are
// logged without ever failing the mutation itself.
type sideEffects struct {
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	publisher        service.EventPublisher
	logger           *slog.Logger

	// dispatch runs one effect; tests replace the default goroutine
	// dispatcher with a synchronous one.
	dispatch func(func())
}

// SideEffectsParams holds dependencies for sideEffects, injected by Fx.
type SideEffectsParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	ActivityRepo     repository.ActivityRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewSideEffects is the constructor for sideEffects.
func NewSideEffects(params SideEffectsParams) *sideEffects {
	return &sideEffects{
		notificationRepo: params.NotificationRepo,
		activityRepo:     params.ActivityRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
		dispatch:         func(fn func()) { go fn() },
	}
}

// run dispatches fn on a context detached from the request lifetime so the
// effect survives the response being written.
func (s *sideEffects) run(ctx context.Context, fn func(ctx context.Context)) {
	detached := context.WithoutCancel(ctx)
	s.dispatch(func() { fn(detached) })
}

func (s *sideEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// OrderCreated notifies the customer and records the creation in the
// activity log.
func (s *sideEffects) OrderCreated(ctx context.Context, actor usecase.Actor, order *entity.Order, prov usecase.Provenance) {
	s.run(ctx, func(ctx context.Context) {
		notification := &entity.Notification{
			UserID:   order.CustomerID,
			OrderID:  &order.ID,
			Type:     entity.NotificationOrderCreated,
			Title:    "Order placed",
			Message:  fmt.Sprintf("Your order %s has been placed. We will keep you posted.", order.OrderNumber),
			Channels: []string{entity.ChannelInApp, entity.ChannelPush},
		}
		s.emitNotification(ctx, notification, order.OrderNumber)

		s.appendActivity(ctx, &entity.ActivityLog{
			UserID:     actor.UserID,
			OrderID:    &order.ID,
			Action:     entity.ActionOrderCreated,
			EntityType: "order",
			EntityID:   order.ID,
			NewValues:  marshalValues(s.log(ctx), order),
			IPAddress:  prov.IPAddress,
			UserAgent:  prov.UserAgent,
		})
	})
}

// StatusUpdated notifies the customer of the new status and records the
// transition in the activity log.
func (s *sideEffects) StatusUpdated(ctx context.Context, actor usecase.Actor, order *entity.Order, oldStatus entity.OrderStatus, prov usecase.Provenance) {
	s.run(ctx, func(ctx context.Context) {
		notification := &entity.Notification{
			UserID:   order.CustomerID,
			OrderID:  &order.ID,
			Type:     entity.NotificationOrderStatusUpdate,
			Title:    "Order update",
			Message:  fmt.Sprintf("Your order %s is now %s.", order.OrderNumber, order.Status.Label()),
			Channels: []string{entity.ChannelInApp, entity.ChannelPush},
		}
		s.emitNotification(ctx, notification, order.OrderNumber)

		s.appendActivity(ctx, &entity.ActivityLog{
			UserID:     actor.UserID,
			OrderID:    &order.ID,
			Action:     entity.ActionStatusUpdated,
			EntityType: "order",
			EntityID:   order.ID,
			OldValues:  marshalValues(s.log(ctx), map[string]string{"status": string(oldStatus)}),
			NewValues:  marshalValues(s.log(ctx), map[string]string{"status": string(order.Status)}),
			IPAddress:  prov.IPAddress,
			UserAgent:  prov.UserAgent,
		})
	})
}

// StaffAssigned records the assignment in the activity log.
func (s *sideEffects) StaffAssigned(ctx context.Context, actor usecase.Actor, order *entity.Order, staffID string, prov usecase.Provenance) {
	s.run(ctx, func(ctx context.Context) {
		s.appendActivity(ctx, &entity.ActivityLog{
			UserID:     actor.UserID,
			OrderID:    &order.ID,
			Action:     entity.ActionStaffAssigned,
			EntityType: "order",
			EntityID:   order.ID,
			NewValues:  marshalValues(s.log(ctx), map[string]string{"assigned_staff_id": staffID}),
			IPAddress:  prov.IPAddress,
			UserAgent:  prov.UserAgent,
		})
	})
}

// IssueResolved notifies the original reporter of the resolution.
func (s *sideEffects) IssueResolved(ctx context.Context, issue *entity.Issue) {
	s.run(ctx, func(ctx context.Context) {
		message := "Your reported issue has been resolved."
		if issue.CompensationAmount != nil && *issue.CompensationAmount > 0 {
			message = fmt.Sprintf("Your reported issue has been resolved with a %s of %.2f.", issue.CompensationType, *issue.CompensationAmount)
		}

		notification := &entity.Notification{
			UserID:   issue.ReporterID,
			OrderID:  issue.OrderID,
			Type:     entity.NotificationIssueResolved,
			Title:    "Issue resolved",
			Message:  message,
			Channels: []string{entity.ChannelInApp, entity.ChannelPush},
		}
		s.emitNotification(ctx, notification, "")
	})
}

// emitNotification persists the notification and hands it to the pubsub
// publisher for push fan-out.
func (s *sideEffects) emitNotification(ctx context.Context, notification *entity.Notification, orderNumber string) {
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log(ctx).Error("Failed to create notification", slog.String("type", notification.Type), slog.Any("error", err))

		return
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		UserID:         notification.UserID.String(),
		OrderNumber:    orderNumber,
		Type:           notification.Type,
		Title:          notification.Title,
		Body:           notification.Message,
	}
	if notification.OrderID != nil {
		event.OrderID = notification.OrderID.String()
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish notification event", slog.String("type", notification.Type), slog.Any("error", err))
	}
}

func (s *sideEffects) appendActivity(ctx context.Context, log *entity.ActivityLog) {
	if err := s.activityRepo.Create(ctx, log); err != nil {
		s.log(ctx).Error("Failed to append activity log", slog.String("action", log.Action), slog.Any("error", err))
	}
}

func marshalValues(logger *slog.Logger, values any) string {
	encoded, err := json.Marshal(values)
	if err != nil {
		logger.Warn("Failed to marshal activity values", slog.Any("error", err))

		return ""
	}

	return string(encoded)
}

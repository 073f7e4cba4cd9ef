package handler

import (
	"log/slog"
	"net/http"

	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the in-app notification feed
// handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler,
// injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNotifications returns the authenticated user's notifications, newest
// first, together with the unread count.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	input := usecase.ListNotificationsInput{
		UnreadOnly: c.QueryParam("unread_only") == "true",
	}
	input.Limit, input.Offset = listPagination(c)

	output, err := h.uc.ListMyNotifications(c.Request().Context(), actor.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Notifications retrieved successfully")
}

// MarkRead stamps one of the authenticated user's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), actor.UserID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "read"}, "Notification marked as read")
}

// MarkAllRead stamps every unread notification of the authenticated user.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), actor.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "read"}, "All notifications marked as read")
}

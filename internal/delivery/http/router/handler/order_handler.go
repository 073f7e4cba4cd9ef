package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"laundrypro/internal/delivery/http/middleware"
	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// requestProvenance builds the activity log metadata from the request.
func requestProvenance(c echo.Context) usecase.Provenance {
	return usecase.Provenance{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// requestActor returns the authenticated actor. The error is an
// echo.HTTPError rendered by the error middleware.
func requestActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	return actor, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" format")
	}

	return id, nil
}

// listPagination reads the limit/offset query parameters.
func listPagination(c echo.Context) (limit, offset int) {
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		offset = v
	}

	return limit, offset
}

// OrderItemRequest is a single garment line of a new order.
type OrderItemRequest struct {
	ItemName   string  `json:"item_name" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
	UnitPrice  float64 `json:"unit_price" validate:"min=0"`
	Color      string  `json:"color,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	Size       string  `json:"size,omitempty"`
	FabricType string  `json:"fabric_type,omitempty"`
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	ServiceID            uuid.UUID               `json:"service_id" validate:"required"`
	BranchID             uuid.UUID               `json:"branch_id" validate:"required"`
	PickupType           entity.PickupType       `json:"pickup_type" validate:"required"`
	PickupAddress        entity.AddressSnapshot  `json:"pickup_address"`
	PickupScheduledFor   time.Time               `json:"pickup_scheduled_for" validate:"required"`
	DeliveryAddress      *entity.AddressSnapshot `json:"delivery_address,omitempty"`
	DeliveryScheduledFor *time.Time              `json:"delivery_scheduled_for,omitempty"`
	Items                []OrderItemRequest      `json:"items" validate:"required,min=1,dive"`
	IsExpress            bool                    `json:"is_express"`
	Notes                string                  `json:"notes,omitempty"`
}

// CreateOrder places a new order for the authenticated customer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Color:      item.Color,
			Brand:      item.Brand,
			Size:       item.Size,
			FabricType: item.FabricType,
		})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), actor, usecase.CreateOrderInput{
		ServiceID:            req.ServiceID,
		BranchID:             req.BranchID,
		PickupType:           req.PickupType,
		PickupAddress:        req.PickupAddress,
		PickupScheduledFor:   req.PickupScheduledFor,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryScheduledFor: req.DeliveryScheduledFor,
		Items:                items,
		IsExpress:            req.IsExpress,
		Notes:                req.Notes,
	}, requestProvenance(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder fetches one order, scoped to the caller's role.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders returns orders scoped to the caller: customers see their own,
// staff their branch, admins everything.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	input := usecase.ListOrdersInput{}
	input.Limit, input.Offset = listPagination(c)

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(strings.ToUpper(raw))
		if !status.Valid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown order status")
		}
		input.Status = &status
	}

	output, err := h.uc.ListOrders(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": output.Orders,
		"total":  output.Total,
	}, "Orders retrieved successfully")
}

// UpdateStatusRequest represents the request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateStatus advances an order along the fulfillment sequence.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, orderID, usecase.UpdateStatusInput{
		NewStatus: entity.OrderStatus(strings.ToUpper(req.Status)),
		Notes:     req.Notes,
	}, requestProvenance(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// CancelOrder cancels the authenticated customer's own pending order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), actor, orderID, requestProvenance(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// AssignStaffRequest represents the request body for assigning an order to a
// staff member.
type AssignStaffRequest struct {
	StaffID uuid.UUID `json:"staff_id" validate:"required"`
}

// AssignStaff sets the staff member responsible for an order.
func (h *OrderHandler) AssignStaff(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AssignStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.AssignStaff(c.Request().Context(), actor, orderID, req.StaffID, requestProvenance(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order assigned successfully")
}

// TrackOrder projects an order onto the public tracking timeline. The order
// number is the capability; no authentication is required.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		return response.BadRequest(c, "MISSING_ORDER_NUMBER", "Order number is required")
	}

	tracking, err := h.uc.TrackOrder(c.Request().Context(), orderNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracking, "Tracking retrieved successfully")
}

// TrackingQR renders a PNG QR code pointing at the tracking page.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		return response.BadRequest(c, "MISSING_ORDER_NUMBER", "Order number is required")
	}

	png, err := h.uc.TrackingQR(c.Request().Context(), orderNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SubmitReviewRequest represents the request body for rating a delivered
// order.
type SubmitReviewRequest struct {
	Rating         int    `json:"rating" validate:"required"`
	ServiceQuality *int   `json:"service_quality,omitempty"`
	Timeliness     *int   `json:"timeliness,omitempty"`
	Communication  *int   `json:"communication,omitempty"`
	Comment        string `json:"comment,omitempty"`
}

// SubmitReview records the customer's rating of a delivered order.
func (h *OrderHandler) SubmitReview(c echo.Context) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), actor, orderID, usecase.SubmitReviewInput{
		Rating:         req.Rating,
		ServiceQuality: req.ServiceQuality,
		Timeliness:     req.Timeliness,
		Communication:  req.Communication,
		Comment:        req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"laundrypro/config"
	deliverycontext "laundrypro/internal/delivery/context"
	"laundrypro/internal/domain/constants"
	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/domain/service"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	reviewRepo  repository.ReviewRepository
	qrService   service.QRCodeService
	effects     *sideEffects
	pricing     entity.PricingPolicy
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	CatalogRepo repository.CatalogRepository
	ReviewRepo  repository.ReviewRepository
	QRService   service.QRCodeService
	Effects     *sideEffects
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	pricing := entity.DefaultPricingPolicy()
	if cfg := params.Config.Pricing; cfg != nil {
		if cfg.DeliveryFee > 0 {
			pricing.DeliveryFee = cfg.DeliveryFee
		}
		if cfg.BaseFee > 0 {
			pricing.BaseFee = cfg.BaseFee
		}
		if cfg.ExpressSurchargeRate > 0 {
			pricing.ExpressSurchargeRate = cfg.ExpressSurchargeRate
		}
	}

	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		catalogRepo: params.CatalogRepo,
		reviewRepo:  params.ReviewRepo,
		qrService:   params.QRService,
		effects:     params.Effects,
		pricing:     pricing,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a new order for the acting customer.
func (srv *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, input usecase.CreateOrderInput, prov usecase.Provenance) (*entity.Order, error) {
	if err := validateCreateOrderInput(input); err != nil {
		return nil, err
	}

	var createdOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()
		orderRepo := repoFactory.NewOrderRepository()

		svc, err := catalogRepo.FindServiceByID(ctx, input.ServiceID)
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceUnavailable.WrapMessage("service does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find service")
		}
		if !svc.IsActive {
			return domainerrors.ErrServiceUnavailable.WrapMessage("service is no longer offered")
		}

		if _, err := catalogRepo.FindBranchByID(ctx, input.BranchID); err != nil {
			if errors.Is(err, repository.ErrBranchNotFound) {
				return domainerrors.ErrBranchNotFound.WrapMessage("branch does not exist")
			}

			return errors.Wrap(err, "failed to find branch")
		}

		items := buildOrderItems(input.Items)
		pricing := srv.pricing.Price(items, input.PickupType, input.IsExpress)

		year := time.Now().Year()
		sequence, err := orderRepo.NextOrderNumber(ctx, year)
		if err != nil {
			return errors.Wrap(err, "failed to allocate order number")
		}

		order := &entity.Order{
			OrderNumber:          entity.FormatOrderNumber(constants.OrderNumberPrefix, year, sequence),
			CustomerID:           actor.UserID,
			BranchID:             input.BranchID,
			ServiceID:            input.ServiceID,
			PickupType:           input.PickupType,
			PickupAddress:        input.PickupAddress,
			PickupScheduledFor:   input.PickupScheduledFor,
			DeliveryAddress:      input.DeliveryAddress,
			DeliveryScheduledFor: input.DeliveryScheduledFor,
			Items:                items,
			Subtotal:             pricing.Subtotal,
			DeliveryFee:          pricing.DeliveryFee,
			ExpressFee:           pricing.ExpressFee,
			Discount:             pricing.Discount,
			TotalAmount:          pricing.Total,
			IsExpress:            input.IsExpress,
			PriorityScore:        srv.pricing.PriorityScore(input.IsExpress),
			PromisedBy:           input.PickupScheduledFor.Add(time.Duration(svc.EstimatedHours) * time.Hour),
			Status:               entity.StatusPending,
			Notes:                input.Notes,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order creation transaction", slog.Any("customerID", actor.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order created", slog.String("orderNumber", createdOrder.OrderNumber), slog.Any("customerID", actor.UserID))
	srv.effects.OrderCreated(ctx, actor, createdOrder, prov)

	return createdOrder, nil
}

// GetOrder fetches one order after checking the caller may read it.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := srv.checkOrderAccess(ctx, actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns orders scoped to the caller's role.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor, input usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	filter := repository.OrderFilter{
		Status: input.Status,
		Limit:  clampPageSize(input.Limit),
		Offset: input.Offset,
	}

	switch actor.Role {
	case entity.RoleCustomer:
		customerID := actor.UserID
		filter.CustomerID = &customerID
	case entity.RoleStaff:
		branchID, err := srv.staffBranch(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.BranchID = &branchID
	case entity.RoleAdmin:
		// Unrestricted.
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("unknown role")
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	total, err := srv.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.ListOrdersOutput{Orders: orders, Total: total}, nil
}

// UpdateStatus advances an order along the fulfillment sequence.
func (srv *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input usecase.UpdateStatusInput, prov usecase.Provenance) (*entity.Order, error) {
	if !input.NewStatus.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := srv.checkOrderAccess(ctx, actor, order); err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if !srv.transitionAllowed(actor, oldStatus, input.NewStatus) {
		srv.log(ctx).Warn("Rejected status transition",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("from", string(oldStatus)),
			slog.String("to", string(input.NewStatus)))

		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(
			"cannot move from " + oldStatus.Label() + " to " + input.NewStatus.Label())
	}

	now := time.Now()
	order.Status = input.NewStatus
	switch input.NewStatus {
	case entity.StatusReceived:
		order.PickupCompletedAt = &now
	case entity.StatusDelivered:
		order.DeliveryCompletedAt = &now
		order.CompletedAt = &now
	}
	if input.Notes != "" {
		order.InternalNotes = input.Notes
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("from", string(oldStatus)),
		slog.String("to", string(order.Status)))
	srv.effects.StatusUpdated(ctx, actor, order, oldStatus, prov)

	return order, nil
}

// CancelOrder cancels the acting customer's own pending order.
func (srv *orderService) CancelOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, prov usecase.Provenance) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != actor.UserID && !actor.IsAdmin() {
		return nil, domainerrors.ErrOrderAccessDenied.WrapMessage("order belongs to another customer")
	}
	if order.Status != entity.StatusPending {
		return nil, domainerrors.ErrOrderNotCancellable.WrapMessage("only pending orders can be cancelled")
	}

	oldStatus := order.Status
	order.Status = entity.StatusCancelled
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	srv.log(ctx).Info("Order cancelled", slog.String("orderNumber", order.OrderNumber), slog.Any("customerID", actor.UserID))
	srv.effects.StatusUpdated(ctx, actor, order, oldStatus, prov)

	return order, nil
}

// AssignStaff sets the staff member responsible for an order.
func (srv *orderService) AssignStaff(ctx context.Context, actor usecase.Actor, orderID, staffID uuid.UUID, prov usecase.Provenance) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	staff, err := srv.userRepo.FindByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("staff member does not exist")
		}

		return nil, errors.Wrap(err, "failed to find staff member")
	}
	if staff.Role == entity.RoleCustomer {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("assignee is not a staff member")
	}

	order.AssignedStaffID = &staff.ID
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to assign staff")
	}

	srv.log(ctx).Info("Staff assigned", slog.String("orderNumber", order.OrderNumber), slog.Any("staffID", staff.ID))
	srv.effects.StaffAssigned(ctx, actor, order, staff.ID.String(), prov)

	return order, nil
}

// TrackOrder projects an order onto the public six-step timeline.
func (srv *orderService) TrackOrder(ctx context.Context, orderNumber string) (*usecase.TrackingOutput, error) {
	order, err := srv.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order with this number")
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return &usecase.TrackingOutput{
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		IsExpress:   order.IsExpress,
		PromisedBy:  order.PromisedBy,
		Timeline:    entity.BuildTimeline(order),
	}, nil
}

// TrackingQR renders a PNG QR code pointing at the tracking page.
func (srv *orderService) TrackingQR(ctx context.Context, orderNumber string) ([]byte, error) {
	if _, err := srv.orderRepo.FindByOrderNumber(ctx, orderNumber); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order with this number")
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	png, err := srv.qrService.GenerateTrackingQR(orderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// SubmitReview records the customer's rating of a delivered order.
func (srv *orderService) SubmitReview(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != actor.UserID {
		return nil, domainerrors.ErrOrderAccessDenied.WrapMessage("order belongs to another customer")
	}
	if order.Status != entity.StatusDelivered {
		return nil, domainerrors.ErrReviewNotAllowed.WrapMessage("only delivered orders can be reviewed")
	}

	review := &entity.Review{
		OrderID:        order.ID,
		CustomerID:     actor.UserID,
		StaffID:        order.AssignedStaffID,
		Rating:         input.Rating,
		ServiceQuality: input.ServiceQuality,
		Timeliness:     input.Timeliness,
		Communication:  input.Communication,
		Comment:        input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review submitted", slog.String("orderNumber", order.OrderNumber), slog.Int("rating", input.Rating))

	return review, nil
}

// --- helpers ---

func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order does not exist")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// checkOrderAccess enforces the read/mutate scope: customers their own
// orders, staff their branch, admins everything.
func (srv *orderService) checkOrderAccess(ctx context.Context, actor usecase.Actor, order *entity.Order) error {
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleCustomer:
		if order.CustomerID != actor.UserID {
			return domainerrors.ErrOrderAccessDenied.WrapMessage("order belongs to another customer")
		}

		return nil
	case entity.RoleStaff:
		branchID, err := srv.staffBranch(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if order.BranchID != branchID {
			return domainerrors.ErrOrderAccessDenied.WrapMessage("order belongs to another branch")
		}

		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("unknown role")
}

func (srv *orderService) staffBranch(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	staff, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to load staff user")
	}
	if staff.StaffProfile == nil {
		return uuid.Nil, domainerrors.ErrForbidden.WrapMessage("staff member has no branch assignment")
	}

	return staff.StaffProfile.BranchID, nil
}

// transitionAllowed applies the state machine: one step forward or a cancel
// for everyone, any non-identical jump out of a non-terminal state for
// admins.
func (srv *orderService) transitionAllowed(actor usecase.Actor, from, to entity.OrderStatus) bool {
	if entity.CanTransition(from, to) {
		return true
	}

	return actor.IsAdmin() && !from.IsTerminal() && from != to
}

func validateCreateOrderInput(input usecase.CreateOrderInput) error {
	if !input.PickupType.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown pickup type")
	}
	if input.PickupScheduledFor.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("pickup time is required")
	}
	if len(input.Items) == 0 {
		return domainerrors.ErrEmptyOrder.WrapMessage("an order needs at least one item")
	}
	for _, item := range input.Items {
		if item.ItemName == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("item name is required")
		}
		if item.Quantity < 1 {
			return domainerrors.ErrValidationFailed.WrapMessage("item quantity must be at least 1")
		}
		if item.UnitPrice <= 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("item unit price must be positive")
		}
	}

	return nil
}

func buildOrderItems(inputs []usecase.OrderItemInput) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, entity.OrderItem{
			ItemName:   in.ItemName,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			TotalPrice: float64(in.Quantity) * in.UnitPrice,
			Color:      in.Color,
			Brand:      in.Brand,
			Size:       in.Size,
			FabricType: in.FabricType,
		})
	}

	return items
}

func clampPageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}

	return limit
}

package postgres

import (
	"context"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its items in one insert batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid customer, branch or service reference")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Propagate generated IDs and timestamps back to the entity.
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = orderM.Items[i].ID
			order.Items[i].OrderID = orderM.ID
			order.Items[i].CreatedAt = orderM.Items[i].CreatedAt
		}
	}

	return nil
}

// FindByID retrieves an order with its items and related records preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Preload("Service").
		Preload("Branch").
		Preload("AssignedStaff").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByOrderNumber retrieves an order by its public order number.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Service").
		Preload("Branch").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by order number")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders matching the filter, express first, then newest.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Preload("Items").
		Preload("Customer").
		Preload("Service").
		Order("priority_score DESC, created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Count returns the number of orders matching the filter.
func (repo *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64

	query := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.OrderModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// Update persists changed fields of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	// Items are immutable after creation; never cascade them on update.
	orderM.Items = nil

	// Struct updates skip zero values, so name the mutable columns
	// explicitly. Clearing assigned_staff_id or notes must still persist.
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select(
			"status",
			"internal_notes",
			"assigned_staff_id",
			"pickup_completed_at",
			"delivery_completed_at",
			"completed_at",
			"updated_at",
		).
		Updates(orderM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// NextOrderNumber atomically increments and returns the per-year order
// sequence using an upsert with RETURNING. Concurrent callers serialize on
// the counter row, so no two orders ever share a sequence number.
func (repo *orderRepository) NextOrderNumber(ctx context.Context, year int) (int64, error) {
	counter := model.OrderCounterModel{Year: year, LastNumber: 1}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "year"}},
				DoUpdates: clause.Assignments(map[string]any{
					"last_number": gorm.Expr("order_counters.last_number + 1"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "last_number"}}},
		).
		Create(&counter).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to advance order counter")
	}

	return counter.LastNumber, nil
}

func (repo *orderRepository) applyFilter(query *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.ServiceID != nil {
		query = query.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.AssignedStaff != nil {
		query = query.Where("assigned_staff_id = ?", *filter.AssignedStaff)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.IsExpress != nil {
		query = query.Where("is_express = ?", *filter.IsExpress)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	return query
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                   data.ID,
		OrderNumber:          data.OrderNumber,
		CustomerID:           data.CustomerID,
		BranchID:             data.BranchID,
		ServiceID:            data.ServiceID,
		PickupType:           entity.PickupType(data.PickupType),
		PickupScheduledFor:   data.PickupScheduledFor,
		PickupCompletedAt:    data.PickupCompletedAt,
		DeliveryScheduledFor: data.DeliveryScheduledFor,
		DeliveryCompletedAt:  data.DeliveryCompletedAt,
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		ExpressFee:           data.ExpressFee,
		Discount:             data.Discount,
		TotalAmount:          data.TotalAmount,
		IsExpress:            data.IsExpress,
		PriorityScore:        data.PriorityScore,
		PromisedBy:           data.PromisedBy,
		Status:               entity.OrderStatus(data.Status),
		Notes:                data.Notes,
		InternalNotes:        data.InternalNotes,
		AssignedStaffID:      data.AssignedStaffID,
		CompletedAt:          data.CompletedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
		Customer:             toUserDomain(data.Customer),
		Service:              toServiceDomain(data.Service),
		Branch:               toBranchDomain(data.Branch),
		AssignedStaff:        toUserDomain(data.AssignedStaff),
	}
	if addr := addressFromJSON(data.PickupAddress); addr != nil {
		order.PickupAddress = *addr
	}
	order.DeliveryAddress = addressFromJSON(data.DeliveryAddress)

	order.Items = make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		order.Items = append(order.Items, toOrderItemDomain(itemM))
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	pickupAddr := data.PickupAddress
	orderM := &model.OrderModel{
		ID:                   data.ID,
		OrderNumber:          data.OrderNumber,
		CustomerID:           data.CustomerID,
		BranchID:             data.BranchID,
		ServiceID:            data.ServiceID,
		PickupType:           string(data.PickupType),
		PickupAddress:        addressToJSON(&pickupAddr),
		PickupScheduledFor:   data.PickupScheduledFor,
		PickupCompletedAt:    data.PickupCompletedAt,
		DeliveryAddress:      addressToJSON(data.DeliveryAddress),
		DeliveryScheduledFor: data.DeliveryScheduledFor,
		DeliveryCompletedAt:  data.DeliveryCompletedAt,
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		ExpressFee:           data.ExpressFee,
		Discount:             data.Discount,
		TotalAmount:          data.TotalAmount,
		IsExpress:            data.IsExpress,
		PriorityScore:        data.PriorityScore,
		PromisedBy:           data.PromisedBy,
		Status:               string(data.Status),
		Notes:                data.Notes,
		InternalNotes:        data.InternalNotes,
		AssignedStaffID:      data.AssignedStaffID,
		CompletedAt:          data.CompletedAt,
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Color:      item.Color,
			Brand:      item.Brand,
			Size:       item.Size,
			FabricType: item.FabricType,
		})
	}

	return orderM
}

func toOrderItemDomain(data model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:         data.ID,
		OrderID:    data.OrderID,
		ItemName:   data.ItemName,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		TotalPrice: data.TotalPrice,
		Color:      data.Color,
		Brand:      data.Brand,
		Size:       data.Size,
		FabricType: data.FabricType,
		CreatedAt:  data.CreatedAt,
	}
}

package postgres

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"laundrypro/internal/domain/entity"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping database test: TEST_POSTGRES_DSN env var not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db
}

// Every order number must be unique and allocated in increasing sequence,
// even when many orders are created at once. The upsert with RETURNING
// serializes writers on the counter row, so N concurrent callers must come
// back with exactly the numbers 1..N.
func TestOrderRepository_NextOrderNumber_Concurrent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.OrderCounterModel{}))

	const testYear = 9999
	require.NoError(t, db.Where("year = ?", testYear).Delete(&model.OrderCounterModel{}).Error)
	t.Cleanup(func() {
		db.Where("year = ?", testYear).Delete(&model.OrderCounterModel{})
	})

	repo := NewOrderRepository(db)
	ctx := context.Background()

	const callers = 32

	var wg sync.WaitGroup
	numbers := make(chan int64, callers)
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			n, err := repo.NextOrderNumber(ctx, testYear)
			if err != nil {
				errs <- err
				return
			}
			numbers <- n
		}()
	}

	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got := make([]int64, 0, callers)
	for n := range numbers {
		got = append(got, n)
	}
	require.Len(t, got, callers)

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i, n := range got {
		assert.Equal(t, int64(i+1), n, "order numbers must be distinct and gapless")
	}

	var counter model.OrderCounterModel
	require.NoError(t, db.Where("year = ?", testYear).First(&counter).Error)
	assert.Equal(t, int64(callers), counter.LastNumber)
}

// seedOrderGraph inserts the customer, staff user, branch, service and one
// order the update tests operate on, and removes them again on cleanup.
func seedOrderGraph(t *testing.T, db *gorm.DB) *model.OrderModel {
	t.Helper()

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.BranchModel{},
		&model.ServiceModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	))

	suffix := uuid.NewString()[:8]
	customer := &model.UserModel{
		ID:           uuid.New(),
		Phone:        "+234801" + suffix[:7],
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "Customer",
		Role:         string(entity.RoleCustomer),
	}
	staff := &model.UserModel{
		ID:           uuid.New(),
		Phone:        "+234802" + suffix[:7],
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "Staff",
		Role:         string(entity.RoleStaff),
	}
	branch := &model.BranchModel{
		ID:      uuid.New(),
		Name:    "Test Branch " + suffix,
		Address: "1 Test Road",
		City:    "Lagos",
		State:   "Lagos",
	}
	service := &model.ServiceModel{
		ID:             uuid.New(),
		Name:           "Wash & Fold " + suffix,
		Category:       string(entity.CategoryBasic),
		ServiceType:    "wash_fold",
		BasePrice:      500,
		PricingUnit:    "per_item",
		EstimatedHours: 24,
	}
	require.NoError(t, db.Create(customer).Error)
	require.NoError(t, db.Create(staff).Error)
	require.NoError(t, db.Create(branch).Error)
	require.NoError(t, db.Create(service).Error)

	now := time.Now()
	order := &model.OrderModel{
		ID:                 uuid.New(),
		OrderNumber:        fmt.Sprintf("LP-TEST-%s", suffix),
		CustomerID:         customer.ID,
		BranchID:           branch.ID,
		ServiceID:          service.ID,
		PickupType:         string(entity.PickupTypeDropoff),
		PickupAddress:      datatypes.JSON([]byte(`{"street":"1 Test Road","city":"Lagos","state":"Lagos"}`)),
		PickupScheduledFor: now,
		Subtotal:           500,
		TotalAmount:        500,
		PriorityScore:      5,
		PromisedBy:         now.Add(24 * time.Hour),
		Status:             string(entity.StatusReceived),
		InternalNotes:      "inspect collar stain",
		AssignedStaffID:    &staff.ID,
	}
	require.NoError(t, db.Create(order).Error)

	t.Cleanup(func() {
		db.Where("id = ?", order.ID).Delete(&model.OrderModel{})
		db.Where("id = ?", service.ID).Delete(&model.ServiceModel{})
		db.Where("id = ?", branch.ID).Delete(&model.BranchModel{})
		db.Where("id IN ?", []uuid.UUID{customer.ID, staff.ID}).Delete(&model.UserModel{})
	})

	return order
}

// Clearing a field must survive the round trip. A struct-based GORM update
// silently drops zero values, so unassigning staff or emptying notes would
// otherwise leave the old row intact.
func TestOrderRepository_Update_PersistsClearedFields(t *testing.T) {
	db := openTestDB(t)
	seeded := seedOrderGraph(t, db)

	repo := NewOrderRepository(db)
	ctx := context.Background()

	order, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, order.AssignedStaffID)
	require.Equal(t, "inspect collar stain", order.InternalNotes)

	order.Status = entity.StatusWashing
	order.AssignedStaffID = nil
	order.InternalNotes = ""
	require.NoError(t, repo.Update(ctx, order))

	updated, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWashing, updated.Status)
	assert.Nil(t, updated.AssignedStaffID)
	assert.Empty(t, updated.InternalNotes)
}

func TestOrderRepository_Update_MissingOrder(t *testing.T) {
	db := openTestDB(t)
	seedOrderGraph(t, db)

	repo := NewOrderRepository(db)

	missing := &entity.Order{ID: uuid.New(), Status: entity.StatusWashing}
	missing.PickupAddress = entity.AddressSnapshot{Street: "1 Test Road", City: "Lagos", State: "Lagos"}

	err := repo.Update(context.Background(), missing)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

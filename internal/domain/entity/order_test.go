package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingPolicy_Price_ReferenceScenario(t *testing.T) {
	policy := DefaultPricingPolicy()

	items := []OrderItem{
		{ItemName: "Shirt", Quantity: 2, UnitPrice: 500},
		{ItemName: "Agbada", Quantity: 1, UnitPrice: 2000},
	}

	pricing := policy.Price(items, PickupTypeDelivery, true)

	assert.Equal(t, float64(3000), pricing.Subtotal)
	assert.Equal(t, float64(1500), pricing.DeliveryFee)
	assert.Equal(t, float64(1500), pricing.ExpressFee)
	assert.Equal(t, float64(0), pricing.Discount)
	assert.Equal(t, float64(6000), pricing.Total)
}

func TestPricingPolicy_Price_Invariant(t *testing.T) {
	policy := DefaultPricingPolicy()

	cases := []struct {
		name       string
		items      []OrderItem
		pickupType PickupType
		isExpress  bool
	}{
		{"single item dropoff", []OrderItem{{Quantity: 1, UnitPrice: 750}}, PickupTypeDropoff, false},
		{"multi item pickup express", []OrderItem{{Quantity: 3, UnitPrice: 200}, {Quantity: 2, UnitPrice: 1250}}, PickupTypePickup, true},
		{"delivery standard", []OrderItem{{Quantity: 5, UnitPrice: 120}}, PickupTypeDelivery, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pricing := policy.Price(tc.items, tc.pickupType, tc.isExpress)

			assert.Equal(t, ItemsSubtotal(tc.items), pricing.Subtotal)
			assert.Equal(t, pricing.Subtotal+pricing.DeliveryFee+pricing.ExpressFee-pricing.Discount, pricing.Total)
			if tc.pickupType == PickupTypeDelivery {
				assert.Equal(t, policy.DeliveryFee, pricing.DeliveryFee)
			} else {
				assert.Equal(t, policy.BaseFee, pricing.DeliveryFee)
			}
			if !tc.isExpress {
				assert.Zero(t, pricing.ExpressFee)
			}
		})
	}
}

func TestPricingPolicy_PriorityScore(t *testing.T) {
	policy := DefaultPricingPolicy()

	assert.Equal(t, 10, policy.PriorityScore(true))
	assert.Equal(t, 5, policy.PriorityScore(false))
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "LRN-2026-000001", FormatOrderNumber("LRN", 2026, 1))
	assert.Equal(t, "LRN-2026-000042", FormatOrderNumber("LRN", 2026, 42))
	assert.Equal(t, "LRN-2027-123456", FormatOrderNumber("LRN", 2027, 123456))
}

func TestCanTransition_ForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusReceived))
	assert.True(t, CanTransition(StatusReceived, StatusWashing))
	assert.True(t, CanTransition(StatusWashing, StatusIroning))
	assert.True(t, CanTransition(StatusIroning, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusDelivered))

	// no skipping steps, no moving backwards
	assert.False(t, CanTransition(StatusPending, StatusWashing))
	assert.False(t, CanTransition(StatusReady, StatusWashing))
	assert.False(t, CanTransition(StatusWashing, StatusWashing))
}

func TestCanTransition_Cancellation(t *testing.T) {
	for _, from := range []OrderStatus{StatusPending, StatusReceived, StatusWashing, StatusIroning, StatusReady} {
		assert.True(t, CanTransition(from, StatusCancelled), "cancel from %s", from)
	}

	// terminal states stay terminal
	assert.False(t, CanTransition(StatusDelivered, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
	assert.False(t, CanTransition(StatusDelivered, StatusReady))
}

func TestBuildTimeline_Ironing(t *testing.T) {
	order := &Order{
		Status:             StatusIroning,
		PickupScheduledFor: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	timeline := BuildTimeline(order)
	require.Len(t, timeline, 6)

	completed := map[OrderStatus]bool{}
	for _, step := range timeline {
		completed[step.Status] = step.Completed
	}

	assert.True(t, completed[StatusPending])
	assert.True(t, completed[StatusReceived])
	assert.True(t, completed[StatusWashing])
	assert.True(t, completed[StatusIroning])
	assert.False(t, completed[StatusReady])
	assert.False(t, completed[StatusDelivered])

	require.NotNil(t, timeline[0].Time)
	assert.Equal(t, order.PickupScheduledFor, *timeline[0].Time)
}

func TestBuildTimeline_Delivered(t *testing.T) {
	order := &Order{Status: StatusDelivered, PickupScheduledFor: time.Now()}

	for _, step := range BuildTimeline(order) {
		assert.True(t, step.Completed, "step %s", step.Status)
	}
}

func TestBuildTimeline_Pending(t *testing.T) {
	order := &Order{Status: StatusPending, PickupScheduledFor: time.Now()}

	timeline := BuildTimeline(order)
	assert.True(t, timeline[0].Completed)
	for _, step := range timeline[1:] {
		assert.False(t, step.Completed, "step %s", step.Status)
	}
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "washing", StatusWashing.Label())
	assert.Equal(t, "delivered", StatusDelivered.Label())
}

package entity

import "time"

// TrackingStep is one milestone on the public tracking timeline.
type TrackingStep struct {
	Status    OrderStatus `json:"status"`
	Label     string      `json:"label"`
	Completed bool        `json:"completed"`
	Time      *time.Time  `json:"time,omitempty"`
}

// trackingSteps defines the fixed six-step timeline together with the set of
// statuses at or beyond each step. A step is complete when the order's
// current status is a member of its reached set.
var trackingSteps = []struct {
	status  OrderStatus
	label   string
	reached []OrderStatus
}{
	{StatusPending, "Order Placed", nil}, // always complete once the order exists
	{StatusReceived, "Picked Up", []OrderStatus{StatusReceived, StatusWashing, StatusIroning, StatusReady, StatusDelivered}},
	{StatusWashing, "Washing", []OrderStatus{StatusWashing, StatusIroning, StatusReady, StatusDelivered}},
	{StatusIroning, "Ironing", []OrderStatus{StatusIroning, StatusReady, StatusDelivered}},
	{StatusReady, "Ready", []OrderStatus{StatusReady, StatusDelivered}},
	{StatusDelivered, "Delivered", []OrderStatus{StatusDelivered}},
}

// BuildTimeline projects an order's current status onto the fixed tracking
// timeline. The first step carries the scheduled pickup time.
func BuildTimeline(o *Order) []TrackingStep {
	steps := make([]TrackingStep, 0, len(trackingSteps))
	for i, def := range trackingSteps {
		step := TrackingStep{
			Status: def.status,
			Label:  def.label,
		}
		if i == 0 {
			step.Completed = true
			pickupAt := o.PickupScheduledFor
			step.Time = &pickupAt
		} else {
			for _, reached := range def.reached {
				if o.Status == reached {
					step.Completed = true

					break
				}
			}
		}
		steps = append(steps, step)
	}

	return steps
}

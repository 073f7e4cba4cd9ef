package entity

// PricingPolicy holds the configurable amounts that go into an order's total.
// The two-tier delivery fee and the express surcharge rate come from
// configuration, not code.
type PricingPolicy struct {
	// DeliveryFee is charged when the branch delivers back to the customer.
	DeliveryFee float64
	// BaseFee is charged for pickup-in-person and drop-off orders.
	BaseFee float64
	// ExpressSurchargeRate is the fraction of the subtotal added for
	// expedited service, e.g. 0.5 for 50%.
	ExpressSurchargeRate float64
	// ExpressPriorityScore and StandardPriorityScore are sortable hints for
	// staff queues; they carry no scheduling guarantee.
	ExpressPriorityScore  int
	StandardPriorityScore int
}

// DefaultPricingPolicy mirrors the reference fee schedule.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		DeliveryFee:           1500,
		BaseFee:               500,
		ExpressSurchargeRate:  0.5,
		ExpressPriorityScore:  10,
		StandardPriorityScore: 5,
	}
}

// OrderPricing is the computed money breakdown of an order.
// Total = Subtotal + DeliveryFee + ExpressFee - Discount always holds.
type OrderPricing struct {
	Subtotal    float64
	DeliveryFee float64
	ExpressFee  float64
	Discount    float64
	Total       float64
}

// ItemsSubtotal sums quantity times unit price over all items.
func ItemsSubtotal(items []OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	return subtotal
}

// Price computes the full money breakdown for a new order. Discount is zero
// at creation time.
func (p PricingPolicy) Price(items []OrderItem, pickupType PickupType, isExpress bool) OrderPricing {
	subtotal := ItemsSubtotal(items)

	deliveryFee := p.BaseFee
	if pickupType == PickupTypeDelivery {
		deliveryFee = p.DeliveryFee
	}

	var expressFee float64
	if isExpress {
		expressFee = subtotal * p.ExpressSurchargeRate
	}

	return OrderPricing{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		ExpressFee:  expressFee,
		Discount:    0,
		Total:       subtotal + deliveryFee + expressFee,
	}
}

// PriorityScore returns the queue hint for an order.
func (p PricingPolicy) PriorityScore(isExpress bool) int {
	if isExpress {
		return p.ExpressPriorityScore
	}

	return p.StandardPriorityScore
}

package domain

// Shipping and tax rules from the storefront cart page.
const (
	FreeShippingThreshold = 50.0
	ShippingCost          = 4.99
	TaxRate               = 0.16
)

type OrderSummary struct {
	Subtotal       float64
	Shipping       float64
	Tax            float64
	Total          float64
	ToFreeShipping float64
	FreeShipping   bool
}

// NewOrderSummary derives the order totals from the cart subtotal.
// Shipping is free at or above the threshold, tax is applied on the
// subtotal only.
func NewOrderSummary(subtotal float64) OrderSummary {
	s := OrderSummary{Subtotal: subtotal}

	if subtotal >= FreeShippingThreshold {
		s.FreeShipping = true
	} else {
		s.Shipping = ShippingCost
		s.ToFreeShipping = FreeShippingThreshold - subtotal
	}

	s.Tax = subtotal * TaxRate
	s.Total = s.Subtotal + s.Shipping + s.Tax
	return s
}

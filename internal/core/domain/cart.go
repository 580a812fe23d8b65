package domain

// A CartLine is one row in the shopping cart: a product snapshot taken at
// add time and the quantity intended for purchase. The unit price is NOT
// live-updated when the catalog changes afterwards.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// NewCartLine captures the purchase snapshot of a product. The captured
// price is the pre-discount unit price, as on the original storefront.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.PrimaryImage(),
		Quantity: quantity,
	}
}

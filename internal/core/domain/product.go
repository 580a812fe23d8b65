package domain

import (
	"time"

	"github.com/felino/storefront/pkg/money"
)

// Age range keys as used by the catalog data.
const (
	AgeKitten = "Gatito"
	AgeAdult  = "Adulto"
	AgeSenior = "Senior"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Discount    int
	Images      []string
	Category    string
	Stock       int
	Rating      float64
	ReviewCount int
	Featured    int
	AgeRange    []string
	CreatedAt   time.Time
	Attributes  map[string]string
}

// EffectivePrice is the unit price after applying the percentage discount.
// Price-range filtering and price sorting operate on this value.
func (p Product) EffectivePrice() float64 {
	return money.ApplyDiscount(p.Price, p.Discount)
}

// PrimaryImage returns the display image, the first of the ordered set.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

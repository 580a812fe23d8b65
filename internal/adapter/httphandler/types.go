package httphandler

import (
	"time"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/pkg/money"
)

type (
	Product struct {
		ID             string            `json:"id"`
		Name           string            `json:"name"`
		Description    string            `json:"description"`
		Price          float64           `json:"price"`
		Discount       int               `json:"discount"`
		EffectivePrice float64           `json:"effectivePrice"`
		Images         []string          `json:"images"`
		Category       string            `json:"category"`
		Stock          int               `json:"stock"`
		Rating         float64           `json:"rating"`
		ReviewCount    int               `json:"reviewCount"`
		Featured       int               `json:"featured"`
		AgeRange       []string          `json:"ageRange"`
		CreatedAt      time.Time         `json:"createdAt"`
		Attributes     map[string]string `json:"attributes,omitempty"`
	}

	CatalogPage struct {
		Products []Product `json:"products"`
		Page     int       `json:"page"`
		Total    int       `json:"total"`
		HasMore  bool      `json:"hasMore"`
	}

	ProductDetail struct {
		Product Product   `json:"product"`
		Related []Product `json:"related"`
	}
)

// FilterQuery mirrors the storefront's filter controls.
type FilterQuery struct {
	Category string   `json:"category" validate:"omitempty"`
	MinPrice *float64 `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"maxPrice" validate:"omitempty,gte=0"`
	Search   string   `json:"search"`
	Ages     []string `json:"ages" validate:"dive,oneof=Gatito Adulto Senior"`
	Sort     string   `json:"sort" validate:"omitempty,oneof=featured price-asc price-desc rating-desc newest"`
}

type (
	CartLine struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Image    string  `json:"image"`
		Quantity int     `json:"quantity"`
	}

	Cart struct {
		Lines []CartLine `json:"lines"`
		Total float64    `json:"total"`
	}

	AddCartItem struct {
		ProductID string `json:"productId" validate:"required"`
		Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
	}

	UpdateCartItem struct {
		Quantity int `json:"quantity"`
	}

	OrderSummary struct {
		Subtotal          float64 `json:"subtotal"`
		Shipping          float64 `json:"shipping"`
		Tax               float64 `json:"tax"`
		Total             float64 `json:"total"`
		FreeShipping      bool    `json:"freeShipping"`
		ToFreeShipping    float64 `json:"toFreeShipping"`
		FormattedSubtotal string  `json:"formattedSubtotal"`
		FormattedShipping string  `json:"formattedShipping"`
		FormattedTax      string  `json:"formattedTax"`
		FormattedTotal    string  `json:"formattedTotal"`
	}
)

func toProductDTO(p domain.Product) Product {
	return Product{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Discount:       p.Discount,
		EffectivePrice: p.EffectivePrice(),
		Images:         p.Images,
		Category:       p.Category,
		Stock:          p.Stock,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Featured:       p.Featured,
		AgeRange:       p.AgeRange,
		CreatedAt:      p.CreatedAt,
		Attributes:     p.Attributes,
	}
}

func toProductDTOs(ps []domain.Product) []Product {
	dtos := make([]Product, len(ps))
	for i, p := range ps {
		dtos[i] = toProductDTO(p)
	}
	return dtos
}

func toCatalogPageDTO(p domain.CatalogPage) CatalogPage {
	return CatalogPage{
		Products: toProductDTOs(p.Products),
		Page:     p.Page,
		Total:    p.Total,
		HasMore:  p.HasMore,
	}
}

func toFilterSpec(q FilterQuery) domain.FilterSpec {
	return domain.FilterSpec{
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Search:   q.Search,
		Ages:     q.Ages,
		Sort:     domain.SortOrder(q.Sort),
	}
}

func toCartDTO(lines []domain.CartLine, total float64) Cart {
	c := Cart{Lines: make([]CartLine, len(lines)), Total: total}
	for i, l := range lines {
		c.Lines[i] = CartLine{
			ID:       l.ID,
			Name:     l.Name,
			Price:    l.Price,
			Image:    l.Image,
			Quantity: l.Quantity,
		}
	}
	return c
}

func toOrderSummaryDTO(s domain.OrderSummary) OrderSummary {
	return OrderSummary{
		Subtotal:          s.Subtotal,
		Shipping:          s.Shipping,
		Tax:               s.Tax,
		Total:             s.Total,
		FreeShipping:      s.FreeShipping,
		ToFreeShipping:    s.ToFreeShipping,
		FormattedSubtotal: money.Format(s.Subtotal),
		FormattedShipping: money.Format(s.Shipping),
		FormattedTax:      money.Format(s.Tax),
		FormattedTotal:    money.Format(s.Total),
	}
}

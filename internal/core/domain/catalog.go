package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCatalogUnavailable = errors.New("catalog is not loaded")
)

type SortOrder string

const (
	SortFeatured   SortOrder = "featured"
	SortPriceAsc   SortOrder = "price-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortRatingDesc SortOrder = "rating-desc"
	SortNewest     SortOrder = "newest"
)

// A FilterSpec is the set of user-chosen catalog query parameters.
// Nil price bounds are open-ended.
type FilterSpec struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Ages     []string
	Sort     SortOrder
}

// A CatalogPage is the visible slice of matching products. Products is
// cumulative over pages, matching the storefront's load-more semantics.
type CatalogPage struct {
	Products []Product
	Page     int
	Total    int
	HasMore  bool
}

package port

import (
	"context"

	"github.com/felino/storefront/internal/core/domain"
)

// Inbound ports, implemented by the core services.

type CartOperator interface {
	AddProduct(ctx context.Context, p domain.Product, quantity int)
	RemoveProduct(ctx context.Context, id string)
	SetQuantity(ctx context.Context, id string, quantity int)
	Clear(ctx context.Context)
	Lines(ctx context.Context) []domain.CartLine
	TotalPrice(ctx context.Context) float64
	Summary(ctx context.Context) domain.OrderSummary
}

type CatalogBrowser interface {
	SetFilters(ctx context.Context, spec domain.FilterSpec)
	LoadMore(ctx context.Context)
	CurrentPage(ctx context.Context) (domain.CatalogPage, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, id string) (domain.Product, error)
	Related(ctx context.Context, id string) ([]domain.Product, error)
}

// Outbound ports, implemented by the adapters.

// CartStorage is the durable key-value device storage. Read reports
// ok=false when the key was never written.
type CartStorage interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// Notifier delivers fire-and-forget user notifications.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// CatalogSource supplies the full immutable product collection,
// possibly after a delay.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// CatalogUpdater accepts product updates from a streaming source.
type CatalogUpdater interface {
	ApplyCatalogUpdate(ctx context.Context, ps []domain.Product) error
}

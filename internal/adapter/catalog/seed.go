package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
)

var _ port.CatalogSource = (*SeedCatalog)(nil)

type seedProduct struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Discount    int               `json:"discount"`
	Images      []string          `json:"images"`
	Category    string            `json:"category"`
	Stock       int               `json:"stock"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"reviewCount"`
	Featured    int               `json:"featured"`
	AgeRange    []string          `json:"ageRange"`
	CreatedAt   time.Time         `json:"createdAt"`
	Attributes  map[string]string `json:"attributes"`
}

// A SeedCatalog supplies the demo product collection from a JSON file,
// after a configurable delay imitating a slow upstream.
type SeedCatalog struct {
	path  string
	delay time.Duration
}

func NewSeedCatalog(path string, delay time.Duration) SeedCatalog {
	return SeedCatalog{path: path, delay: delay}
}

// Fetch returns the full product collection or a load error. The delay is
// interruptible through the context.
func (c SeedCatalog) Fetch(ctx context.Context) ([]domain.Product, error) {
	const op = "SeedCatalog.Fetch"
	log := slog.With("op", op)

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-timer.C:
		}
	}

	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var seed []seedProduct
	if err := json.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, len(seed))
	for i, v := range seed {
		ps[i] = domain.Product{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Price:       v.Price,
			Discount:    v.Discount,
			Images:      v.Images,
			Category:    v.Category,
			Stock:       v.Stock,
			Rating:      v.Rating,
			ReviewCount: v.ReviewCount,
			Featured:    v.Featured,
			AgeRange:    v.AgeRange,
			CreatedAt:   v.CreatedAt,
			Attributes:  v.Attributes,
		}
	}

	log.Info("seed catalog loaded", "nProducts", len(ps))
	return ps, nil
}

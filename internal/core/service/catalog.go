package service

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
)

const (
	pageSize      = 12
	featuredLimit = 8
	relatedLimit  = 4
)

var _ port.CatalogBrowser = (*CatalogService)(nil)
var _ port.CatalogUpdater = (*CatalogService)(nil)

// A CatalogService transforms the in-memory product catalog and the current
// browse state (filter spec + page) into the visible slice of results.
//
// The catalog snapshot is replaced by asynchronous loads. Replacements are
// guarded by a request generation number so a stale load can never
// overwrite a newer one.
type CatalogService struct {
	mu         sync.Mutex
	products   []domain.Product
	loaded     bool
	issuedGen  uint64
	appliedGen uint64

	spec domain.FilterSpec
	page int
}

func NewCatalogService() *CatalogService {
	return &CatalogService{page: 1}
}

// BeginLoad reserves a generation number for a catalog load request.
// The caller passes it back to ReplaceCatalog when the load completes.
func (s *CatalogService) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedGen++
	return s.issuedGen
}

// ReplaceCatalog installs a freshly loaded catalog snapshot. Loads that
// completed out of order are discarded: only a generation newer than the
// last applied one wins.
func (s *CatalogService) ReplaceCatalog(
	ctx context.Context, gen uint64, ps []domain.Product,
) bool {
	const op = "CatalogService.ReplaceCatalog"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.appliedGen {
		log.Warn("discarding stale catalog load",
			"gen", gen, "appliedGen", s.appliedGen)
		return false
	}

	s.products = ps
	s.loaded = true
	s.appliedGen = gen
	log.Info("catalog replaced", "nProducts", len(ps), "gen", gen)
	return true
}

// ApplyCatalogUpdate upserts streamed products into the snapshot by id.
func (s *CatalogService) ApplyCatalogUpdate(
	ctx context.Context, ps []domain.Product,
) error {
	const op = "CatalogService.ApplyCatalogUpdate"

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range ps {
		i := slices.IndexFunc(s.products, func(v domain.Product) bool {
			return v.ID == p.ID
		})
		if i >= 0 {
			s.products[i] = p
		} else {
			s.products = append(s.products, p)
		}
	}
	s.loaded = true

	slog.With("op", op).Info("catalog updated", "nProducts", len(ps))
	return nil
}

// SetFilters replaces the browse filters and resets pagination to the
// first page, so a narrowed filter can never read past the end of the new
// filtered set.
func (s *CatalogService) SetFilters(_ context.Context, spec domain.FilterSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = spec
	s.page = 1
}

func (s *CatalogService) LoadMore(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page++
}

// CurrentPage runs the filter/sort/paginate pipeline against the snapshot.
// The returned products are cumulative: page N holds the first N*12 matches.
func (s *CatalogService) CurrentPage(context.Context) (domain.CatalogPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.CatalogPage{}, domain.ErrCatalogUnavailable
	}

	matched := filterProducts(s.products, s.spec)
	sortProducts(matched, s.spec.Sort)

	last := s.page * pageSize
	hasMore := last < len(matched)
	if !hasMore {
		last = len(matched)
	}

	return domain.CatalogPage{
		Products: matched[:last],
		Page:     s.page,
		Total:    len(matched),
		HasMore:  hasMore,
	}, nil
}

// Featured is independent of the browse state: products with a positive
// featured score, most prominent first, capped at eight.
func (s *CatalogService) Featured(context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, domain.ErrCatalogUnavailable
	}

	var featured []domain.Product
	for _, p := range s.products {
		if p.Featured > 0 {
			featured = append(featured, p)
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].Featured > featured[j].Featured
	})

	if len(featured) > featuredLimit {
		featured = featured[:featuredLimit]
	}
	return featured, nil
}

func (s *CatalogService) ProductByID(
	_ context.Context, id string,
) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.Product{}, domain.ErrCatalogUnavailable
	}

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Related lists other products from the same category, capped at four.
func (s *CatalogService) Related(
	ctx context.Context, id string,
) ([]domain.Product, error) {
	p, err := s.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var related []domain.Product
	for _, v := range s.products {
		if v.Category == p.Category && v.ID != p.ID {
			related = append(related, v)
			if len(related) == relatedLimit {
				break
			}
		}
	}
	return related, nil
}

func filterProducts(ps []domain.Product, spec domain.FilterSpec) []domain.Product {
	matched := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if matchesSpec(p, spec) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesSpec(p domain.Product, spec domain.FilterSpec) bool {
	if spec.Category != "" && p.Category != spec.Category {
		return false
	}

	price := p.EffectivePrice()
	if spec.MinPrice != nil && price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && price > *spec.MaxPrice {
		return false
	}

	if spec.Search != "" {
		term := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	if len(spec.Ages) != 0 && !intersects(p.AgeRange, spec.Ages) {
		return false
	}
	return true
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

// sortProducts orders matched products in place. The sort is stable so
// re-querying with unchanged inputs keeps tie order deterministic.
func sortProducts(ps []domain.Product, order domain.SortOrder) {
	var less func(a, b domain.Product) bool

	switch order {
	case domain.SortPriceAsc:
		less = func(a, b domain.Product) bool {
			return a.EffectivePrice() < b.EffectivePrice()
		}
	case domain.SortPriceDesc:
		less = func(a, b domain.Product) bool {
			return a.EffectivePrice() > b.EffectivePrice()
		}
	case domain.SortRatingDesc:
		less = func(a, b domain.Product) bool {
			return a.Rating > b.Rating
		}
	case domain.SortNewest:
		less = func(a, b domain.Product) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	default:
		less = func(a, b domain.Product) bool {
			return a.Featured > b.Featured
		}
	}

	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}

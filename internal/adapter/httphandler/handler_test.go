package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/felino/storefront/internal/adapter/httphandler"
	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (s *memStorage) Read(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStorage) Write(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, domain.Notification) error {
	return nil
}

func catalogProducts() []domain.Product {
	return []domain.Product{
		{
			ID:       "product-1",
			Name:     "Alimento Premium para Gatos",
			Price:    22.99,
			Discount: 10,
			Images:   []string{"front.jpeg"},
			Category: "alimentos",
			Featured: 9,
			Rating:   4.7,
		},
		{
			ID:       "product-2",
			Name:     "Cama Donut Suave",
			Price:    29.99,
			Images:   []string{"donut.jpeg"},
			Category: "camas",
			Featured: 3,
			Rating:   4.5,
		},
	}
}

func newTestHandler(t *testing.T, loaded bool) http.Handler {
	t.Helper()

	catalogSvc := service.NewCatalogService()
	if loaded {
		gen := catalogSvc.BeginLoad()
		require.True(t,
			catalogSvc.ReplaceCatalog(t.Context(), gen, catalogProducts()))
	}

	cartSvc := service.NewCartService(
		t.Context(), newMemStorage(), nopNotifier{}, "felino-cart",
	)

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, catalogSvc)
	httphandler.RegisterCart(mux, cartSvc, catalogSvc)
	return httphandler.AllowJSON(mux)
}

func doJSON(
	t *testing.T, h http.Handler, method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestCatalogEndpoints(t *testing.T) {
	t.Run("GetPage", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodGet, "/v1/catalog", "")
		require.Equal(t, http.StatusOK, w.Code)

		var page httphandler.CatalogPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("CatalogNotLoaded", func(t *testing.T) {
		h := newTestHandler(t, false)

		w := doJSON(t, h, http.MethodGet, "/v1/catalog", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("PutFiltersNarrowsResults", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodPut, "/v1/catalog/filters",
			`{"category":"camas"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var page httphandler.CatalogPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Products, 1)
		assert.Equal(t, "product-2", page.Products[0].ID)
	})

	t.Run("PutFiltersInvalidSort", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodPut, "/v1/catalog/filters",
			`{"sort":"alphabetical"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetFeatured", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodGet, "/v1/catalog/featured", "")
		require.Equal(t, http.StatusOK, w.Code)

		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		require.Len(t, ps, 2)
		assert.Equal(t, "product-1", ps[0].ID)
	})

	t.Run("GetProductDetail", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodGet, "/v1/catalog/products/product-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var detail httphandler.ProductDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, "Alimento Premium para Gatos", detail.Product.Name)
		assert.InDelta(t, 22.99*0.9, detail.Product.EffectivePrice, 1e-9)
		assert.Empty(t, detail.Related)
	})

	t.Run("GetProductNotFound", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodGet, "/v1/catalog/products/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("AddThenGet", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-1","quantity":2}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)

		var cart httphandler.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.InDelta(t, 45.98, cart.Total, 1e-9)
	})

	t.Run("AddDefaultsQuantityToOne", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-2"}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/cart", "")
		var cart httphandler.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"missing"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/cart", "")
		var cart httphandler.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		assert.Empty(t, cart.Lines)
	})

	t.Run("AddNegativeQuantity", func(t *testing.T) {
		h := newTestHandler(t, true)

		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-1","quantity":-2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateQuantityBelowOneKeepsLine", func(t *testing.T) {
		h := newTestHandler(t, true)

		doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-1","quantity":3}`)

		w := doJSON(t, h, http.MethodPut, "/v1/cart/items/product-1",
			`{"quantity":0}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/cart", "")
		var cart httphandler.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
	})

	t.Run("DeleteItemAndClear", func(t *testing.T) {
		h := newTestHandler(t, true)

		doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-1"}`)
		doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-2"}`)

		w := doJSON(t, h, http.MethodDelete, "/v1/cart/items/product-1", "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodDelete, "/v1/cart", "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/cart", "")
		var cart httphandler.Cart
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		assert.Empty(t, cart.Lines)
	})

	t.Run("Summary", func(t *testing.T) {
		h := newTestHandler(t, true)

		doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"productId":"product-1","quantity":3}`)

		w := doJSON(t, h, http.MethodGet, "/v1/cart/summary", "")
		require.Equal(t, http.StatusOK, w.Code)

		var s httphandler.OrderSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
		assert.InDelta(t, 68.97, s.Subtotal, 1e-9)
		assert.True(t, s.FreeShipping)
		assert.NotEmpty(t, s.FormattedTotal)
	})
}

func TestAllowJSON(t *testing.T) {
	h := newTestHandler(t, true)

	r := httptest.NewRequest(http.MethodPost, "/v1/cart/items",
		strings.NewReader(`{"productId":"product-1"}`))
	r.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GET  /v1/catalog                  current page of the browse state
// PUT  /v1/catalog/filters          set filters, resets to the first page
// POST /v1/catalog/page             load one more page
// GET  /v1/catalog/featured         promotional top list
// GET  /v1/catalog/products/{id}    product detail with related products

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/catalog", h.GetPage)
	mux.HandleFunc("PUT /v1/catalog/filters", h.PutFilters)
	mux.HandleFunc("POST /v1/catalog/page", h.PostLoadMore)
	mux.HandleFunc("GET /v1/catalog/featured", h.GetFeatured)
	mux.HandleFunc("GET /v1/catalog/products/{id}", h.GetProduct)
}

func (h CatalogHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetPage"
	h.writePage(w, r, op)
}

func (h CatalogHandler) PutFilters(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PutFilters"
	log := slog.With("op", op)

	var q FilterQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := validate.Struct(q); err != nil {
		http.Error(w, "invalid filter values", http.StatusBadRequest)
		log.Warn("failed to validate filters", "err", err)
		return
	}

	h.browser.SetFilters(r.Context(), toFilterSpec(q))
	h.writePage(w, r, op)
}

func (h CatalogHandler) PostLoadMore(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostLoadMore"

	h.browser.LoadMore(r.Context())
	h.writePage(w, r, op)
}

func (h CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFeatured"
	log := slog.With("op", op)

	ps, err := h.browser.Featured(r.Context())
	if err != nil {
		writeCatalogErr(w, log, err)
		return
	}
	writeJSON(w, log, toProductDTOs(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id := r.PathValue("id")

	p, err := h.browser.ProductByID(r.Context(), id)
	if err != nil {
		writeCatalogErr(w, log, err)
		return
	}

	related, err := h.browser.Related(r.Context(), id)
	if err != nil {
		writeCatalogErr(w, log, err)
		return
	}

	detail := ProductDetail{
		Product: toProductDTO(p),
		Related: toProductDTOs(related),
	}
	writeJSON(w, log, detail)
}

func (h CatalogHandler) writePage(
	w http.ResponseWriter, r *http.Request, op string,
) {
	log := slog.With("op", op)

	page, err := h.browser.CurrentPage(r.Context())
	if err != nil {
		writeCatalogErr(w, log, err)
		return
	}
	writeJSON(w, log, toCatalogPageDTO(page))
}

func writeCatalogErr(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrCatalogUnavailable):
		http.Error(w, "catalog is loading", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	log.Warn("catalog request failed", "err", err)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

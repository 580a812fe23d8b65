package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
)

// GET    /v1/cart              cart lines and total
// POST   /v1/cart/items        add-to-cart by product id
// PUT    /v1/cart/items/{id}   update quantity
// DELETE /v1/cart/items/{id}   remove line
// DELETE /v1/cart              clear cart
// GET    /v1/cart/summary      order summary with formatted prices

type CartHandler struct {
	cart    port.CartOperator
	browser port.CatalogBrowser
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartOperator, browser port.CatalogBrowser,
) {
	h := CartHandler{cart, browser}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
	mux.HandleFunc("GET /v1/cart/summary", h.GetSummary)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	ctx := r.Context()
	c := toCartDTO(h.cart.Lines(ctx), h.cart.TotalPrice(ctx))
	writeJSON(w, log, c)
}

// PostItem resolves the product from the catalog and adds it to the cart.
// The quantity defaults to one when omitted.
func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid cart item", http.StatusBadRequest)
		log.Warn("failed to validate cart item", "err", err)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.browser.ProductByID(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
		} else {
			http.Error(w, "catalog is loading", http.StatusServiceUnavailable)
		}
		log.Warn("failed to resolve product", "err", err)
		return
	}

	h.cart.AddProduct(r.Context(), p, req.Quantity)
	w.WriteHeader(http.StatusNoContent)

	log.Info("item added", "productID", req.ProductID, "quantity", req.Quantity)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	var req UpdateCartItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	// Quantities below one are left to the core, which keeps them a no-op.
	h.cart.SetQuantity(r.Context(), r.PathValue("id"), req.Quantity)
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveProduct(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetSummary"
	log := slog.With("op", op)

	s := h.cart.Summary(r.Context())
	writeJSON(w, log, toOrderSummaryDTO(s))
}

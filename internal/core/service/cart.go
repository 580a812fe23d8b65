package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/port"
)

var _ port.CartOperator = (*CartService)(nil)

// A CartService holds the authoritative set of cart lines for the
// storefront session and keeps it durable: every mutation is followed by a
// synchronous write of the full serialized line list under a fixed key.
// Storage failures are logged and swallowed, they never reach the caller.
type CartService struct {
	mu         sync.Mutex
	lines      []domain.CartLine
	storage    port.CartStorage
	notifier   port.Notifier
	storageKey string
}

func NewCartService(
	ctx context.Context,
	storage port.CartStorage,
	notifier port.Notifier,
	storageKey string,
) *CartService {
	s := &CartService{
		storage:    storage,
		notifier:   notifier,
		storageKey: storageKey,
	}
	s.restore(ctx)
	return s
}

// restore rehydrates the cart from storage. A missing key, a read failure
// or corrupt data all fall back to an empty cart; startup never fails here.
func (s *CartService) restore(ctx context.Context) {
	const op = "CartService.restore"
	log := slog.With("op", op)

	value, ok, err := s.storage.Read(ctx, s.storageKey)
	if err != nil {
		log.Error("failed to read stored cart", "err", err)
		return
	}
	if !ok {
		return
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(value), &lines); err != nil {
		log.Error("stored cart is corrupt, starting empty", "err", err)
		return
	}
	s.lines = lines
	log.Info("cart restored", "nLines", len(lines))
}

// AddProduct puts the product into the cart. When a line for the product
// already exists its quantity is incremented instead of duplicating the
// line. Stock is not validated here.
func (s *CartService) AddProduct(
	ctx context.Context, p domain.Product, quantity int,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.lineIndex(p.ID); ok {
		s.lines[i].Quantity += quantity
		s.persist(ctx)
		s.notify(ctx, domain.SeveritySuccess,
			fmt.Sprintf("Se actualizó la cantidad de %s en tu carrito", p.Name))
		return
	}

	s.lines = append(s.lines, domain.NewCartLine(p, quantity))
	s.persist(ctx)
	s.notify(ctx, domain.SeveritySuccess,
		fmt.Sprintf("Se agregó %s a tu carrito", p.Name))
}

// RemoveProduct deletes the line matching id. An unknown id is a no-op and
// emits nothing.
func (s *CartService) RemoveProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.lineIndex(id)
	if !ok {
		return
	}

	name := s.lines[i].Name
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist(ctx)
	s.notify(ctx, domain.SeverityInfo,
		fmt.Sprintf("Se eliminó %s de tu carrito", name))
}

// SetQuantity replaces the line's quantity. Quantities below one leave the
// line untouched: the storefront keeps this a silent no-op instead of
// removing the line.
func (s *CartService) SetQuantity(ctx context.Context, id string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.lineIndex(id)
	if !ok {
		return
	}

	s.lines[i].Quantity = quantity
	s.persist(ctx)
}

func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
	s.notify(ctx, domain.SeverityInfo, "Se ha vaciado el carrito")
}

func (s *CartService) Lines(context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// TotalPrice sums price*quantity over all lines using the unit prices
// captured at add time.
func (s *CartService) TotalPrice(context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *CartService) Summary(context.Context) domain.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewOrderSummary(s.totalLocked())
}

func (s *CartService) totalLocked() (total float64) {
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *CartService) lineIndex(id string) (int, bool) {
	for i, l := range s.lines {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *CartService) persist(ctx context.Context) {
	const op = "CartService.persist"
	log := slog.With("op", op)

	b, err := json.Marshal(s.lines)
	if err != nil {
		log.Error("failed to serialize cart", "err", err)
		return
	}

	if err := s.storage.Write(ctx, s.storageKey, string(b)); err != nil {
		log.Error("failed to store cart", "err", err)
	}
}

func (s *CartService) notify(
	ctx context.Context, severity domain.Severity, message string,
) {
	const op = "CartService.notify"

	n := domain.Notification{Severity: severity, Message: message}
	if err := s.notifier.Notify(ctx, n); err != nil {
		slog.With("op", op).Error("failed to notify", "err", err)
	}
}

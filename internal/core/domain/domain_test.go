package domain_test

import (
	"testing"

	"github.com/felino/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProductEffectivePrice(t *testing.T) {
	t.Run("NoDiscount", func(t *testing.T) {
		p := domain.Product{Price: 22.99}
		assert.InDelta(t, 22.99, p.EffectivePrice(), 1e-9)
	})

	t.Run("WithDiscount", func(t *testing.T) {
		p := domain.Product{Price: 25, Discount: 20}
		assert.InDelta(t, 20, p.EffectivePrice(), 1e-9)
	})

	t.Run("FullDiscount", func(t *testing.T) {
		p := domain.Product{Price: 25, Discount: 100}
		assert.InDelta(t, 0, p.EffectivePrice(), 1e-9)
	})
}

func TestProductPrimaryImage(t *testing.T) {
	p := domain.Product{Images: []string{"first.jpeg", "second.jpeg"}}
	assert.Equal(t, "first.jpeg", p.PrimaryImage())

	assert.Empty(t, domain.Product{}.PrimaryImage())
}

func TestNewCartLine(t *testing.T) {
	p := domain.Product{
		ID:       "product-1",
		Name:     "Transportín Premium",
		Price:    39.99,
		Discount: 10,
		Images:   []string{"front.jpeg", "side.jpeg"},
	}

	l := domain.NewCartLine(p, 2)

	assert.Equal(t, "product-1", l.ID)
	assert.Equal(t, "front.jpeg", l.Image)
	assert.Equal(t, 2, l.Quantity)
	// the snapshot keeps the pre-discount unit price
	assert.InDelta(t, 39.99, l.Price, 1e-9)
	assert.InDelta(t, 79.98, l.Subtotal(), 1e-9)
}

func TestNewOrderSummary(t *testing.T) {
	t.Run("BelowFreeShippingThreshold", func(t *testing.T) {
		s := domain.NewOrderSummary(45.01)

		assert.False(t, s.FreeShipping)
		assert.InDelta(t, 4.99, s.Shipping, 1e-9)
		assert.InDelta(t, 4.99, s.ToFreeShipping, 1e-9)
		assert.InDelta(t, 45.01*0.16, s.Tax, 1e-9)
		assert.InDelta(t, 45.01+4.99+45.01*0.16, s.Total, 1e-9)
	})

	t.Run("ThresholdIsInclusive", func(t *testing.T) {
		s := domain.NewOrderSummary(50)

		assert.True(t, s.FreeShipping)
		assert.Zero(t, s.Shipping)
		assert.Zero(t, s.ToFreeShipping)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		s := domain.NewOrderSummary(0)
		assert.Zero(t, s.Subtotal)
		assert.Zero(t, s.Tax)
		assert.InDelta(t, 4.99, s.Shipping, 1e-9)
	})
}

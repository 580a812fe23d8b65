package money_test

import (
	"strings"
	"testing"

	"github.com/felino/storefront/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	got := money.Format(12.5)
	assert.True(t, strings.HasPrefix(got, "$"), got)
	assert.Contains(t, got, "50")
}

func TestApplyDiscount(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		assert.InDelta(t, 25, money.ApplyDiscount(25, 0), 1e-9)
	})

	t.Run("Percentage", func(t *testing.T) {
		assert.InDelta(t, 20, money.ApplyDiscount(25, 20), 1e-9)
	})

	t.Run("NegativeIgnored", func(t *testing.T) {
		assert.InDelta(t, 25, money.ApplyDiscount(25, -10), 1e-9)
	})
}

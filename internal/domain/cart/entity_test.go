//go:build unit

package cart_test

import (
	"testing"

	"tripfair/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, serviceID string, quantity int, unitPrice int64) cart.LineItem {
	t.Helper()
	item, err := cart.NewLineItem(serviceID, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func mustPackage(t *testing.T, id string, serviceIDs []string, pct float64) *cart.Package {
	t.Helper()
	pkg, err := cart.NewPackage(id, id, serviceIDs, pct)
	require.NoError(t, err)
	return pkg
}

func TestNewLineItem(t *testing.T) {
	t.Run("total is unit price times quantity", func(t *testing.T) {
		item := mustItem(t, "dj-set", 3, 5000)
		assert.Equal(t, int64(15000), item.TotalPrice())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := cart.NewLineItem("dj-set", 0, 5000)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		_, err = cart.NewLineItem("dj-set", -1, 5000)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})
}

func TestNewPackage(t *testing.T) {
	t.Run("rejects empty bundle", func(t *testing.T) {
		_, err := cart.NewPackage("p", "P", nil, 0.1)
		assert.ErrorIs(t, err, cart.ErrEmptyPackage)
	})

	t.Run("rejects out-of-range discount", func(t *testing.T) {
		_, err := cart.NewPackage("p", "P", []string{"dj-set"}, 1.0)
		assert.ErrorIs(t, err, cart.ErrInvalidDiscountPercent)

		_, err = cart.NewPackage("p", "P", []string{"dj-set"}, -0.1)
		assert.ErrorIs(t, err, cart.ErrInvalidDiscountPercent)
	})

	t.Run("deduplicates bundled services", func(t *testing.T) {
		pkg := mustPackage(t, "p", []string{"dj-set", "dj-set", "lighting"}, 0.1)
		assert.Len(t, pkg.ServiceIDs(), 2)
	})
}

func TestEligibility(t *testing.T) {
	pkg := mustPackage(t, "party-bundle", []string{"dj-set", "lighting"}, 0.15)

	t.Run("eligible when cart holds every bundled service", func(t *testing.T) {
		assert.True(t, pkg.EligibleFor([]string{"dj-set", "lighting", "catering"}))
	})

	t.Run("not eligible with a bundled service missing", func(t *testing.T) {
		assert.False(t, pkg.EligibleFor([]string{"dj-set", "catering"}))
	})

	t.Run("quantities are irrelevant", func(t *testing.T) {
		basket := cart.NewCart([]cart.LineItem{
			mustItem(t, "dj-set", 5, 5000),
			mustItem(t, "lighting", 1, 3000),
		})
		assert.True(t, pkg.EligibleFor(basket.ServiceIDs()))
	})
}

func TestApplyPackage(t *testing.T) {
	newBasket := func(t *testing.T) *cart.Cart {
		return cart.NewCart([]cart.LineItem{
			mustItem(t, "dj-set", 1, 50000),
			mustItem(t, "lighting", 1, 30000),
			mustItem(t, "catering", 2, 10000),
		})
	}

	t.Run("applies an eligible package", func(t *testing.T) {
		basket := newBasket(t)
		pkg := mustPackage(t, "party-bundle", []string{"dj-set", "lighting"}, 0.15)

		require.NoError(t, basket.ApplyPackage(pkg))
		assert.Equal(t, pkg, basket.AppliedPackage())
	})

	t.Run("rejects an ineligible package", func(t *testing.T) {
		basket := newBasket(t)
		pkg := mustPackage(t, "spa-bundle", []string{"spa", "massage"}, 0.20)

		assert.ErrorIs(t, basket.ApplyPackage(pkg), cart.ErrPackageIneligible)
		assert.Nil(t, basket.AppliedPackage())
	})

	t.Run("a second package replaces the first", func(t *testing.T) {
		basket := newBasket(t)
		first := mustPackage(t, "party-bundle", []string{"dj-set", "lighting"}, 0.15)
		second := mustPackage(t, "full-event", []string{"dj-set", "lighting", "catering"}, 0.25)

		require.NoError(t, basket.ApplyPackage(first))
		require.NoError(t, basket.ApplyPackage(second))
		assert.Equal(t, second, basket.AppliedPackage())
	})

	t.Run("removing a bundled item clears the package", func(t *testing.T) {
		basket := newBasket(t)
		pkg := mustPackage(t, "party-bundle", []string{"dj-set", "lighting"}, 0.15)
		require.NoError(t, basket.ApplyPackage(pkg))

		require.NoError(t, basket.RemoveItem("lighting"))
		assert.Nil(t, basket.AppliedPackage())
	})

	t.Run("removing an unrelated item keeps the package", func(t *testing.T) {
		basket := newBasket(t)
		pkg := mustPackage(t, "party-bundle", []string{"dj-set", "lighting"}, 0.15)
		require.NoError(t, basket.ApplyPackage(pkg))

		require.NoError(t, basket.RemoveItem("catering"))
		assert.Equal(t, pkg, basket.AppliedPackage())
	})

	t.Run("removing an unknown item fails", func(t *testing.T) {
		basket := newBasket(t)
		assert.ErrorIs(t, basket.RemoveItem("fireworks"), cart.ErrItemNotInCart)
	})
}

func TestComputeTotals(t *testing.T) {
	t.Run("no package applied", func(t *testing.T) {
		basket := cart.NewCart([]cart.LineItem{
			mustItem(t, "dj-set", 1, 50000),
			mustItem(t, "lighting", 1, 30000),
		})

		totals := basket.ComputeTotals()
		assert.Equal(t, int64(80000), totals.Subtotal)
		assert.Zero(t, totals.Discount)
		assert.Equal(t, int64(6000), totals.Tax) // 80000 * 0.075
		assert.Equal(t, int64(86000), totals.Total)
	})

	t.Run("tax is charged on the discounted subtotal", func(t *testing.T) {
		basket := cart.NewCart([]cart.LineItem{
			mustItem(t, "dj-set", 1, 50000),
			mustItem(t, "lighting", 1, 30000),
		})
		pkg := mustPackage(t, "party-bundle", []string{"dj-set", "lighting"}, 0.15)
		require.NoError(t, basket.ApplyPackage(pkg))

		totals := basket.ComputeTotals()
		assert.Equal(t, int64(80000), totals.Subtotal)
		assert.Equal(t, int64(12000), totals.Discount) // 80000 * 0.15
		assert.Equal(t, int64(5100), totals.Tax)       // 68000 * 0.075
		assert.Equal(t, int64(73100), totals.Total)
	})

	t.Run("empty cart totals to zero", func(t *testing.T) {
		totals := cart.NewCart(nil).ComputeTotals()
		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.Total)
	})
}

//go:build unit

package availability_test

import (
	"testing"
	"time"

	"tripfair/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestComputeDynamicPrice(t *testing.T) {
	cases := []struct {
		name           string
		rate           float64
		isWeekend      bool
		wantPrice      int64
		wantMultiplier float64
	}{
		{name: "scarce inventory", rate: 0.10, wantPrice: 15000, wantMultiplier: 1.5},
		{name: "just below scarce bound", rate: 0.199, wantPrice: 15000, wantMultiplier: 1.5},
		{name: "scarce bound is exclusive", rate: 0.20, wantPrice: 12500, wantMultiplier: 1.25},
		{name: "tight inventory", rate: 0.30, wantPrice: 12500, wantMultiplier: 1.25},
		{name: "tight bound is exclusive", rate: 0.40, wantPrice: 10000, wantMultiplier: 1.0},
		{name: "plenty of inventory", rate: 0.90, wantPrice: 10000, wantMultiplier: 1.0},
		{name: "weekend on scarce", rate: 0.10, isWeekend: true, wantPrice: 18000, wantMultiplier: 1.8},
		{name: "weekend on tight", rate: 0.30, isWeekend: true, wantPrice: 15000, wantMultiplier: 1.5},
		{name: "weekend alone", rate: 0.90, isWeekend: true, wantPrice: 12000, wantMultiplier: 1.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := availability.ComputeDynamicPrice(10000, tc.rate, tc.isWeekend)
			assert.Equal(t, tc.wantPrice, got.Price)
			assert.InDelta(t, tc.wantMultiplier, got.Multiplier, 1e-9)
			assert.InDelta(t, (tc.wantMultiplier-1)*100, got.SurgePercent, 1e-9)
		})
	}
}

func TestSnapshot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := availability.NewSnapshot(day, 10, 3)
		require.NoError(t, err)

		assert.Equal(t, 7, s.AvailableUnits())
		assert.Equal(t, 10, s.TotalUnits())
		assert.InDelta(t, 0.3, s.BookingRate(), 1e-9)
		assert.InDelta(t, 0.7, s.AvailabilityRate(), 1e-9)
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := availability.NewSnapshot(day, 0, 0)
		assert.ErrorIs(t, err, availability.ErrInvalidUnits)
	})

	t.Run("overbooking clamps availability to zero", func(t *testing.T) {
		s, err := availability.NewSnapshot(day, 10, 15)
		require.NoError(t, err)

		assert.Zero(t, s.AvailableUnits())
		assert.Equal(t, 1.0, s.BookingRate())
	})

	t.Run("can accommodate within remaining units", func(t *testing.T) {
		s, err := availability.NewSnapshot(day, 10, 8)
		require.NoError(t, err)

		assert.True(t, s.CanAccommodate(1))
		assert.True(t, s.CanAccommodate(2))
		assert.False(t, s.CanAccommodate(3))
		assert.False(t, s.CanAccommodate(0))
		assert.False(t, s.CanAccommodate(-1))
	})

	t.Run("unlimited snapshot reports sentinel capacity", func(t *testing.T) {
		s := availability.NewUnlimitedSnapshot(day)

		assert.Equal(t, availability.UnlimitedCapacity, s.AvailableUnits())
		assert.True(t, s.CanAccommodate(500))
		assert.Zero(t, s.BookingRate())
	})
}

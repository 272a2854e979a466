//go:build unit

package geo_test

import (
	"testing"

	"tripfair/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	cases := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "valid point", lat: 35.6762, lon: 139.6503},
		{name: "boundary poles", lat: 90, lon: 180},
		{name: "boundary negative", lat: -90, lon: -180},
		{name: "latitude too high", lat: 90.1, lon: 0, wantErr: true},
		{name: "latitude too low", lat: -90.1, lon: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lon: 180.1, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -180.1, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geo.NewPoint(tc.lat, tc.lon)
			if tc.wantErr {
				assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDistanceKm(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		p, err := geo.NewPoint(35.6762, 139.6503)
		require.NoError(t, err)
		assert.Zero(t, p.DistanceKm(p))
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		origin, err := geo.NewPoint(0, 0)
		require.NoError(t, err)
		east, err := geo.NewPoint(0, 1)
		require.NoError(t, err)

		// 6371 km * pi / 180
		assert.InDelta(t, 111.195, origin.DistanceKm(east), 0.01)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		tokyo, err := geo.NewPoint(35.6762, 139.6503)
		require.NoError(t, err)
		osaka, err := geo.NewPoint(34.6937, 135.5023)
		require.NoError(t, err)

		assert.InDelta(t, tokyo.DistanceKm(osaka), osaka.DistanceKm(tokyo), 1e-9)
		assert.InDelta(t, 400, tokyo.DistanceKm(osaka), 10)
	})
}

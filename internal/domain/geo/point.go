package geo

import (
	"errors"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Point is a WGS84 latitude/longitude pair.
type Point struct {
	lat float64
	lon float64
}

func NewPoint(lat, lon float64) (Point, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Point{}, ErrInvalidCoordinate
	}
	return Point{lat: lat, lon: lon}, nil
}

func (p Point) Lat() float64 { return p.lat }
func (p Point) Lon() float64 { return p.lon }

// DistanceKm returns the great-circle distance to another point in
// kilometers, via the haversine formula.
func (p Point) DistanceKm(other Point) float64 {
	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

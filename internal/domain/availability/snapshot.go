package availability

import (
	"errors"
	"time"
)

// UnlimitedCapacity is the sentinel unit count reported for service types
// that have no inventory limit.
const UnlimitedCapacity = 9999

var (
	ErrInvalidUnits = errors.New("total units must be positive")
	ErrOverbooked   = errors.New("available units exceed total units")
)

// Snapshot is the inventory picture of a service on a single date.
type Snapshot struct {
	date           time.Time
	totalUnits     int
	availableUnits int
}

func NewSnapshot(date time.Time, totalUnits, bookedUnits int) (Snapshot, error) {
	if totalUnits <= 0 {
		return Snapshot{}, ErrInvalidUnits
	}
	available := totalUnits - bookedUnits
	if available < 0 {
		available = 0
	}
	if available > totalUnits {
		return Snapshot{}, ErrOverbooked
	}
	return Snapshot{
		date:           date,
		totalUnits:     totalUnits,
		availableUnits: available,
	}, nil
}

// NewUnlimitedSnapshot reports an inventory-free service: always fully
// available at the sentinel capacity.
func NewUnlimitedSnapshot(date time.Time) Snapshot {
	return Snapshot{
		date:           date,
		totalUnits:     UnlimitedCapacity,
		availableUnits: UnlimitedCapacity,
	}
}

func (s Snapshot) Date() time.Time     { return s.date }
func (s Snapshot) TotalUnits() int     { return s.totalUnits }
func (s Snapshot) AvailableUnits() int { return s.availableUnits }

// BookingRate is the booked fraction of total units, always in [0, 1].
func (s Snapshot) BookingRate() float64 {
	return float64(s.totalUnits-s.availableUnits) / float64(s.totalUnits)
}

// AvailabilityRate is the complement of BookingRate.
func (s Snapshot) AvailabilityRate() float64 {
	return float64(s.availableUnits) / float64(s.totalUnits)
}

// CanAccommodate reports whether the requested quantity fits the remaining
// units.
func (s Snapshot) CanAccommodate(requestedQuantity int) bool {
	if requestedQuantity <= 0 {
		return false
	}
	return requestedQuantity <= s.availableUnits
}

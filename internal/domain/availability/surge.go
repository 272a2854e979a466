package availability

import "math"

// Surge step thresholds over the availability rate. Inclusive-lower /
// exclusive-upper, like the discount tier bands.
const (
	scarceThreshold = 0.20
	tightThreshold  = 0.40

	scarceMultiplier  = 1.5
	tightMultiplier   = 1.25
	weekendMultiplier = 1.2
)

// DynamicPrice is a surge-adjusted price for an inventory-limited service.
type DynamicPrice struct {
	Price        int64
	Multiplier   float64
	SurgePercent float64
}

// ComputeDynamicPrice applies the availability step function, then the
// weekend multiplier on top (multiplicative, never additive). The surge is
// applied once per pricing call, never per booking leg.
func ComputeDynamicPrice(basePrice int64, availabilityRate float64, isWeekend bool) DynamicPrice {
	multiplier := 1.0
	switch {
	case availabilityRate < scarceThreshold:
		multiplier = scarceMultiplier
	case availabilityRate < tightThreshold:
		multiplier = tightMultiplier
	}

	if isWeekend {
		multiplier *= weekendMultiplier
	}

	return DynamicPrice{
		Price:        int64(math.Round(float64(basePrice) * multiplier)),
		Multiplier:   multiplier,
		SurgePercent: (multiplier - 1) * 100,
	}
}

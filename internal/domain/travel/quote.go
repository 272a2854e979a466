package travel

import (
	"math"

	"tripfair/internal/domain/geo"
)

const weekendTravelMultiplier = 1.5

// Quote is a tagged location-pricing result. A non-serviceable quote carries
// a reason instead of a price; callers must exclude it, never price with it.
type Quote struct {
	serviceable   bool
	reason        string
	distanceKm    float64
	withinRadius  bool
	basePrice     int64
	travelCost    int64
	totalPrice    int64
	surchargeNote string
}

func (q Quote) Serviceable() bool     { return q.serviceable }
func (q Quote) Reason() string        { return q.reason }
func (q Quote) DistanceKm() float64   { return q.distanceKm }
func (q Quote) WithinRadius() bool    { return q.withinRadius }
func (q Quote) BasePrice() int64      { return q.basePrice }
func (q Quote) TravelCost() int64     { return q.travelCost }
func (q Quote) TotalPrice() int64     { return q.totalPrice }
func (q Quote) SurchargeNote() string { return q.surchargeNote }

// PriceTravel prices the provider's travel to an event location.
//
// Piecewise rule: no travel charge within the service radius; beyond it,
// max(excess * ratePerKm, minimumCharge) up to the distance cap; past the
// cap the location is not serviceable. A weekend multiplies a non-zero
// travel cost by 1.5 and never creates one from zero.
func PriceTravel(provider *ServiceProvider, eventLocation geo.Point, isWeekend bool) Quote {
	dist := provider.BaseLocation().DistanceKm(eventLocation)

	if dist > provider.MaxTravelDistanceKm() {
		return Quote{
			serviceable: false,
			reason:      "beyond-max-travel-distance",
			distanceKm:  dist,
		}
	}

	var travelCost int64
	withinRadius := dist <= provider.ServiceRadiusKm()
	if !withinRadius {
		excessKm := dist - provider.ServiceRadiusKm()
		cost := int64(math.Round(excessKm * float64(provider.TravelRatePerKm())))
		if cost < provider.MinimumTravelCharge() {
			cost = provider.MinimumTravelCharge()
		}
		travelCost = cost
	}

	var note string
	if isWeekend && travelCost > 0 {
		travelCost = int64(math.Round(float64(travelCost) * weekendTravelMultiplier))
		note = "weekend travel surcharge applied (x1.5)"
	}

	return Quote{
		serviceable:   true,
		distanceKm:    dist,
		withinRadius:  withinRadius,
		basePrice:     provider.BasePriceMinor(),
		travelCost:    travelCost,
		totalPrice:    provider.BasePriceMinor() + travelCost,
		surchargeNote: note,
	}
}

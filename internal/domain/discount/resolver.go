package discount

import "time"

// Resolved is the outcome of rate resolution: the applicable rate and the
// tier classifying it.
type Resolved struct {
	Rate Rate
	Tier Tier
}

// Resolve picks the applicable rate for a property: an override that is
// active at the given instant wins, otherwise the global default applies.
// Resolution is a pure read; repeated calls within the same rate epoch
// return the same result.
func Resolve(override *Override, defaultRate Rate, now time.Time) Resolved {
	rate := defaultRate
	if override != nil && override.ActiveAt(now) {
		rate = override.Rate()
	}
	return Resolved{
		Rate: rate,
		Tier: ClassifyRate(rate),
	}
}

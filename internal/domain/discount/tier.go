package discount

// Tier is a named band classifying a resolved discount rate.
type Tier string

const (
	TierNone     Tier = "NONE"
	TierGold     Tier = "GOLD"
	TierDiamond  Tier = "DIAMOND"
	TierPlatinum Tier = "PLATINUM"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierNone, TierGold, TierDiamond, TierPlatinum:
		return true
	default:
		return false
	}
}

// Band boundaries are inclusive-lower / exclusive-upper.
const (
	goldThreshold     = 0.01
	diamondThreshold  = 0.25
	platinumThreshold = 0.40
)

// ClassifyRate maps a resolved rate onto its tier.
func ClassifyRate(rate Rate) Tier {
	r := rate.Float()
	switch {
	case r >= platinumThreshold:
		return TierPlatinum
	case r >= diamondThreshold:
		return TierDiamond
	case r >= goldThreshold:
		return TierGold
	default:
		return TierNone
	}
}

package discount

import (
	"errors"
	"time"
)

var (
	ErrInvalidRate     = errors.New("rate must be in [0, 1)")
	ErrInvalidOverride = errors.New("override window is inverted")
)

// Rate is a discount fraction in [0, 1). A zero rate means no discount.
type Rate struct {
	value float64
}

func NewRate(value float64) (Rate, error) {
	if value < 0 || value >= 1 {
		return Rate{}, ErrInvalidRate
	}
	return Rate{value: value}, nil
}

func ZeroRate() Rate {
	return Rate{}
}

func (r Rate) Float() float64 {
	return r.value
}

func (r Rate) IsZero() bool {
	return r.value == 0
}

// Override is a per-property discount rate that beats the global default
// while its validity window is open. A nil ValidFrom/ValidTo bound is open.
type Override struct {
	propertyID   string
	rate         Rate
	validFrom    *time.Time
	validTo      *time.Time
	campaignName string
}

func NewOverride(propertyID string, rate Rate, validFrom, validTo *time.Time, campaignName string) (*Override, error) {
	if validFrom != nil && validTo != nil && validFrom.After(*validTo) {
		return nil, ErrInvalidOverride
	}
	return &Override{
		propertyID:   propertyID,
		rate:         rate,
		validFrom:    validFrom,
		validTo:      validTo,
		campaignName: campaignName,
	}, nil
}

func (o *Override) PropertyID() string    { return o.propertyID }
func (o *Override) Rate() Rate            { return o.rate }
func (o *Override) ValidFrom() *time.Time { return o.validFrom }
func (o *Override) ValidTo() *time.Time   { return o.validTo }
func (o *Override) CampaignName() string  { return o.campaignName }

// ActiveAt reports whether the override window is open at the given instant.
func (o *Override) ActiveAt(now time.Time) bool {
	if o.validFrom != nil && now.Before(*o.validFrom) {
		return false
	}
	if o.validTo != nil && now.After(*o.validTo) {
		return false
	}
	return true
}

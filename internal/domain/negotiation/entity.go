package negotiation

import (
	"errors"
	"math"
	"time"

	"tripfair/internal/domain/discount"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveBaseTotal = errors.New("base total must be positive")
	ErrNoDiscount           = errors.New("rate leaves nothing to offer")
)

// Offer is a time-bound discounted total quoted for a property (or one of
// its rooms). It is immutable once issued; expiry is observed, not mutated.
type Offer struct {
	id              uuid.UUID
	propertyID      string
	roomID          *string
	baseTotal       int64
	discountedTotal int64
	savings         int64
	rate            discount.Rate
	tier            discount.Tier
	issuedAt        time.Time
	expiresAt       time.Time
}

// NewOffer issues an offer. The caller supplies the resolved rate and the
// validity window; issuedAt is the authoritative issue instant.
//
// Invariants: discountedTotal = round(baseTotal * (1 - rate)),
// savings = baseTotal - discountedTotal, 0 < discountedTotal <= baseTotal.
func NewOffer(
	propertyID string,
	roomID *string,
	baseTotal int64,
	resolved discount.Resolved,
	issuedAt time.Time,
	validityWindow time.Duration,
) (*Offer, error) {
	if baseTotal <= 0 {
		return nil, ErrNonPositiveBaseTotal
	}
	if resolved.Rate.IsZero() {
		return nil, ErrNoDiscount
	}

	discounted := applyRate(baseTotal, resolved.Rate)
	if discounted <= 0 {
		return nil, ErrNoDiscount
	}

	return &Offer{
		id:              uuid.New(),
		propertyID:      propertyID,
		roomID:          roomID,
		baseTotal:       baseTotal,
		discountedTotal: discounted,
		savings:         baseTotal - discounted,
		rate:            resolved.Rate,
		tier:            resolved.Tier,
		issuedAt:        issuedAt,
		expiresAt:       issuedAt.Add(validityWindow),
	}, nil
}

// applyRate rounds half away from zero, matching the reference behavior
// bit-exactly.
func applyRate(baseTotal int64, rate discount.Rate) int64 {
	return int64(math.Round(float64(baseTotal) * (1 - rate.Float())))
}

// RecomputeTotal returns the discounted total the current rate epoch would
// produce for the given base total. Used by acceptance-time re-validation.
func RecomputeTotal(baseTotal int64, rate discount.Rate) int64 {
	return applyRate(baseTotal, rate)
}

func (o *Offer) ID() uuid.UUID          { return o.id }
func (o *Offer) PropertyID() string     { return o.propertyID }
func (o *Offer) RoomID() *string        { return o.roomID }
func (o *Offer) BaseTotal() int64       { return o.baseTotal }
func (o *Offer) DiscountedTotal() int64 { return o.discountedTotal }
func (o *Offer) Savings() int64         { return o.savings }
func (o *Offer) Rate() discount.Rate    { return o.rate }
func (o *Offer) Tier() discount.Tier    { return o.tier }
func (o *Offer) IssuedAt() time.Time    { return o.issuedAt }
func (o *Offer) ExpiresAt() time.Time   { return o.expiresAt }

// ExpiredAt reports whether the offer window has elapsed at the given
// instant. An offer must never be honored past expiry, however far the
// client's local countdown has drifted.
func (o *Offer) ExpiredAt(now time.Time) bool {
	return now.After(o.expiresAt)
}

// StatusAt derives the observable status from the wall clock.
func (o *Offer) StatusAt(now time.Time) Status {
	if o.ExpiredAt(now) {
		return StatusExpired
	}
	return StatusOffer
}

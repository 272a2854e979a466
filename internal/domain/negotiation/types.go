package negotiation

// Status is the observable state of a negotiation.
//
// PENDING covers an in-flight request; OFFER and NO_OFFER are issue-time
// outcomes. EXPIRED is never written by a timer: it is derived from the
// wall clock against the offer's expiry instant at read time.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusOffer   Status = "OFFER"
	StatusNoOffer Status = "NO_OFFER"
	StatusExpired Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusOffer, StatusNoOffer, StatusExpired:
		return true
	default:
		return false
	}
}

// Reason is a machine-readable explanation for a NO_OFFER outcome.
type Reason string

const (
	ReasonNotFound            Reason = "not-found"
	ReasonInvalidPropertyID   Reason = "invalid-propertyId"
	ReasonNoDiscountAvailable Reason = "no-discount-available"
)

func (r Reason) String() string {
	return string(r)
}

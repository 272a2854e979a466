package negotiation

import (
	"time"

	"tripfair/internal/domain/discount"
	"tripfair/internal/pkg/clock"
)

// Factory issues offers with the configured validity window. The window is
// a configuration constant, never computed per request.
type Factory struct {
	clock          clock.Clock
	validityWindow time.Duration
}

func NewFactory(clk clock.Clock, validityWindow time.Duration) *Factory {
	return &Factory{
		clock:          clk,
		validityWindow: validityWindow,
	}
}

func (f *Factory) ValidityWindow() time.Duration {
	return f.validityWindow
}

// IssueOffer builds an OFFER for the given base total under the resolved
// rate. A zero rate is the caller's NO_OFFER path and never reaches here.
func (f *Factory) IssueOffer(
	propertyID string,
	roomID *string,
	baseTotal int64,
	resolved discount.Resolved,
) (*Offer, error) {
	return NewOffer(propertyID, roomID, baseTotal, resolved, f.clock.Now(), f.validityWindow)
}

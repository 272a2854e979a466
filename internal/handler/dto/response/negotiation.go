package response

import (
	"time"

	"tripfair/internal/usecase/commands"

	"github.com/google/uuid"
)

// OfferResponse is the 200 body of a successful negotiation.
type OfferResponse struct {
	Status          string    `json:"status"`
	OfferID         uuid.UUID `json:"offer_id"`
	Property        string    `json:"property"`
	PropertyID      string    `json:"property_id"`
	RoomID          *string   `json:"room_id,omitempty"`
	BaseTotal       int64     `json:"base_total"`
	DiscountedTotal int64     `json:"discounted_total"`
	Savings         int64     `json:"savings"`
	Rate            float64   `json:"rate"`
	Tier            string    `json:"tier"`
	IssuedAt        time.Time `json:"issued_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	Message         string    `json:"message"`
}

// NoOfferResponse carries a machine-readable reason so callers can branch
// deterministically.
type NoOfferResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type OfferValidationResponse struct {
	Valid           bool  `json:"valid"`
	DiscountedTotal int64 `json:"discounted_total"`
}

func FromOfferResult(offer *commands.OfferResult) *OfferResponse {
	return &OfferResponse{
		Status:          "discount",
		OfferID:         offer.ID,
		Property:        offer.PropertyName,
		PropertyID:      offer.PropertyID,
		RoomID:          offer.RoomID,
		BaseTotal:       offer.BaseTotal,
		DiscountedTotal: offer.DiscountedTotal,
		Savings:         offer.Savings,
		Rate:            offer.Rate,
		Tier:            offer.Tier,
		IssuedAt:        offer.IssuedAt,
		ExpiresAt:       offer.ExpiresAt,
		Message:         offer.Message,
	}
}

func NewNoOfferResponse(reason string) *NoOfferResponse {
	return &NoOfferResponse{
		Status: "no-offer",
		Reason: reason,
	}
}

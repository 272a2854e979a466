package request

import (
	"strings"
	"time"
)

type NegotiateRequest struct {
	PropertyID string  `json:"property_id"`
	RoomID     *string `json:"room_id,omitempty"`
	Quantity   int     `json:"quantity,omitempty"`
}

func (r NegotiateRequest) TrimmedPropertyID() string {
	return strings.TrimSpace(r.PropertyID)
}

func (r NegotiateRequest) TrimmedRoomID() *string {
	if r.RoomID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.RoomID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ValidateOfferRequest struct {
	PropertyID      string    `json:"property_id" binding:"required"`
	RoomID          *string   `json:"room_id,omitempty"`
	Quantity        int       `json:"quantity,omitempty"`
	DiscountedTotal int64     `json:"discounted_total" binding:"required"`
	ExpiresAt       time.Time `json:"expires_at" binding:"required"`
}

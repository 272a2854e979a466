package request

type EventLocationRequest struct {
	// Pointers so that 0 (equator, prime meridian) binds as present.
	Lat       *float64 `json:"lat" binding:"required"`
	Lon       *float64 `json:"lon" binding:"required"`
	Address   string   `json:"address,omitempty"`
	IsWeekend bool     `json:"is_weekend,omitempty"`
}

type CartItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type EvaluateCartRequest struct {
	Items          []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	ApplyPackageID *string           `json:"apply_package_id,omitempty"`
}

type SetOverrideRequest struct {
	Rate         float64 `json:"rate"`
	ValidFrom    *string `json:"valid_from,omitempty"` // RFC3339
	ValidTo      *string `json:"valid_to,omitempty"`
	CampaignName *string `json:"campaign_name,omitempty"`
}

package response

import (
	"time"

	"tripfair/internal/usecase/commands"
	"tripfair/internal/usecase/queries"

	"github.com/samber/lo"
)

type ProviderSearchResponse struct {
	Providers []*queries.ProviderQuoteView `json:"providers"`
	Count     int                          `json:"count"`
}

type CoverageResponse struct {
	ProviderID string `json:"provider_id"`
	Covered    bool   `json:"covered"`
}

type AvailabilityCalendarResponse struct {
	ServiceID string                    `json:"service_id"`
	Days      []queries.CalendarDayView `json:"days"`
}

type CartItemResponse struct {
	ServiceID  string `json:"service_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
}

type CartPackageResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ServiceIDs      []string `json:"service_ids"`
	DiscountPercent float64  `json:"discount_percent"`
	Eligible        bool     `json:"eligible"`
	Applied         bool     `json:"applied"`
}

type CartEvaluationResponse struct {
	Items    []CartItemResponse    `json:"items"`
	Packages []CartPackageResponse `json:"packages"`
	Subtotal int64                 `json:"subtotal"`
	Discount int64                 `json:"discount"`
	Tax      int64                 `json:"tax"`
	Total    int64                 `json:"total"`
}

type OverrideResponse struct {
	PropertyID   string  `json:"property_id"`
	Rate         float64 `json:"rate"`
	ValidFrom    *string `json:"valid_from,omitempty"`
	ValidTo      *string `json:"valid_to,omitempty"`
	CampaignName *string `json:"campaign_name,omitempty"`
}

func FromCartEvaluation(eval *commands.CartEvaluation) *CartEvaluationResponse {
	return &CartEvaluationResponse{
		Items: lo.Map(eval.Items, func(it commands.EvaluatedItem, _ int) CartItemResponse {
			return CartItemResponse{
				ServiceID:  it.ServiceID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			}
		}),
		Packages: lo.Map(eval.Packages, func(p commands.EvaluatedPackage, _ int) CartPackageResponse {
			return CartPackageResponse{
				ID:              p.ID,
				Name:            p.Name,
				ServiceIDs:      p.ServiceIDs,
				DiscountPercent: p.DiscountPercent,
				Eligible:        p.Eligible,
				Applied:         p.Applied,
			}
		}),
		Subtotal: eval.Totals.Subtotal,
		Discount: eval.Totals.Discount,
		Tax:      eval.Totals.Tax,
		Total:    eval.Totals.Total,
	}
}

func FromOverrideSnapshot(s *commands.OverrideSnapshot) *OverrideResponse {
	resp := &OverrideResponse{
		PropertyID:   s.PropertyID,
		Rate:         s.Rate,
		CampaignName: s.CampaignName,
	}
	if s.ValidFrom != nil {
		from := s.ValidFrom.Format(time.RFC3339)
		resp.ValidFrom = &from
	}
	if s.ValidTo != nil {
		to := s.ValidTo.Format(time.RFC3339)
		resp.ValidTo = &to
	}
	return resp
}

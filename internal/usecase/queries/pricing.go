package queries

import (
	"context"
	"log/slog"
	"sort"

	"tripfair/internal/domain/geo"
	"tripfair/internal/domain/travel"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/errs"
)

var (
	ErrProviderNotFound = errs.New("provider not found")
	ErrInvalidLocation  = errs.New("invalid event location")
)

// ProviderSnapshot is the record-store shape of a mobile service provider.
type ProviderSnapshot struct {
	ID                  string
	Name                string
	Lat                 float64
	Lon                 float64
	BasePriceMinor      int64
	ServiceRadiusKm     float64
	TravelRatePerKm     int64
	MinimumTravelCharge int64
	MaxTravelDistanceKm float64
	CoverageAreas       []string
}

type ProviderStore interface {
	FindByID(ctx context.Context, id string) (*ProviderSnapshot, error)
	FindAll(ctx context.Context) ([]*ProviderSnapshot, error)
}

// ProviderQuoteView is the location-pricing read model. A non-serviceable
// quote carries a reason and no usable price.
type ProviderQuoteView struct {
	ProviderID    string  `json:"provider_id"`
	ProviderName  string  `json:"provider_name"`
	Serviceable   bool    `json:"serviceable"`
	Reason        string  `json:"reason,omitempty"`
	DistanceKm    float64 `json:"distance_km"`
	WithinRadius  bool    `json:"within_radius"`
	BasePrice     int64   `json:"base_price"`
	TravelCost    int64   `json:"travel_cost"`
	TotalPrice    int64   `json:"total_price"`
	SurchargeNote string  `json:"surcharge_note,omitempty"`
}

type EventLocation struct {
	Lat     float64
	Lon     float64
	Address string
}

type ProviderQueries interface {
	QuoteForProvider(ctx context.Context, providerID string, loc EventLocation, isWeekend bool) (*ProviderQuoteView, error)
	FindProvidersForLocation(ctx context.Context, loc EventLocation, isWeekend bool) ([]*ProviderQuoteView, error)
	CoversLocation(ctx context.Context, providerID string, loc EventLocation) (bool, error)
}

type providerQueriesImpl struct {
	store ProviderStore
}

func NewProviderQueries(store ProviderStore) ProviderQueries {
	return &providerQueriesImpl{store: store}
}

func (q *providerQueriesImpl) QuoteForProvider(ctx context.Context, providerID string, loc EventLocation, isWeekend bool) (*ProviderQuoteView, error) {
	point, err := geo.NewPoint(loc.Lat, loc.Lon)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLocation)
	}

	snapshot, err := q.store.FindByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Wrap(err, "failed to find provider")
	}

	provider, err := toProviderDomain(snapshot)
	if err != nil {
		return nil, err
	}

	return toQuoteView(provider, travel.PriceTravel(provider, point, isWeekend)), nil
}

// FindProvidersForLocation evaluates every known provider, drops the
// non-serviceable ones and returns the rest sorted ascending by total
// price. A failed store read degrades to an empty result set.
func (q *providerQueriesImpl) FindProvidersForLocation(ctx context.Context, loc EventLocation, isWeekend bool) ([]*ProviderQuoteView, error) {
	point, err := geo.NewPoint(loc.Lat, loc.Lon)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLocation)
	}

	snapshots, err := q.store.FindAll(ctx)
	if err != nil {
		slog.Warn("provider list read failed, degrading to empty result", "error", err)
		return []*ProviderQuoteView{}, nil
	}

	views := make([]*ProviderQuoteView, 0, len(snapshots))
	for _, s := range snapshots {
		provider, err := toProviderDomain(s)
		if err != nil {
			slog.Warn("skipping malformed provider", "provider_id", s.ID, "error", err)
			continue
		}
		quote := travel.PriceTravel(provider, point, isWeekend)
		if !quote.Serviceable() {
			continue
		}
		views = append(views, toQuoteView(provider, quote))
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].TotalPrice < views[j].TotalPrice
	})

	return views, nil
}

// CoversLocation applies the coverage-area variant: inside the radius, or
// beyond it but within the distance cap when the address names a coverage
// area.
func (q *providerQueriesImpl) CoversLocation(ctx context.Context, providerID string, loc EventLocation) (bool, error) {
	point, err := geo.NewPoint(loc.Lat, loc.Lon)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidLocation)
	}

	snapshot, err := q.store.FindByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrProviderNotFound
		}
		return false, errs.Wrap(err, "failed to find provider")
	}

	provider, err := toProviderDomain(snapshot)
	if err != nil {
		return false, err
	}

	return provider.Covers(point, loc.Address), nil
}

func toProviderDomain(s *ProviderSnapshot) (*travel.ServiceProvider, error) {
	base, err := geo.NewPoint(s.Lat, s.Lon)
	if err != nil {
		return nil, errs.Wrap(err, "provider base location is invalid")
	}
	return travel.NewServiceProvider(
		s.ID,
		s.Name,
		base,
		s.BasePriceMinor,
		s.ServiceRadiusKm,
		s.TravelRatePerKm,
		s.MinimumTravelCharge,
		s.MaxTravelDistanceKm,
		s.CoverageAreas,
	)
}

func toQuoteView(provider *travel.ServiceProvider, quote travel.Quote) *ProviderQuoteView {
	return &ProviderQuoteView{
		ProviderID:    provider.ID(),
		ProviderName:  provider.Name(),
		Serviceable:   quote.Serviceable(),
		Reason:        quote.Reason(),
		DistanceKm:    quote.DistanceKm(),
		WithinRadius:  quote.WithinRadius(),
		BasePrice:     quote.BasePrice(),
		TravelCost:    quote.TravelCost(),
		TotalPrice:    quote.TotalPrice(),
		SurchargeNote: quote.SurchargeNote(),
	}
}

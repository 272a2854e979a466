package travel

import (
	"errors"
	"strings"

	"tripfair/internal/domain/geo"
)

var (
	ErrInvalidRadius      = errors.New("service radius must be non-negative")
	ErrInvalidMaxDistance = errors.New("max travel distance must cover the service radius")
)

// ServiceProvider is a mobile provider with a home base. Travel beyond the
// service radius is billed per kilometer, up to a hard distance cap.
type ServiceProvider struct {
	id                  string
	name                string
	baseLocation        geo.Point
	basePriceMinor      int64
	serviceRadiusKm     float64
	travelRatePerKm     int64
	minimumTravelCharge int64
	maxTravelDistanceKm float64
	coverageAreas       []string
}

func NewServiceProvider(
	id, name string,
	baseLocation geo.Point,
	basePriceMinor int64,
	serviceRadiusKm float64,
	travelRatePerKm int64,
	minimumTravelCharge int64,
	maxTravelDistanceKm float64,
	coverageAreas []string,
) (*ServiceProvider, error) {
	if serviceRadiusKm < 0 {
		return nil, ErrInvalidRadius
	}
	if maxTravelDistanceKm < serviceRadiusKm {
		return nil, ErrInvalidMaxDistance
	}
	return &ServiceProvider{
		id:                  id,
		name:                name,
		baseLocation:        baseLocation,
		basePriceMinor:      basePriceMinor,
		serviceRadiusKm:     serviceRadiusKm,
		travelRatePerKm:     travelRatePerKm,
		minimumTravelCharge: minimumTravelCharge,
		maxTravelDistanceKm: maxTravelDistanceKm,
		coverageAreas:       coverageAreas,
	}, nil
}

func (p *ServiceProvider) ID() string                   { return p.id }
func (p *ServiceProvider) Name() string                 { return p.name }
func (p *ServiceProvider) BaseLocation() geo.Point      { return p.baseLocation }
func (p *ServiceProvider) BasePriceMinor() int64        { return p.basePriceMinor }
func (p *ServiceProvider) ServiceRadiusKm() float64     { return p.serviceRadiusKm }
func (p *ServiceProvider) TravelRatePerKm() int64       { return p.travelRatePerKm }
func (p *ServiceProvider) MinimumTravelCharge() int64   { return p.minimumTravelCharge }
func (p *ServiceProvider) MaxTravelDistanceKm() float64 { return p.maxTravelDistanceKm }
func (p *ServiceProvider) CoverageAreas() []string      { return p.coverageAreas }

// Covers reports whether the provider serves the event location: within the
// service radius, or beyond it but within the distance cap when the address
// names one of the provider's coverage areas. The named-area match lets a
// neighborhood bypass the strict radius rule.
func (p *ServiceProvider) Covers(eventLocation geo.Point, address string) bool {
	dist := p.baseLocation.DistanceKm(eventLocation)
	if dist <= p.serviceRadiusKm {
		return true
	}
	if dist > p.maxTravelDistanceKm {
		return false
	}
	return p.matchesCoverageArea(address)
}

func (p *ServiceProvider) matchesCoverageArea(address string) bool {
	addr := strings.ToLower(address)
	for _, area := range p.coverageAreas {
		if area == "" {
			continue
		}
		if strings.Contains(addr, strings.ToLower(area)) {
			return true
		}
	}
	return false
}

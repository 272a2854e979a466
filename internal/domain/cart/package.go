package cart

import (
	"errors"

	"github.com/samber/lo"
)

var (
	ErrInvalidDiscountPercent = errors.New("discount percent must be in [0, 1)")
	ErrEmptyPackage           = errors.New("package must bundle at least one service")
)

// Package is a bundle of services sold at a combined discount. A package is
// eligible for a cart iff every bundled service id appears among the cart's
// line items; quantities are irrelevant to eligibility.
type Package struct {
	id              string
	name            string
	serviceIDs      []string
	discountPercent float64
}

func NewPackage(id, name string, serviceIDs []string, discountPercent float64) (*Package, error) {
	if len(serviceIDs) == 0 {
		return nil, ErrEmptyPackage
	}
	if discountPercent < 0 || discountPercent >= 1 {
		return nil, ErrInvalidDiscountPercent
	}
	return &Package{
		id:              id,
		name:            name,
		serviceIDs:      lo.Uniq(serviceIDs),
		discountPercent: discountPercent,
	}, nil
}

func (p *Package) ID() string               { return p.id }
func (p *Package) Name() string             { return p.name }
func (p *Package) ServiceIDs() []string     { return p.serviceIDs }
func (p *Package) DiscountPercent() float64 { return p.discountPercent }

func (p *Package) EligibleFor(cartServiceIDs []string) bool {
	return lo.Every(cartServiceIDs, p.serviceIDs)
}

func (p *Package) Contains(serviceID string) bool {
	return lo.Contains(p.serviceIDs, serviceID)
}

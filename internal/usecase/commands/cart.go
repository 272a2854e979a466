package commands

import (
	"context"
	"log/slog"

	"tripfair/internal/domain/cart"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/errs"

	"github.com/samber/lo"
)

var (
	ErrServiceNotFound    = errs.New("service not found")
	ErrPackageNotFound    = errs.New("package not found")
	ErrPackageNotEligible = errs.New("package not eligible for cart")
	ErrEmptyCart          = errs.New("cart has no items")
)

type ServiceCatalog interface {
	FindPrices(ctx context.Context, serviceIDs []string) (map[string]int64, error)
}

type PackageRepository interface {
	FindAll(ctx context.Context) ([]*PackageSnapshot, error)
}

type CartItemParams struct {
	ServiceID string
	Quantity  int
}

type EvaluateCartParams struct {
	Items          []CartItemParams
	ApplyPackageID *string
}

type EvaluatedPackage struct {
	ID              string
	Name            string
	ServiceIDs      []string
	DiscountPercent float64
	Eligible        bool
	Applied         bool
}

type CartEvaluation struct {
	Items    []EvaluatedItem
	Packages []EvaluatedPackage
	Totals   cart.Totals
}

type EvaluatedItem struct {
	ServiceID  string
	Quantity   int
	UnitPrice  int64
	TotalPrice int64
}

type CartCommands interface {
	Evaluate(ctx context.Context, params EvaluateCartParams) (*CartEvaluation, error)
}

type cartUseCaseImpl struct {
	catalog  ServiceCatalog
	packages PackageRepository
}

func NewCartUseCase(catalog ServiceCatalog, packages PackageRepository) CartCommands {
	return &cartUseCaseImpl{
		catalog:  catalog,
		packages: packages,
	}
}

// Evaluate prices the cart out: every known package is annotated with its
// eligibility against the cart's line items, at most one package is applied,
// and totals follow the subtotal/discount/tax rules.
func (c *cartUseCaseImpl) Evaluate(ctx context.Context, params EvaluateCartParams) (*CartEvaluation, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items, err := c.buildLineItems(ctx, params.Items)
	if err != nil {
		return nil, err
	}
	basket := cart.NewCart(items)

	packages := c.loadPackages(ctx)

	var applied *cart.Package
	if params.ApplyPackageID != nil {
		pkg, ok := lo.Find(packages, func(p *cart.Package) bool {
			return p.ID() == *params.ApplyPackageID
		})
		if !ok {
			return nil, ErrPackageNotFound
		}
		if err := basket.ApplyPackage(pkg); err != nil {
			return nil, errs.Mark(err, ErrPackageNotEligible)
		}
		applied = pkg
	}

	evaluated := lo.Map(packages, func(p *cart.Package, _ int) EvaluatedPackage {
		return EvaluatedPackage{
			ID:              p.ID(),
			Name:            p.Name(),
			ServiceIDs:      p.ServiceIDs(),
			DiscountPercent: p.DiscountPercent(),
			Eligible:        p.EligibleFor(basket.ServiceIDs()),
			Applied:         applied != nil && applied.ID() == p.ID(),
		}
	})

	return &CartEvaluation{
		Items: lo.Map(items, func(it cart.LineItem, _ int) EvaluatedItem {
			return EvaluatedItem{
				ServiceID:  it.ServiceID(),
				Quantity:   it.Quantity(),
				UnitPrice:  it.UnitPrice(),
				TotalPrice: it.TotalPrice(),
			}
		}),
		Packages: evaluated,
		Totals:   basket.ComputeTotals(),
	}, nil
}

func (c *cartUseCaseImpl) buildLineItems(ctx context.Context, params []CartItemParams) ([]cart.LineItem, error) {
	ids := lo.Map(params, func(p CartItemParams, _ int) string { return p.ServiceID })

	prices, err := c.catalog.FindPrices(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrRecordStoreFailed)
	}

	items := make([]cart.LineItem, 0, len(params))
	for _, p := range params {
		price, ok := prices[p.ServiceID]
		if !ok {
			return nil, errs.Mark(errs.New("unknown service "+p.ServiceID), ErrServiceNotFound)
		}
		item, err := cart.NewLineItem(p.ServiceID, p.Quantity, price)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		items = append(items, item)
	}
	return items, nil
}

// loadPackages degrades to an empty package list when the record store read
// fails; cart pricing stays available without bundle discounts.
func (c *cartUseCaseImpl) loadPackages(ctx context.Context) []*cart.Package {
	snapshots, err := c.packages.FindAll(ctx)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("package read failed, degrading to no packages", "error", err)
		}
		return nil
	}

	packages := make([]*cart.Package, 0, len(snapshots))
	for _, s := range snapshots {
		pkg, err := cart.NewPackage(s.ID, s.Name, s.ServiceIDs, s.DiscountPercent)
		if err != nil {
			slog.Warn("skipping malformed package", "package_id", s.ID, "error", err)
			continue
		}
		packages = append(packages, pkg)
	}
	return packages
}

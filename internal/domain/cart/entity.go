package cart

import (
	"errors"
	"math"

	"github.com/samber/lo"
)

const taxRate = 0.075

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrItemNotInCart     = errors.New("item not in cart")
	ErrPackageIneligible = errors.New("cart does not contain every package service")
)

// LineItem is one service entry in a cart.
type LineItem struct {
	serviceID  string
	quantity   int
	unitPrice  int64
	totalPrice int64
}

func NewLineItem(serviceID string, quantity int, unitPrice int64) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		serviceID:  serviceID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: unitPrice * int64(quantity),
	}, nil
}

func (i LineItem) ServiceID() string { return i.serviceID }
func (i LineItem) Quantity() int     { return i.quantity }
func (i LineItem) UnitPrice() int64  { return i.unitPrice }
func (i LineItem) TotalPrice() int64 { return i.totalPrice }

// Totals is the priced-out state of a cart: subtotal, the applied package
// discount, tax on the discounted amount, and the grand total.
type Totals struct {
	Subtotal int64
	Discount int64
	Tax      int64
	Total    int64
}

// Cart holds line items plus at most one applied package. Applying a
// different package replaces the previous one, never stacks with it.
type Cart struct {
	items          []LineItem
	appliedPackage *Package
}

func NewCart(items []LineItem) *Cart {
	return &Cart{items: items}
}

func (c *Cart) Items() []LineItem {
	return c.items
}

func (c *Cart) AppliedPackage() *Package {
	return c.appliedPackage
}

func (c *Cart) ServiceIDs() []string {
	return lo.Uniq(lo.Map(c.items, func(it LineItem, _ int) string {
		return it.serviceID
	}))
}

// ApplyPackage applies a package when the cart holds every bundled service.
// Any previously applied package is replaced.
func (c *Cart) ApplyPackage(pkg *Package) error {
	if !pkg.EligibleFor(c.ServiceIDs()) {
		return ErrPackageIneligible
	}
	c.appliedPackage = pkg
	return nil
}

// RemoveItem drops a line item. Removing any item that belongs to the
// applied package clears the applied package.
func (c *Cart) RemoveItem(serviceID string) error {
	idx := lo.IndexOf(c.ServiceIDs(), serviceID)
	if idx < 0 {
		return ErrItemNotInCart
	}
	c.items = lo.Reject(c.items, func(it LineItem, _ int) bool {
		return it.serviceID == serviceID
	})
	if c.appliedPackage != nil && c.appliedPackage.Contains(serviceID) {
		c.appliedPackage = nil
	}
	return nil
}

// ComputeTotals prices the cart out. The discount applies only when a
// package is applied; tax is charged on the discounted subtotal.
func (c *Cart) ComputeTotals() Totals {
	var subtotal int64
	for _, it := range c.items {
		subtotal += it.totalPrice
	}

	var discount int64
	if c.appliedPackage != nil {
		discount = int64(math.Round(float64(subtotal) * c.appliedPackage.DiscountPercent()))
	}

	tax := int64(math.Round(float64(subtotal-discount) * taxRate))

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}

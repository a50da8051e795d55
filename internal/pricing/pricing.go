// Package pricing computes authoritative cart totals. Normalize is pure:
// it touches no network or storage, so the same cart always produces the
// same result.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/catalog"
	"github.com/khatkhazana-hub/backend/internal/domain"
)

// InvalidCartError reports client-correctable cart problems: empty cart,
// unknown product id, non-positive quantity.
type InvalidCartError struct {
	msg string
}

func (e *InvalidCartError) Error() string { return e.msg }

func invalidCart(format string, args ...interface{}) error {
	return &InvalidCartError{msg: fmt.Sprintf(format, args...)}
}

// CartLine is a client-submitted cart row. Quantity and product id are
// validated against the catalog; the client never supplies a price.
type CartLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// Policy holds the deployment's shipping and tax constants.
type Policy struct {
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold decimal.Decimal
	// ShippingFlatFee applies below the threshold.
	ShippingFlatFee decimal.Decimal
	// TaxRate is a fraction, e.g. 0.07 for 7%.
	TaxRate decimal.Decimal
}

// DefaultPolicy matches the production storefront: free shipping from 95,
// otherwise a flat 6.50, and 7% tax.
func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.RequireFromString("95"),
		ShippingFlatFee:       decimal.RequireFromString("6.50"),
		TaxRate:               decimal.RequireFromString("0.07"),
	}
}

// Result is the priced cart. Every monetary field is rounded to two
// decimals independently, and Total = Subtotal + Shipping + Tax holds
// exactly under that rounding.
type Result struct {
	Lines    []domain.OrderItem
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Normalize validates lines against the catalog and derives totals. The
// subtotal is rounded before shipping and tax are computed so downstream
// arithmetic is deterministic for a given cart.
func Normalize(cat *catalog.Snapshot, policy Policy, lines []CartLine) (*Result, error) {
	if len(lines) == 0 {
		return nil, invalidCart("Cart items are required.")
	}

	res := &Result{Lines: make([]domain.OrderItem, 0, len(lines))}
	subtotal := decimal.Zero
	for _, line := range lines {
		entry, ok := cat.Lookup(line.ProductID)
		if !ok {
			return nil, invalidCart("Unknown product id: %s", line.ProductID)
		}
		if line.Quantity <= 0 {
			return nil, invalidCart("Quantity must be at least 1.")
		}
		lineTotal := entry.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		res.Lines = append(res.Lines, domain.OrderItem{
			ProductID: entry.ID,
			Title:     entry.Title,
			Category:  entry.Category,
			UnitPrice: entry.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: lineTotal.Round(2),
		})
	}

	res.Subtotal = subtotal.Round(2)
	res.Shipping = policy.shipping(res.Subtotal)
	res.Tax = policy.tax(res.Subtotal)
	// Each term is already rounded, so the sum needs no further rounding.
	res.Total = res.Subtotal.Add(res.Shipping).Add(res.Tax)
	return res, nil
}

func (p Policy) shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.ShippingFlatFee.Round(2)
}

func (p Policy) tax(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return subtotal.Mul(p.TaxRate).Round(2)
}

package pricing

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/khatkhazana-hub/backend/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Snapshot {
	t.Helper()
	snap, err := catalog.NewSnapshot([]catalog.Entry{
		{ID: "letter-kit", Title: "Scripted Letters Kit", UnitPrice: decimal.RequireFromString("24.00"), Category: "Stationery"},
		{ID: "wax-stamp", Title: "Brass Wax Seal Set", UnitPrice: decimal.RequireFromString("18.50"), Category: "Keepsakes"},
		{ID: "folio", Title: "Travel Letter Folio", UnitPrice: decimal.RequireFromString("32.00"), Category: "Keepsakes"},
		{ID: "freebie", Title: "Freebie", UnitPrice: decimal.Zero, Category: "Stationery"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return snap
}

func mustEqual(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", field, got, want)
	}
}

func TestNormalizeExampleCart(t *testing.T) {
	res, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
		{ProductID: "letter-kit", Quantity: 2},
		{ProductID: "wax-stamp", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	mustEqual(t, "subtotal", res.Subtotal, "66.50")
	mustEqual(t, "shipping", res.Shipping, "6.50")
	mustEqual(t, "tax", res.Tax, "4.66")
	mustEqual(t, "total", res.Total, "77.66")

	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 priced lines, got %d", len(res.Lines))
	}
	first := res.Lines[0]
	if first.ProductID != "letter-kit" || first.Title != "Scripted Letters Kit" || first.Category != "Stationery" {
		t.Fatalf("unexpected first line %+v", first)
	}
	mustEqual(t, "lineTotal", first.LineTotal, "48.00")
}

func TestNormalizeTotalIsSumOfRoundedTerms(t *testing.T) {
	res, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
		{ProductID: "folio", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !res.Total.Equal(res.Subtotal.Add(res.Shipping).Add(res.Tax)) {
		t.Fatalf("total %s != subtotal %s + shipping %s + tax %s", res.Total, res.Subtotal, res.Shipping, res.Tax)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	cart := []CartLine{
		{ProductID: "letter-kit", Quantity: 2},
		{ProductID: "folio", Quantity: 1},
	}
	first, err := Normalize(testCatalog(t), DefaultPolicy(), cart)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	second, err := Normalize(testCatalog(t), DefaultPolicy(), cart)
	if err != nil {
		t.Fatalf("Normalize again: %v", err)
	}
	if !first.Total.Equal(second.Total) || !first.Tax.Equal(second.Tax) || !first.Shipping.Equal(second.Shipping) {
		t.Fatalf("normalize not deterministic: %+v vs %+v", first, second)
	}
}

func TestNormalizeFreeShippingAtThreshold(t *testing.T) {
	// 3x folio = 96.00, at or above the 95 threshold.
	res, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
		{ProductID: "folio", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	mustEqual(t, "subtotal", res.Subtotal, "96.00")
	mustEqual(t, "shipping", res.Shipping, "0")
}

func TestNormalizeZeroSubtotal(t *testing.T) {
	res, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
		{ProductID: "freebie", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	mustEqual(t, "subtotal", res.Subtotal, "0")
	mustEqual(t, "shipping", res.Shipping, "0")
	mustEqual(t, "tax", res.Tax, "0")
	mustEqual(t, "total", res.Total, "0")
}

func TestNormalizeEmptyCart(t *testing.T) {
	_, err := Normalize(testCatalog(t), DefaultPolicy(), nil)
	var invalid *InvalidCartError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidCartError, got %v", err)
	}
}

func TestNormalizeUnknownProductNamesID(t *testing.T) {
	_, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
		{ProductID: "unknown-sku", Quantity: 1},
	})
	var invalid *InvalidCartError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidCartError, got %v", err)
	}
	if !strings.Contains(invalid.Error(), "unknown-sku") {
		t.Fatalf("error must name the offending id, got %q", invalid.Error())
	}
}

func TestNormalizeNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		_, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
			{ProductID: "letter-kit", Quantity: qty},
		})
		var invalid *InvalidCartError
		if !errors.As(err, &invalid) {
			t.Fatalf("quantity %d: expected InvalidCartError, got %v", qty, err)
		}
	}
}

func TestNormalizeRejectsBeforeCheckingQuantityOnUnknownID(t *testing.T) {
	_, err := Normalize(testCatalog(t), DefaultPolicy(), []CartLine{
		{ProductID: "nope", Quantity: 0},
	})
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown id error naming 'nope', got %v", err)
	}
}

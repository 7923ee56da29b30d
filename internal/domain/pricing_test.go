package domain

import "testing"

func TestEffectiveUnitPriceWithoutPromo(t *testing.T) {
	item := LineItem{ID: 1, UnitPrice: 10000, Quantity: 1, Promo: false, Discount: 20}
	if got := EffectiveUnitPrice(item); got != 10000 {
		t.Fatalf("expected list price 10000, got %d", got)
	}
}

func TestEffectiveUnitPriceZeroDiscount(t *testing.T) {
	item := LineItem{ID: 1, UnitPrice: 10000, Quantity: 1, Promo: true, Discount: 0}
	if got := EffectiveUnitPrice(item); got != 10000 {
		t.Fatalf("expected list price 10000, got %d", got)
	}
}

func TestEffectiveUnitPriceAppliesDiscount(t *testing.T) {
	item := LineItem{ID: 1, UnitPrice: 10000, Quantity: 1, Promo: true, Discount: 20}
	if got := EffectiveUnitPrice(item); got != 8000 {
		t.Fatalf("expected discounted price 8000, got %d", got)
	}
}

func TestEffectiveUnitPriceRoundsHalfUp(t *testing.T) {
	// 15 * 0.9 = 13.5, which rounds up to 14.
	item := LineItem{ID: 1, UnitPrice: 15, Quantity: 1, Promo: true, Discount: 10}
	if got := EffectiveUnitPrice(item); got != 14 {
		t.Fatalf("expected 14 after half-up rounding, got %d", got)
	}
	// 333 * 0.67 = 223.11, which rounds down to 223.
	item = LineItem{ID: 2, UnitPrice: 333, Quantity: 1, Promo: true, Discount: 33}
	if got := EffectiveUnitPrice(item); got != 223 {
		t.Fatalf("expected 223, got %d", got)
	}
}

func TestEffectiveUnitPriceNeverExceedsListPrice(t *testing.T) {
	prices := []int64{0, 1, 7, 99, 15000, 123457}
	for _, price := range prices {
		for discount := 0; discount <= 100; discount += 5 {
			item := LineItem{ID: 1, UnitPrice: price, Quantity: 1, Promo: true, Discount: discount}
			got := EffectiveUnitPrice(item)
			if got > price {
				t.Fatalf("effective price %d exceeds list price %d at discount %d", got, price, discount)
			}
			if discount == 0 && got != price {
				t.Fatalf("expected equality at zero discount, got %d for %d", got, price)
			}
		}
	}
}

func TestLineTotalMultipliesQuantity(t *testing.T) {
	item := LineItem{ID: 1, UnitPrice: 25000, Quantity: 2}
	if got := LineTotal(item); got != 50000 {
		t.Fatalf("expected 50000, got %d", got)
	}
}

func TestLedgerSubtotal(t *testing.T) {
	items := Ledger{
		{ID: 201, UnitPrice: 15000, Quantity: 2, Promo: true, Discount: 10},
		{ID: 202, UnitPrice: 12000, Quantity: 1},
	}
	// 13500*2 + 12000.
	if got := LedgerSubtotal(items); got != 39000 {
		t.Fatalf("expected subtotal 39000, got %d", got)
	}
	if got := LedgerSubtotal(Ledger{}); got != 0 {
		t.Fatalf("expected empty subtotal 0, got %d", got)
	}
}

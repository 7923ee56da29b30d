package messaging

import (
	"strings"
	"testing"
	"time"

	"github.com/ecustomers/storefront/internal/domain"
)

func TestFormatPriceGroupsThousands(t *testing.T) {
	cases := map[int64]string{
		0:        "Rp 0",
		500:      "Rp 500",
		15000:    "Rp 15.000",
		50000:    "Rp 50.000",
		1234567:  "Rp 1.234.567",
		45000000: "Rp 45.000.000",
	}
	for amount, want := range cases {
		if got := FormatPrice(amount); got != want {
			t.Fatalf("expected %q for %d, got %q", want, amount, got)
		}
	}
}

func TestFormatPriceIsDeterministic(t *testing.T) {
	first := FormatPrice(987654)
	for i := 0; i < 100; i++ {
		if got := FormatPrice(987654); got != first {
			t.Fatalf("formatting drifted: %q != %q", got, first)
		}
	}
}

func TestLedgerMessageSingleItem(t *testing.T) {
	items := domain.Ledger{
		{ID: 1, Name: "Pashmina", UnitPrice: 25000, Quantity: 2},
	}
	got := LedgerMessage(items)

	lines := strings.Split(got, "\n")
	if lines[0] != "Halo, saya ingin memesan:" {
		t.Fatalf("unexpected greeting %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("expected blank line after greeting, got %q", lines[1])
	}
	if lines[2] != "- Pashmina (2 pcs) = Rp 50.000" {
		t.Fatalf("unexpected item line %q", lines[2])
	}
	if lines[3] != "" {
		t.Fatalf("expected blank line before total, got %q", lines[3])
	}
	if last := lines[len(lines)-1]; last != "Total: Rp 50.000" {
		t.Fatalf("unexpected final line %q", last)
	}
}

func TestLedgerMessageUsesEffectivePrices(t *testing.T) {
	items := domain.Ledger{
		{ID: 201, Name: "Handsocks", UnitPrice: 15000, Quantity: 1, Promo: true, Discount: 10},
		{ID: 202, Name: "Ciput", UnitPrice: 12000, Quantity: 2},
	}
	got := LedgerMessage(items)

	if !strings.Contains(got, "- Handsocks (1 pcs) = Rp 13.500") {
		t.Fatalf("expected discounted line in %q", got)
	}
	if !strings.Contains(got, "- Ciput (2 pcs) = Rp 24.000") {
		t.Fatalf("expected full price line in %q", got)
	}
	if !strings.HasSuffix(got, "Total: Rp 37.500") {
		t.Fatalf("expected total with discount applied, got %q", got)
	}
}

func TestOrderMessageIncludesShippingInTotal(t *testing.T) {
	order := domain.Order{
		ID:        "EC-1",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Items: domain.Ledger{
			{ID: 1, Name: "Pashmina", UnitPrice: 25000, Quantity: 2},
		},
		ShippingFee: 15000,
		Total:       65000,
	}
	got := OrderMessage(order)
	if !strings.HasSuffix(got, "Total: Rp 65.000") {
		t.Fatalf("expected order total with shipping, got %q", got)
	}
}

func TestCartSummaryLine(t *testing.T) {
	item := domain.LineItem{ID: 1, Name: "Pashmina", UnitPrice: 25000, Quantity: 2}
	if got := CartSummaryLine(item); got != "Pashmina: 2 x Rp 25.000 = Rp 50.000" {
		t.Fatalf("unexpected summary line %q", got)
	}

	discounted := domain.LineItem{ID: 2, Name: "Handsocks", UnitPrice: 15000, Quantity: 3, Promo: true, Discount: 10}
	if got := CartSummaryLine(discounted); got != "Handsocks: 3 x Rp 13.500 = Rp 40.500" {
		t.Fatalf("unexpected discounted line %q", got)
	}
}

func TestCartSummaryLinesPreserveOrder(t *testing.T) {
	items := domain.Ledger{
		{ID: 2, Name: "B", UnitPrice: 100, Quantity: 1},
		{ID: 1, Name: "A", UnitPrice: 100, Quantity: 1},
	}
	lines := CartSummaryLines(items)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "B:") || !strings.HasPrefix(lines[1], "A:") {
		t.Fatalf("expected insertion order preserved, got %v", lines)
	}
}

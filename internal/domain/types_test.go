package domain

import (
	"errors"
	"testing"
)

func TestLedgerCloneIsIndependent(t *testing.T) {
	original := Ledger{{ID: 1, Name: "A", UnitPrice: 100, Quantity: 1}}
	dup := original.Clone()
	dup[0].Quantity = 9

	if original[0].Quantity != 1 {
		t.Fatalf("clone aliases the original slice")
	}
	if empty := Ledger(nil).Clone(); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil clone, got %#v", empty)
	}
}

func TestLedgerIndexOf(t *testing.T) {
	items := Ledger{{ID: 201}, {ID: 202}}
	if idx := items.IndexOf(202); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := items.IndexOf(999); idx != -1 {
		t.Fatalf("expected -1 for missing id, got %d", idx)
	}
}

func TestLedgerItemCountSumsQuantities(t *testing.T) {
	items := Ledger{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 3}}
	if count := items.ItemCount(); count != 5 {
		t.Fatalf("expected 5 pieces, got %d", count)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]PaymentMethod{
		"cod":           PaymentCOD,
		"COD":           PaymentCOD,
		"transfer":      PaymentBankTransfer,
		"bank_transfer": PaymentBankTransfer,
		"ewallet":       PaymentEWallet,
		"e_wallet":      PaymentEWallet,
	}
	for input, want := range cases {
		got, err := ParsePaymentMethod(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("expected %q for %q, got %q", want, input, got)
		}
	}

	if _, err := ParsePaymentMethod("bitcoin"); !errors.Is(err, ErrUnknownPaymentMethod) {
		t.Fatalf("expected ErrUnknownPaymentMethod, got %v", err)
	}
}

func TestPaymentMethodInstructions(t *testing.T) {
	if PaymentCOD.Instructions() == "" {
		t.Fatalf("expected instructions for COD")
	}
	if PaymentMethod("OTHER").Instructions() != "" {
		t.Fatalf("expected empty instructions for unknown method")
	}
}

func TestParseThemeFallsBackToLight(t *testing.T) {
	if got := ParseTheme("dark"); got != ThemeDark {
		t.Fatalf("expected dark, got %q", got)
	}
	if got := ParseTheme("DARK "); got != ThemeDark {
		t.Fatalf("expected dark for padded input, got %q", got)
	}
	if got := ParseTheme("sepia"); got != ThemeLight {
		t.Fatalf("expected light fallback, got %q", got)
	}
	if got := ThemeLight.Toggle(); got != ThemeDark {
		t.Fatalf("expected toggle to dark, got %q", got)
	}
}

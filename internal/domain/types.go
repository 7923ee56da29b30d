package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Product is one read-only catalog record. Field names follow the seed
// catalog payload so the catalog cache round-trips unchanged.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    int64   `json:"price"`
	Category string  `json:"category"`
	Promo    bool    `json:"promo"`
	Discount int     `json:"discount"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
	Source   string  `json:"source,omitempty"`
}

// LineItem is one product entry in the cart ledger together with its
// quantity and pricing flags. Discount is a percentage in [0, 100] and is
// only meaningful while Promo is set.
type LineItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Promo     bool   `json:"promo"`
	Discount  int    `json:"discount"`
	Category  string `json:"category,omitempty"`
	Image     string `json:"image,omitempty"`
}

// Ledger is the ordered sequence of cart line items, unique by item id.
// Insertion order is display order. A zero-quantity entry never appears in
// a ledger; it is removed instead.
type Ledger []LineItem

// Clone returns an independent copy so callers can snapshot a ledger
// without aliasing the authoritative slice.
func (l Ledger) Clone() Ledger {
	if len(l) == 0 {
		return Ledger{}
	}
	dup := make(Ledger, len(l))
	copy(dup, l)
	return dup
}

// IndexOf returns the position of the entry with the given id, or -1.
func (l Ledger) IndexOf(id int64) int {
	for i, item := range l {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// ItemCount sums the quantities across all entries. This drives the cart
// badge, which counts pieces rather than rows.
func (l Ledger) ItemCount() int {
	count := 0
	for _, item := range l {
		if item.Quantity > 0 {
			count += item.Quantity
		}
	}
	return count
}

// PaymentMethod enumerates the simulated payment options.
type PaymentMethod string

const (
	PaymentCOD          PaymentMethod = "COD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentEWallet      PaymentMethod = "E_WALLET"
)

// ErrUnknownPaymentMethod indicates an unrecognised payment method value.
var ErrUnknownPaymentMethod = errors.New("domain: unknown payment method")

// ParsePaymentMethod accepts both the canonical enum values and the short
// form names used by the checkout form.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "cod":
		return PaymentCOD, nil
	case "transfer", "bank_transfer":
		return PaymentBankTransfer, nil
	case "ewallet", "e_wallet":
		return PaymentEWallet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, value)
}

// Instructions returns the customer-facing payment hint for the method.
func (m PaymentMethod) Instructions() string {
	switch m {
	case PaymentCOD:
		return "Bayar saat barang sampai"
	case PaymentBankTransfer:
		return "Transfer ke rekening: 1234567890 (BCA)"
	case PaymentEWallet:
		return "Scan QRIS untuk pembayaran"
	}
	return ""
}

// CustomerInfo carries the contact and address fields entered at checkout.
// Validation is owned by the form layer, not the core.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Province   string `json:"province,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Order is the immutable record created at checkout from a ledger
// snapshot. Orders are appended to the history collection and never
// mutated afterwards.
type Order struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"date"`
	Items         Ledger        `json:"items"`
	Customer      CustomerInfo  `json:"customer"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Notes         string        `json:"notes,omitempty"`
	ShippingFee   int64         `json:"shippingFee"`
	Total         int64         `json:"total"`
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme falls back to light for unknown or foreign stored values.
func ParseTheme(value string) Theme {
	if strings.EqualFold(strings.TrimSpace(value), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

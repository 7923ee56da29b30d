package domain

// EffectiveUnitPrice returns the unit price after the promo discount is
// applied, rounded half-up to the nearest whole currency unit. Items
// without an active promo, or with a zero discount, keep their list price.
func EffectiveUnitPrice(item LineItem) int64 {
	if !item.Promo || item.Discount <= 0 {
		return item.UnitPrice
	}
	discount := item.Discount
	if discount > 100 {
		discount = 100
	}
	if item.UnitPrice <= 0 {
		return 0
	}
	return (item.UnitPrice*int64(100-discount) + 50) / 100
}

// LineTotal is the effective unit price multiplied by the quantity.
func LineTotal(item LineItem) int64 {
	if item.Quantity <= 0 {
		return 0
	}
	return EffectiveUnitPrice(item) * int64(item.Quantity)
}

// LedgerSubtotal sums LineTotal over all entries. An empty ledger totals
// zero.
func LedgerSubtotal(items Ledger) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += LineTotal(item)
	}
	return subtotal
}

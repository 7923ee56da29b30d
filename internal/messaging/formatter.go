// Package messaging renders ledgers and orders into the human-readable
// text handed to the customer: the on-screen summary and the outbound
// order message.
package messaging

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ecustomers/storefront/internal/domain"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatPrice renders an amount in whole rupiah with Indonesian digit
// grouping, e.g. 50000 becomes "Rp 50.000". The rendering is deterministic
// for identical input; tests and the outbound message both rely on that.
func FormatPrice(amount int64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount))
}

// OrderMessage renders a composed order, including its shipping fee, into
// the outbound order text.
func OrderMessage(order domain.Order) string {
	return render(order.Items, order.Total)
}

// LedgerMessage renders a cart snapshot into the same order text, totalled
// without any shipping fee. Used for the direct cart-to-chat handoff.
func LedgerMessage(items domain.Ledger) string {
	return render(items, domain.LedgerSubtotal(items))
}

func render(items domain.Ledger, total int64) string {
	var b strings.Builder
	b.WriteString("Halo, saya ingin memesan:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%d pcs) = %s\n", item.Name, item.Quantity, FormatPrice(domain.LineTotal(item)))
	}
	b.WriteString("\nTotal: ")
	b.WriteString(FormatPrice(total))
	return b.String()
}

// CartSummaryLine renders one ledger entry for on-screen display: name,
// quantity at the effective unit price, and the line total.
func CartSummaryLine(item domain.LineItem) string {
	return fmt.Sprintf("%s: %d x %s = %s",
		item.Name,
		item.Quantity,
		FormatPrice(domain.EffectiveUnitPrice(item)),
		FormatPrice(domain.LineTotal(item)),
	)
}

// CartSummaryLines renders the whole ledger in display order.
func CartSummaryLines(items domain.Ledger) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartSummaryLine(item))
	}
	return lines
}

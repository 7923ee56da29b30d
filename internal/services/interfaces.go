// Package services hosts the storefront core: the cart ledger, order
// composition, and display preferences. Services are constructed from
// explicit dependency structs; nothing global, nothing hidden.
package services

import (
	"context"

	"github.com/ecustomers/storefront/internal/domain"
)

// ProductFinder resolves catalog products for cart validation.
type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (domain.Product, bool)
}

// CartService owns the authoritative cart ledger. Every mutating
// operation is write-through: the returned ledger and the persisted
// snapshot always agree.
type CartService interface {
	// Load returns the current ledger, hydrating from the store on first
	// access. A missing or malformed snapshot loads as empty.
	Load(ctx context.Context) (domain.Ledger, error)
	// Add puts a catalog product into the cart. Adding an id already in
	// the ledger accumulates its quantity instead of duplicating the row.
	Add(ctx context.Context, cmd AddItemCommand) (domain.Ledger, error)
	// Remove deletes the entry with the given product id. Removing an
	// absent id is a no-op.
	Remove(ctx context.Context, productID int64) (domain.Ledger, error)
	// SetQuantity overwrites an entry's quantity. A quantity of zero or
	// less removes the entry, matching Remove exactly.
	SetQuantity(ctx context.Context, productID int64, quantity int) (domain.Ledger, error)
	// Clear empties the ledger and persists the empty state.
	Clear(ctx context.Context) (domain.Ledger, error)
	// Total is the ledger subtotal at effective prices.
	Total(ctx context.Context) (int64, error)
	// ItemCount sums quantities for the cart badge.
	ItemCount(ctx context.Context) (int, error)
}

// AddItemCommand names the inputs for CartService.Add.
type AddItemCommand struct {
	ProductID int64
	Quantity  int
}

// CheckoutService composes immutable orders from ledger snapshots.
type CheckoutService interface {
	// Compose stamps an order id and timestamp onto the snapshot, appends
	// the order to the history, and clears the cart. An empty snapshot is
	// rejected with ErrEmptyCart and leaves the history untouched.
	Compose(ctx context.Context, cmd ComposeOrderCommand) (domain.Order, error)
	// ListOrders returns the order history in append order.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// ComposeOrderCommand names the inputs for CheckoutService.Compose.
type ComposeOrderCommand struct {
	Items         domain.Ledger
	Customer      domain.CustomerInfo
	PaymentMethod domain.PaymentMethod
	Notes         string
	// ShippingFee overrides the configured flat fee when non-nil.
	ShippingFee *int64
}

// PreferencesService persists the display preferences.
type PreferencesService interface {
	Theme(ctx context.Context) domain.Theme
	SetTheme(ctx context.Context, theme domain.Theme) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

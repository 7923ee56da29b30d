// Package repositories defines the persistence contracts consumed by the
// service layer. Implementations live in subpackages.
package repositories

import (
	"context"

	"github.com/ecustomers/storefront/internal/domain"
)

// CartRepository persists the single authoritative cart snapshot.
type CartRepository interface {
	// Load returns the persisted ledger. An absent or unreadable snapshot
	// yields an empty ledger, never an error the user must act on.
	Load(ctx context.Context) (domain.Ledger, error)
	// Save replaces the persisted snapshot with the given ledger.
	Save(ctx context.Context, items domain.Ledger) error
	// Clear removes the persisted snapshot.
	Clear(ctx context.Context) error
}

// OrderRepository persists the append-only order history.
type OrderRepository interface {
	// Append adds the order to the end of the history. Prior entries are
	// never rewritten.
	Append(ctx context.Context, order domain.Order) error
	// List returns the history in append order.
	List(ctx context.Context) ([]domain.Order, error)
}

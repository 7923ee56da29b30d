// Package kv implements the repository contracts over the key-value
// store, serialising records as JSON under fixed keys so snapshots
// round-trip with the original storefront's local storage payloads.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/platform/kvstore"
)

// CartKey is the store key holding the serialized cart snapshot.
const CartKey = "ecustomers-cart"

// CartRepository stores the cart ledger as a JSON array of line items.
type CartRepository struct {
	store  kvstore.Store
	logger func(context.Context, string, map[string]any)
}

// NewCartRepository constructs a cart repository over the given store.
func NewCartRepository(store kvstore.Store, logger func(context.Context, string, map[string]any)) (*CartRepository, error) {
	if store == nil {
		return nil, errors.New("cart repository: store is required")
	}
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &CartRepository{store: store, logger: logger}, nil
}

// Load implements repositories.CartRepository. A missing snapshot is an
// empty ledger; a snapshot that fails to parse is treated as foreign data,
// logged, and replaced by an empty ledger rather than surfaced.
func (r *CartRepository) Load(ctx context.Context) (domain.Ledger, error) {
	raw, ok, err := r.store.Get(ctx, CartKey)
	if err != nil {
		return nil, fmt.Errorf("cart repository: load snapshot: %w", err)
	}
	if !ok || raw == "" {
		return domain.Ledger{}, nil
	}

	var items domain.Ledger
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger(ctx, "cart.snapshot_corrupt", map[string]any{
			"key":   CartKey,
			"error": err.Error(),
		})
		return domain.Ledger{}, nil
	}
	return sanitizeLedger(items), nil
}

// Save implements repositories.CartRepository.
func (r *CartRepository) Save(ctx context.Context, items domain.Ledger) error {
	if items == nil {
		items = domain.Ledger{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart repository: encode snapshot: %w", err)
	}
	if err := r.store.Set(ctx, CartKey, string(data)); err != nil {
		return fmt.Errorf("cart repository: persist snapshot: %w", err)
	}
	return nil
}

// Clear implements repositories.CartRepository.
func (r *CartRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, CartKey); err != nil {
		return fmt.Errorf("cart repository: clear snapshot: %w", err)
	}
	return nil
}

// sanitizeLedger enforces the ledger invariants on data read from the
// store: positive quantities only, one entry per id (first occurrence
// wins). Foreign writers may have violated either.
func sanitizeLedger(items domain.Ledger) domain.Ledger {
	cleaned := make(domain.Ledger, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		cleaned = append(cleaned, item)
	}
	return cleaned
}

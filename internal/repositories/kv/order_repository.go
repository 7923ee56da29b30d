package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/platform/kvstore"
)

// OrdersKey is the store key holding the serialized order history.
const OrdersKey = "ecustomers-orders"

// OrderRepository stores the order history as a JSON array, append-only.
type OrderRepository struct {
	store  kvstore.Store
	logger func(context.Context, string, map[string]any)
}

// NewOrderRepository constructs an order repository over the given store.
func NewOrderRepository(store kvstore.Store, logger func(context.Context, string, map[string]any)) (*OrderRepository, error) {
	if store == nil {
		return nil, errors.New("order repository: store is required")
	}
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &OrderRepository{store: store, logger: logger}, nil
}

// Append implements repositories.OrderRepository. A corrupt history is
// logged and restarted empty before the order is appended; the new order
// is never lost to foreign data.
func (r *OrderRepository) Append(ctx context.Context, order domain.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("order repository: encode history: %w", err)
	}
	if err := r.store.Set(ctx, OrdersKey, string(data)); err != nil {
		return fmt.Errorf("order repository: persist history: %w", err)
	}
	return nil
}

// List implements repositories.OrderRepository.
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	raw, ok, err := r.store.Get(ctx, OrdersKey)
	if err != nil {
		return nil, fmt.Errorf("order repository: load history: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		r.logger(ctx, "orders.history_corrupt", map[string]any{
			"key":   OrdersKey,
			"error": err.Error(),
		})
		return []domain.Order{}, nil
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/repositories"
)

// ErrEmptyCart indicates checkout was attempted with zero line items. No
// order is created and the history is untouched. This is the one error
// meant to reach the end user directly.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrCheckoutInvalidInput indicates the caller supplied invalid checkout
// parameters.
var ErrCheckoutInvalidInput = errors.New("checkout: invalid input")

// ErrCheckoutUnavailable indicates checkout dependencies are currently
// unavailable.
var ErrCheckoutUnavailable = errors.New("checkout: unavailable")

// CheckoutServiceDeps wires the dependencies required by the checkout
// service.
type CheckoutServiceDeps struct {
	Orders             repositories.OrderRepository
	Carts              repositories.CartRepository
	Clock              func() time.Time
	IDGenerator        func() string
	Logger             func(context.Context, string, map[string]any)
	DefaultShippingFee int64
}

type checkoutService struct {
	orders     repositories.OrderRepository
	carts      repositories.CartRepository
	now        func() time.Time
	newID      func() string
	logger     func(context.Context, string, map[string]any)
	defaultFee int64
}

// NewCheckoutService constructs a CheckoutService validating required
// dependencies.
func NewCheckoutService(deps CheckoutServiceDeps) (CheckoutService, error) {
	if deps.Orders == nil {
		return nil, errors.New("checkout service: order repository is required")
	}
	if deps.Carts == nil {
		return nil, errors.New("checkout service: cart repository is required")
	}
	if deps.DefaultShippingFee < 0 {
		return nil, errors.New("checkout service: shipping fee must be non-negative")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		// ULID carries a non-decreasing time component plus a random
		// suffix; uniqueness here is practical, not cryptographic.
		idGen = func() string { return "EC" + ulid.Make().String() }
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &checkoutService{
		orders:     deps.Orders,
		carts:      deps.Carts,
		now:        func() time.Time { return clock().UTC() },
		newID:      idGen,
		logger:     logger,
		defaultFee: deps.DefaultShippingFee,
	}, nil
}

// Compose builds the immutable order record from the ledger snapshot,
// appends it to the history, and clears the cart.
func (s *checkoutService) Compose(ctx context.Context, cmd ComposeOrderCommand) (domain.Order, error) {
	if s == nil || s.orders == nil {
		return domain.Order{}, ErrCheckoutUnavailable
	}

	snapshot := cmd.Items.Clone()
	if len(snapshot) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	method := cmd.PaymentMethod
	if method == "" {
		method = domain.PaymentCOD
	} else if _, err := domain.ParsePaymentMethod(string(method)); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %q is not a payment method", ErrCheckoutInvalidInput, method)
	}

	fee := s.defaultFee
	if cmd.ShippingFee != nil {
		if *cmd.ShippingFee < 0 {
			return domain.Order{}, fmt.Errorf("%w: shipping fee must be non-negative", ErrCheckoutInvalidInput)
		}
		fee = *cmd.ShippingFee
	}

	order := domain.Order{
		ID:            s.newID(),
		CreatedAt:     s.now(),
		Items:         snapshot,
		Customer:      cmd.Customer,
		PaymentMethod: method,
		Notes:         cmd.Notes,
		ShippingFee:   fee,
		Total:         domain.LedgerSubtotal(snapshot) + fee,
	}

	if err := s.orders.Append(ctx, order); err != nil {
		s.logger(ctx, "checkout.persist_failed", map[string]any{
			"orderId": order.ID,
			"error":   err.Error(),
		})
		return domain.Order{}, ErrCheckoutUnavailable
	}

	// The order stands once appended; a failed cart clear is logged but
	// does not undo the checkout.
	if err := s.carts.Clear(ctx); err != nil {
		s.logger(ctx, "checkout.cart_clear_failed", map[string]any{
			"orderId": order.ID,
			"error":   err.Error(),
		})
	}

	return order, nil
}

// ListOrders returns the persisted order history in append order.
func (s *checkoutService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if s == nil || s.orders == nil {
		return nil, ErrCheckoutUnavailable
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		s.logger(ctx, "checkout.history_load_failed", map[string]any{"error": err.Error()})
		return nil, ErrCheckoutUnavailable
	}
	return orders, nil
}

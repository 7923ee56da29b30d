package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/messaging"
	"github.com/ecustomers/storefront/internal/platform/httpx"
	"github.com/ecustomers/storefront/internal/services"
)

// CheckoutHandlersDeps wires the services the checkout endpoint composes.
type CheckoutHandlersDeps struct {
	Checkout services.CheckoutService
	Cart     services.CartService
	// WhatsAppNumber is the store's contact number for the order handoff
	// link, international format.
	WhatsAppNumber string
}

// CheckoutHandlers turns the current cart into an order and hands back the
// outbound order message plus its wa.me link.
type CheckoutHandlers struct {
	checkout services.CheckoutService
	cart     services.CartService
	waNumber string
}

// NewCheckoutHandlers constructs the checkout handlers.
func NewCheckoutHandlers(deps CheckoutHandlersDeps) (*CheckoutHandlers, error) {
	if deps.Checkout == nil {
		return nil, errors.New("checkout handlers: checkout service is required")
	}
	if deps.Cart == nil {
		return nil, errors.New("checkout handlers: cart service is required")
	}
	return &CheckoutHandlers{
		checkout: deps.Checkout,
		cart:     deps.Cart,
		waNumber: deps.WhatsAppNumber,
	}, nil
}

// Routes registers the checkout endpoint.
func (h *CheckoutHandlers) Routes(r chi.Router) {
	r.Post("/", h.Compose)
}

type checkoutRequest struct {
	Customer      domain.CustomerInfo `json:"customer"`
	PaymentMethod string              `json:"paymentMethod"`
	Notes         string              `json:"notes"`
	ShippingFee   *int64              `json:"shippingFee"`
}

type checkoutResponse struct {
	Order               domain.Order `json:"order"`
	TotalDisplay        string       `json:"totalDisplay"`
	Message             string       `json:"message"`
	WhatsAppURL         string       `json:"whatsappUrl"`
	PaymentInstructions string       `json:"paymentInstructions"`
}

// Compose validates the checkout form, snapshots the cart into an order,
// and returns the order together with the rendered message.
func (h *CheckoutHandlers) Compose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkoutRequest
	if err := decodeJSONBody(r, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	items, err := h.cart.Load(ctx)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}

	method := domain.PaymentMethod("")
	if req.PaymentMethod != "" {
		method, err = domain.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_payment_method", "payment method is not recognised", http.StatusBadRequest))
			return
		}
	}

	order, err := h.checkout.Compose(ctx, services.ComposeOrderCommand{
		Items:         items,
		Customer:      req.Customer,
		PaymentMethod: method,
		Notes:         req.Notes,
		ShippingFee:   req.ShippingFee,
	})
	if err != nil {
		writeCheckoutError(ctx, w, err)
		return
	}

	text := messaging.OrderMessage(order)
	writeJSONResponse(w, http.StatusCreated, checkoutResponse{
		Order:               order,
		TotalDisplay:        messaging.FormatPrice(order.Total),
		Message:             text,
		WhatsAppURL:         messaging.WhatsAppLink(h.waNumber, text),
		PaymentInstructions: order.PaymentMethod.Instructions(),
	})
}

func writeCheckoutError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		httpx.WriteError(ctx, w, httpx.NewError("empty_cart", "cart is empty, add an item before checkout", http.StatusConflict))
	case errors.Is(err, services.ErrCheckoutInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_checkout_input", "checkout parameters are invalid", http.StatusBadRequest))
	case errors.Is(err, services.ErrCheckoutUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("checkout_unavailable", "checkout is temporarily unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "unexpected checkout failure", http.StatusInternalServerError))
	}
}

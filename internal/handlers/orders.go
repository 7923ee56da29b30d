package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/messaging"
	"github.com/ecustomers/storefront/internal/services"
)

// OrderHandlers serves the append-only order history.
type OrderHandlers struct {
	checkout services.CheckoutService
}

// NewOrderHandlers constructs the order history handlers.
func NewOrderHandlers(checkout services.CheckoutService) *OrderHandlers {
	return &OrderHandlers{checkout: checkout}
}

// Routes registers the order history endpoints.
func (h *OrderHandlers) Routes(r chi.Router) {
	r.Get("/", h.List)
}

type orderView struct {
	domain.Order
	TotalDisplay        string `json:"totalDisplay"`
	PaymentInstructions string `json:"paymentInstructions"`
}

// List returns all persisted orders in append order.
func (h *OrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.checkout.ListOrders(ctx)
	if err != nil {
		writeCheckoutError(ctx, w, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView{
			Order:               order,
			TotalDisplay:        messaging.FormatPrice(order.Total),
			PaymentInstructions: order.PaymentMethod.Instructions(),
		})
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"orders": views,
		"count":  len(views),
	})
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/messaging"
	"github.com/ecustomers/storefront/internal/platform/httpx"
	"github.com/ecustomers/storefront/internal/services"
)

// CartHandlers exposes the cart ledger over HTTP. Every mutation responds
// with the full cart view so the client can redraw badge, rows, and total
// from one payload.
type CartHandlers struct {
	cart     services.CartService
	waNumber string
}

// NewCartHandlers constructs the cart handlers. The WhatsApp number feeds
// the direct cart-to-chat handoff link.
func NewCartHandlers(cart services.CartService, whatsAppNumber string) *CartHandlers {
	return &CartHandlers{cart: cart, waNumber: whatsAppNumber}
}

// Routes registers the cart endpoints.
func (h *CartHandlers) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Delete("/", h.Clear)
	r.Get("/message", h.Message)
	r.Post("/items", h.AddItem)
	r.Put("/items/{productID}", h.SetQuantity)
	r.Delete("/items/{productID}", h.RemoveItem)
}

type cartItemView struct {
	domain.LineItem
	EffectivePrice   int64  `json:"effectivePrice"`
	LineTotal        int64  `json:"lineTotal"`
	LineTotalDisplay string `json:"lineTotalDisplay"`
}

type cartView struct {
	Items           []cartItemView `json:"items"`
	SummaryLines    []string       `json:"summaryLines"`
	ItemCount       int            `json:"itemCount"`
	Subtotal        int64          `json:"subtotal"`
	SubtotalDisplay string         `json:"subtotalDisplay"`
}

func newCartView(items domain.Ledger) cartView {
	views := make([]cartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, cartItemView{
			LineItem:         item,
			EffectivePrice:   domain.EffectiveUnitPrice(item),
			LineTotal:        domain.LineTotal(item),
			LineTotalDisplay: messaging.FormatPrice(domain.LineTotal(item)),
		})
	}
	subtotal := domain.LedgerSubtotal(items)
	return cartView{
		Items:           views,
		SummaryLines:    messaging.CartSummaryLines(items),
		ItemCount:       items.ItemCount(),
		Subtotal:        subtotal,
		SubtotalDisplay: messaging.FormatPrice(subtotal),
	}
}

type addItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get returns the current cart view.
func (h *CartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.cart.Load(ctx)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, newCartView(items))
}

// AddItem puts a catalog product into the cart.
func (h *CartHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	items, err := h.cart.Add(ctx, services.AddItemCommand{ProductID: req.ProductID, Quantity: quantity})
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, newCartView(items))
}

// SetQuantity overwrites a line item quantity. Zero removes the line.
func (h *CartHandlers) SetQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_product_id", "product id must be an integer", http.StatusBadRequest))
		return
	}

	var req setQuantityRequest
	if err := decodeJSONBody(r, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	items, err := h.cart.SetQuantity(ctx, productID, req.Quantity)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, newCartView(items))
}

// RemoveItem deletes one line item. Removing an absent id still succeeds.
func (h *CartHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_product_id", "product id must be an integer", http.StatusBadRequest))
		return
	}

	items, err := h.cart.Remove(ctx, productID)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, newCartView(items))
}

// Message renders the current cart as the outbound order text, totalled
// without shipping, together with its wa.me link. This is the cart-level
// handoff that skips the checkout form entirely.
func (h *CartHandlers) Message(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.cart.Load(ctx)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	if len(items) == 0 {
		httpx.WriteError(ctx, w, httpx.NewError("empty_cart", "cart is empty, add an item first", http.StatusConflict))
		return
	}

	text := messaging.LedgerMessage(items)
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"message":     text,
		"whatsappUrl": messaging.WhatsAppLink(h.waNumber, text),
	})
}

// Clear empties the cart.
func (h *CartHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.cart.Clear(ctx)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, newCartView(items))
}

func writeCartError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_quantity", "quantity must be a positive integer", http.StatusBadRequest))
	case errors.Is(err, services.ErrUnknownProduct):
		httpx.WriteError(ctx, w, httpx.NewError("unknown_product", "product is not in the catalog", http.StatusNotFound))
	case errors.Is(err, services.ErrCartUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart storage is unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "unexpected cart failure", http.StatusInternalServerError))
	}
}

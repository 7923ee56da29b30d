package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/messaging"
	"github.com/ecustomers/storefront/internal/platform/httpx"
)

// CatalogService is the read surface the product handlers need.
type CatalogService interface {
	List(ctx context.Context) []domain.Product
	FindByID(ctx context.Context, id int64) (domain.Product, bool)
}

// CatalogHandlers serves the read-only product catalog.
type CatalogHandlers struct {
	catalog CatalogService
}

// NewCatalogHandlers constructs the catalog handlers.
func NewCatalogHandlers(catalog CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog}
}

// Routes registers the catalog endpoints.
func (h *CatalogHandlers) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{productID}", h.Get)
}

type productView struct {
	domain.Product
	PriceDisplay string `json:"priceDisplay"`
	// FinalPrice is the unit price after any active promo discount.
	FinalPrice        int64  `json:"finalPrice"`
	FinalPriceDisplay string `json:"finalPriceDisplay"`
}

func newProductView(p domain.Product) productView {
	final := domain.EffectiveUnitPrice(domain.LineItem{
		UnitPrice: p.Price,
		Promo:     p.Promo,
		Discount:  p.Discount,
	})
	return productView{
		Product:           p,
		PriceDisplay:      messaging.FormatPrice(p.Price),
		FinalPrice:        final,
		FinalPriceDisplay: messaging.FormatPrice(final),
	}
}

// List returns every catalog product in source order.
func (h *CatalogHandlers) List(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.List(r.Context())
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"products": views,
		"count":    len(views),
	})
}

// Get returns a single product by id.
func (h *CatalogHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_product_id", "product id must be an integer", http.StatusBadRequest))
		return
	}

	product, ok := h.catalog.FindByID(ctx, id)
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("product_not_found", fmt.Sprintf("no product with id %d", id), http.StatusNotFound))
		return
	}

	writeJSONResponse(w, http.StatusOK, newProductView(product))
}

package services

import (
	"context"
	"errors"

	"github.com/ecustomers/storefront/internal/domain"
)

type fakeCartRepository struct {
	items     domain.Ledger
	saveCalls int
	loadErr   error
	saveErr   error
	clearErr  error
	cleared   bool
}

func (r *fakeCartRepository) Load(context.Context) (domain.Ledger, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.items.Clone(), nil
}

func (r *fakeCartRepository) Save(_ context.Context, items domain.Ledger) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saveCalls++
	r.items = items.Clone()
	return nil
}

func (r *fakeCartRepository) Clear(context.Context) error {
	if r.clearErr != nil {
		return r.clearErr
	}
	r.cleared = true
	r.items = domain.Ledger{}
	return nil
}

type fakeOrderRepository struct {
	orders    []domain.Order
	appendErr error
	listErr   error
}

func (r *fakeOrderRepository) Append(_ context.Context, order domain.Order) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepository) List(context.Context) ([]domain.Order, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Order(nil), r.orders...), nil
}

type stubProductFinder struct {
	products map[int64]domain.Product
}

func (f *stubProductFinder) FindByID(_ context.Context, id int64) (domain.Product, bool) {
	product, ok := f.products[id]
	return product, ok
}

func testCatalog() *stubProductFinder {
	return &stubProductFinder{products: map[int64]domain.Product{
		201: {ID: 201, Name: "Handsocks Manset Jempol Muslimah", Price: 15000, Category: "Fashion Muslim", Promo: true, Discount: 10, Image: "handsock.jpg"},
		202: {ID: 202, Name: "Inner Ciput Rajut", Price: 12000, Category: "Hijab", Image: "ciput.jpg"},
		301: {ID: 301, Name: "A", Price: 15000},
	}}
}

var errStoreDown = errors.New("store down")

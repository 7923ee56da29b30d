package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/repositories"
)

var (
	errCartRepositoryRequired = errors.New("cart service: repository is required")
	errCartCatalogRequired    = errors.New("cart service: product finder is required")
)

// ErrCartUnavailable indicates the cart service cannot reach its store.
var ErrCartUnavailable = errors.New("cart service: unavailable")

// ErrUnknownProduct indicates an add referenced an id absent from the
// catalog. The ledger is left unchanged.
var ErrUnknownProduct = errors.New("cart service: unknown product")

// ErrInvalidQuantity indicates a non-positive quantity was supplied to an
// operation that requires one. Rejected before any mutation.
var ErrInvalidQuantity = errors.New("cart service: invalid quantity")

// CartServiceDeps wires the repository and catalog dependencies for cart
// operations.
type CartServiceDeps struct {
	Repository repositories.CartRepository
	Products   ProductFinder
	Logger     func(context.Context, string, map[string]any)
}

type cartService struct {
	repo     repositories.CartRepository
	products ProductFinder
	logger   func(context.Context, string, map[string]any)
}

// NewCartService constructs a CartService enforcing dependency validation.
func NewCartService(deps CartServiceDeps) (CartService, error) {
	if deps.Repository == nil {
		return nil, errCartRepositoryRequired
	}
	if deps.Products == nil {
		return nil, errCartCatalogRequired
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &cartService{
		repo:     deps.Repository,
		products: deps.Products,
		logger:   logger,
	}, nil
}

func (s *cartService) Load(ctx context.Context) (domain.Ledger, error) {
	if s == nil || s.repo == nil {
		return nil, ErrCartUnavailable
	}
	items, err := s.repo.Load(ctx)
	if err != nil {
		s.logger(ctx, "cart.load_failed", map[string]any{"error": err.Error()})
		return nil, ErrCartUnavailable
	}
	return items, nil
}

func (s *cartService) Add(ctx context.Context, cmd AddItemCommand) (domain.Ledger, error) {
	if s == nil || s.repo == nil {
		return nil, ErrCartUnavailable
	}

	// Validation happens before the ledger is touched; an invalid add
	// must never leave a partial mutation behind.
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, cmd.Quantity)
	}
	product, ok := s.products.FindByID(ctx, cmd.ProductID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownProduct, cmd.ProductID)
	}

	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	items = items.Clone()

	if idx := items.IndexOf(cmd.ProductID); idx >= 0 {
		items[idx].Quantity += cmd.Quantity
	} else {
		items = append(items, domain.LineItem{
			ID:        product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  cmd.Quantity,
			Promo:     product.Promo,
			Discount:  product.Discount,
			Category:  product.Category,
			Image:     product.Image,
		})
	}

	return s.persist(ctx, items)
}

func (s *cartService) Remove(ctx context.Context, productID int64) (domain.Ledger, error) {
	if s == nil || s.repo == nil {
		return nil, ErrCartUnavailable
	}

	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := items.IndexOf(productID)
	if idx < 0 {
		return items, nil
	}

	items = items.Clone()
	items = append(items[:idx], items[idx+1:]...)
	return s.persist(ctx, items)
}

func (s *cartService) SetQuantity(ctx context.Context, productID int64, quantity int) (domain.Ledger, error) {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	if s == nil || s.repo == nil {
		return nil, ErrCartUnavailable
	}

	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := items.IndexOf(productID)
	if idx < 0 {
		return items, nil
	}

	items = items.Clone()
	items[idx].Quantity = quantity
	return s.persist(ctx, items)
}

func (s *cartService) Clear(ctx context.Context) (domain.Ledger, error) {
	if s == nil || s.repo == nil {
		return nil, ErrCartUnavailable
	}
	return s.persist(ctx, domain.Ledger{})
}

func (s *cartService) Total(ctx context.Context) (int64, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	return domain.LedgerSubtotal(items), nil
}

func (s *cartService) ItemCount(ctx context.Context) (int, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	return items.ItemCount(), nil
}

// persist writes the snapshot through to the store and only then returns
// the new ledger, keeping memory and store in step from the caller's
// point of view.
func (s *cartService) persist(ctx context.Context, items domain.Ledger) (domain.Ledger, error) {
	if err := s.repo.Save(ctx, items); err != nil {
		s.logger(ctx, "cart.persist_failed", map[string]any{"error": err.Error()})
		return nil, ErrCartUnavailable
	}
	return items, nil
}

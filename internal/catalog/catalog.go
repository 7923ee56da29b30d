// Package catalog serves the read-only product catalog. The catalog is
// fetched once, kept in memory, and mirrored into the key-value store so
// later sessions start without touching the source at all.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/platform/kvstore"
)

// CacheKey is the store key holding the serialized catalog mirror.
const CacheKey = "ecustomers-catalog"

// ServiceDeps wires the catalog source and optional persistent cache.
type ServiceDeps struct {
	Source Source
	Cache  kvstore.Store
	Logger func(context.Context, string, map[string]any)
}

// Service exposes catalog lookups. A fetch failure yields an empty
// catalog; callers keep working and the next lookup retries the source.
type Service struct {
	source Source
	cache  kvstore.Store
	logger func(context.Context, string, map[string]any)

	sfg singleflight.Group

	mu       sync.RWMutex
	loaded   bool
	products []domain.Product
	byID     map[int64]domain.Product
}

// NewService constructs a catalog service validating required dependencies.
func NewService(deps ServiceDeps) (*Service, error) {
	if deps.Source == nil {
		return nil, errors.New("catalog service: source is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &Service{
		source: deps.Source,
		cache:  deps.Cache,
		logger: logger,
	}, nil
}

// List returns all catalog products in source order.
func (s *Service) List(ctx context.Context) []domain.Product {
	products := s.ensureLoaded(ctx)
	dup := make([]domain.Product, len(products))
	copy(dup, products)
	return dup
}

// FindByID looks a product up by its identifier.
func (s *Service) FindByID(ctx context.Context, id int64) (domain.Product, bool) {
	s.ensureLoaded(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.byID[id]
	return product, ok
}

func (s *Service) ensureLoaded(ctx context.Context) []domain.Product {
	s.mu.RLock()
	if s.loaded {
		products := s.products
		s.mu.RUnlock()
		return products
	}
	s.mu.RUnlock()

	// Concurrent first lookups share one fetch.
	v, _, _ := s.sfg.Do("load", func() (any, error) {
		return s.load(ctx), nil
	})
	products, _ := v.([]domain.Product)
	return products
}

func (s *Service) load(ctx context.Context) []domain.Product {
	s.mu.RLock()
	if s.loaded {
		products := s.products
		s.mu.RUnlock()
		return products
	}
	s.mu.RUnlock()

	if products, ok := s.fromCache(ctx); ok {
		s.install(products)
		return products
	}

	products, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger(ctx, "catalog.fetch_failed", map[string]any{
			"error": err.Error(),
		})
		// Stay unloaded so the next lookup retries the source.
		return []domain.Product{}
	}
	if products == nil {
		products = []domain.Product{}
	}

	s.install(products)
	s.toCache(ctx, products)
	return products
}

func (s *Service) install(products []domain.Product) {
	byID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	s.mu.Lock()
	s.loaded = true
	s.products = products
	s.byID = byID
	s.mu.Unlock()
}

func (s *Service) fromCache(ctx context.Context) ([]domain.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, CacheKey)
	if err != nil || !ok || raw == "" {
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		s.logger(ctx, "catalog.cache_corrupt", map[string]any{
			"key":   CacheKey,
			"error": err.Error(),
		})
		return nil, false
	}
	return products, true
}

func (s *Service) toCache(ctx context.Context, products []domain.Product) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, CacheKey, string(data)); err != nil {
		s.logger(ctx, "catalog.cache_write_failed", map[string]any{
			"key":   CacheKey,
			"error": err.Error(),
		})
	}
}

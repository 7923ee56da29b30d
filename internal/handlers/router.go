package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ecustomers/storefront/internal/platform/httpx"
)

// RouteRegistrar registers a set of routes against the provided router.
type RouteRegistrar func(r chi.Router)

type routerConfig struct {
	basePath    string
	middlewares []func(http.Handler) http.Handler
	health      *HealthHandlers

	catalog  RouteRegistrar
	cart     RouteRegistrar
	checkout RouteRegistrar
	orders   RouteRegistrar
	theme    RouteRegistrar
}

// Option customises the router configuration before construction.
type Option func(*routerConfig)

const (
	defaultAPIPrefix  = "/api/v1"
	defaultTimeout    = 60 * time.Second
	errorNotFoundCode = "route_not_found"
)

// NewRouter constructs the chi router with shared middleware and the
// storefront route groups.
func NewRouter(opts ...Option) chi.Router {
	cfg := routerConfig{
		basePath: defaultAPIPrefix,
		middlewares: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Timeout(defaultTimeout),
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()

	if cfg.health == nil {
		cfg.health = NewHealthHandlers()
	}

	for _, mw := range cfg.middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError(errorNotFoundCode, fmt.Sprintf("no route for %s", req.URL.Path), http.StatusNotFound))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("method_not_allowed", fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path), http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", cfg.health.Healthz)

	r.Route(cfg.basePath, func(api chi.Router) {
		if cfg.catalog != nil {
			api.Route("/products", cfg.catalog)
		}
		if cfg.cart != nil {
			api.Route("/cart", cfg.cart)
		}
		if cfg.checkout != nil {
			api.Route("/checkout", cfg.checkout)
		}
		if cfg.orders != nil {
			api.Route("/orders", cfg.orders)
		}
		if cfg.theme != nil {
			api.Route("/theme", cfg.theme)
		}
	})

	return r
}

// WithBasePath overrides the API prefix.
func WithBasePath(path string) Option {
	return func(cfg *routerConfig) {
		if path != "" {
			cfg.basePath = path
		}
	}
}

// WithMiddlewares replaces the default middleware chain.
func WithMiddlewares(middlewares ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.middlewares = middlewares
	}
}

// WithHealthHandlers injects custom health handlers.
func WithHealthHandlers(health *HealthHandlers) Option {
	return func(cfg *routerConfig) {
		cfg.health = health
	}
}

// WithCatalogRoutes mounts the product catalog endpoints.
func WithCatalogRoutes(registrar RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.catalog = registrar }
}

// WithCartRoutes mounts the cart endpoints.
func WithCartRoutes(registrar RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.cart = registrar }
}

// WithCheckoutRoutes mounts the checkout endpoint.
func WithCheckoutRoutes(registrar RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.checkout = registrar }
}

// WithOrderRoutes mounts the order history endpoints.
func WithOrderRoutes(registrar RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.orders = registrar }
}

// WithThemeRoutes mounts the theme preference endpoints.
func WithThemeRoutes(registrar RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.theme = registrar }
}

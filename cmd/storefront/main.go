package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ecustomers/storefront/internal/catalog"
	"github.com/ecustomers/storefront/internal/handlers"
	"github.com/ecustomers/storefront/internal/platform/config"
	"github.com/ecustomers/storefront/internal/platform/kvstore"
	"github.com/ecustomers/storefront/internal/platform/observability"
	kvrepo "github.com/ecustomers/storefront/internal/repositories/kv"
	"github.com/ecustomers/storefront/internal/services"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("storefront")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		var validation *config.ValidationError
		if errors.As(err, &validation) {
			logger.Fatal("invalid configuration", zap.Strings("fields", validation.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	store, closeStore, err := newStore(ctx, cfg.Store)
	if err != nil {
		logger.Fatal("failed to initialise key-value store", zap.Error(err))
	}
	defer closeStore()
	logger.Info("key-value store ready", zap.String("backend", cfg.Store.Backend))

	catalogService, err := catalog.NewService(catalog.ServiceDeps{
		Source: newCatalogSource(cfg.Catalog),
		Cache:  store,
		Logger: observability.EventLogger(logger.Named("catalog")),
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog service", zap.Error(err))
	}

	cartRepo, err := kvrepo.NewCartRepository(store, observability.EventLogger(logger.Named("cart")))
	if err != nil {
		logger.Fatal("failed to initialise cart repository", zap.Error(err))
	}
	orderRepo, err := kvrepo.NewOrderRepository(store, observability.EventLogger(logger.Named("orders")))
	if err != nil {
		logger.Fatal("failed to initialise order repository", zap.Error(err))
	}

	cartService, err := services.NewCartService(services.CartServiceDeps{
		Repository: cartRepo,
		Products:   catalogService,
		Logger:     observability.EventLogger(logger.Named("cart")),
	})
	if err != nil {
		logger.Fatal("failed to initialise cart service", zap.Error(err))
	}
	checkoutService, err := services.NewCheckoutService(services.CheckoutServiceDeps{
		Orders:             orderRepo,
		Carts:              cartRepo,
		Clock:              time.Now,
		Logger:             observability.EventLogger(logger.Named("checkout")),
		DefaultShippingFee: cfg.Checkout.ShippingFee,
	})
	if err != nil {
		logger.Fatal("failed to initialise checkout service", zap.Error(err))
	}
	prefsService, err := services.NewPreferencesService(services.PreferencesServiceDeps{
		Store:  store,
		Logger: observability.EventLogger(logger.Named("preferences")),
	})
	if err != nil {
		logger.Fatal("failed to initialise preferences service", zap.Error(err))
	}

	checkoutHandlers, err := handlers.NewCheckoutHandlers(handlers.CheckoutHandlersDeps{
		Checkout:       checkoutService,
		Cart:           cartService,
		WhatsAppNumber: cfg.Checkout.WhatsAppNumber,
	})
	if err != nil {
		logger.Fatal("failed to initialise checkout handlers", zap.Error(err))
	}

	router := handlers.NewRouter(
		handlers.WithCatalogRoutes(handlers.NewCatalogHandlers(catalogService).Routes),
		handlers.WithCartRoutes(handlers.NewCartHandlers(cartService, cfg.Checkout.WhatsAppNumber).Routes),
		handlers.WithCheckoutRoutes(checkoutHandlers.Routes),
		handlers.WithOrderRoutes(handlers.NewOrderHandlers(checkoutService).Routes),
		handlers.WithThemeRoutes(handlers.NewThemeHandlers(prefsService).Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("storefront api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newStore selects the key-value backend from configuration. The returned
// close function releases backend resources; for memory and file stores it
// is a no-op.
func newStore(ctx context.Context, cfg config.StoreConfig) (kvstore.Store, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case "memory":
		return kvstore.NewMemoryStore(), noop, nil
	case "file":
		store, err := kvstore.NewFileStore(cfg.FilePath)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		store, err := kvstore.NewRedisStore(client, cfg.KeyPrefix)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return store, func() { _ = client.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

// newCatalogSource prefers a remote catalog endpoint over the local seed
// file when both are configured.
func newCatalogSource(cfg config.CatalogConfig) catalog.Source {
	if cfg.URL != "" {
		return catalog.HTTPSource{URL: cfg.URL, Client: &http.Client{Timeout: 10 * time.Second}}
	}
	return catalog.FileSource{Path: cfg.SeedFile}
}

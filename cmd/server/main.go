package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/calculator"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/config"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/handlers"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/jobs"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/storage"
	"github.com/Lixing-Zhang/lumber-store/backend/pkg/logger"
)

const version = "1.0.0"

// storageOpener builds the store backing carts, orders and saved
// calculations, plus the scheduler that maintains it, if any.
type storageOpener func(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Store, *jobs.Scheduler, error)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	// Stop on interrupt; run shuts the server down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log, openStorage)
	stop()
	if err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run serves the API until ctx is done or the server fails. Every resource
// it opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger, open storageOpener) error {
	log.Info("starting lumber store api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"locale", cfg.Catalog.Locale,
	)

	// Initialize storage; carts, orders and saved calculations live here
	store, scheduler, err := open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	// Initialize repositories and services
	catalogRepo := repository.NewInMemoryCatalogRepository()

	engine, err := catalog.NewEngine(cfg.Catalog.Locale)
	if err != nil {
		return fmt.Errorf("failed to create filtering engine: %w", err)
	}

	productService, err := service.NewProductService(ctx, catalogRepo, engine)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	cartService := service.NewCartService(catalogRepo, store, time.Duration(cfg.Cart.TTLHours)*time.Hour)
	orderService := service.NewOrderService(cartService, store)
	history := calculator.NewHistory(store, log)

	log.Info("catalog loaded", "categories", len(productService.Categories()))

	r := newRouter(log, cfg.CORS.AllowedOrigins, routeHandlers{
		health:     handlers.NewHealthHandler(log, version, store),
		products:   handlers.NewProductHandler(productService, log),
		categories: handlers.NewCategoryHandler(productService, log),
		filters:    handlers.NewFilterHandler(productService, log),
		carts:      handlers.NewCartHandler(cartService, log),
		orders:     handlers.NewOrderHandler(orderService, log),
		calculator: handlers.NewCalculatorHandler(history, log),
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	if scheduler != nil {
		scheduler.Start()
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for the context to end or the server to fail
	select {
	case err := <-serveErr:
		if scheduler != nil {
			scheduler.Stop(context.Background())
		}
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}

// openStorage selects Redis when configured and the in-memory store
// otherwise. Only the in-memory store needs the expiry sweep; Redis expires
// keys itself.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Store, *jobs.Scheduler, error) {
	if cfg.UseRedis() {
		store, err := storage.NewRedisStore(ctx, storage.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis storage", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return store, nil, nil
	}

	store := storage.NewMemoryStore()
	scheduler, err := jobs.NewScheduler(log, jobs.SweepJob(log, "cart-sweep", cfg.Cart.SweepSchedule, store))
	if err != nil {
		return nil, nil, err
	}
	log.Info("using in-memory storage", "sweep_schedule", cfg.Cart.SweepSchedule)
	return store, scheduler, nil
}

package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/config"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/jobs"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/storage"
	"github.com/Lixing-Zhang/lumber-store/backend/pkg/logger"
)

// closeTrackingStore records whether Close was called
type closeTrackingStore struct {
	*storage.MemoryStore
	closed bool
}

func (s *closeTrackingStore) Close() error {
	s.closed = true
	return s.MemoryStore.Close()
}

func testConfig(port string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            port,
			ReadTimeout:     5,
			WriteTimeout:    5,
			ShutdownTimeout: 5,
		},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Catalog:  config.CatalogConfig{Locale: "ru"},
		Cart:     config.CartConfig{TTLHours: 1, SweepSchedule: "@every 1h"},
		LogLevel: "error",
	}
}

func trackingOpener(store *closeTrackingStore) storageOpener {
	return func(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Store, *jobs.Scheduler, error) {
		scheduler, err := jobs.NewScheduler(log, jobs.SweepJob(log, "cart-sweep", cfg.Cart.SweepSchedule, store.MemoryStore))
		if err != nil {
			return nil, nil, err
		}
		return store, scheduler, nil
	}
}

func TestRun_ClosesStorageOnShutdown(t *testing.T) {
	store := &closeTrackingStore{MemoryStore: storage.NewMemoryStore()}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := run(ctx, testConfig("0"), logger.New("error"), trackingOpener(store)); err != nil {
		t.Fatalf("run() unexpected error = %v", err)
	}
	if !store.closed {
		t.Error("storage was not closed after shutdown")
	}
}

func TestRun_ClosesStorageWhenServerFails(t *testing.T) {
	store := &closeTrackingStore{MemoryStore: storage.NewMemoryStore()}

	err := run(context.Background(), testConfig("not-a-port"), logger.New("error"), trackingOpener(store))
	if err == nil {
		t.Fatal("expected an error for an invalid listen address")
	}
	if !store.closed {
		t.Error("storage was not closed after the server failed")
	}
}

func TestRun_InvalidLocale(t *testing.T) {
	store := &closeTrackingStore{MemoryStore: storage.NewMemoryStore()}
	cfg := testConfig("0")
	cfg.Catalog.Locale = "not a locale!"

	if err := run(context.Background(), cfg, logger.New("error"), trackingOpener(store)); err == nil {
		t.Fatal("expected an error for an invalid catalog locale")
	}
	if !store.closed {
		t.Error("storage was not closed after setup failed")
	}
}

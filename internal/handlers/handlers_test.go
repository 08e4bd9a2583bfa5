package handlers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/calculator"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/storage"
	"github.com/Lixing-Zhang/lumber-store/backend/pkg/logger"
)

// testDeps wires every service over the seed catalog and a memory store
type testDeps struct {
	log      *slog.Logger
	products *service.ProductService
	carts    *service.CartService
	orders   *service.OrderService
	history  *calculator.History
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	engine, err := catalog.NewEngine("ru")
	if err != nil {
		t.Fatalf("NewEngine() unexpected error = %v", err)
	}
	repo := repository.NewInMemoryCatalogRepository()
	products, err := service.NewProductService(context.Background(), repo, engine)
	if err != nil {
		t.Fatalf("NewProductService() unexpected error = %v", err)
	}

	log := logger.New("error")
	store := storage.NewMemoryStore()
	carts := service.NewCartService(repo, store, time.Hour)

	return testDeps{
		log:      log,
		products: products,
		carts:    carts,
		orders:   service.NewOrderService(carts, store),
		history:  calculator.NewHistory(store, log),
	}
}

package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/handlers"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// routeHandlers groups every HTTP handler mounted by newRouter
type routeHandlers struct {
	health     *handlers.HealthHandler
	products   *handlers.ProductHandler
	categories *handlers.CategoryHandler
	filters    *handlers.FilterHandler
	carts      *handlers.CartHandler
	orders     *handlers.OrderHandler
	calculator *handlers.CalculatorHandler
}

func newRouter(log *slog.Logger, allowedOrigins []string, h routeHandlers) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.categories.ListCategories)
			r.Get("/tree", h.categories.CategoryTree)
			r.Get("/{categoryId}/products", h.categories.CategoryProducts)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.products.ListProducts)
			r.Get("/popular", h.products.PopularProducts)
			r.Get("/{productId}", h.products.GetProduct)
			r.Get("/{productId}/related", h.products.RelatedProducts)
		})

		r.Get("/filters/options", h.filters.Options)
		r.Post("/filters/toggle", h.filters.Toggle)

		r.Post("/cart", h.carts.CreateCart)
		r.Route("/cart/{cartId}", func(r chi.Router) {
			r.Get("/", h.carts.GetCart)
			r.Delete("/", h.carts.ClearCart)
			r.Post("/items", h.carts.AddItem)
			r.Put("/items/{productId}", h.carts.UpdateItem)
			r.Delete("/items/{productId}", h.carts.RemoveItem)
			r.Post("/checkout", h.orders.Checkout)
		})

		r.Get("/orders", h.orders.ListOrders)

		r.Post("/calculator", h.calculator.Calculate)
		r.Get("/calculator/options", h.calculator.Options)
		r.Post("/calculator/saved", h.calculator.Save)
		r.Get("/calculator/saved", h.calculator.ListSaved)
	})

	return r
}

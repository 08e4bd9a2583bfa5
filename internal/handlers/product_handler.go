package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/catalog"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
// Query parameters:
// - category: category id (selects its whole subtree) or category name
// - search: case-insensitive substring
// - sort: default, price-asc, price-desc, name-asc, name-desc
// - any facet name (categories, woodTypes, thicknesses, ...) with one or more values
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters, err := parseFilterQuery(query)
	if err != nil {
		h.logger.Warn("invalid filter query", "query", r.URL.RawQuery, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid filter value", h.logger)
		return
	}

	result, err := h.service.FilterProducts(r.Context(), service.CatalogParams{
		Category: query.Get("category"),
		Search:   strings.TrimSpace(query.Get("search")),
		Sort:     query.Get("sort"),
		Filters:  filters,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSortOrder) {
			WriteError(w, http.StatusBadRequest, "Invalid sort order", h.logger)
			return
		}

		h.logger.Error("failed to filter products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(chi.URLParam(r, "productId"))
	if productID == "" {
		h.logger.Warn("product ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		h.writeLookupError(w, productID, err)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// PopularProducts handles GET /api/products/popular
func (h *ProductHandler) PopularProducts(w http.ResponseWriter, r *http.Request) {
	popular, err := h.service.PopularProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to get popular products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, popular, h.logger)
}

// RelatedProducts handles GET /api/products/{productId}/related
func (h *ProductHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(chi.URLParam(r, "productId"))
	if productID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	related, err := h.service.RelatedProducts(r.Context(), productID)
	if err != nil {
		h.writeLookupError(w, productID, err)
		return
	}

	WriteJSON(w, http.StatusOK, related, h.logger)
}

func (h *ProductHandler) writeLookupError(w http.ResponseWriter, productID string, err error) {
	if errors.Is(err, repository.ErrProductNotFound) {
		h.logger.Info("product not found", "productId", productID)
		WriteError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	h.logger.Error("failed to get product", "productId", productID, "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
}

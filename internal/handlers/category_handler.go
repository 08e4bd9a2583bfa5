package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CategoryHandler serves the category tree
type CategoryHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *service.ProductService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// ListCategories handles GET /api/categories
// Returns every category flattened, each parent followed by its subtree
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Categories(), h.logger)
}

// CategoryTree handles GET /api/categories/tree
func (h *CategoryHandler) CategoryTree(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.CategoryTree(), h.logger)
}

// CategoryProducts handles GET /api/categories/{categoryId}/products
// An unknown category id yields an empty list
func (h *CategoryHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	products, err := h.service.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("failed to list category products", "categoryId", categoryID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

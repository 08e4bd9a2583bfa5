package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// CreateCart handles POST /api/cart
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.CreateCart(r.Context())
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, cart, h.log)
	h.log.Info("cart created", "cart_id", cart.ID)
}

// GetCart handles GET /api/cart/{cartId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.GetCart(r.Context(), chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.log)
}

// ClearCart handles DELETE /api/cart/{cartId}
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.ClearCart(r.Context(), chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.log)
}

// AddItem handles POST /api/cart/{cartId}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), chi.URLParam(r, "cartId"), req)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.log)
}

// UpdateItem handles PUT /api/cart/{cartId}/items/{productId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode update quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	cart, err := h.cartService.UpdateQuantity(r.Context(), chi.URLParam(r, "cartId"), chi.URLParam(r, "productId"), req.Quantity)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.log)
}

// RemoveItem handles DELETE /api/cart/{cartId}/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.RemoveItem(r.Context(), chi.URLParam(r, "cartId"), chi.URLParam(r, "productId"))
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.log)
}

func (h *CartHandler) writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		WriteError(w, http.StatusNotFound, "Cart not found", h.log)
	case errors.Is(err, service.ErrItemNotInCart):
		WriteError(w, http.StatusNotFound, "Product is not in the cart", h.log)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
	case errors.Is(err, service.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
	default:
		h.log.Error("cart operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}

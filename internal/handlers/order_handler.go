package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// Checkout handles POST /api/cart/{cartId}/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest

	if err := decodeJSON(r, &req); err != nil {
		h.log.Error("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	cartID := chi.URLParam(r, "cartId")
	order, err := h.orderService.Checkout(r.Context(), cartID, req)
	if err != nil {
		h.log.Warn("checkout failed", "cart_id", cartID, "error", err)

		switch {
		case errors.Is(err, service.ErrMissingCustomerInfo):
			WriteError(w, http.StatusBadRequest, "Name and phone are required", h.log)
		case errors.Is(err, service.ErrEmptyCart):
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
		case errors.Is(err, service.ErrCartNotFound):
			WriteError(w, http.StatusNotFound, "Cart not found", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
	h.log.Info("order placed", "order_id", order.ID, "cart_id", cartID, "items_count", len(order.Items))
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}

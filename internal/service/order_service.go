package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("cart must contain at least one item")
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")
)

// OrdersKey is the list key every placed order is appended to
const OrdersKey = "orders"

// OrderService turns carts into placed orders
type OrderService struct {
	carts *CartService
	store storage.Store
	now   func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(carts *CartService, store storage.Store) *OrderService {
	return &OrderService{
		carts: carts,
		store: store,
		now:   time.Now,
	}
}

// Checkout places an order for the cart and empties it
func (s *OrderService) Checkout(ctx context.Context, cartID string, req models.CheckoutRequest) (*models.Order, error) {
	customer := models.Customer{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Address: strings.TrimSpace(req.Address),
	}
	if customer.Name == "" || customer.Phone == "" {
		return nil, ErrMissingCustomerInfo
	}

	var order *models.Order
	_, err := s.carts.Checkout(ctx, cartID, func(cart *models.Cart) error {
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		placed := &models.Order{
			ID:         generateOrderID(),
			Customer:   customer,
			Comment:    strings.TrimSpace(req.Comment),
			Items:      cart.Items,
			TotalItems: cart.TotalItems,
			TotalPrice: cart.TotalPrice,
			CreatedAt:  s.now().UTC(),
		}

		data, err := json.Marshal(placed)
		if err != nil {
			return fmt.Errorf("failed to encode order: %w", err)
		}
		if err := s.store.Append(ctx, OrdersKey, data); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		order = placed
		return nil
	})
	if err != nil {
		if order != nil {
			return nil, fmt.Errorf("order %s placed but cart not cleared: %w", order.ID, err)
		}
		return nil, err
	}

	return order, nil
}

// ListOrders returns every placed order, oldest first
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	entries, err := s.store.List(ctx, OrdersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	orders := make([]models.Order, 0, len(entries))
	for _, e := range entries {
		var o models.Order
		if err := json.Unmarshal(e, &o); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}

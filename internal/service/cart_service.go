package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Lixing-Zhang/lumber-store/backend/internal/models"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/repository"
	"github.com/Lixing-Zhang/lumber-store/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrItemNotInCart   = errors.New("product is not in the cart")
)

const cartKeyPrefix = "cart:"

// CartService keeps carts in a Store, one JSON document per cart
type CartService struct {
	products repository.ProductRepository
	store    storage.Store
	ttl      time.Duration
	now      func() time.Time

	// serializes read-modify-write cycles; the store itself is last-write-wins
	mu sync.Mutex
}

// NewCartService creates a new cart service. Carts expire ttl after their
// last update; a zero ttl keeps them forever.
func NewCartService(products repository.ProductRepository, store storage.Store, ttl time.Duration) *CartService {
	return &CartService{
		products: products,
		store:    store,
		ttl:      ttl,
		now:      time.Now,
	}
}

func cartKey(id string) string {
	return cartKeyPrefix + id
}

// CreateCart creates and stores an empty cart
func (s *CartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart := &models.Cart{
		ID:    uuid.New().String(),
		Items: []models.CartItem{},
	}
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the cart with the given ID
func (s *CartService) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	return s.load(ctx, id)
}

// AddItem adds quantity of a product to the cart. Adding a product that is
// already in the cart increases the existing line.
func (s *CartService) AddItem(ctx context.Context, cartID string, req models.AddItemRequest) (*models.Cart, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrInvalidProduct
	}

	return s.update(ctx, cartID, func(cart *models.Cart) error {
		i := slices.IndexFunc(cart.Items, func(item models.CartItem) bool {
			return item.Product.ID == product.ID
		})
		if i >= 0 {
			cart.Items[i].Quantity += quantity
			return nil
		}
		cart.Items = append(cart.Items, models.CartItem{Product: *product, Quantity: quantity})
		return nil
	})
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*models.Cart, error) {
	return s.update(ctx, cartID, func(cart *models.Cart) error {
		i := slices.IndexFunc(cart.Items, func(item models.CartItem) bool {
			return item.Product.ID == productID
		})
		if i < 0 {
			return ErrItemNotInCart
		}
		if quantity <= 0 {
			cart.Items = slices.Delete(cart.Items, i, i+1)
			return nil
		}
		cart.Items[i].Quantity = quantity
		return nil
	})
}

// RemoveItem removes a product line from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*models.Cart, error) {
	return s.UpdateQuantity(ctx, cartID, productID, 0)
}

// ClearCart removes every line from the cart
func (s *CartService) ClearCart(ctx context.Context, cartID string) (*models.Cart, error) {
	return s.update(ctx, cartID, func(cart *models.Cart) error {
		cart.Items = []models.CartItem{}
		return nil
	})
}

// Checkout calls place with the current cart while holding the cart lock.
// When place succeeds the cart is emptied and saved in the same cycle, so
// no other cart operation can run between reading the lines and clearing
// them.
func (s *CartService) Checkout(ctx context.Context, cartID string, place func(*models.Cart) error) (*models.Cart, error) {
	return s.update(ctx, cartID, func(cart *models.Cart) error {
		if err := place(cart); err != nil {
			return err
		}
		cart.Items = []models.CartItem{}
		return nil
	})
}

func (s *CartService) update(ctx context.Context, cartID string, fn func(*models.Cart) error) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) load(ctx context.Context, id string) (*models.Cart, error) {
	data, err := s.store.Get(ctx, cartKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", id, err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) error {
	cart.Recalculate()
	cart.UpdatedAt = s.now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKey(cart.ID), data, s.ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

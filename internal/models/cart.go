package models

import "time"

// CartItem is a single cart line. A cart holds one line per product ID.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is a shopping cart addressed by its ID
type Cart struct {
	ID         string     `json:"id"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Recalculate refreshes the derived totals from Items
func (c *Cart) Recalculate() {
	c.TotalItems = 0
	c.TotalPrice = 0
	for _, item := range c.Items {
		c.TotalItems += item.Quantity
		c.TotalPrice += item.Product.Price * float64(item.Quantity)
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest represents a quantity change for an existing line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

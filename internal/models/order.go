package models

import "time"

// Customer holds the contact details collected at checkout
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// CheckoutRequest represents an incoming checkout request for a cart
type CheckoutRequest struct {
	Customer
	Comment string `json:"comment,omitempty"`
}

// Order represents a placed order
type Order struct {
	ID         string     `json:"id"`
	Customer   Customer   `json:"customer"`
	Comment    string     `json:"comment,omitempty"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt"`
}

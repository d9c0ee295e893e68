package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog record supplied by the pharmacy API
type Product struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Images       []string `json:"images,omitempty"`
	Category     string   `json:"category,omitempty"`
	Availability bool     `json:"availability"`
	Stock        int      `json:"stock,omitempty"`
}

// CartLine is one product-and-quantity entry in the shopping cart.
// This is the record shape persisted in local storage, so the JSON tags
// are part of the cart's durable format.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	ImageRef    string  `json:"image_ref,omitempty"`
	CategoryRef string  `json:"category_ref,omitempty"`
}

// Subtotal returns unit price times quantity for this line
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// CheckoutForm holds the shipping/contact/payment input for an order
type CheckoutForm struct {
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Address       string        `json:"address"`
	PostalCode    string        `json:"postal_code"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// CardDetails is the secondary capture step required for card payments
type CardDetails struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Order is derived from the cart and checkout form at submit time
type Order struct {
	ID            string        `json:"_id,omitempty"`
	Reference     uuid.UUID     `json:"reference"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Address       string        `json:"address"`
	PostalCode    string        `json:"postal_code"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	PlacedAt      time.Time     `json:"placed_at"`
}

// OrderItem snapshots one cart line into an order
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Review represents a customer review
type Review struct {
	ID        string    `json:"_id,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

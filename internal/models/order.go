package models

import (
	"time"
)

type Order struct {
	ID          int64        `json:"id" db:"id"`
	CustomerID  int64        `json:"customer_id" db:"customer_id"`
	OrderDate   time.Time    `json:"order_date" db:"order_date"`
	TotalAmount float64      `json:"total_amount" db:"total_amount"`
	Items       []*OrderItem `json:"items,omitempty"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// OrderCheckout is the request payload for placing an order. Item prices
// and the order total are derived server-side from the product catalog.
type OrderCheckout struct {
	CustomerID int64          `json:"customer_id"`
	Items      []CheckoutItem `json:"items"`
}

type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

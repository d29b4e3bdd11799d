package order

import (
	"time"

	"bananex-be/internal/invoice"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
	StatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID           uint             `json:"id"`
	OrderCode    string           `json:"order_code"`
	UserID       uint             `json:"user_id"`
	UserName     string           `json:"user_name,omitempty"`
	DeliveryDate time.Time        `json:"delivery_date"`
	Status       OrderStatus      `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Items        []OrderItem      `json:"items"`
	Invoice      *invoice.Invoice `json:"invoice,omitempty"`

	// InvoiceNumber is only populated on admin listings, where the
	// invoice row is joined in instead of loaded separately.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
}

type OrderItem struct {
	ID          uint   `json:"id"`
	OrderID     uint   `json:"order_id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// NewOrderItem is a line item as submitted on order creation.
type NewOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// StatusUpdate is the optional-field update contract for an order:
// Status is always written, DeliveryDate only when non-nil. The choice
// of what to touch is made here, before any SQL is built.
type StatusUpdate struct {
	Status       OrderStatus
	DeliveryDate *time.Time
}

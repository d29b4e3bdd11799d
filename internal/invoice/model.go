package invoice

import "time"

// MaxItems caps the line-item snapshot an invoice may carry.
const (
	MinItems = 1
	MaxItems = 10
)

type Invoice struct {
	ID            uint      `json:"id"`
	OrderID       uint      `json:"order_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Items         []Item    `json:"items"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

// Item is a historical snapshot of an order line, captured at invoicing
// time. It is stored as a JSON blob so later product edits never alter
// an issued invoice.
type Item struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

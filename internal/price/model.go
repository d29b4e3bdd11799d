package price

import "time"

// Price is one point in a product's price history. Date carries day
// precision only.
type Price struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

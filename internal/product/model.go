package product

import "time"

type Product struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Packaging      string     `json:"packaging"`
	ShelfLife      *int       `json:"shelf_life"`
	AvailableStock int        `json:"available_stock"`
	RestockDate    *time.Time `json:"restock_date"`
	ImageURLs      []string   `json:"image_urls"`
	IsActive       bool       `json:"is_active"`
}

// Update carries the optional product fields: nil means leave
// unchanged.
type Update struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Packaging      *string    `json:"packaging"`
	ShelfLife      *int       `json:"shelf_life"`
	AvailableStock *int       `json:"available_stock"`
	RestockDate    *time.Time `json:"restock_date"`
	IsActive       *bool      `json:"is_active"`
}

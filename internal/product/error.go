package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("product name is required")
)

package price

import "errors"

var (
	ErrPriceNotFound   = errors.New("price entry not found")
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateDate   = errors.New("a price for this product and date already exists")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)

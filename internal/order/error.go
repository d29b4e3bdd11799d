package order

import "errors"

var (
	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Validation & Input --
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrEmptyOrder      = errors.New("delivery date and products are required")
	ErrInvalidQuantity = errors.New("each product must have product_id and a positive quantity")
	ErrProductNotFound = errors.New("product not found")

	// -- State Machine --
	ErrIllegalTransition = errors.New("illegal status transition")
)

package invoice

import "errors"

var (
	// -- Validation & Input --
	ErrItemCount    = errors.New("invoice must have 1 to 10 items")
	ErrInvalidTotal = errors.New("total is required and must be a finite number")
	ErrNoNumber     = errors.New("invoice number is required")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotConfirmed = errors.New("only confirmed orders can have an invoice created")
	ErrInvoiceExists     = errors.New("order already has an invoice")
	ErrInvoiceNotFound   = errors.New("invoice not found")
)

package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrMissingFields   = errors.New("name, phone and message are required")
	ErrInvalidStatus   = errors.New("invalid status, must be new, responded or closed")
	ErrUserNotFound    = errors.New("user not found")
)

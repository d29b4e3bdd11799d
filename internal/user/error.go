package user

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("name, email, password, and role are required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidPhone  = errors.New("invalid phone number")

	// ErrInvalidUserStatus rejects values outside approved/suspended.
	ErrInvalidUserStatus = errors.New("invalid status, must be approved or suspended")

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid credentials")

	// -- Resource State --
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrAlertExists  = errors.New("stock alert already set for this product")
)

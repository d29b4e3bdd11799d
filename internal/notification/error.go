package notification

import "errors"

var (
	ErrNotFound     = errors.New("notification not found")
	ErrEmptyMessage = errors.New("notification message is required")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidType  = errors.New("invalid notification type")
)

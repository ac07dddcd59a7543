package contact

import "errors"

var (
	ErrInvalidMessage = errors.New("invalid contact message")
	ErrRateLimited    = errors.New("too many contact messages")
	ErrDeliveryFailed = errors.New("contact message delivery failed")
	ErrInvalidConfig  = errors.New("invalid contact configuration")
	ErrNotFound       = errors.New("contact record not found")
)

package gallery

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid gallery configuration")
	ErrAlreadyStarted = errors.New("gallery registry already started")
	ErrNotStarted     = errors.New("gallery registry not started")
	ErrNotRunning     = errors.New("gallery eviction is configured but not running")
)

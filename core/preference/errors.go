package preference

import "errors"

var (
	// ErrNotFound indicates the store has no value for the key.
	ErrNotFound = errors.New("preference not found")

	// ErrStoreUnavailable indicates the backing store could not be reached.
	ErrStoreUnavailable = errors.New("preference store unavailable")
)

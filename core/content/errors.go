package content

import "errors"

var (
	// ErrInvalidDocument indicates a content file is not valid JSON.
	ErrInvalidDocument = errors.New("invalid content document")

	// ErrNoDocuments indicates no content files matched the load pattern.
	ErrNoDocuments = errors.New("no content documents found")

	// ErrMissingDefault indicates the default language has no document.
	ErrMissingDefault = errors.New("default language has no content document")
)

package web

import "errors"

var (
	ErrMissingDependency = errors.New("web: missing dependency")
	ErrInvalidConfig     = errors.New("web: invalid configuration")
	ErrTemplate          = errors.New("web: failed to parse templates")
)

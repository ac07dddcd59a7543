package sqlite

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid sqlite configuration")
	ErrFailedToOpen    = errors.New("failed to open sqlite database")
	ErrMigrationFailed = errors.New("sqlite migration failed")
	ErrHealthcheck     = errors.New("sqlite healthcheck failed")
)

package sqlite

import "time"

// Config holds SQLite settings.
type Config struct {
	Path        string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	BusyTimeout time.Duration `env:"DATABASE_BUSY_TIMEOUT" envDefault:"5s"`
	MaxOpenConn int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"4"`
}

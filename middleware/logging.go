package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *gin.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware writing to log.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs one record per request after the handler chain ran.
// 5xx responses log at error level, 4xx and slow requests at warning level.
func LoggingWithConfig(cfg LoggingConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold == 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(c *gin.Context) {
		if cfg.Skip != nil && cfg.Skip(c) {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		duration := time.Since(start)
		status := c.Writer.Status()

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Method(c.Request.Method),
			logger.Path(path),
			logger.StatusCode(status),
			logger.Duration(duration),
			logger.UserAgent(c.Request.UserAgent()),
			slog.Int("bytes", c.Writer.Size()),
		}
		if ip, ok := GetClientIP(ctx); ok {
			attrs = append(attrs, logger.ClientIP(ip))
		}
		if id, ok := GetRequestID(ctx); ok {
			attrs = append(attrs, logger.RequestID(id))
		}
		if visitor, ok := GetVisitorID(ctx); ok {
			attrs = append(attrs, logger.Visitor(visitor))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, logger.Errors(toErrors(c.Errors)...))
		}

		level := cfg.LogLevel
		msg := "request completed"
		switch {
		case status >= 500:
			level = slog.LevelError
			msg = "request failed"
		case status >= 400:
			level = slog.LevelWarn
		case duration > cfg.SlowRequestThreshold:
			level = slog.LevelWarn
			msg = "slow request"
		}

		cfg.Logger.LogAttrs(ctx, level, msg, attrs...)
	}
}

func toErrors(list []*gin.Error) []error {
	errs := make([]error, 0, len(list))
	for _, e := range list {
		errs = append(errs, e.Err)
	}
	return errs
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultBodyLimit covers the contact form with room to spare.
const DefaultBodyLimit int64 = 64 << 10

// BodyLimitConfig configures the request body size limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *gin.Context) bool

	// MaxSize is the maximum allowed body size in bytes (default: DefaultBodyLimit)
	MaxSize int64

	// ErrorHandler responds when Content-Length already exceeds MaxSize
	// (default: abort with 413)
	ErrorHandler func(c *gin.Context, contentLength, maxSize int64)
}

// BodyLimit limits request bodies to DefaultBodyLimit.
func BodyLimit() gin.HandlerFunc {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithSize limits request bodies to maxSize bytes.
func BodyLimitWithSize(maxSize int64) gin.HandlerFunc {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig rejects declared oversize bodies up front and caps the
// reader for chunked or lying clients.
func BodyLimitWithConfig(cfg BodyLimitConfig) gin.HandlerFunc {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultBodyLimit
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *gin.Context, _, _ int64) {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
		}
	}

	return func(c *gin.Context) {
		if cfg.Skip != nil && cfg.Skip(c) {
			c.Next()
			return
		}

		if c.Request.ContentLength > cfg.MaxSize {
			cfg.ErrorHandler(c, c.Request.ContentLength, cfg.MaxSize)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxSize)
		}
		c.Next()
	}
}

package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/pkg/clientip"
)

// ClientIPConfig configures the client IP middleware.
type ClientIPConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *gin.Context) bool
	// Resolver extracts the IP from the request (default: clientip.GetIP)
	Resolver func(c *gin.Context) string
}

// ClientIP stores the visitor's IP in the request context.
func ClientIP() gin.HandlerFunc {
	return ClientIPWithConfig(ClientIPConfig{})
}

// ClientIPWithConfig creates a client IP middleware with custom configuration.
func ClientIPWithConfig(cfg ClientIPConfig) gin.HandlerFunc {
	if cfg.Resolver == nil {
		cfg.Resolver = func(c *gin.Context) string {
			return clientip.GetIP(c.Request)
		}
	}

	return func(c *gin.Context) {
		if cfg.Skip != nil && cfg.Skip(c) {
			c.Next()
			return
		}

		ip := cfg.Resolver(c)
		c.Request = c.Request.WithContext(clientip.WithIP(c.Request.Context(), ip))
		c.Next()
	}
}

// GetClientIP retrieves the IP stored by ClientIP.
func GetClientIP(ctx context.Context) (string, bool) {
	ip := clientip.FromContext(ctx)
	return ip, ip != ""
}

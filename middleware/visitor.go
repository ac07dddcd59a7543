package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrymomot/portfolio/core/cookie"
	"github.com/dmitrymomot/portfolio/core/logger"
)

// VisitorCookie is the signed cookie holding the anonymous visitor ID.
const VisitorCookie = "portfolio.visitor"

type visitorContextKey struct{}

// VisitorConfig configures the visitor middleware.
type VisitorConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *gin.Context) bool
	// Cookies signs and verifies the visitor cookie (required)
	Cookies *cookie.Manager
	// CookieName overrides VisitorCookie
	CookieName string
	// Generator creates new visitor IDs (default: UUID v4)
	Generator func() string
	// Logger receives cookie write failures (default: discard)
	Logger *slog.Logger
}

// Visitor identifies the browser with a signed cookie, issuing a new ID when
// the cookie is missing or fails verification.
func Visitor(cookies *cookie.Manager) gin.HandlerFunc {
	return VisitorWithConfig(VisitorConfig{Cookies: cookies})
}

// VisitorWithConfig creates a visitor middleware with custom configuration.
func VisitorWithConfig(cfg VisitorConfig) gin.HandlerFunc {
	if cfg.Cookies == nil {
		panic("middleware: visitor requires a cookie manager")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = VisitorCookie
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	return func(c *gin.Context) {
		if cfg.Skip != nil && cfg.Skip(c) {
			c.Next()
			return
		}

		id, err := cfg.Cookies.GetSigned(c.Request, cfg.CookieName)
		if err != nil || id == "" {
			id = cfg.Generator()
			if err := cfg.Cookies.SetSigned(c.Writer, cfg.CookieName, id); err != nil {
				cfg.Logger.WarnContext(c.Request.Context(), "failed to issue visitor cookie",
					logger.Component("visitor"),
					logger.Error(err))
			}
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), visitorContextKey{}, id))
		c.Next()
	}
}

// GetVisitorID retrieves the visitor ID stored by Visitor.
func GetVisitorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorContextKey{}).(string)
	return id, ok && id != ""
}

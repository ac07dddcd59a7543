package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *gin.Context) bool
	// Limiter decides whether the request fits the bucket (required)
	Limiter ratelimiter.RateLimiter
	// KeyExtractor returns the bucket key for a request (default: client IP)
	KeyExtractor func(c *gin.Context) string
	// ErrorHandler responds to a denied request (default: 429 with Retry-After)
	ErrorHandler func(c *gin.Context, result ratelimiter.Result)
	// SetHeaders adds X-RateLimit-* headers to every limited response
	SetHeaders bool
	// Logger receives limiter store failures (default: discard)
	Logger *slog.Logger
}

// RateLimit limits requests per client IP with limiter and reports the
// bucket state in response headers.
func RateLimit(limiter ratelimiter.RateLimiter) gin.HandlerFunc {
	return RateLimitWithConfig(RateLimitConfig{Limiter: limiter, SetHeaders: true})
}

// RateLimitWithConfig creates a rate limiting middleware with custom
// configuration. Panics if no limiter is provided. Requests pass when the
// limiter itself fails.
func RateLimitWithConfig(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		panic("middleware: rate limit requires a limiter")
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = func(c *gin.Context) string {
			if ip, ok := GetClientIP(c.Request.Context()); ok {
				return ip
			}
			return c.ClientIP()
		}
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *gin.Context, _ ratelimiter.Result) {
			c.String(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
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

		ctx := c.Request.Context()
		key := cfg.KeyExtractor(c)
		result, err := cfg.Limiter.Allow(ctx, key)
		if err != nil {
			cfg.Logger.WarnContext(ctx, "rate limiter unavailable, allowing request",
				logger.Component("ratelimit"),
				logger.Key(key),
				logger.Error(err))
			c.Next()
			return
		}

		if cfg.SetHeaders {
			setRateLimitHeaders(c, result)
		}
		if !result.Allowed() {
			cfg.ErrorHandler(c, result)
			c.Abort()
			return
		}
		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, result ratelimiter.Result) {
	h := c.Writer.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
	if retry := result.RetryAfter(); retry > 0 {
		h.Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	}
}

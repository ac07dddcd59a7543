package web

import (
	"time"

	"github.com/dmitrymomot/portfolio/pkg/ratelimiter"
)

// Config holds the site settings read from the environment.
type Config struct {
	BasePath              string        `env:"BASE_PATH" envDefault:"/"`
	ContactFormEndpoint   string        `env:"CONTACT_FORM_ENDPOINT"`
	ContactRecipient      string        `env:"CONTACT_RECIPIENT"`
	CertificationsPerPage int           `env:"CERTIFICATIONS_PER_PAGE" envDefault:"3"`
	AutoPlayInterval      time.Duration `env:"CAROUSEL_AUTOPLAY_INTERVAL" envDefault:"5s"`
	CarouselCooldown      time.Duration `env:"CAROUSEL_COOLDOWN" envDefault:"300ms"`
	GalleryTTL            time.Duration `env:"GALLERY_TTL" envDefault:"30m"`
	GalleryMaxViews       int           `env:"GALLERY_MAX_VIEWS" envDefault:"10000"`
	ActionRateLimit       int           `env:"ACTION_RATE_LIMIT" envDefault:"120"`
	ActionRateInterval    time.Duration `env:"ACTION_RATE_INTERVAL" envDefault:"1m"`
	ReadinessTimeout      time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`
	SecurityHeaders       string        `env:"SECURITY_HEADERS" envDefault:"balanced"`
	MaxBodySize           int64         `env:"MAX_BODY_SIZE" envDefault:"65536"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		BasePath:              "/",
		CertificationsPerPage: 3,
		AutoPlayInterval:      5 * time.Second,
		CarouselCooldown:      300 * time.Millisecond,
		GalleryTTL:            30 * time.Minute,
		GalleryMaxViews:       10000,
		ActionRateLimit:       120,
		ActionRateInterval:    time.Minute,
		ReadinessTimeout:      2 * time.Second,
		SecurityHeaders:       "balanced",
		MaxBodySize:           64 << 10,
	}
}

// ActionLimit is the token bucket shared by every POST route of one client.
func (c Config) ActionLimit() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       c.ActionRateLimit,
		RefillRate:     c.ActionRateLimit,
		RefillInterval: c.ActionRateInterval,
	}
}

package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/contact"
	"github.com/dmitrymomot/portfolio/core/content"
	"github.com/dmitrymomot/portfolio/core/cookie"
	"github.com/dmitrymomot/portfolio/core/gallery"
	"github.com/dmitrymomot/portfolio/core/health"
	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/core/preference"
	"github.com/dmitrymomot/portfolio/middleware"
	"github.com/dmitrymomot/portfolio/pkg/ratelimiter"
)

// Site wires the domain services to HTTP routes.
type Site struct {
	cfg       Config
	base      string
	routeBase string

	translations *i18n.I18n
	library      *content.Library
	cookies      *cookie.Manager
	gallery      *gallery.Registry
	contact      *contact.Service
	redis        *preference.RedisStore
	limiter      ratelimiter.RateLimiter
	checks       map[string]health.Check
	logger       *slog.Logger
	templates    *template.Template
}

// Option configures a Site.
type Option func(*Site)

func WithTranslations(t *i18n.I18n) Option {
	return func(s *Site) { s.translations = t }
}

func WithContent(l *content.Library) Option {
	return func(s *Site) { s.library = l }
}

func WithCookies(m *cookie.Manager) Option {
	return func(s *Site) { s.cookies = m }
}

func WithGallery(r *gallery.Registry) Option {
	return func(s *Site) { s.gallery = r }
}

func WithContact(svc *contact.Service) Option {
	return func(s *Site) { s.contact = svc }
}

// WithRedisPreferences mirrors visitor preferences in Redis next to the cookies.
func WithRedisPreferences(store *preference.RedisStore) Option {
	return func(s *Site) { s.redis = store }
}

// WithRateLimiter limits every POST route per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Site) { s.limiter = l }
}

// WithHealthCheck adds a named readiness check.
func WithHealthCheck(name string, check health.Check) Option {
	return func(s *Site) {
		if check != nil {
			s.checks[name] = check
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// New validates the dependencies and parses the embedded templates.
func New(cfg Config, opts ...Option) (*Site, error) {
	s := &Site{
		cfg:    cfg,
		checks: make(map[string]health.Check),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.translations == nil:
		return nil, fmt.Errorf("%w: translations", ErrMissingDependency)
	case s.library == nil:
		return nil, fmt.Errorf("%w: content", ErrMissingDependency)
	case s.cookies == nil:
		return nil, fmt.Errorf("%w: cookies", ErrMissingDependency)
	case s.gallery == nil:
		return nil, fmt.Errorf("%w: gallery", ErrMissingDependency)
	case s.contact == nil:
		return nil, fmt.Errorf("%w: contact", ErrMissingDependency)
	}

	if s.cfg.CertificationsPerPage <= 0 {
		return nil, fmt.Errorf("%w: certifications per page must be > 0", ErrInvalidConfig)
	}
	if s.cfg.ReadinessTimeout <= 0 {
		s.cfg.ReadinessTimeout = DefaultConfig().ReadinessTimeout
	}

	s.base = content.NormalizeBasePath(cfg.BasePath)
	s.routeBase = s.base
	if strings.Contains(s.base, "://") {
		u, err := url.Parse(s.base)
		if err != nil {
			return nil, fmt.Errorf("%w: base path %q: %w", ErrInvalidConfig, cfg.BasePath, err)
		}
		s.routeBase = content.NormalizeBasePath(u.Path)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = tmpl

	return s, nil
}

// Base returns the normalized base path links are built from.
func (s *Site) Base() string { return s.base }

// Handler builds the gin engine serving every route.
func (s *Site) Handler() http.Handler {
	r := gin.New()
	r.SetHTMLTemplate(s.templates)
	r.Use(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: s.logger,
			Skip: func(c *gin.Context) bool {
				return strings.HasPrefix(c.Request.URL.Path, s.routeBase+"health/")
			},
		}),
		gin.CustomRecovery(s.recovered),
		middleware.SecurityHeadersWithConfig(s.securityHeaders()),
		middleware.BodyLimitWithSize(s.cfg.MaxBodySize),
	)
	r.NoRoute(s.notFound)

	root := r.Group(s.routeBase)
	root.GET("health/live", health.Liveness)
	root.GET("health/ready", health.Readiness(s.logger, s.cfg.ReadinessTimeout, s.checks))
	root.GET("health/ping", health.NoContent)
	root.StaticFS("static", http.FS(StaticFS()))

	site := root.Group("",
		middleware.VisitorWithConfig(middleware.VisitorConfig{
			Cookies: s.cookies,
			Logger:  s.logger,
		}),
		middleware.Preferences(middleware.PreferencesConfig{
			Translations: s.translations,
			Cookies:      s.cookies,
			Redis:        s.redis,
			Logger:       s.logger,
		}),
	)
	site.GET("", s.index)
	site.GET("qr.png", s.qr)
	site.GET("sections/skills", s.skills)

	limit := s.rateLimit()

	for _, section := range carouselSections {
		g := site.Group("sections/" + section.name)
		g.GET("", s.carousel(section, actionShow))
		g.POST("next", limit, s.carousel(section, actionNext))
		g.POST("prev", limit, s.carousel(section, actionPrev))
		g.POST("jump/:index", limit, s.carousel(section, actionJump))
		g.POST("image/:item/:delta", limit, s.carousel(section, actionImage))
		g.POST("play", limit, s.carousel(section, actionPlay))
		g.POST("pause", limit, s.carousel(section, actionPause))
	}

	certs := site.Group("sections/certifications")
	certs.GET("", s.certifications(0))
	certs.POST("next", limit, s.certifications(1))
	certs.POST("prev", limit, s.certifications(-1))

	site.POST("preferences/locale", limit, s.setLocale)
	site.POST("preferences/theme", limit, s.setTheme)
	site.POST("contact", limit, s.submitContact)

	return r
}

// rateLimit guards state-changing routes. Without a limiter it only passes
// the request on.
func (s *Site) rateLimit() gin.HandlerFunc {
	if s.limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimitWithConfig(middleware.RateLimitConfig{
		Limiter: s.limiter,
		KeyExtractor: func(c *gin.Context) string {
			ip, _ := middleware.GetClientIP(c.Request.Context())
			return "post:" + ip
		},
		SetHeaders: true,
		Logger:     s.logger,
	})
}

func (s *Site) securityHeaders() middleware.SecurityHeadersConfig {
	switch s.cfg.SecurityHeaders {
	case "strict":
		return middleware.StrictSecurity
	case "development":
		return middleware.DevelopmentSecurity
	default:
		return middleware.BalancedSecurity
	}
}

func (s *Site) recovered(c *gin.Context, err any) {
	s.logger.ErrorContext(c.Request.Context(), "panic recovered",
		logger.Component("web"),
		logger.Path(c.Request.URL.Path),
		slog.Any("panic", err))
	c.AbortWithStatus(http.StatusInternalServerError)
}

func (s *Site) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// isHTMX reports whether the request came from htmx and wants a fragment.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// backToPage ends a plain form POST by sending the browser back to the page.
func (s *Site) backToPage(c *gin.Context, anchor string) {
	target := s.base
	if anchor != "" {
		target += "#" + anchor
	}
	c.Redirect(http.StatusSeeOther, target)
}

// requestState returns the visitor ID and preferences set by the middleware.
func (s *Site) requestState(c *gin.Context) (string, *preference.Preferences) {
	ctx := c.Request.Context()
	visitor, ok := middleware.GetVisitorID(ctx)
	if !ok {
		visitor = "anonymous"
	}
	prefs, ok := middleware.GetPreferences(ctx)
	if !ok {
		prefs = preference.New(s.translations, preference.NewMemoryStore())
	}
	return visitor, prefs
}

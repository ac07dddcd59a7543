package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/cookie"
	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/core/preference"
)

type preferencesContextKey struct{}

// PreferencesConfig configures the preferences middleware.
type PreferencesConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *gin.Context) bool
	// Translations resolves and validates locales (required)
	Translations *i18n.I18n
	// Cookies persists preferences in the browser (required)
	Cookies *cookie.Manager
	// Redis mirrors preferences server-side per visitor (optional)
	Redis *preference.RedisStore
	// QueryParam switches the locale for the request and persists it (default: "lang")
	QueryParam string
	// Logger receives store failures (default: discard)
	Logger *slog.Logger
}

// Preferences loads the visitor's locale and theme once per request.
//
// The locale resolves from the stored preference, then the first
// Accept-Language tag, then the default. A supported ?lang= value wins over
// all of them and is persisted.
func Preferences(cfg PreferencesConfig) gin.HandlerFunc {
	if cfg.Translations == nil || cfg.Cookies == nil {
		panic("middleware: preferences require translations and a cookie manager")
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
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

		stores := preference.Chain{preference.NewCookieStore(cfg.Cookies, c.Writer, c.Request)}
		if cfg.Redis != nil {
			if visitor, ok := GetVisitorID(ctx); ok {
				stores = append(stores, cfg.Redis.For(visitor))
			}
		}

		prefs := preference.New(cfg.Translations, stores, preference.WithLogger(cfg.Logger))
		prefs.Load(ctx, i18n.PreferredLanguage(c.GetHeader("Accept-Language")))

		if lang := c.Query(cfg.QueryParam); lang != "" {
			prefs.SetLocale(ctx, lang)
		}

		c.Request = c.Request.WithContext(context.WithValue(ctx, preferencesContextKey{}, prefs))
		c.Next()
	}
}

// GetPreferences retrieves the handle stored by Preferences.
func GetPreferences(ctx context.Context) (*preference.Preferences, bool) {
	prefs, ok := ctx.Value(preferencesContextKey{}).(*preference.Preferences)
	return prefs, ok
}

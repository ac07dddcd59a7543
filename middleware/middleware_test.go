package middleware_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/cookie"
	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "middleware-test-secret-32-chars!"

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newCookies(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	return m
}

func newTranslations(t *testing.T) *i18n.I18n {
	t.Helper()
	tr, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", map[string]any{"hello": "Hello"}),
		i18n.WithTranslations("fr", map[string]any{"hello": "Bonjour"}),
		i18n.WithTranslations("ar", map[string]any{"hello": "مرحبا"}),
	)
	require.NoError(t, err)
	return tr
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an id and stores it in context", func(t *testing.T) {
		var seen string
		r := newEngine(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			seen, _ = middleware.GetRequestID(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses incoming id when configured", func(t *testing.T) {
		r := newEngine(middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := serve(r, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("extractor", func(t *testing.T) {
		_, ok := middleware.RequestIDExtractor(context.Background())
		assert.False(t, ok)
	})
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	var seen string
	r := newEngine(middleware.ClientIP())
	r.GET("/", func(c *gin.Context) {
		seen, _ = middleware.GetClientIP(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	serve(r, req)
	assert.Equal(t, "203.0.113.7", seen)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := newEngine(middleware.RequestID(), middleware.ClientIP(), middleware.Logging(log))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(io.ErrUnexpectedEOF)
		c.Status(http.StatusInternalServerError)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "path=/ok")
	assert.Contains(t, out, "status_code=200")
	assert.Contains(t, out, "request_id=")

	buf.Reset()
	serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	out = buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "unexpected EOF")
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	t.Run("balanced", func(t *testing.T) {
		r := newEngine(middleware.SecurityHeaders())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://unpkg.com")
	})

	t.Run("development drops hsts and custom headers override", func(t *testing.T) {
		cfg := middleware.BalancedSecurity
		cfg.IsDevelopment = true
		cfg.CustomHeaders = map[string]string{"X-Frame-Options": "DENY"}

		r := newEngine(middleware.SecurityHeadersWithConfig(cfg))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	})
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	r := newEngine(middleware.BodyLimitWithSize(8))
	r.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusNoContent)
	})

	t.Run("within limit", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("declared oversize", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("way too large body")))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("undeclared oversize", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(strings.NewReader("way too large body")))
		req.ContentLength = -1
		w := serve(r, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVisitor(t *testing.T) {
	t.Parallel()

	cookies := newCookies(t)
	var seen string
	r := newEngine(middleware.Visitor(cookies))
	r.GET("/", func(c *gin.Context) {
		seen, _ = middleware.GetVisitorID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("issues a signed id", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotEmpty(t, seen)

		var issued *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.VisitorCookie {
				issued = c
			}
		}
		require.NotNil(t, issued)

		first := seen
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(issued)
		w = serve(r, req)
		assert.Equal(t, first, seen)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("forged cookie is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: "forged.signature"})
		w := serve(r, req)

		assert.NotEqual(t, "forged", seen)
		assert.NotEmpty(t, w.Result().Cookies())
	})
}

func TestPreferences(t *testing.T) {
	t.Parallel()

	cookies := newCookies(t)
	translations := newTranslations(t)

	var locale string
	r := newEngine(middleware.Preferences(middleware.PreferencesConfig{
		Translations: translations,
		Cookies:      cookies,
	}))
	r.GET("/", func(c *gin.Context) {
		prefs, ok := middleware.GetPreferences(c.Request.Context())
		require.True(t, ok)
		locale = prefs.Locale()
		c.Status(http.StatusNoContent)
	})

	t.Run("browser language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.8")
		w := serve(r, req)

		assert.Equal(t, "fr", locale)
		assert.Empty(t, w.Result().Cookies(), "resolution alone must not persist")
	})

	t.Run("query switches and persists", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/?lang=ar", nil))
		assert.Equal(t, "ar", locale)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "portfolio.locale", cookies[0].Name)
		assert.Equal(t, "ar", cookies[0].Value)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr")
		req.AddCookie(cookies[0])
		serve(r, req)
		assert.Equal(t, "ar", locale, "stored locale beats browser language")
	})

	t.Run("unsupported query is ignored", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/?lang=de", nil))
		assert.Equal(t, "en", locale)
		assert.Empty(t, w.Result().Cookies())
	})
}

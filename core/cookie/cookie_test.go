package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/cookie"
)

const testSecret = "test-secret-key-32-characters!!!"
const testSecret2 = "another-secret-key-32-chars!!!!!"

// replay copies Set-Cookie headers from a recorder onto a fresh request.
func replay(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := cookie.New([]string{"short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestManager_SetGet(t *testing.T) {
	m, err := cookie.New([]string{testSecret}, cookie.WithPath("/portfolio-mui/"), cookie.WithMaxAge(3600))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "portfolio.locale", "fr"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/portfolio-mui/", cookies[0].Path)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

		value, err := m.Get(replay(w), "portfolio.locale")
		require.NoError(t, err)
		assert.Equal(t, "fr", value)
	})

	t.Run("per call options override defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "darkMode", "true", cookie.WithHTTPOnly(false), cookie.WithSecure(true)))

		c := w.Result().Cookies()[0]
		assert.False(t, c.HttpOnly)
		assert.True(t, c.Secure)
	})

	t.Run("missing cookie", func(t *testing.T) {
		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "nope")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("too large", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := m.Set(w, "big", strings.Repeat("x", cookie.MaxCookieSize))

		var tooLarge cookie.ErrCookieTooLarge
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, "big", tooLarge.Name)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("delete expires the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.Delete(w, "portfolio.locale")

		c := w.Result().Cookies()[0]
		assert.Equal(t, -1, c.MaxAge)
		assert.Equal(t, "/portfolio-mui/", c.Path)
	})
}

func TestManager_Signed(t *testing.T) {
	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "portfolio.visitor", "visitor-123"))

		value, err := m.GetSigned(replay(w), "portfolio.visitor")
		require.NoError(t, err)
		assert.Equal(t, "visitor-123", value)
	})

	t.Run("tampered value", func(t *testing.T) {
		signed := m.Sign("visitor-123")
		_, sig, _ := strings.Cut(signed, ".")
		forged := m.Sign("visitor-999")
		forgedValue, _, _ := strings.Cut(forged, ".")

		_, err := m.Verify(forgedValue + "." + sig)
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := m.Verify("no-separator")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)

		_, err = m.Verify("!!!.sig")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("rotated secrets still verify", func(t *testing.T) {
		old, err := cookie.New([]string{testSecret2})
		require.NoError(t, err)
		rotated, err := cookie.New([]string{testSecret, testSecret2})
		require.NoError(t, err)

		value, err := rotated.Verify(old.Sign("visitor-1"))
		require.NoError(t, err)
		assert.Equal(t, "visitor-1", value)

		_, err = m.Verify(old.Sign("visitor-1"))
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})
}

func TestNewFromConfig(t *testing.T) {
	cfg := cookie.DefaultConfig()
	cfg.Secrets = " " + testSecret + " , ," + testSecret2
	cfg.Secure = true

	assert.Equal(t, []string{testSecret, testSecret2}, cfg.SecretList())

	m, err := cookie.NewFromConfig(cfg, cookie.WithPath("/base/"))
	require.NoError(t, err)
	assert.Equal(t, "/base/", m.Path())

	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "portfolio.locale", "ar"))

	c := w.Result().Cookies()[0]
	assert.True(t, c.Secure)
	assert.Equal(t, 365*24*60*60, c.MaxAge)

	_, err = cookie.NewFromConfig(cookie.DefaultConfig())
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}

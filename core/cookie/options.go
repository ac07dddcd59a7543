package cookie

import "net/http"

// Option adjusts the attributes of cookies written by a Manager. Passed to
// New it changes the defaults; passed to Set it changes a single cookie.
type Option func(*http.Cookie)

// WithPath scopes cookies to path. Deployments under a sub-path pass their
// base path here. An empty path keeps the current one.
func WithPath(path string) Option {
	return func(c *http.Cookie) {
		if path != "" {
			c.Path = path
		}
	}
}

func WithDomain(domain string) Option {
	return func(c *http.Cookie) { c.Domain = domain }
}

// WithMaxAge sets the lifetime in seconds. Zero makes a session cookie.
func WithMaxAge(seconds int) Option {
	return func(c *http.Cookie) { c.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(c *http.Cookie) { c.Secure = secure }
}

// WithHTTPOnly controls whether scripts can read the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(c *http.Cookie) { c.HttpOnly = httpOnly }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(c *http.Cookie) { c.SameSite = sameSite }
}

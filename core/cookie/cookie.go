package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	// MaxCookieSize is the maximum size for a cookie (4KB).
	MaxCookieSize = 4096
	// minSecretLength keeps HMAC keys at a useful strength.
	minSecretLength = 32
)

// Manager reads and writes cookies with shared defaults and HMAC signing.
// It is safe for concurrent use.
type Manager struct {
	secrets  []string
	defaults http.Cookie
	maxSize  int
}

// New creates a manager. The first secret signs new values; every secret is
// accepted when verifying, which allows rotation.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, secret := range secrets {
		if len(secret) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d",
				ErrSecretTooShort, i, len(secret), minSecretLength)
		}
	}

	defaults := http.Cookie{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(&defaults)
	}

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
		maxSize:  MaxCookieSize,
	}, nil
}

// Set writes a cookie using the manager defaults overridden by opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	c := m.cookie(name, value, opts)
	if size := len(c.String()); size > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: size, Max: m.maxSize}
	}

	http.SetCookie(w, c)
	return nil
}

// Get returns the raw value of a cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := m.cookie(name, "", nil)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// cookie builds a cookie from the defaults with opts applied on top.
func (m *Manager) cookie(name, value string, opts []Option) *http.Cookie {
	c := m.defaults
	c.Name = name
	c.Value = value
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// SetSigned writes value with an HMAC signature.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.Sign(value), opts...)
}

// GetSigned reads a cookie written by SetSigned and verifies its signature.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.Verify(signed)
}

// Path returns the default cookie path.
func (m *Manager) Path() string {
	return m.defaults.Path
}

// Sign encodes value and appends an HMAC-SHA256 signature made with the
// current secret.
func (m *Manager) Sign(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + signature(m.secrets[0], []byte(value))
}

// Verify checks a value produced by Sign against every configured secret.
func (m *Manager) Verify(signed string) (string, error) {
	encoded, sig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	valid := slices.ContainsFunc(m.secrets, func(secret string) bool {
		return subtle.ConstantTimeCompare([]byte(sig), []byte(signature(secret, value))) == 1
	})
	if !valid {
		return "", ErrInvalidSignature
	}
	return string(value), nil
}

func signature(secret string, value []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(value)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

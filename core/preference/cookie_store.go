package preference

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/portfolio/core/cookie"
)

// CookieStore keeps preferences in browser cookies for the duration of one
// request. Values set during the request are visible to later Gets.
type CookieStore struct {
	manager *cookie.Manager
	w       http.ResponseWriter
	r       *http.Request
	written map[string]string
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(manager *cookie.Manager, w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{
		manager: manager,
		w:       w,
		r:       r,
		written: make(map[string]string),
	}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, error) {
	if value, ok := s.written[key]; ok {
		return value, nil
	}

	value, err := s.manager.Get(s.r, key)
	if errors.Is(err, cookie.ErrCookieNotFound) {
		return "", ErrNotFound
	}
	return value, err
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	if err := s.manager.Set(s.w, key, value); err != nil {
		return err
	}
	s.written[key] = value
	return nil
}

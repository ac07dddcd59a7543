package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Forwarder delivers an archived message to its final destination.
type Forwarder interface {
	Forward(ctx context.Context, rec Record) error
}

// ForwarderFunc adapts a function to Forwarder.
type ForwarderFunc func(ctx context.Context, rec Record) error

func (f ForwarderFunc) Forward(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}

// FormEndpoint posts messages as JSON to a third-party form backend.
type FormEndpoint struct {
	url    string
	client *http.Client
}

// FormEndpointOption configures a FormEndpoint.
type FormEndpointOption func(*FormEndpoint)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) FormEndpointOption {
	return func(f *FormEndpoint) {
		if client != nil {
			f.client = client
		}
	}
}

// NewFormEndpoint returns a forwarder for url. The default client has no
// timeout; the request context bounds the call.
func NewFormEndpoint(url string, opts ...FormEndpointOption) (*FormEndpoint, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: form endpoint url is required", ErrInvalidConfig)
	}
	f := &FormEndpoint{url: url, client: &http.Client{}}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Forward sends {name, email, subject, message}. Any 2xx status is success.
func (f *FormEndpoint) Forward(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec.Message)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to form endpoint: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("form endpoint responded with status %d", resp.StatusCode)
	}
	return nil
}

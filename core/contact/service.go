package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/pkg/clientip"
	"github.com/dmitrymomot/portfolio/pkg/ratelimiter"
)

// Service validates, rate limits, archives and forwards contact messages.
type Service struct {
	forwarder Forwarder
	store     Store
	limiter   ratelimiter.RateLimiter
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStore sets the archive. Defaults to a MemoryStore.
func WithStore(store Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLimiter enables per-client rate limiting.
func WithLimiter(limiter ratelimiter.RateLimiter) Option {
	return func(s *Service) {
		s.limiter = limiter
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNow replaces the time source.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService returns a Service delivering through forwarder.
func NewService(forwarder Forwarder, opts ...Option) (*Service, error) {
	if forwarder == nil {
		return nil, fmt.Errorf("%w: forwarder is required", ErrInvalidConfig)
	}
	s := &Service{
		forwarder: forwarder,
		store:     NewMemoryStore(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Submit handles one form submission. The client key for rate limiting is
// the IP stored in ctx by clientip.WithIP.
//
// Forwarding happens once; a failure is recorded and returned wrapped in
// ErrDeliveryFailed so the visitor can resubmit. Archive errors are logged
// and do not block delivery.
func (s *Service) Submit(ctx context.Context, locale string, msg Message) (Record, error) {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return Record{}, err
	}

	ip := clientip.FromContext(ctx)
	if err := s.allow(ctx, ip); err != nil {
		return Record{}, err
	}

	now := s.now()
	rec := Record{
		ID:        uuid.New(),
		Locale:    locale,
		ClientIP:  ip,
		Message:   msg,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	log := s.logger.With(logger.Component("contact"), slog.String("record_id", rec.ID.String()), logger.Locale(locale))

	archived := true
	if err := s.store.Create(ctx, rec); err != nil {
		archived = false
		log.ErrorContext(ctx, "failed to archive contact message", logger.Error(err))
	}

	start := time.Now()
	fwdErr := s.forwarder.Forward(ctx, rec)

	rec.UpdatedAt = s.now()
	if fwdErr != nil {
		rec.Status = StatusFailed
		rec.Error = fwdErr.Error()
	} else {
		rec.Status = StatusDelivered
	}

	if archived {
		// The request context may already be cancelled when forwarding timed out.
		if err := s.store.UpdateStatus(context.WithoutCancel(ctx), rec.ID, rec.Status, rec.Error, rec.UpdatedAt); err != nil {
			log.ErrorContext(ctx, "failed to update contact message status", logger.Error(err))
		}
	}

	if fwdErr != nil {
		log.WarnContext(ctx, "contact message delivery failed", logger.Error(fwdErr), logger.Duration(time.Since(start)))
		return rec, errors.Join(ErrDeliveryFailed, fwdErr)
	}
	log.InfoContext(ctx, "contact message delivered", logger.Duration(time.Since(start)))
	return rec, nil
}

// Recent returns up to limit archived messages, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	return s.store.List(ctx, limit)
}

// allow consults the limiter. Limiter failures are logged and the request
// is let through.
func (s *Service) allow(ctx context.Context, ip string) error {
	if s.limiter == nil {
		return nil
	}
	if ip == "" {
		ip = "unknown"
	}

	result, err := s.limiter.Allow(ctx, "contact:"+ip)
	if err != nil {
		s.logger.WarnContext(ctx, "contact rate limiter unavailable", logger.Component("contact"), logger.Error(err))
		return nil
	}
	if !result.Allowed() {
		return fmt.Errorf("%w: retry in %s", ErrRateLimited, result.RetryAfter().Round(time.Second))
	}
	return nil
}

package gallery

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/portfolio/core/carousel"
)

type viewKey struct {
	visitor string
	view    string
}

type entry struct {
	key        viewKey
	nav        *carousel.Navigator
	pager      *carousel.Pager
	lastAccess time.Time
	elem       *list.Element
}

// DefaultMaxViews bounds the registry when WithMaxViews is not given.
const DefaultMaxViews = 10000

// Registry owns one Navigator per (visitor, view) pair. Views idle longer
// than the TTL are evicted by Sweep, and once MaxViews is reached the least
// recently accessed view makes room for a new one.
type Registry struct {
	mu    sync.Mutex
	views map[viewKey]*entry
	// recent orders entries by last access, most recent at the front.
	recent   *list.List
	maxViews int

	clock           carousel.Clock
	navOpts         []carousel.Option
	ttl             time.Duration
	cleanupInterval time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger

	cancel  context.CancelFunc
	running atomic.Bool
	wg      sync.WaitGroup

	created atomic.Int64
	evicted atomic.Int64
}

// Stats provides counters for monitoring.
type Stats struct {
	ViewsCreated int64
	ViewsEvicted int64
	ActiveViews  int
	IsRunning    bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithTTL sets how long an untouched view is kept.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithCleanupInterval sets how often idle views are evicted.
func WithCleanupInterval(interval time.Duration) Option {
	return func(r *Registry) {
		r.cleanupInterval = interval
	}
}

// WithMaxViews caps how many views the registry holds at once.
func WithMaxViews(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxViews = n
		}
	}
}

// WithShutdownTimeout bounds how long Stop waits for a running sweep.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(r *Registry) {
		if timeout > 0 {
			r.shutdownTimeout = timeout
		}
	}
}

// WithClock sets the clock used for idle tracking and passed to every Navigator.
func WithClock(clock carousel.Clock) Option {
	return func(r *Registry) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithNavigatorOptions adds options applied to every Navigator the registry creates.
func WithNavigatorOptions(opts ...carousel.Option) Option {
	return func(r *Registry) {
		r.navOpts = append(r.navOpts, opts...)
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry. Call Start or Run to begin eviction.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		views:           make(map[viewKey]*entry),
		recent:          list.New(),
		maxViews:        DefaultMaxViews,
		clock:           carousel.SystemClock{},
		ttl:             30 * time.Minute,
		cleanupInterval: time.Minute,
		shutdownTimeout: 10 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// View returns the visitor's navigator for view, creating it on first use.
// length is re-applied on every call so a list that changed with the locale
// re-clamps the cursor.
func (r *Registry) View(visitorID, view string, length int) *carousel.Navigator {
	r.mu.Lock()
	e, evicted := r.touch(visitorID, view)
	nav := e.nav
	if nav == nil {
		opts := append([]carousel.Option{carousel.WithClock(r.clock)}, r.navOpts...)
		nav = carousel.New(length, opts...)
		e.nav = nav
	}
	r.mu.Unlock()

	r.closeEvicted(evicted)
	nav.SetLength(length)
	return nav
}

// Lookup returns the visitor's navigator for view if one exists, without
// creating it. Read-only renders use it so anonymous traffic allocates nothing.
func (r *Registry) Lookup(visitorID, view string, length int) (*carousel.Navigator, bool) {
	r.mu.Lock()
	e, ok := r.lookup(visitorID, view)
	if !ok || e.nav == nil {
		r.mu.Unlock()
		return nil, false
	}
	nav := e.nav
	r.mu.Unlock()

	nav.SetLength(length)
	return nav, true
}

// Pager returns the visitor's page cursor for view, re-clamped to length and size.
func (r *Registry) Pager(visitorID, view string, length, size int) *carousel.Pager {
	r.mu.Lock()
	e, evicted := r.touch(visitorID, view)
	pager := e.pager
	if pager == nil {
		pager = carousel.NewPager(length, size)
		e.pager = pager
	}
	r.mu.Unlock()

	r.closeEvicted(evicted)
	pager.Resize(length, size)
	return pager
}

// LookupPager is the Pager counterpart of Lookup.
func (r *Registry) LookupPager(visitorID, view string, length, size int) (*carousel.Pager, bool) {
	r.mu.Lock()
	e, ok := r.lookup(visitorID, view)
	if !ok || e.pager == nil {
		r.mu.Unlock()
		return nil, false
	}
	pager := e.pager
	r.mu.Unlock()

	pager.Resize(length, size)
	return pager, true
}

// lookup marks an existing entry as accessed. r.mu must be held.
func (r *Registry) lookup(visitorID, view string) (*entry, bool) {
	e, ok := r.views[viewKey{visitor: visitorID, view: view}]
	if !ok {
		return nil, false
	}
	e.lastAccess = r.clock.Now()
	r.recent.MoveToFront(e.elem)
	return e, true
}

// touch returns the entry for the pair, creating it if needed. When the
// registry is full the least recently accessed entries are removed and
// returned so the caller can close them after releasing r.mu.
func (r *Registry) touch(visitorID, view string) (*entry, []*entry) {
	if e, ok := r.lookup(visitorID, view); ok {
		return e, nil
	}

	var evicted []*entry
	for len(r.views) >= r.maxViews {
		oldest := r.recent.Back().Value.(*entry)
		r.remove(oldest)
		evicted = append(evicted, oldest)
	}

	key := viewKey{visitor: visitorID, view: view}
	e := &entry{key: key, lastAccess: r.clock.Now()}
	e.elem = r.recent.PushFront(e)
	r.views[key] = e
	r.created.Add(1)
	return e, evicted
}

// remove unlinks e. r.mu must be held.
func (r *Registry) remove(e *entry) {
	delete(r.views, e.key)
	r.recent.Remove(e.elem)
}

func (r *Registry) closeEvicted(evicted []*entry) {
	if len(evicted) == 0 {
		return
	}
	for _, e := range evicted {
		e.close()
	}
	r.evicted.Add(int64(len(evicted)))
	r.logger.Debug("gallery views evicted over capacity",
		slog.Int("count", len(evicted)),
		slog.Int("max_views", r.maxViews))
}

// Forget closes and removes every view of a visitor.
func (r *Registry) Forget(visitorID string) {
	r.mu.Lock()
	var closing []*entry
	for key, e := range r.views {
		if key.visitor == visitorID {
			closing = append(closing, e)
		}
	}
	for _, e := range closing {
		r.remove(e)
	}
	r.mu.Unlock()

	for _, e := range closing {
		e.close()
	}
}

// Sweep evicts views idle longer than the TTL and returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.clock.Now()

	r.mu.Lock()
	var stale []*entry
	for back := r.recent.Back(); back != nil; back = r.recent.Back() {
		e := back.Value.(*entry)
		if now.Sub(e.lastAccess) <= r.ttl {
			break
		}
		r.remove(e)
		stale = append(stale, e)
	}
	r.mu.Unlock()

	for _, e := range stale {
		e.close()
	}
	if len(stale) > 0 {
		r.evicted.Add(int64(len(stale)))
		r.logger.Debug("gallery views evicted", slog.Int("count", len(stale)))
	}
	return len(stale)
}

// Start runs the eviction loop until ctx is cancelled or Stop is called.
// It blocks; use Run with an errgroup.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	if r.cleanupInterval <= 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: cleanup interval must be > 0, got %v", ErrInvalidConfig, r.cleanupInterval)
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.mu.Unlock()

	r.running.Store(true)
	defer r.running.Store(false)

	r.logger.InfoContext(ctx, "gallery registry started",
		slog.Duration("ttl", r.ttl),
		slog.Duration("cleanup_interval", r.cleanupInterval))

	ticker := time.NewTicker(r.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.wg.Add(1)
			r.Sweep()
			r.wg.Done()
		}
	}
}

// Stop ends the eviction loop and closes every remaining view.
func (r *Registry) Stop() error {
	r.mu.Lock()
	if r.cancel == nil {
		r.mu.Unlock()
		return ErrNotStarted
	}
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(r.shutdownTimeout):
		r.logger.Warn("gallery registry shutdown timeout exceeded",
			slog.Duration("timeout", r.shutdownTimeout))
		return fmt.Errorf("shutdown timeout exceeded after %s", r.shutdownTimeout)
	}

	r.CloseAll()
	r.logger.Info("gallery registry stopped")
	return nil
}

// Run returns a function for errgroup that runs the eviction loop and shuts
// it down when ctx is cancelled.
func (r *Registry) Run(ctx context.Context) func() error {
	return func() error {
		defer r.CloseAll()

		errCh := make(chan error, 1)
		go func() {
			errCh <- r.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = r.Stop()
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// CloseAll closes and removes every view.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[viewKey]*entry)
	r.recent.Init()
	r.mu.Unlock()

	for _, e := range views {
		e.close()
	}
}

// Stats returns current counters.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	active := len(r.views)
	r.mu.Unlock()

	return Stats{
		ViewsCreated: r.created.Load(),
		ViewsEvicted: r.evicted.Load(),
		ActiveViews:  active,
		IsRunning:    r.running.Load(),
	}
}

// Healthcheck reports an error when eviction is configured but not running.
func (r *Registry) Healthcheck(ctx context.Context) error {
	if r.cleanupInterval > 0 && !r.running.Load() {
		return ErrNotRunning
	}
	return nil
}

func (e *entry) close() {
	if e.nav != nil {
		e.nav.Close()
	}
}

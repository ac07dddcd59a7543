package preference

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/core/logger"
)

// Keys under which preferences are persisted.
const (
	LocaleKey   = "portfolio.locale"
	DarkModeKey = "darkMode"
)

// State is the visitor's current locale and theme.
type State struct {
	Locale string
	Dark   bool
}

// Direction returns "rtl" for right-to-left locales, "ltr" otherwise.
func (s State) Direction() string {
	return i18n.Direction(s.Locale)
}

// Theme returns "dark" or "light".
func (s State) Theme() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

// Preferences is the locale and theme handle of one visitor. It is created
// per request, loaded from the store once and written back on every change.
// Persistence is best-effort: store failures are logged and never returned.
type Preferences struct {
	mu           sync.RWMutex
	translations *i18n.I18n
	store        Store
	logger       *slog.Logger
	state        State
}

// Option configures Preferences.
type Option func(*Preferences)

// WithLogger sets the logger used for rejected locales and store failures.
func WithLogger(log *slog.Logger) Option {
	return func(p *Preferences) {
		if log != nil {
			p.logger = log
		}
	}
}

// New returns Preferences in the default state: default locale, light theme.
func New(translations *i18n.I18n, store Store, opts ...Option) *Preferences {
	if translations == nil {
		panic("preference: nil translations")
	}
	if store == nil {
		store = NewMemoryStore()
	}

	p := &Preferences{
		translations: translations,
		store:        store,
		logger:       logger.Discard(),
		state:        State{Locale: translations.DefaultLanguage()},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads persisted preferences. The locale resolves from the stored value,
// then browserLanguage, then the default. A missing or unreadable value leaves
// the default in place.
func (p *Preferences) Load(ctx context.Context, browserLanguage string) State {
	stored, err := p.store.Get(ctx, LocaleKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		p.logger.WarnContext(ctx, "failed to read locale preference",
			logger.Component("preference"),
			logger.Error(err))
		stored = ""
	}

	dark := false
	raw, err := p.store.Get(ctx, DarkModeKey)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal([]byte(raw), &dark); jsonErr != nil {
			dark = false
		}
	case !errors.Is(err, ErrNotFound):
		p.logger.WarnContext(ctx, "failed to read theme preference",
			logger.Component("preference"),
			logger.Error(err))
	}

	state := State{
		Locale: p.translations.ResolveLocale(stored, browserLanguage),
		Dark:   dark,
	}

	p.mu.Lock()
	p.state = state
	p.mu.Unlock()

	return state
}

// SetLocale switches to next and persists it. Unsupported locales are logged
// and ignored; SetLocale then returns false and the state is unchanged.
func (p *Preferences) SetLocale(ctx context.Context, next string) bool {
	if !p.translations.Supports(next) {
		p.logger.WarnContext(ctx, "unsupported locale rejected",
			logger.Component("preference"),
			logger.Locale(next))
		return false
	}

	p.mu.Lock()
	p.state.Locale = next
	p.mu.Unlock()

	p.persist(ctx, LocaleKey, next)
	return true
}

// SetDark sets the theme and persists it as a JSON boolean.
func (p *Preferences) SetDark(ctx context.Context, dark bool) {
	p.mu.Lock()
	p.state.Dark = dark
	p.mu.Unlock()

	p.persist(ctx, DarkModeKey, strconv.FormatBool(dark))
}

// ToggleDark flips the theme and returns the new value.
func (p *Preferences) ToggleDark(ctx context.Context) bool {
	p.mu.Lock()
	p.state.Dark = !p.state.Dark
	dark := p.state.Dark
	p.mu.Unlock()

	p.persist(ctx, DarkModeKey, strconv.FormatBool(dark))
	return dark
}

// State returns the current preferences.
func (p *Preferences) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Locale returns the active locale.
func (p *Preferences) Locale() string {
	return p.State().Locale
}

// Direction returns the text direction of the active locale.
func (p *Preferences) Direction() string {
	return p.State().Direction()
}

func (p *Preferences) persist(ctx context.Context, key, value string) {
	if err := p.store.Set(ctx, key, value); err != nil {
		p.logger.WarnContext(ctx, "failed to persist preference",
			logger.Component("preference"),
			logger.Key(key),
			logger.Error(err))
	}
}

package preference_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/core/logger"
	"github.com/dmitrymomot/portfolio/core/preference"
)

type failingStore struct {
	getErr error
	setErr error
	sets   int
}

func (s *failingStore) Get(context.Context, string) (string, error) { return "", s.getErr }

func (s *failingStore) Set(context.Context, string, string) error {
	s.sets++
	return s.setErr
}

func translations(t *testing.T) *i18n.I18n {
	t.Helper()
	tr, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithLanguages("en", "fr", "ar"),
		i18n.WithTranslations("en", map[string]any{"hello": "Hello"}),
	)
	require.NoError(t, err)
	return tr
}

func TestPreferencesLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults without stored values", func(t *testing.T) {
		prefs := preference.New(translations(t), preference.NewMemoryStore())
		state := prefs.Load(ctx, "")
		assert.Equal(t, preference.State{Locale: "en", Dark: false}, state)
		assert.Equal(t, "ltr", prefs.Direction())
		assert.Equal(t, "light", state.Theme())
	})

	t.Run("stored values win", func(t *testing.T) {
		store := preference.NewMemoryStore()
		require.NoError(t, store.Set(ctx, preference.LocaleKey, "ar"))
		require.NoError(t, store.Set(ctx, preference.DarkModeKey, "true"))

		prefs := preference.New(translations(t), store)
		state := prefs.Load(ctx, "fr-FR")
		assert.Equal(t, "ar", state.Locale)
		assert.True(t, state.Dark)
		assert.Equal(t, "rtl", prefs.Direction())
	})

	t.Run("browser language when stored locale is unsupported", func(t *testing.T) {
		store := preference.NewMemoryStore()
		require.NoError(t, store.Set(ctx, preference.LocaleKey, "de"))

		prefs := preference.New(translations(t), store)
		assert.Equal(t, "fr", prefs.Load(ctx, "fr-CA").Locale)
	})

	t.Run("malformed theme value falls back to light", func(t *testing.T) {
		store := preference.NewMemoryStore()
		require.NoError(t, store.Set(ctx, preference.DarkModeKey, "yes please"))

		prefs := preference.New(translations(t), store)
		assert.False(t, prefs.Load(ctx, "").Dark)
	})

	t.Run("store read failure means defaults", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		store := &failingStore{getErr: errors.New("storage disabled")}

		prefs := preference.New(translations(t), store, preference.WithLogger(log))
		state := prefs.Load(ctx, "fr")
		assert.Equal(t, "fr", state.Locale)
		assert.False(t, state.Dark)
		assert.Contains(t, buf.String(), "storage disabled")
	})
}

func TestPreferencesSetLocale(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("supported locale is applied and persisted", func(t *testing.T) {
		store := preference.NewMemoryStore()
		prefs := preference.New(translations(t), store)

		assert.True(t, prefs.SetLocale(ctx, "ar"))
		assert.Equal(t, "ar", prefs.Locale())
		assert.Equal(t, "rtl", prefs.Direction())

		stored, err := store.Get(ctx, preference.LocaleKey)
		require.NoError(t, err)
		assert.Equal(t, "ar", stored)
	})

	t.Run("unsupported locale is rejected and logged", func(t *testing.T) {
		var buf bytes.Buffer
		store := preference.NewMemoryStore()
		prefs := preference.New(translations(t), store,
			preference.WithLogger(logger.New(logger.WithOutput(&buf))))
		require.True(t, prefs.SetLocale(ctx, "fr"))

		assert.False(t, prefs.SetLocale(ctx, "de"))
		assert.Equal(t, "fr", prefs.Locale())
		assert.Contains(t, buf.String(), "unsupported locale rejected")

		stored, err := store.Get(ctx, preference.LocaleKey)
		require.NoError(t, err)
		assert.Equal(t, "fr", stored)
	})

	t.Run("persistence failure does not block the switch", func(t *testing.T) {
		store := &failingStore{setErr: errors.New("quota exceeded")}
		prefs := preference.New(translations(t), store)

		assert.True(t, prefs.SetLocale(ctx, "fr"))
		assert.Equal(t, "fr", prefs.Locale())
		assert.Equal(t, 1, store.sets)
	})
}

func TestPreferencesTheme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := preference.NewMemoryStore()
	prefs := preference.New(translations(t), store)

	assert.True(t, prefs.ToggleDark(ctx))
	stored, err := store.Get(ctx, preference.DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", stored)

	assert.False(t, prefs.ToggleDark(ctx))
	prefs.SetDark(ctx, true)
	assert.Equal(t, "dark", prefs.State().Theme())
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/config"
)

type siteConfig struct {
	BasePath string   `env:"TEST_PORTFOLIO_BASE_PATH" envDefault:"/"`
	Locales  []string `env:"TEST_PORTFOLIO_LOCALES" envDefault:"en,fr,ar"`
}

type requiredConfig struct {
	Endpoint string `env:"TEST_PORTFOLIO_REQUIRED_ENDPOINT,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses and caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_PORTFOLIO_BASE_PATH", "/portfolio-mui/")

		var first siteConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "/portfolio-mui/", first.BasePath)
		assert.Equal(t, []string{"en", "fr", "ar"}, first.Locales)

		t.Setenv("TEST_PORTFOLIO_BASE_PATH", "/changed/")

		var second siteConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "/portfolio-mui/", second.BasePath, "second load must come from cache")

		config.Reset()
		var third siteConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "/changed/", third.BasePath)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.Load[siteConfig](nil))
	})
}

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attrs and context values", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithProduction("portfolio"),
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxKey{}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello", logger.Locale("fr"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "portfolio", record["service"])
		assert.Equal(t, "production", record["env"])
		assert.Equal(t, "req-1", record["request_id"])
		assert.Equal(t, "fr", record["locale"])
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("context extractor survives With", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithJSONFormatter(),
			logger.WithContextValue("request_id", ctxKey{}),
		).With(logger.Component("web"))

		log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "req-2"), "hi")
		assert.Contains(t, buf.String(), `"request_id":"req-2"`)
		assert.Contains(t, buf.String(), `"component":"web"`)
	})
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.FromConfig(logger.Config{
		Env:     "production",
		Level:   "debug",
		Format:  "text",
		Service: "portfolio",
	}, logger.WithOutput(&buf))

	log.Debug("visible")
	out := buf.String()
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "service=portfolio")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Locale("").Equal(slog.Attr{}))
	assert.True(t, logger.Visitor("").Equal(slog.Attr{}))

	assert.Equal(t, "error", logger.Error(err1).Key)
	assert.Equal(t, 2*time.Second, logger.Duration(2*time.Second).Value.Duration())
	assert.Equal(t, "visitor_id", logger.Visitor("v").Key)
	assert.Equal(t, "projects", logger.View("projects").Value.String())
	assert.Equal(t, int64(404), logger.StatusCode(404).Value.Int64())
}

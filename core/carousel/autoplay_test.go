package carousel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/carousel"
)

func TestAutoPlay(t *testing.T) {
	t.Parallel()

	t.Run("advances every interval", func(t *testing.T) {
		nav, clock := newNavigator(3)
		stop := carousel.AutoPlay(context.Background(), nav, 5*time.Second, clock)
		defer stop()

		clock.Advance(5 * time.Second)
		assert.Equal(t, 1, nav.Index())

		clock.Advance(5 * time.Second)
		assert.Equal(t, 2, nav.Index())

		clock.Advance(5 * time.Second)
		assert.Equal(t, 0, nav.Index())
	})

	t.Run("stop is idempotent and cancels the timer", func(t *testing.T) {
		nav, clock := newNavigator(3)
		stop := carousel.AutoPlay(context.Background(), nav, time.Second, clock)

		stop()
		stop()
		assert.Zero(t, clock.Pending())

		clock.Advance(10 * time.Second)
		assert.Equal(t, 0, nav.Index())
	})

	t.Run("context cancellation stops playback", func(t *testing.T) {
		nav, clock := newNavigator(3)
		ctx, cancel := context.WithCancel(context.Background())
		stop := carousel.AutoPlay(ctx, nav, time.Second, clock)
		defer stop()

		cancel()
		require.Eventually(t, func() bool { return clock.Pending() == 0 }, time.Second, time.Millisecond)

		clock.Advance(5 * time.Second)
		assert.Equal(t, 0, nav.Index())
	})
}

func TestNavigatorPlayPause(t *testing.T) {
	t.Parallel()

	nav, clock := newNavigator(4)

	nav.Play(2 * time.Second)
	nav.Play(2 * time.Second)
	assert.True(t, nav.State().Playing)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, nav.Index())

	nav.Pause()
	nav.Pause()
	assert.False(t, nav.State().Playing)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 1, nav.Index())
	assert.Zero(t, clock.Pending())
}

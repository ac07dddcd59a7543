package carousel

import (
	"context"
	"sync"
	"time"
)

// AutoPlay calls nav.Next every interval until the returned stop function is
// called or ctx is done. Ticks that land inside a transition are skipped.
// stop is idempotent and safe to call from any goroutine.
func AutoPlay(ctx context.Context, nav *Navigator, interval time.Duration, clock Clock) (stop func()) {
	if clock == nil {
		clock = SystemClock{}
	}

	var (
		mu      sync.Mutex
		timer   Timer
		stopped bool
	)

	var tick func()
	tick = func() {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		mu.Unlock()

		nav.Next()

		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			timer = clock.AfterFunc(interval, tick)
		}
	}

	mu.Lock()
	timer = clock.AfterFunc(interval, tick)
	mu.Unlock()

	var (
		once    sync.Once
		release func() bool
	)
	stop = func() {
		once.Do(func() {
			mu.Lock()
			stopped = true
			if timer != nil {
				timer.Stop()
			}
			unregister := release
			mu.Unlock()
			if unregister != nil {
				unregister()
			}
		})
	}

	unregister := context.AfterFunc(ctx, stop)
	mu.Lock()
	release = unregister
	mu.Unlock()

	return stop
}

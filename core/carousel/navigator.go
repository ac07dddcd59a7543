package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultCooldown is how long a Navigator stays in the Transitioning phase
// after Next or Prev.
const DefaultCooldown = 300 * time.Millisecond

// Phase is the transition state of a Navigator.
type Phase int

const (
	// Idle accepts navigation.
	Idle Phase = iota
	// Transitioning ignores Next, Prev and JumpTo until the cooldown timer fires.
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// State is a point-in-time copy of a Navigator.
type State struct {
	Index   int
	Length  int
	Phase   Phase
	Playing bool
}

// Empty reports whether the list had no items.
func (s State) Empty() bool { return s.Length == 0 }

// Navigator is a wrapping cursor over a list of Length items with a
// per-item cursor over each item's images.
//
// Next and Prev move the cursor and start a cooldown; only the cooldown timer
// returns the navigator to Idle. The mutex guards memory shared between request
// goroutines and timer callbacks.
type Navigator struct {
	mu       sync.Mutex
	clock    Clock
	cooldown time.Duration

	length int
	index  int
	phase  Phase
	sub    map[string]int

	settle   Timer
	stopPlay func()
	closed   bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithClock sets the clock used for cooldown and auto-play timers.
func WithClock(clock Clock) Option {
	return func(n *Navigator) {
		if clock != nil {
			n.clock = clock
		}
	}
}

// WithCooldown sets the transition cooldown. Zero disables the transition guard.
func WithCooldown(d time.Duration) Option {
	return func(n *Navigator) {
		if d >= 0 {
			n.cooldown = d
		}
	}
}

// New returns an Idle navigator over length items positioned at index 0.
func New(length int, opts ...Option) *Navigator {
	n := &Navigator{
		clock:    SystemClock{},
		cooldown: DefaultCooldown,
		length:   max(length, 0),
		sub:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Next advances to the following item, wrapping to 0 after the last one.
// It reports whether the cursor moved.
func (n *Navigator) Next() bool { return n.step(1) }

// Prev moves to the preceding item, wrapping to the last one from 0.
// It reports whether the cursor moved.
func (n *Navigator) Prev() bool { return n.step(-1) }

func (n *Navigator) step(delta int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed || n.length == 0 || n.phase == Transitioning {
		return false
	}

	n.index = wrap(n.index+delta, n.length)

	if n.cooldown > 0 {
		n.phase = Transitioning
		n.settle = n.clock.AfterFunc(n.cooldown, n.endTransition)
	}
	return true
}

func (n *Navigator) endTransition() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.phase = Idle
	n.settle = nil
}

// JumpTo moves directly to target without starting a cooldown.
// Targets outside [0, Length) are ignored, as are jumps during a transition.
func (n *Navigator) JumpTo(target int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed || n.length == 0 || n.phase == Transitioning {
		return false
	}
	if target < 0 || target >= n.length {
		return false
	}

	n.index = target % n.length
	return true
}

// SetLength re-clamps the cursor after the underlying list changed.
// A zero length leaves the navigator empty at index 0.
func (n *Navigator) SetLength(length int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.length = max(length, 0)
	switch {
	case n.length == 0:
		n.index = 0
	case n.index >= n.length:
		n.index = n.length - 1
	}
}

// AdvanceSub moves the image cursor of item key by delta over subLen images and
// returns the new position. Lists with fewer than two images are left alone.
func (n *Navigator) AdvanceSub(key string, delta, subLen int) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	current := n.sub[key]
	if subLen <= 1 {
		return current
	}

	current = wrap(current+delta, subLen)
	n.sub[key] = current
	return current
}

// Sub returns the image cursor of item key, clamped to subLen images.
func (n *Navigator) Sub(key string, subLen int) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	current := n.sub[key]
	if subLen <= 0 {
		return 0
	}
	if current >= subLen {
		return subLen - 1
	}
	return current
}

// Index returns the current position; 0 when the list is empty.
func (n *Navigator) Index() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.index
}

// Empty reports whether the navigator has no items.
func (n *Navigator) Empty() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.length == 0
}

// State returns a snapshot of the navigator.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()

	return State{
		Index:   n.index,
		Length:  n.length,
		Phase:   n.phase,
		Playing: n.stopPlay != nil,
	}
}

// Play starts advancing every interval until Pause or Close.
// Calling Play while already playing is a no-op.
func (n *Navigator) Play(interval time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed || n.stopPlay != nil || interval <= 0 {
		return
	}
	n.stopPlay = AutoPlay(context.Background(), n, interval, n.clock)
}

// Pause stops auto-play. Safe to call when not playing.
func (n *Navigator) Pause() {
	n.mu.Lock()
	stop := n.stopPlay
	n.stopPlay = nil
	n.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Close cancels the cooldown and auto-play timers. A closed navigator ignores
// navigation. Close is idempotent.
func (n *Navigator) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.phase = Idle
	if n.settle != nil {
		n.settle.Stop()
		n.settle = nil
	}
	stop := n.stopPlay
	n.stopPlay = nil
	n.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// wrap returns i modulo n in [0, n) for negative i as well.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

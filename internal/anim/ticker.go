// Package anim drives time-based animations from a single frame clock.
//
// Nothing in this package starts goroutines or reads the wall clock. The
// owner of a Ticker advances it once per frame (ebiten's Update in the app,
// explicit timestamps in tests), and every registered callback runs on that
// same goroutine before the next Draw observes the state it mutated.
package anim

import "time"

// FrameInterval is the nominal period between ticks (60 TPS).
const FrameInterval = time.Second / 60

// FrameFunc is called once per tick with the ticker's current time.
type FrameFunc func(now time.Duration)

// Handle identifies a registration with a Scheduler.
type Handle uint64

// Scheduler is the frame clock animations register with.
type Scheduler interface {
	// Now returns the time of the most recent tick.
	Now() time.Duration
	// Register adds fn to be called on every subsequent tick.
	Register(fn FrameFunc) Handle
	// Unregister removes a registration. Unknown handles are ignored.
	Unregister(h Handle)
}

type registration struct {
	handle Handle
	fn     FrameFunc
}

// Ticker is the Scheduler used by the app. Callbacks run in registration order.
type Ticker struct {
	now     time.Duration
	next    Handle
	entries []registration
	scratch []registration
}

func NewTicker() *Ticker {
	return &Ticker{}
}

func (t *Ticker) Now() time.Duration {
	return t.now
}

func (t *Ticker) Register(fn FrameFunc) Handle {
	t.next++
	t.entries = append(t.entries, registration{handle: t.next, fn: fn})
	return t.next
}

func (t *Ticker) Unregister(h Handle) {
	for i, e := range t.entries {
		if e.handle == h {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Active returns the number of live registrations.
func (t *Ticker) Active() int {
	return len(t.entries)
}

// Tick advances the clock to now and runs every registration. Time never
// moves backwards. A callback unregistered by an earlier callback in the same
// tick is not run; callbacks registered during the tick first run on the next one.
func (t *Ticker) Tick(now time.Duration) {
	if now < t.now {
		now = t.now
	}
	t.now = now

	t.scratch = append(t.scratch[:0], t.entries...)
	for _, e := range t.scratch {
		if !t.registered(e.handle) {
			continue
		}
		e.fn(now)
	}
}

func (t *Ticker) registered(h Handle) bool {
	for _, e := range t.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

package anim

import (
	"math"
	"time"
)

// RepeatMode controls what an Animator does when it reaches the end of its duration.
type RepeatMode int

const (
	// RepeatNone runs once and then calls the end callback.
	RepeatNone RepeatMode = iota
	// RepeatRestart jumps back to the start forever.
	RepeatRestart
	// RepeatReverse plays forward then backward forever.
	RepeatReverse
)

// Curve maps linear progress in [0,1] to eased progress in [0,1].
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly and is fastest in the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// ClampDuration raises d to at least one frame interval.
func ClampDuration(d time.Duration) time.Duration {
	if d < FrameInterval {
		return FrameInterval
	}
	return d
}

// Animator produces a progress value in [0,1] on every tick of its Scheduler.
//
// Start always supersedes a running instance, and Cancel is synchronous: once
// it returns, no further update or end callback from that run will fire.
// Cancel does not call the end callback.
type Animator struct {
	Repeat RepeatMode
	Curve  Curve

	sched    Scheduler
	handle   Handle
	running  bool
	start    time.Duration
	duration time.Duration
	fraction float64
	onUpdate func(t float64)
	onEnd    func()
}

func NewAnimator(s Scheduler) *Animator {
	return &Animator{sched: s}
}

// Start begins a run of duration d. onUpdate receives the eased progress and is
// called once immediately with 0. onEnd runs after the final update of a
// RepeatNone run. Either callback may be nil.
func (a *Animator) Start(d time.Duration, onUpdate func(t float64), onEnd func()) {
	a.Cancel()
	a.duration = ClampDuration(d)
	a.onUpdate = onUpdate
	a.onEnd = onEnd
	a.start = a.sched.Now()
	a.running = true
	a.handle = a.sched.Register(a.step)
	a.apply(0)
}

// Cancel stops the animator. Safe to call when not running.
func (a *Animator) Cancel() {
	if !a.running {
		return
	}
	a.sched.Unregister(a.handle)
	a.running = false
}

func (a *Animator) Running() bool {
	return a.running
}

// Fraction returns the last eased progress value handed to onUpdate.
func (a *Animator) Fraction() float64 {
	return a.fraction
}

func (a *Animator) Duration() time.Duration {
	return a.duration
}

func (a *Animator) step(now time.Duration) {
	elapsed := now - a.start
	if a.Repeat == RepeatNone && elapsed >= a.duration {
		a.finish()
		return
	}

	f := float64(elapsed) / float64(a.duration)
	cycle := math.Floor(f)
	f -= cycle
	if a.Repeat == RepeatReverse && int64(cycle)%2 == 1 {
		f = 1 - f
	}
	a.apply(f)
}

func (a *Animator) finish() {
	h := a.handle
	a.apply(1)
	if !a.running || a.handle != h {
		// onUpdate cancelled or restarted us
		return
	}
	a.sched.Unregister(h)
	a.running = false
	if a.onEnd != nil {
		a.onEnd()
	}
}

func (a *Animator) apply(t float64) {
	curve := a.Curve
	if curve == nil {
		curve = Linear
	}
	a.fraction = curve(t)
	if a.onUpdate != nil {
		a.onUpdate(a.fraction)
	}
}

// After runs fn once, d after the scheduler's current time. The returned
// Animator can be cancelled to drop the call.
func After(s Scheduler, d time.Duration, fn func()) *Animator {
	a := NewAnimator(s)
	a.Start(d, nil, fn)
	return a
}

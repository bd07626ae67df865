package fx

import (
	"image/color"
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

const DefaultTintDuration = 700 * time.Millisecond

// TintCrossfade swings the overlay tint between two colours forever.
type TintCrossfade struct {
	anim    *anim.Animator
	current color.NRGBA
}

func NewTintCrossfade(s anim.Scheduler) *TintCrossfade {
	a := anim.NewAnimator(s)
	a.Repeat = anim.RepeatReverse
	a.Curve = anim.AccelerateDecelerate
	return &TintCrossfade{anim: a}
}

// Start cancels any previous run and begins crossfading from primary to
// secondary, one direction per period. apply receives every intermediate
// colour. It reports false, and does nothing else, when either endpoint is nil.
func (tc *TintCrossfade) Start(primary, secondary color.Color, period time.Duration, blend Blend, apply func(color.NRGBA)) bool {
	tc.Stop()
	if primary == nil || secondary == nil {
		return false
	}
	if blend == nil {
		blend = LerpARGB
	}
	tc.anim.Start(period, func(t float64) {
		tc.current = blend(primary, secondary, t)
		if apply != nil {
			apply(tc.current)
		}
	}, nil)
	return true
}

// Stop halts the crossfade, leaving the last colour in place.
func (tc *TintCrossfade) Stop() {
	tc.anim.Cancel()
}

func (tc *TintCrossfade) Running() bool {
	return tc.anim.Running()
}

// Current is the most recently computed colour.
func (tc *TintCrossfade) Current() color.NRGBA {
	return tc.current
}

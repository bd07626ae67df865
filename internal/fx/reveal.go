package fx

import (
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

const DefaultRevealDuration = 1200 * time.Millisecond

// Reveal drives the clip scale of the circle-in transition from 1 down to 0.
// At rest the scale is 0.
type Reveal struct {
	anim  *anim.Animator
	scale float64
}

func NewReveal(s anim.Scheduler) *Reveal {
	return &Reveal{anim: anim.NewAnimator(s)}
}

// Start runs the transition over d, superseding any run in progress. onStep
// runs after every scale change, onComplete once the scale reaches 0. A
// superseded run never completes.
func (r *Reveal) Start(d time.Duration, onStep, onComplete func()) {
	r.anim.Start(d, func(t float64) {
		r.scale = 1 - t
		if onStep != nil {
			onStep()
		}
	}, onComplete)
}

// Cancel stops the transition without completing it and rests the scale at 0.
func (r *Reveal) Cancel() {
	r.anim.Cancel()
	r.scale = 0
}

func (r *Reveal) Running() bool {
	return r.anim.Running()
}

func (r *Reveal) Scale() float64 {
	return r.scale
}

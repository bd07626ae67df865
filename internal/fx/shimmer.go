package fx

import (
	"image/color"
	"math"
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

const DefaultShimmerDuration = 1000 * time.Millisecond

// Shimmer sweeps a tilted highlight band across its bounds, left to right,
// restarting forever while running.
type Shimmer struct {
	Duration  time.Duration
	Tilt      float64 // degrees from vertical
	BandWidth float64 // fraction of the bounds width
	Highlight color.NRGBA
	Strips    int // gradient steps across the band

	anim     *anim.Animator
	callback Callback
	bounds   Rect
	progress float64
	band     Path
}

func NewShimmer(s anim.Scheduler) *Shimmer {
	a := anim.NewAnimator(s)
	a.Repeat = anim.RepeatRestart
	return &Shimmer{
		Duration:  DefaultShimmerDuration,
		Tilt:      20,
		BandWidth: 0.5,
		Highlight: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x70},
		Strips:    10,
		anim:      a,
	}
}

func (s *Shimmer) SetCallback(cb Callback) {
	s.callback = cb
}

func (s *Shimmer) SetBounds(r Rect) {
	s.bounds = r
}

// Start begins sweeping. Starting a running shimmer does nothing.
func (s *Shimmer) Start() {
	if s.anim.Running() {
		return
	}
	s.anim.Start(s.Duration, func(t float64) {
		s.progress = t
		s.invalidate()
	}, nil)
}

func (s *Shimmer) Stop() {
	if !s.anim.Running() {
		return
	}
	s.anim.Cancel()
	s.invalidate()
}

func (s *Shimmer) Running() bool {
	return s.anim.Running()
}

// Progress is the sweep position in [0,1).
func (s *Shimmer) Progress() float64 {
	return s.progress
}

func (s *Shimmer) Draw(cv Canvas) {
	b := s.bounds
	if !s.anim.Running() || b.Empty() || s.Strips <= 0 {
		return
	}
	bandW := b.W * s.BandWidth
	skew := b.H * math.Tan(s.Tilt*math.Pi/180)
	left := b.X - bandW - skew + (b.W+bandW+skew)*s.progress
	stripW := bandW / float64(s.Strips)

	for i := 0; i < s.Strips; i++ {
		c := (float64(i) + 0.5) / float64(s.Strips)
		weight := 1 - math.Abs(2*c-1)
		x0 := left + float64(i)*stripW
		x1 := x0 + stripW
		s.band.Reset()
		s.band.AddPolygon(
			Point{x0 + skew, b.Y},
			Point{x1 + skew, b.Y},
			Point{x1, b.Y + b.H},
			Point{x0, b.Y + b.H},
		)
		cv.DrawPath(&s.band, WithAlpha(s.Highlight, uint8(math.Round(255*weight))))
	}
}

func (s *Shimmer) invalidate() {
	if s.callback != nil {
		s.callback.InvalidateDrawable(s)
	}
}

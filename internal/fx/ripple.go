package fx

import (
	"image/color"
	"math"
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

const (
	DefaultRippleDuration = 240 * time.Millisecond
	// DefaultRippleAlpha is the translucency laid over the configured ripple colour.
	DefaultRippleAlpha = 50
)

// Ripple is the touch feedback circle. It grows from a third of the view's
// larger side to one and a half times it, then disappears.
type Ripple struct {
	// Restart lets a new touch replace a ripple that is still growing.
	// When false such a touch is ignored.
	Restart bool

	anim     *anim.Animator
	callback Callback
	path     Path
	color    color.NRGBA
	paint    color.NRGBA
	alpha    uint8
	duration time.Duration

	x, y   float64
	radius float64
	maxDim float64
	active bool
}

func NewRipple(s anim.Scheduler) *Ripple {
	r := &Ripple{
		Restart:  true,
		anim:     anim.NewAnimator(s),
		alpha:    DefaultRippleAlpha,
		duration: DefaultRippleDuration,
	}
	r.anim.Curve = anim.AccelerateDecelerate
	r.SetColor(color.White)
	return r
}

func (r *Ripple) SetCallback(cb Callback) {
	r.callback = cb
}

// SetColor sets the ripple colour and recomputes the paint colour.
func (r *Ripple) SetColor(c color.Color) {
	r.color = NRGBA(c)
	r.paint = WithAlpha(r.color, r.alpha)
}

func (r *Ripple) Color() color.NRGBA {
	return r.color
}

// PaintColor is the colour the ripple is actually filled with.
func (r *Ripple) PaintColor() color.NRGBA {
	return r.paint
}

// SetAlpha replaces the fixed translucency.
func (r *Ripple) SetAlpha(alpha uint8) {
	r.alpha = alpha
	r.paint = WithAlpha(r.color, r.alpha)
}

func (r *Ripple) SetDuration(d time.Duration) {
	r.duration = anim.ClampDuration(d)
}

func (r *Ripple) Duration() time.Duration {
	return r.duration
}

// OnLayout records the view size the radius range derives from.
func (r *Ripple) OnLayout(w, h float64) {
	r.maxDim = math.Max(w, h)
}

// Start begins a ripple at (x, y). It does nothing until the ripple has a
// callback and has seen a non-empty layout.
func (r *Ripple) Start(x, y float64) {
	if r.callback == nil || r.maxDim <= 0 {
		return
	}
	if r.active && !r.Restart {
		return
	}
	r.Cancel()

	r.x, r.y = x, y
	r.active = true
	from, to := r.maxDim/3, r.maxDim*1.5
	r.anim.Start(r.duration, func(t float64) {
		r.radius = from + (to-from)*t
		r.path.Reset()
		r.path.AddCircle(r.x, r.y, r.radius)
		r.invalidate()
	}, func() {
		r.clear()
		r.invalidate()
	})
}

// Cancel stops the ripple immediately and drops its geometry.
func (r *Ripple) Cancel() {
	r.anim.Cancel()
	wasActive := r.active
	r.clear()
	if wasActive {
		r.invalidate()
	}
}

// Active reports whether a ripple is being drawn.
func (r *Ripple) Active() bool {
	return r.active
}

func (r *Ripple) Radius() float64 {
	return r.radius
}

func (r *Ripple) Origin() (float64, float64) {
	return r.x, r.y
}

func (r *Ripple) Draw(cv Canvas) {
	if !r.active || r.path.IsEmpty() {
		return
	}
	cv.DrawPath(&r.path, r.paint)
}

func (r *Ripple) clear() {
	r.active = false
	r.radius = 0
	r.path.Reset()
}

func (r *Ripple) invalidate() {
	if r.callback != nil {
		r.callback.InvalidateDrawable(r)
	}
}

package fx

import (
	"image/color"
	"math"
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

// PosterView shows an image and, while the image is pending, a placeholder
// built from layered effects: a background with a tinted overlay glyph, a
// shimmer sweep, a circular reveal when the image arrives, and a touch ripple.
//
// Clicks are delivered only while the view is interactive, that is while it
// is selectable and none of the loading, shimmering or tinting effects run.
//
// All methods must be called from the goroutine that ticks the scheduler.
type PosterView struct {
	host  Host
	sched anim.Scheduler

	image       Content
	overlay     Content
	overlayRect Rect
	overlayTint color.Color

	bounds  Rect
	maxDim  float64
	laidOut bool

	loading    bool
	shimmering bool
	tinting    bool

	reveal   *Reveal
	ripple   *Ripple
	tint     *TintCrossfade
	shimmer  *Shimmer
	corners  Corners
	gestures *GestureDetector
	clip     Path

	animDuration   time.Duration
	tintDuration   time.Duration
	primaryTint    color.Color
	secondaryTint  color.Color
	tintBlend      Blend
	overlayPadding float64
	background     color.Color
	disableRipple  bool
	dragCancel     bool
	selectable     bool
	scaleType      ScaleType

	onClick     func()
	onLongClick func()
}

// NewPosterView builds a view driven by sched. host may be nil.
func NewPosterView(sched anim.Scheduler, host Host, opts Options) *PosterView {
	if host == nil {
		host = nopHost{}
	}
	opts = opts.withDefaults()
	v := &PosterView{
		host:     host,
		sched:    sched,
		reveal:   NewReveal(sched),
		ripple:   NewRipple(sched),
		tint:     NewTintCrossfade(sched),
		shimmer:  NewShimmer(sched),
		gestures: NewGestureDetector(sched),
	}
	v.ripple.SetCallback(v)
	v.shimmer.SetCallback(v)
	v.gestures.OnTap = func(PointerEvent) { v.PerformClick() }
	v.gestures.OnLongPress = func(PointerEvent) { v.PerformLongClick() }
	v.gestures.OnSlop = func(PointerEvent) {
		if v.dragCancel && !v.disableRipple {
			v.ripple.Cancel()
		}
	}

	v.SetAnimDuration(opts.AnimDuration)
	v.SetTintDuration(opts.TintDuration)
	v.SetBackgroundColor(opts.BackgroundColor)
	v.overlay = opts.Overlay
	v.SetRippleColor(opts.RippleColor)
	v.ripple.SetAlpha(opts.RippleAlpha)
	v.ripple.SetDuration(opts.RippleDuration)
	v.ripple.Restart = !opts.NoRippleRestart
	v.primaryTint = opts.OverlayTint
	v.secondaryTint = opts.OverlaySecondaryTint
	v.tintBlend = opts.TintBlend
	v.overlayPadding = opts.OverlayPadding
	v.selectable = opts.Selectable
	v.disableRipple = opts.DisableRipple
	v.dragCancel = !opts.NoRippleDragCancel
	v.scaleType = opts.ScaleType
	v.corners.SetRadii(opts.CornerRadii)
	v.gestures.Slop = opts.TouchSlop
	v.gestures.LongPressTimeout = opts.LongPressTimeout
	v.shimmer.Duration = opts.ShimmerDuration

	v.SetShimmering(opts.Shimmering)
	v.SetOverlayTinting(opts.OverlayTinting)
	return v
}

// InvalidateDrawable implements Callback for the ripple and shimmer.
func (v *PosterView) InvalidateDrawable(Drawable) {
	v.host.Invalidate()
}

// SetImage replaces the base image. With reveal the circle-in transition
// plays, restarting from the beginning if one was already running, and
// onAfterEnd runs once it completes.
func (v *PosterView) SetImage(c Content, reveal bool, onAfterEnd func()) {
	typ := AnimationNone
	if reveal {
		typ = AnimationCircleIn
	}
	v.SetImageWith(c, typ, onAfterEnd)
}

// SetImageWith is SetImage with an explicit transition.
func (v *PosterView) SetImageWith(c Content, typ AnimationType, onAfterEnd func()) {
	v.image = c
	v.host.Invalidate()
	if typ == AnimationCircleIn {
		v.startReveal(onAfterEnd)
	}
}

func (v *PosterView) Image() Content {
	return v.image
}

// SetOverlay replaces the glyph shown during effects. Its rectangle depends
// on its size, so a layout pass is requested.
func (v *PosterView) SetOverlay(c Content) {
	v.overlay = c
	v.host.RequestLayout()
	if v.tinting {
		v.startTint()
	}
}

func (v *PosterView) Overlay() Content {
	return v.overlay
}

// StopAllSideEffects turns shimmering and tinting off. Loading is untouched.
func (v *PosterView) StopAllSideEffects() {
	v.SetShimmering(false)
	v.SetOverlayTinting(false)
}

// Dispose stops every animation the view has registered, including a
// pending reveal whose onAfterEnd will then never run. The view is left
// loaded and idle.
func (v *PosterView) Dispose() {
	v.reveal.Cancel()
	v.ripple.Cancel()
	v.gestures.Reset()
	v.StopAllSideEffects()
	v.setLoading(false)
}

// IsInteractive reports whether touches and clicks are accepted. A running
// ripple does not count.
func (v *PosterView) IsInteractive() bool {
	return v.selectable && !v.loading && !v.shimmering && !v.tinting
}

func (v *PosterView) Loading() bool {
	return v.loading
}

func (v *PosterView) SetShimmering(on bool) {
	if v.shimmering == on {
		return
	}
	v.shimmering = on
	if on {
		v.shimmer.Start()
	} else {
		v.shimmer.Stop()
	}
	v.host.Invalidate()
}

func (v *PosterView) Shimmering() bool {
	return v.shimmering
}

// SetOverlayTinting turns the overlay crossfade on or off. The flag is set
// even when the crossfade cannot run for lack of an overlay or tints.
func (v *PosterView) SetOverlayTinting(on bool) {
	if v.tinting == on {
		return
	}
	v.tinting = on
	if on {
		v.startTint()
	} else {
		v.stopTint()
	}
}

func (v *PosterView) OverlayTinting() bool {
	return v.tinting
}

func (v *PosterView) RippleActive() bool {
	return v.ripple.Active()
}

func (v *PosterView) SetSelectable(on bool) {
	v.selectable = on
}

func (v *PosterView) Selectable() bool {
	return v.selectable
}

func (v *PosterView) SetRippleDisabled(disabled bool) {
	v.disableRipple = disabled
	if disabled {
		v.ripple.Cancel()
	}
}

func (v *PosterView) RippleDisabled() bool {
	return v.disableRipple
}

// SetRippleDragCancel chooses whether dragging past the touch slop cancels the ripple.
func (v *PosterView) SetRippleDragCancel(on bool) {
	v.dragCancel = on
}

func (v *PosterView) RippleDragCancel() bool {
	return v.dragCancel
}

// SetRippleColor sets the ripple colour. The translucent paint is derived
// immediately. nil means white.
func (v *PosterView) SetRippleColor(c color.Color) {
	if c == nil {
		c = color.White
	}
	v.ripple.SetColor(c)
}

func (v *PosterView) RippleColor() color.NRGBA {
	return v.ripple.Color()
}

func (v *PosterView) SetRippleDuration(d time.Duration) {
	v.ripple.SetDuration(d)
}

func (v *PosterView) RippleDuration() time.Duration {
	return v.ripple.Duration()
}

// SetAnimDuration sets the reveal duration used by later SetImage calls.
func (v *PosterView) SetAnimDuration(d time.Duration) {
	v.animDuration = anim.ClampDuration(d)
}

func (v *PosterView) AnimDuration() time.Duration {
	return v.animDuration
}

// SetTintDuration sets the length of one crossfade direction.
func (v *PosterView) SetTintDuration(d time.Duration) {
	v.tintDuration = anim.ClampDuration(d)
	if v.tinting {
		v.startTint()
	}
}

func (v *PosterView) TintDuration() time.Duration {
	return v.tintDuration
}

func (v *PosterView) SetOverlayTint(c color.Color) {
	v.primaryTint = c
	if v.tinting {
		v.startTint()
	}
}

func (v *PosterView) OverlayTint() color.Color {
	return v.primaryTint
}

func (v *PosterView) SetOverlaySecondaryTint(c color.Color) {
	v.secondaryTint = c
	if v.tinting {
		v.startTint()
	}
}

func (v *PosterView) OverlaySecondaryTint() color.Color {
	return v.secondaryTint
}

// CurrentOverlayTint is the tint the overlay is painted with right now.
func (v *PosterView) CurrentOverlayTint() color.Color {
	return v.overlayTint
}

func (v *PosterView) SetOverlayPadding(p float64) {
	v.overlayPadding = p
	v.host.RequestLayout()
}

func (v *PosterView) OverlayPadding() float64 {
	return v.overlayPadding
}

func (v *PosterView) SetBackgroundColor(c color.Color) {
	if c == nil {
		c = color.Transparent
	}
	v.background = c
	v.host.Invalidate()
}

func (v *PosterView) BackgroundColor() color.Color {
	return v.background
}

// SetCornerRadius rounds all four corners by r.
func (v *PosterView) SetCornerRadius(r float64) {
	v.corners.SetRadius(r)
	v.host.Invalidate()
}

// SetCornerRadii sets x/y radius pairs clockwise from the top-left corner.
func (v *PosterView) SetCornerRadii(radii [8]float64) {
	v.corners.SetRadii(radii)
	v.host.Invalidate()
}

func (v *PosterView) CornerRadii() [8]float64 {
	return v.corners.Radii()
}

func (v *PosterView) SetScaleType(t ScaleType) {
	v.scaleType = t
	v.host.Invalidate()
}

func (v *PosterView) ScaleType() ScaleType {
	return v.scaleType
}

func (v *PosterView) SetOnClick(fn func()) {
	v.onClick = fn
}

func (v *PosterView) SetOnLongClick(fn func()) {
	v.onLongClick = fn
}

// PerformClick runs the click callback if the view is interactive and
// reports whether it ran.
func (v *PosterView) PerformClick() bool {
	if !v.IsInteractive() || v.onClick == nil {
		return false
	}
	v.onClick()
	return true
}

// PerformLongClick is PerformClick for the long-click callback.
func (v *PosterView) PerformLongClick() bool {
	if !v.IsInteractive() || v.onLongClick == nil {
		return false
	}
	v.onLongClick()
	return true
}

// Bounds returns the view rectangle from the last layout, at the origin.
func (v *PosterView) Bounds() Rect {
	return v.bounds
}

// Contains reports whether (x, y), in view coordinates, falls on the view.
// Points cut off by rounded corners do not.
func (v *PosterView) Contains(x, y float64) bool {
	if !v.laidOut {
		return false
	}
	if v.corners.IsZero() {
		return v.bounds.Contains(x, y)
	}
	return v.corners.Path().Contains(x, y)
}

// OverlayRect is where the overlay glyph is painted.
func (v *PosterView) OverlayRect() Rect {
	return v.overlayRect
}

// Layout sizes the view and recomputes everything derived from its bounds.
func (v *PosterView) Layout(w, h float64) {
	v.bounds = Rect{W: w, H: h}
	v.maxDim = math.Max(w, h)
	v.shimmer.SetBounds(v.bounds)
	v.ripple.OnLayout(w, h)
	if v.primaryTint != nil && v.overlay != nil && !v.tint.Running() {
		v.overlayTint = v.primaryTint
	}
	v.corners.Layout(v.bounds)
	v.layoutOverlay()
	v.laidOut = !v.bounds.Empty()
	v.host.Invalidate()
}

// overlay is centred; each half-extent is its intrinsic size less the padding
func (v *PosterView) layoutOverlay() {
	if v.overlay == nil {
		v.overlayRect = Rect{}
		return
	}
	size := v.overlay.Bounds().Size()
	hw := math.Max(0, float64(size.X)-v.overlayPadding)
	hh := math.Max(0, float64(size.Y)-v.overlayPadding)
	cx, cy := v.bounds.Center()
	v.overlayRect = Rect{X: cx - hw, Y: cy - hh, W: hw * 2, H: hh * 2}
}

// OnPointer handles a pointer event in view coordinates and reports whether
// it was consumed. Nothing is consumed while the view is not interactive.
func (v *PosterView) OnPointer(ev PointerEvent) bool {
	if !v.IsInteractive() {
		v.gestures.Reset()
		return false
	}
	v.gestures.OnEvent(ev)
	if ev.Kind == PointerDown && !v.disableRipple {
		v.ripple.Start(ev.X, ev.Y)
		v.host.Invalidate()
	}
	return true
}

// Draw paints the view at the canvas origin. Layer order, bottom to top:
// base image scaled by the reveal, then inside the shrinking reveal circle the
// background and overlay or the empty state, the shimmer, and the ripple.
// Everything sits inside the rounded-corner clip.
func (v *PosterView) Draw(cv Canvas) {
	if !v.laidOut {
		return
	}
	outer := cv.Save()
	v.corners.Clip(cv)

	cx, cy := v.bounds.Center()
	revealScale := v.reveal.Scale()

	n := cv.Save()
	cv.Scale(1+revealScale, 1+revealScale, cx, cy)
	v.drawImage(cv)
	cv.RestoreToCount(n)

	n = cv.Save()
	if v.loading {
		v.clipReveal(cv, revealScale)
	}
	if v.effectOngoing() {
		cv.DrawColor(v.background)
		if v.overlay != nil {
			m := cv.Save()
			if v.loading {
				cv.Scale(revealScale, revealScale, cx, cy)
			}
			cv.DrawContent(v.overlay, v.overlayRect, v.overlayTint)
			cv.RestoreToCount(m)
		}
	} else if v.image == nil {
		v.drawEmpty(cv)
	}
	if v.shimmering {
		v.shimmer.Draw(cv)
		v.host.Invalidate()
	}
	cv.RestoreToCount(n)

	if v.ripple.Active() {
		v.ripple.Draw(cv)
		v.host.Invalidate()
	}
	cv.RestoreToCount(outer)
}

func (v *PosterView) effectOngoing() bool {
	return v.shimmering || v.tinting
}

func (v *PosterView) drawImage(cv Canvas) {
	if v.image == nil {
		return
	}
	size := v.image.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	cv.DrawContent(v.image, fitRect(v.bounds, float64(size.X), float64(size.Y), v.scaleType), nil)
}

func (v *PosterView) drawEmpty(cv Canvas) {
	cv.DrawColor(v.background)
	if v.overlay == nil {
		return
	}
	if v.primaryTint != nil {
		v.overlayTint = v.primaryTint
	}
	cv.DrawContent(v.overlay, v.overlayRect, v.overlayTint)
}

// at scale 1 the window covers the whole view
func (v *PosterView) clipReveal(cv Canvas, scale float64) {
	if scale == 1 {
		return
	}
	cx, cy := v.bounds.Center()
	v.clip.Reset()
	v.clip.AddCircle(cx, cy, v.maxDim*scale)
	cv.ClipPath(&v.clip)
}

func (v *PosterView) startReveal(onAfterEnd func()) {
	v.setLoading(true)
	v.reveal.Start(v.animDuration, v.host.Invalidate, func() {
		v.setLoading(false)
		v.StopAllSideEffects()
		if onAfterEnd != nil {
			onAfterEnd()
		}
	})
}

func (v *PosterView) setLoading(on bool) {
	if v.loading == on {
		return
	}
	v.loading = on
	v.host.Invalidate()
}

func (v *PosterView) startTint() {
	v.tint.Stop()
	if v.overlay == nil {
		return
	}
	v.tint.Start(v.primaryTint, v.secondaryTint, v.tintDuration, v.tintBlend, func(c color.NRGBA) {
		if !v.laidOut {
			return
		}
		v.overlayTint = c
		v.host.Invalidate()
	})
}

func (v *PosterView) stopTint() {
	v.tint.Stop()
	v.host.Invalidate()
}

func fitRect(bounds Rect, iw, ih float64, t ScaleType) Rect {
	if t == ScaleFitXY {
		return bounds
	}
	sx, sy := bounds.W/iw, bounds.H/ih
	s := math.Min(sx, sy)
	if t == ScaleCenterCrop {
		s = math.Max(sx, sy)
	}
	w, h := iw*s, ih*s
	cx, cy := bounds.Center()
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

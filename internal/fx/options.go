package fx

import (
	"image/color"
	"time"
)

// ScaleType decides how the base image is fitted into the view.
type ScaleType int

const (
	// ScaleFitCenter keeps the aspect ratio and fits inside, centred.
	ScaleFitCenter ScaleType = iota
	// ScaleCenterCrop keeps the aspect ratio and covers the view, centred.
	ScaleCenterCrop
	// ScaleFitXY stretches to the view.
	ScaleFitXY
)

// AnimationType selects the transition SetImageWith plays.
type AnimationType int

const (
	AnimationNone AnimationType = iota
	AnimationCircleIn
)

// Options is the construction-time configuration of a PosterView. The zero
// value of every field means its default, except the tints where nil means
// unset.
type Options struct {
	AnimDuration   time.Duration
	TintDuration   time.Duration
	RippleDuration time.Duration

	RippleColor   color.Color
	RippleAlpha   uint8 // 0 means DefaultRippleAlpha
	DisableRipple bool
	// NoRippleDragCancel keeps the ripple running when the pointer is
	// dragged past the touch slop.
	NoRippleDragCancel bool
	// NoRippleRestart ignores presses while a ripple is still growing.
	NoRippleRestart bool

	Selectable     bool
	Shimmering     bool
	OverlayTinting bool

	Overlay              Content
	OverlayTint          color.Color
	OverlaySecondaryTint color.Color
	OverlayPadding       float64
	TintBlend            Blend

	BackgroundColor color.Color
	CornerRadii     [8]float64
	ScaleType       ScaleType

	TouchSlop        float64
	LongPressTimeout time.Duration
	ShimmerDuration  time.Duration
}

// DefaultBackgroundColor fills the view behind the overlay glyph.
var DefaultBackgroundColor color.Color = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}

func DefaultOptions() Options {
	return Options{
		AnimDuration:     DefaultRevealDuration,
		TintDuration:     DefaultTintDuration,
		RippleDuration:   DefaultRippleDuration,
		RippleColor:      color.White,
		RippleAlpha:      DefaultRippleAlpha,
		TintBlend:        LerpARGB,
		BackgroundColor:  DefaultBackgroundColor,
		TouchSlop:        DefaultTouchSlop,
		LongPressTimeout: DefaultLongPressTimeout,
		ShimmerDuration:  DefaultShimmerDuration,
	}
}

// withDefaults fills zero fields with their defaults. Negative durations are
// left for anim.ClampDuration to raise to one frame.
func (o Options) withDefaults() Options {
	if o.RippleColor == nil {
		o.RippleColor = color.White
	}
	if o.RippleAlpha == 0 {
		o.RippleAlpha = DefaultRippleAlpha
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = DefaultBackgroundColor
	}
	if o.TintBlend == nil {
		o.TintBlend = LerpARGB
	}
	if o.AnimDuration == 0 {
		o.AnimDuration = DefaultRevealDuration
	}
	if o.TintDuration == 0 {
		o.TintDuration = DefaultTintDuration
	}
	if o.RippleDuration == 0 {
		o.RippleDuration = DefaultRippleDuration
	}
	if o.LongPressTimeout == 0 {
		o.LongPressTimeout = DefaultLongPressTimeout
	}
	if o.ShimmerDuration == 0 {
		o.ShimmerDuration = DefaultShimmerDuration
	}
	if o.TouchSlop <= 0 {
		o.TouchSlop = DefaultTouchSlop
	}
	return o
}

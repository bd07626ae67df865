package fx

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend returns the colour at fraction t between a and b.
type Blend func(a, b color.Color, t float64) color.NRGBA

// NRGBA converts any colour to straight-alpha 8-bit channels.
func NRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// LerpARGB interpolates alpha, red, green and blue as independent linear channels.
func LerpARGB(a, b color.Color, t float64) color.NRGBA {
	t = clamp01(t)
	ca, cb := NRGBA(a), NRGBA(b)
	return color.NRGBA{
		R: lerp8(ca.R, cb.R, t),
		G: lerp8(ca.G, cb.G, t),
		B: lerp8(ca.B, cb.B, t),
		A: lerp8(ca.A, cb.A, t),
	}
}

// LerpLab interpolates the colour part in CIE L*a*b* space. Alpha stays linear.
func LerpLab(a, b color.Color, t float64) color.NRGBA {
	t = clamp01(t)
	ca, cb := NRGBA(a), NRGBA(b)
	switch {
	case t == 0:
		return ca
	case t == 1:
		return cb
	case ca.A == 0 || cb.A == 0:
		return LerpARGB(ca, cb, t)
	}
	mixed := toColorful(ca).BlendLab(toColorful(cb), t).Clamped()
	r, g, bl := mixed.RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: lerp8(ca.A, cb.A, t)}
}

// WithAlpha scales c's own alpha by alpha/255.
func WithAlpha(c color.Color, alpha uint8) color.NRGBA {
	n := NRGBA(c)
	n.A = uint8((uint16(n.A)*uint16(alpha) + 127) / 255)
	return n
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Toast shows a short message near the bottom of the screen for a fixed
// number of frames.
type Toast struct {
	text   string
	frames int // frames remaining
}

func (t *Toast) Show(text string) {
	t.text = text
	t.frames = ToastFrames
}

// Update counts the toast down and reports whether it just disappeared.
func (t *Toast) Update() bool {
	if t.frames == 0 {
		return false
	}
	t.frames--
	return t.frames == 0
}

func (t *Toast) Visible() bool {
	return t.frames > 0
}

func (t *Toast) Draw(dst *ebiten.Image) {
	if t.frames == 0 {
		return
	}
	const (
		padX    = 18.0
		padY    = 10.0
		marginB = 48.0
	)
	b := dst.Bounds()
	tw, th := MeasureText(t.text, FontSizeBody)
	w := tw + padX*2
	h := th + padY*2
	x := float64(b.Min.X) + (float64(b.Dx())-w)/2
	y := float64(b.Max.Y) - marginB - h

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorOverlay, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, ColorTextMuted, false)
	DrawTextCentered(dst, t.text, x+w/2, y+h/2, FontSizeBody, ColorText)
}

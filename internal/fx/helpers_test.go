package fx

import (
	"image"
	"image/color"
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// call is one recorded Canvas operation.
type call struct {
	kind    string
	rect    Rect
	path    Path
	clr     color.Color
	content Content
	sx, sy  float64
}

type recordCanvas struct {
	calls []call
	depth int
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{depth: 1}
}

func (c *recordCanvas) Save() int {
	n := c.depth
	c.depth++
	c.calls = append(c.calls, call{kind: "save"})
	return n
}

func (c *recordCanvas) RestoreToCount(n int) {
	c.depth = n
	c.calls = append(c.calls, call{kind: "restore"})
}

func (c *recordCanvas) Translate(dx, dy float64) {
	c.calls = append(c.calls, call{kind: "translate", sx: dx, sy: dy})
}

func (c *recordCanvas) Scale(sx, sy, px, py float64) {
	c.calls = append(c.calls, call{kind: "scale", sx: sx, sy: sy})
}

func (c *recordCanvas) ClipRect(r Rect) {
	c.calls = append(c.calls, call{kind: "clipRect", rect: r})
}

func (c *recordCanvas) ClipPath(p *Path) {
	c.calls = append(c.calls, call{kind: "clipPath", path: copyPath(p)})
}

func (c *recordCanvas) DrawColor(clr color.Color) {
	c.calls = append(c.calls, call{kind: "drawColor", clr: clr})
}

func (c *recordCanvas) DrawPath(p *Path, clr color.Color) {
	c.calls = append(c.calls, call{kind: "drawPath", path: copyPath(p), clr: clr})
}

func (c *recordCanvas) DrawContent(content Content, dst Rect, tint color.Color) {
	c.calls = append(c.calls, call{kind: "drawContent", content: content, rect: dst, clr: tint})
}

func (c *recordCanvas) count(kind string) int {
	n := 0
	for _, cl := range c.calls {
		if cl.kind == kind {
			n++
		}
	}
	return n
}

// index returns the position of the first call matching pred, or -1.
func (c *recordCanvas) index(pred func(call) bool) int {
	for i, cl := range c.calls {
		if pred(cl) {
			return i
		}
	}
	return -1
}

func (c *recordCanvas) lastIndex(pred func(call) bool) int {
	for i := len(c.calls) - 1; i >= 0; i-- {
		if pred(c.calls[i]) {
			return i
		}
	}
	return -1
}

func copyPath(p *Path) Path {
	var out Path
	for _, s := range p.shapes {
		s.pts = append([]Point(nil), s.pts...)
		out.shapes = append(out.shapes, s)
	}
	return out
}

type testHost struct {
	invalidations int
	layouts       int
}

func (h *testHost) Invalidate()    { h.invalidations++ }
func (h *testHost) RequestLayout() { h.layouts++ }

type drawableCounter struct {
	n int
}

func (d *drawableCounter) InvalidateDrawable(Drawable) { d.n++ }

func testImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

var (
	red  = color.NRGBA{R: 0xFF, A: 0xFF}
	blue = color.NRGBA{B: 0xFF, A: 0xFF}
)

// newTestView returns an idle, selectable, laid-out 200x300 view.
func newTestView(mutate func(*Options)) (*PosterView, *anim.Ticker, *testHost) {
	clock := anim.NewTicker()
	host := &testHost{}
	opts := DefaultOptions()
	opts.Selectable = true
	if mutate != nil {
		mutate(&opts)
	}
	v := NewPosterView(clock, host, opts)
	v.Layout(200, 300)
	return v, clock, host
}

func newTestClock() *anim.Ticker {
	return anim.NewTicker()
}

package fx

import (
	"image"
	"image/color"
	"reflect"
)

// Content is anything the view can paint into a rectangle: a decoded poster,
// an overlay glyph. *ebiten.Image and image.Image both satisfy it.
type Content interface {
	Bounds() image.Rectangle
}

// StableContent reports whether c keeps its identity from frame to frame, so
// that a renderer may key a cache on it. Only pointer contents qualify; other
// values may not even be comparable.
func StableContent(c Content) bool {
	if c == nil {
		return false
	}
	return reflect.TypeOf(c).Kind() == reflect.Pointer
}

// Canvas is the rendering surface a view paints onto. Transforms and clips
// apply to every later call until the matching RestoreToCount.
type Canvas interface {
	// Save pushes the current transform and clip and returns the depth to
	// pass to RestoreToCount.
	Save() int
	RestoreToCount(count int)

	Translate(dx, dy float64)
	// Scale scales about the pivot (px, py).
	Scale(sx, sy, px, py float64)

	ClipRect(r Rect)
	// ClipPath intersects the clip with p. An empty path clips everything.
	ClipPath(p *Path)

	// DrawColor floods the current clip with clr.
	DrawColor(clr color.Color)
	DrawPath(p *Path, clr color.Color)
	// DrawContent paints c stretched into dst. A non-nil tint replaces the
	// content's colour while keeping its alpha.
	DrawContent(c Content, dst Rect, tint color.Color)
}

// Drawable is a self-contained paintable effect that tells its owner when it
// needs to be repainted.
type Drawable interface {
	Draw(cv Canvas)
	SetCallback(cb Callback)
}

// Callback receives redraw requests from a Drawable.
type Callback interface {
	InvalidateDrawable(d Drawable)
}

// Host is what a view needs from whatever contains it.
type Host interface {
	// Invalidate schedules a redraw.
	Invalidate()
	// RequestLayout asks for Layout to be called again before the next draw.
	RequestLayout()
}

type nopHost struct{}

func (nopHost) Invalidate()    {}
func (nopHost) RequestLayout() {}

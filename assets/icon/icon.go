package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	frameDark  = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xFF}
	posterGrey = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	accent     = color.RGBA{R: 0xF2, G: 0x8C, B: 0x28, A: 0xFF}
	glint      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x70}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a grey poster card half uncovered by an orange reveal circle.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, frameDark)
	fillRoundedRect(img, s*0.18, s*0.08, s*0.64, s*0.84, s*0.08, posterGrey)
	fillCircle(img, s*0.5, s*0.62, s*0.22, accent)
	drawGlyph(img, s*0.5, s*0.36, s*0.16, color.White)

	// shimmer streak
	for i := 0; i < size; i++ {
		x := s*0.30 + float64(i)*0.25
		y := s*0.10 + float64(i)*0.8
		fillCircle(img, x, y, s*0.03, glint)
	}
	return img
}

// Overlay returns the placeholder glyph: a white picture mark on transparency.
// The view tints it, so only its alpha matters.
func Overlay(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	drawGlyph(img, s/2, s/2, s/2, color.White)
	return img
}

// drawGlyph draws a framed landscape (sun and two hills) centred on (cx, cy)
// with half-extent r.
func drawGlyph(img *image.RGBA, cx, cy, r float64, c color.Color) {
	x0, y0 := cx-r, cy-r*0.8
	w, h := r*2, r*1.6
	stroke := math.Max(1, r*0.12)

	fillRoundedRect(img, x0, y0, w, stroke, stroke/2, c)
	fillRoundedRect(img, x0, y0+h-stroke, w, stroke, stroke/2, c)
	fillRoundedRect(img, x0, y0, stroke, h, stroke/2, c)
	fillRoundedRect(img, x0+w-stroke, y0, stroke, h, stroke/2, c)

	fillCircle(img, x0+w*0.7, y0+h*0.32, r*0.16, c)
	fillTriangle(img, x0+stroke, y0+h-stroke, x0+w*0.38, y0+h*0.38, x0+w*0.66, y0+h-stroke, c)
	fillTriangle(img, x0+w*0.45, y0+h-stroke, x0+w*0.68, y0+h*0.55, x0+w-stroke, y0+h-stroke, c)
}

// Posters returns n procedural poster images of w x h. Each uses its own hue,
// spread evenly around the HCL wheel, so neighbouring posters differ.
func Posters(n, w, h int) []*image.RGBA {
	out := make([]*image.RGBA, n)
	for i := range out {
		hue := 360 * float64(i) / float64(max(n, 1))
		out[i] = poster(w, h, hue)
	}
	return out
}

func poster(w, h int, hue float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	top := colorful.Hcl(hue, 0.45, 0.72)
	bottom := colorful.Hcl(math.Mod(hue+50, 360), 0.35, 0.22)

	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		r, g, b := top.BlendHcl(bottom, t).Clamped().RGB255()
		row := color.RGBA{R: r, G: g, B: b, A: 0xFF}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	s := math.Min(float64(w), float64(h))
	sun := colorful.Hcl(math.Mod(hue+180, 360), 0.5, 0.85).Clamped()
	fillCircle(img, float64(w)*0.68, float64(h)*0.3, s*0.18, sun)

	ridge := colorful.Hcl(hue, 0.25, 0.12).Clamped()
	fillTriangle(img, -s*0.2, float64(h), float64(w)*0.35, float64(h)*0.55, float64(w)*0.9, float64(h), ridge)
	fillTriangle(img, float64(w)*0.4, float64(h), float64(w)*0.8, float64(h)*0.65, float64(w)*1.2, float64(h), ridge)
	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := max(y0, 0); y < y0+h && y < bounds.Max.Y; y++ {
		for x := max(x0, 0); x < x0+w && x < bounds.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	r := math.Min(rf, math.Min(wf, hf)/2)
	bounds := img.Bounds()
	y1 := int(math.Ceil(yf + hf))
	x1 := int(math.Ceil(xf + wf))

	for y := max(int(yf), 0); y < y1 && y < bounds.Max.Y; y++ {
		for x := max(int(xf), 0); x < x1 && x < bounds.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if px < xf || px > xf+wf || py < yf || py > yf+hf {
				continue
			}
			// distance to the nearest corner centre, only inside corner boxes
			dx := math.Max(0, math.Max(xf+r-px, px-(xf+wf-r)))
			dy := math.Max(0, math.Max(yf+r-py, py-(yf+hf-r)))
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := max(int(cy-r), 0); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := max(int(cx-r), 0); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillTriangle(img *image.RGBA, ax, ay, bx, by, cx, cy float64, c color.Color) {
	bounds := img.Bounds()
	minY := max(int(math.Min(ay, math.Min(by, cy))), 0)
	maxY := min(int(math.Ceil(math.Max(ay, math.Max(by, cy)))), bounds.Max.Y)
	minX := max(int(math.Min(ax, math.Min(bx, cx))), 0)
	maxX := min(int(math.Ceil(math.Max(ax, math.Max(bx, cx)))), bounds.Max.X)

	edge := func(x0, y0, x1, y1, px, py float64) float64 {
		return (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
	}
	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(bx, by, cx, cy, px, py) / area
			w1 := edge(cx, cy, ax, ay, px, py) / area
			w2 := edge(ax, ay, bx, by, px, py) / area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c over the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// premultiplied source over premultiplied destination
	e := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((r0 + uint32(e.R)*257*inv/0xFFFF) >> 8),
		G: uint8((g0 + uint32(e.G)*257*inv/0xFFFF) >> 8),
		B: uint8((b0 + uint32(e.B)*257*inv/0xFFFF) >> 8),
		A: uint8((a0 + uint32(e.A)*257*inv/0xFFFF) >> 8),
	})
}

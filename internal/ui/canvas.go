package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/posterfx/internal/fx"
)

// curveSegments is how finely arcs are flattened per quarter turn.
const curveSegments = 16

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas implements fx.Canvas on an ebiten image. Rectangular clips are
// sub-images; path clips render into an offscreen layer that is masked and
// composited back when the state is restored.
type Canvas struct {
	stack []canvasState
	pool  []*ebiten.Image
	size  image.Point

	vs []ebiten.Vertex
	is []uint16

	converted map[image.Image]*ebiten.Image
}

type canvasState struct {
	geo    ebiten.GeoM
	target *ebiten.Image
	empty  bool
	layer  *clipLayer
}

type clipLayer struct {
	img    *ebiten.Image
	mask   *ebiten.Image
	parent *ebiten.Image
	region image.Rectangle
}

func NewCanvas() *Canvas {
	return &Canvas{converted: make(map[image.Image]*ebiten.Image)}
}

// Begin starts painting onto dst with an identity transform and no clip.
func (c *Canvas) Begin(dst *ebiten.Image) {
	size := dst.Bounds().Size()
	if size != c.size {
		for _, img := range c.pool {
			img.Deallocate()
		}
		c.pool = c.pool[:0]
		c.size = size
	}
	c.stack = append(c.stack[:0], canvasState{target: dst})
}

// End flushes any open clip layers.
func (c *Canvas) End() {
	c.RestoreToCount(1)
	c.stack = c.stack[:0]
}

func (c *Canvas) top() *canvasState {
	return &c.stack[len(c.stack)-1]
}

func (c *Canvas) Save() int {
	n := len(c.stack)
	s := *c.top()
	s.layer = nil
	c.stack = append(c.stack, s)
	return n
}

func (c *Canvas) RestoreToCount(count int) {
	if count < 1 {
		count = 1
	}
	for len(c.stack) > count {
		s := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if s.layer != nil {
			c.flush(s.layer)
		}
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	var local ebiten.GeoM
	local.Translate(dx, dy)
	local.Concat(c.top().geo)
	c.top().geo = local
}

func (c *Canvas) Scale(sx, sy, px, py float64) {
	var local ebiten.GeoM
	local.Translate(-px, -py)
	local.Scale(sx, sy)
	local.Translate(px, py)
	local.Concat(c.top().geo)
	c.top().geo = local
}

func (c *Canvas) ClipRect(r fx.Rect) {
	s := c.top()
	if s.empty {
		return
	}
	pts := [][]fx.Point{{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}}
	region := deviceBounds(c.transform(pts)).Intersect(s.target.Bounds())
	if region.Empty() {
		s.empty = true
		return
	}
	s.target = s.target.SubImage(region).(*ebiten.Image)
}

func (c *Canvas) ClipPath(p *fx.Path) {
	s := c.top()
	if s.empty {
		return
	}
	if p.IsEmpty() || p.Bounds().Empty() {
		s.empty = true
		return
	}
	contours := c.transform(p.Contours(curveSegments))
	region := deviceBounds(contours).Intersect(s.target.Bounds())
	if region.Empty() {
		s.empty = true
		return
	}

	l := &clipLayer{
		img:    c.acquire(),
		mask:   c.acquire(),
		parent: s.target,
		region: region,
	}
	c.fill(l.mask, contours, color.White)
	s.layer = l
	s.target = l.img.SubImage(region).(*ebiten.Image)
}

// flush keeps the layer only where the mask is opaque and draws it onto the
// target that was current when the clip was applied.
func (c *Canvas) flush(l *clipLayer) {
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	op.GeoM.Translate(float64(l.region.Min.X), float64(l.region.Min.Y))
	l.img.DrawImage(l.mask.SubImage(l.region).(*ebiten.Image), op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(l.region.Min.X), float64(l.region.Min.Y))
	l.parent.DrawImage(l.img.SubImage(l.region).(*ebiten.Image), op)

	c.release(l.img)
	c.release(l.mask)
}

func (c *Canvas) DrawColor(clr color.Color) {
	s := c.top()
	if s.empty || clr == nil {
		return
	}
	b := s.target.Bounds()
	vector.DrawFilledRect(s.target, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), clr, false)
}

func (c *Canvas) DrawPath(p *fx.Path, clr color.Color) {
	s := c.top()
	if s.empty || p.IsEmpty() || clr == nil {
		return
	}
	c.fill(s.target, c.transform(p.Contours(curveSegments)), clr)
}

func (c *Canvas) DrawContent(content fx.Content, dst fx.Rect, tint color.Color) {
	s := c.top()
	if s.empty || content == nil || dst.Empty() {
		return
	}
	img, temp := c.image(content)
	if img == nil {
		return
	}
	if temp {
		defer img.Deallocate()
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	var geo ebiten.GeoM
	geo.Scale(dst.W/float64(size.X), dst.H/float64(size.Y))
	geo.Translate(dst.X, dst.Y)
	geo.Concat(s.geo)

	if tint == nil {
		op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
		s.target.DrawImage(img, op)
		return
	}

	t := fx.NRGBA(tint)
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, float64(t.A)/0xFF)
	cm.Translate(float64(t.R)/0xFF, float64(t.G)/0xFF, float64(t.B)/0xFF, 0)
	colorm.DrawImage(s.target, img, cm, &colorm.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear})
}

// image resolves content to an ebiten image. Pointer images are uploaded
// once and cached; any other image is uploaded for this draw only and temp
// is true.
func (c *Canvas) image(content fx.Content) (img *ebiten.Image, temp bool) {
	switch v := content.(type) {
	case *ebiten.Image:
		return v, false
	case image.Image:
		if !fx.StableContent(v) {
			return ebiten.NewImageFromImage(v), true
		}
		if img, ok := c.converted[v]; ok {
			return img, false
		}
		img := ebiten.NewImageFromImage(v)
		c.converted[v] = img
		return img, false
	}
	return nil, false
}

func (c *Canvas) fill(dst *ebiten.Image, contours [][]fx.Point, clr color.Color) {
	n := fx.NRGBA(clr)
	r, g, b, a := float32(n.R)/0xFF, float32(n.G)/0xFF, float32(n.B)/0xFF, float32(n.A)/0xFF

	var path vector.Path
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, pt := range pts[1:] {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
		path.Close()
	}

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	if len(c.is) == 0 {
		return
	}
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	dst.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// transform maps contours to device space in place.
func (c *Canvas) transform(contours [][]fx.Point) [][]fx.Point {
	geo := c.top().geo
	for _, pts := range contours {
		for i, pt := range pts {
			x, y := geo.Apply(pt.X, pt.Y)
			pts[i] = fx.Point{X: x, Y: y}
		}
	}
	return contours
}

func deviceBounds(contours [][]fx.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pts := range contours {
		for _, pt := range pts {
			minX, minY = math.Min(minX, pt.X), math.Min(minY, pt.Y)
			maxX, maxY = math.Max(maxX, pt.X), math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

func (c *Canvas) acquire() *ebiten.Image {
	if n := len(c.pool); n > 0 {
		img := c.pool[n-1]
		c.pool = c.pool[:n-1]
		img.Clear()
		return img
	}
	return ebiten.NewImage(c.size.X, c.size.Y)
}

func (c *Canvas) release(img *ebiten.Image) {
	c.pool = append(c.pool, img)
}

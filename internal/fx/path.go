package fx

import "math"

// Point is a position in view coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Corner radius slots, x/y pairs going clockwise from the top-left corner.
const (
	TopLeftX = iota
	TopLeftY
	TopRightX
	TopRightY
	BottomRightX
	BottomRightY
	BottomLeftX
	BottomLeftY
)

type shapeKind int

const (
	shapeCircle shapeKind = iota
	shapeRect
	shapeRoundRect
	shapePolygon
)

type shape struct {
	kind  shapeKind
	rect  Rect
	radii [8]float64
	cx    float64
	cy    float64
	r     float64
	pts   []Point
}

// Path is a set of closed contours. A point is inside the path when it is
// inside any of them.
type Path struct {
	shapes []shape
}

func (p *Path) Reset() {
	p.shapes = p.shapes[:0]
}

func (p *Path) IsEmpty() bool {
	return len(p.shapes) == 0
}

func (p *Path) AddCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	p.shapes = append(p.shapes, shape{kind: shapeCircle, cx: cx, cy: cy, r: r})
}

func (p *Path) AddRect(r Rect) {
	if r.Empty() {
		return
	}
	p.shapes = append(p.shapes, shape{kind: shapeRect, rect: r})
}

// AddRoundRect adds r with per-corner elliptical radii. Radii that do not fit
// are scaled down together so opposite corners never overlap.
func (p *Path) AddRoundRect(r Rect, radii [8]float64) {
	if r.Empty() {
		return
	}
	radii = fitRadii(r, radii)
	if radii == ([8]float64{}) {
		p.AddRect(r)
		return
	}
	p.shapes = append(p.shapes, shape{kind: shapeRoundRect, rect: r, radii: radii})
}

// AddPolygon adds a closed contour through pts.
func (p *Path) AddPolygon(pts ...Point) {
	if len(pts) < 3 {
		return
	}
	p.shapes = append(p.shapes, shape{kind: shapePolygon, pts: append([]Point(nil), pts...)})
}

// Bounds returns the smallest rectangle containing every contour.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x0, y0, x1, y1 float64) {
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}
	for _, s := range p.shapes {
		switch s.kind {
		case shapeCircle:
			grow(s.cx-s.r, s.cy-s.r, s.cx+s.r, s.cy+s.r)
		case shapeRect, shapeRoundRect:
			grow(s.rect.X, s.rect.Y, s.rect.X+s.rect.W, s.rect.Y+s.rect.H)
		case shapePolygon:
			for _, pt := range s.pts {
				grow(pt.X, pt.Y, pt.X, pt.Y)
			}
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether (x, y) lies inside the path.
func (p *Path) Contains(x, y float64) bool {
	for _, s := range p.shapes {
		switch s.kind {
		case shapeCircle:
			dx, dy := x-s.cx, y-s.cy
			if dx*dx+dy*dy <= s.r*s.r {
				return true
			}
		case shapeRect:
			if s.rect.Contains(x, y) {
				return true
			}
		case shapeRoundRect:
			if roundRectContains(s.rect, s.radii, x, y) {
				return true
			}
		case shapePolygon:
			if polygonContains(s.pts, x, y) {
				return true
			}
		}
	}
	return false
}

// Contours flattens every shape into a closed polygon. Curves use segs line
// segments per quarter turn.
func (p *Path) Contours(segs int) [][]Point {
	if segs < 1 {
		segs = 1
	}
	out := make([][]Point, 0, len(p.shapes))
	for _, s := range p.shapes {
		switch s.kind {
		case shapeCircle:
			pts := make([]Point, 0, segs*4)
			for i := 0; i < segs*4; i++ {
				a := float64(i) * (math.Pi / 2) / float64(segs)
				pts = append(pts, Point{s.cx + s.r*math.Cos(a), s.cy + s.r*math.Sin(a)})
			}
			out = append(out, pts)
		case shapeRect:
			r := s.rect
			out = append(out, []Point{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}})
		case shapeRoundRect:
			out = append(out, roundRectContour(s.rect, s.radii, segs))
		case shapePolygon:
			out = append(out, append([]Point(nil), s.pts...))
		}
	}
	return out
}

func fitRadii(r Rect, radii [8]float64) [8]float64 {
	for i, v := range radii {
		if v < 0 || math.IsNaN(v) {
			radii[i] = 0
		}
	}
	scale := 1.0
	fit := func(sum, side float64) {
		if sum > side && sum > 0 {
			scale = math.Min(scale, side/sum)
		}
	}
	fit(radii[TopLeftX]+radii[TopRightX], r.W)
	fit(radii[BottomLeftX]+radii[BottomRightX], r.W)
	fit(radii[TopLeftY]+radii[BottomLeftY], r.H)
	fit(radii[TopRightY]+radii[BottomRightY], r.H)
	if scale < 1 {
		for i := range radii {
			radii[i] *= scale
		}
	}
	return radii
}

// arcCorner is one quarter ellipse of a rounded rectangle. start is the
// angle the clockwise sweep begins at.
type arcCorner struct {
	cx, cy, rx, ry, start float64
}

// corners clockwise from top-left
func roundRectCorners(r Rect, radii [8]float64) [4]arcCorner {
	right, bottom := r.X+r.W, r.Y+r.H
	return [4]arcCorner{
		{r.X + radii[TopLeftX], r.Y + radii[TopLeftY], radii[TopLeftX], radii[TopLeftY], math.Pi},
		{right - radii[TopRightX], r.Y + radii[TopRightY], radii[TopRightX], radii[TopRightY], -math.Pi / 2},
		{right - radii[BottomRightX], bottom - radii[BottomRightY], radii[BottomRightX], radii[BottomRightY], 0},
		{r.X + radii[BottomLeftX], bottom - radii[BottomLeftY], radii[BottomLeftX], radii[BottomLeftY], math.Pi / 2},
	}
}

func roundRectContour(r Rect, radii [8]float64, segs int) []Point {
	pts := make([]Point, 0, 4*(segs+1))
	for _, c := range roundRectCorners(r, radii) {
		if c.rx == 0 || c.ry == 0 {
			pts = append(pts, Point{c.cx + math.Copysign(c.rx, math.Cos(c.start+math.Pi/4)), c.cy + math.Copysign(c.ry, math.Sin(c.start+math.Pi/4))})
			continue
		}
		for i := 0; i <= segs; i++ {
			a := c.start + float64(i)*(math.Pi/2)/float64(segs)
			pts = append(pts, Point{c.cx + c.rx*math.Cos(a), c.cy + c.ry*math.Sin(a)})
		}
	}
	return pts
}

func roundRectContains(r Rect, radii [8]float64, x, y float64) bool {
	if !r.Contains(x, y) {
		return false
	}
	for _, c := range roundRectCorners(r, radii) {
		if c.rx == 0 || c.ry == 0 {
			continue
		}
		// only the quadrant of the corner outside the ellipse centre matters
		dx, dy := x-c.cx, y-c.cy
		mid := c.start + math.Pi/4
		if dx*math.Cos(mid) <= 0 || dy*math.Sin(mid) <= 0 {
			continue
		}
		if (dx*dx)/(c.rx*c.rx)+(dy*dy)/(c.ry*c.ry) > 1 {
			return false
		}
	}
	return true
}

func polygonContains(pts []Point, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

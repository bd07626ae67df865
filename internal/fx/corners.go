package fx

// Corners holds the rounded-rectangle clip of a view. The path is rebuilt on
// every bounds or radius change so Draw only has to apply it.
type Corners struct {
	radii  [8]float64
	bounds Rect
	path   Path
}

// SetRadius uses r for both axes of all four corners.
func (c *Corners) SetRadius(r float64) {
	var radii [8]float64
	for i := range radii {
		radii[i] = r
	}
	c.SetRadii(radii)
}

func (c *Corners) SetRadii(radii [8]float64) {
	c.radii = radii
	c.rebuild()
}

func (c *Corners) Radii() [8]float64 {
	return c.radii
}

// Layout records new view bounds.
func (c *Corners) Layout(bounds Rect) {
	c.bounds = bounds
	c.rebuild()
}

// IsZero reports whether every radius is 0, in which case there is nothing to clip.
func (c *Corners) IsZero() bool {
	for _, r := range c.radii {
		if r != 0 {
			return false
		}
	}
	return true
}

func (c *Corners) Path() *Path {
	return &c.path
}

// Clip applies the rounded clip to cv and reports whether it did.
func (c *Corners) Clip(cv Canvas) bool {
	if c.IsZero() || c.path.IsEmpty() {
		return false
	}
	cv.ClipPath(&c.path)
	return true
}

func (c *Corners) rebuild() {
	c.path.Reset()
	if c.IsZero() || c.bounds.Empty() {
		return
	}
	c.path.AddRoundRect(c.bounds, c.radii)
}

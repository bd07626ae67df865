package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/posterfx/internal/fx"
)

// GridCell is one slot of a ViewGrid. It is the host of its view.
type GridCell struct {
	View  *fx.PosterView
	Title string

	// Set by the grid during layout, in content coordinates
	X, Y float64

	grid        *ViewGrid
	needsLayout bool
}

func (c *GridCell) Invalidate() {
	c.grid.dirty = true
}

func (c *GridCell) RequestLayout() {
	c.needsLayout = true
	c.grid.dirty = true
}

// ViewGrid lays poster views out in rows, scrolls vertically, tracks keyboard
// focus and routes pointer events to the cell that received the press.
type ViewGrid struct {
	Cells  []*GridCell
	Focus  *FocusGrid
	Scroll ScrollState

	cols         int
	cellW, cellH float64
	gap          float64
	viewport     fx.Rect

	captured int
	dirty    bool
}

func NewViewGrid(cols int, cellW, cellH, gap float64) *ViewGrid {
	return &ViewGrid{
		Focus:    NewFocusGrid(cols, 0),
		cols:     cols,
		cellW:    cellW,
		cellH:    cellH,
		gap:      gap,
		captured: -1,
		dirty:    true,
	}
}

// AddCell appends a cell whose view is built by newView with the cell as host.
func (g *ViewGrid) AddCell(title string, newView func(host fx.Host) *fx.PosterView) *GridCell {
	c := &GridCell{Title: title, grid: g, needsLayout: true}
	c.View = newView(c)
	g.Cells = append(g.Cells, c)
	g.Focus.SetTotal(len(g.Cells))
	g.dirty = true
	return c
}

// Clear removes every cell, disposing of their views first.
func (g *ViewGrid) Clear() {
	for _, c := range g.Cells {
		c.View.Dispose()
	}
	g.Cells = g.Cells[:0]
	g.Focus.Focused = 0
	g.Focus.SetTotal(0)
	g.Scroll.Reset()
	g.captured = -1
	g.dirty = true
}

// SetViewport places the grid on screen.
func (g *ViewGrid) SetViewport(r fx.Rect) {
	if r == g.viewport {
		return
	}
	g.viewport = r
	g.dirty = true
}

func (g *ViewGrid) rowHeight() float64 {
	return g.cellH + CellLabelH + g.gap
}

// Layout positions the cells and lays out any view that asked for it.
func (g *ViewGrid) Layout() {
	for i, c := range g.Cells {
		c.X = float64(i%g.cols) * (g.cellW + g.gap)
		c.Y = float64(i/g.cols) * g.rowHeight()
		b := c.View.Bounds()
		if c.needsLayout || b.W != g.cellW || b.H != g.cellH {
			c.needsLayout = false
			c.View.Layout(g.cellW, g.cellH)
		}
	}
	rows := (len(g.Cells) + g.cols - 1) / g.cols
	content := float64(rows)*g.rowHeight() - g.gap
	g.Scroll.MaxScrollY = max(0, content-g.viewport.H)
}

// Update moves focus and scrolls. It reports whether anything changed.
func (g *ViewGrid) Update(dir Direction) bool {
	changed := false
	if dir != DirNone && g.Focus.Update(dir) {
		row := g.Focus.FocusedRow()
		g.Scroll.EnsureVisible(float64(row)*g.rowHeight(), g.cellH+CellLabelH, g.viewport.H)
		changed = true
	}
	if g.Scroll.HandleMouseWheel() {
		changed = true
	}
	if g.Scroll.Animate() {
		changed = true
	}
	if changed {
		g.dirty = true
	}
	return changed
}

// Focused returns the focused cell, or nil when the grid is empty.
func (g *ViewGrid) Focused() *GridCell {
	if len(g.Cells) == 0 || g.Focus.Focused >= len(g.Cells) {
		return nil
	}
	return g.Cells[g.Focus.Focused]
}

// cellOrigin is where the cell's view starts on screen.
func (g *ViewGrid) cellOrigin(c *GridCell) (float64, float64) {
	return g.viewport.X + c.X, g.viewport.Y + c.Y - g.Scroll.ScrollY
}

func (g *ViewGrid) cellAt(x, y float64) int {
	if !g.viewport.Contains(x, y) {
		return -1
	}
	for i, c := range g.Cells {
		cx, cy := g.cellOrigin(c)
		if PointInRect(x, y, cx, cy, g.cellW, g.cellH) && c.View.Contains(x-cx, y-cy) {
			return i
		}
	}
	return -1
}

// HandlePointer routes a screen-space event. A press goes to the cell under
// it, and that cell receives the rest of the gesture until release, even when
// the pointer leaves it. It reports whether a view consumed the event.
func (g *ViewGrid) HandlePointer(ev fx.PointerEvent) bool {
	if ev.Kind == fx.PointerDown {
		g.captured = g.cellAt(ev.X, ev.Y)
		if g.captured >= 0 {
			g.Focus.Focused = g.captured
			g.dirty = true
		}
	}
	if g.captured < 0 || g.captured >= len(g.Cells) {
		return false
	}
	c := g.Cells[g.captured]
	ox, oy := g.cellOrigin(c)
	local := ev
	local.X -= ox
	local.Y -= oy
	consumed := c.View.OnPointer(local)

	switch {
	case ev.Kind == fx.PointerUp, ev.Kind == fx.PointerCancel:
		g.captured = -1
	case ev.Kind == fx.PointerDown && !consumed:
		g.captured = -1
	}
	return consumed
}

// TakeDirty reports whether anything needs repainting and clears the flag.
func (g *ViewGrid) TakeDirty() bool {
	d := g.dirty
	g.dirty = false
	return d
}

// Invalidate forces a repaint on the next frame.
func (g *ViewGrid) Invalidate() {
	g.dirty = true
}

func (g *ViewGrid) Draw(dst *ebiten.Image, cv *Canvas) {
	vp := image.Rect(int(g.viewport.X), int(g.viewport.Y),
		int(g.viewport.X+g.viewport.W), int(g.viewport.Y+g.viewport.H))
	area := dst.SubImage(vp).(*ebiten.Image)

	cv.Begin(dst)
	defer cv.End()
	cv.ClipRect(g.viewport)

	for i, c := range g.Cells {
		x, y := g.cellOrigin(c)
		if y+g.cellH+CellLabelH < g.viewport.Y || y > g.viewport.Y+g.viewport.H {
			continue
		}

		focused := i == g.Focus.Focused
		if focused {
			vector.DrawFilledRect(area,
				float32(x-CellFocusPad), float32(y-CellFocusPad),
				float32(g.cellW+CellFocusPad*2), float32(g.cellH+CellFocusPad*2),
				ColorFocusBorder, false)
		}

		n := cv.Save()
		cv.Translate(x, y)
		cv.ClipRect(fx.Rect{W: g.cellW, H: g.cellH})
		c.View.Draw(cv)
		cv.RestoreToCount(n)

		titleColor := ColorTextSecondary
		if focused {
			titleColor = ColorText
		}
		title := truncateText(c.Title, g.cellW, FontSizeCaption)
		DrawText(area, title, x, y+g.cellH+CellLabelGap, FontSizeCaption, titleColor)
	}
}

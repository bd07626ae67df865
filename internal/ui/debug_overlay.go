package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugOverlay lists the effect state of every cell.
type DebugOverlay struct {
	Visible bool
}

func (d *DebugOverlay) Toggle() {
	d.Visible = !d.Visible
}

func (d *DebugOverlay) Draw(screen *ebiten.Image, g *ViewGrid, activeAnims int) {
	if !d.Visible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	lines := 3 + max(len(g.Cells), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 520.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: view state", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	DrawText(screen, fmt.Sprintf("running animations: %d   fps: %.0f", activeAnims, ebiten.ActualFPS()), x, y, FontSizeSmall, ColorTextSecondary)
	y += lineH
	DrawText(screen, "#   loading  shimmer  tint   ripple  interactive", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(g.Cells) == 0 {
		DrawText(screen, "(no views)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	for i, c := range g.Cells {
		v := c.View
		clr := ColorText
		if i == g.Focus.Focused {
			clr = ColorPrimary
		}
		line := fmt.Sprintf("%-3d %-8s %-8s %-6s %-7s %s", i,
			flag(v.Loading()), flag(v.Shimmering()), flag(v.OverlayTinting()),
			flag(v.RippleActive()), flag(v.IsInteractive()))
		DrawText(screen, line, x, y, FontSizeSmall, clr)
		y += lineH
	}
}

func flag(on bool) string {
	if on {
		return "on"
	}
	return "-"
}

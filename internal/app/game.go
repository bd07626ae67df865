package app

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/posterfx/assets/icon"
	"github.com/depeter/posterfx/internal/anim"
	"github.com/depeter/posterfx/internal/config"
	"github.com/depeter/posterfx/internal/fx"
	"github.com/depeter/posterfx/internal/ui"
)

const overlaySize = 48

// Game implements ebiten.Game. It owns the animation clock and repaints only
// when a view, the grid or the chrome around it changed.
type Game struct {
	Config *config.Config
	Clock  *anim.Ticker
	Grid   *ui.ViewGrid

	Width, Height int

	opts    fx.Options
	overlay *ebiten.Image
	posters []*ebiten.Image

	canvas  *ui.Canvas
	pointer ui.PointerTracker
	events  []fx.PointerEvent
	toast   ui.Toast
	debug   ui.DebugOverlay

	start     time.Time
	loadTimer *anim.Animator
	dirty     bool
}

// NewGame validates the view and key configuration and builds the demo grid.
func NewGame(cfg *config.Config) (*Game, error) {
	opts, err := cfg.View.Options()
	if err != nil {
		return nil, err
	}
	kb := cfg.Keybinds
	if err := checkKeybinds(kb.ToggleShimmer, kb.ToggleTint, kb.Reload, kb.Debug); err != nil {
		return nil, fmt.Errorf("keybinds: %w", err)
	}

	d := cfg.Demo
	g := &Game{
		Config: cfg,
		Clock:  anim.NewTicker(),
		Grid:   ui.NewViewGrid(d.Columns, float64(d.CellWidth), float64(d.CellHeight), float64(d.Gap)),
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
		opts:   opts,
		canvas: ui.NewCanvas(),
		start:  time.Now(),
		dirty:  true,
	}
	g.overlay = ebiten.NewImageFromImage(icon.Overlay(overlaySize))
	for _, p := range icon.Posters(d.Columns*d.Rows, d.CellWidth*2, d.CellHeight*2) {
		g.posters = append(g.posters, ebiten.NewImageFromImage(p))
	}
	g.opts.Overlay = g.overlay
	g.LoadDemo()
	return g, nil
}

// LoadDemo fills the grid with placeholders and schedules the fake image
// load: the first half reveal their poster, the rest swap it in directly.
func (g *Game) LoadDemo() {
	if g.loadTimer != nil {
		g.loadTimer.Cancel()
	}
	g.Grid.Clear()

	for i := range g.posters {
		g.Grid.AddCell(fmt.Sprintf("Poster %d", i+1), func(host fx.Host) *fx.PosterView {
			return fx.NewPosterView(g.Clock, host, g.opts)
		})
	}

	delay := time.Duration(g.Config.Demo.LoadDelayMs) * time.Millisecond
	g.loadTimer = anim.After(g.Clock, delay, g.deliverPosters)
}

func (g *Game) deliverPosters() {
	g.loadTimer = nil
	half := (len(g.Grid.Cells) + 1) / 2
	for i, cell := range g.Grid.Cells {
		poster := g.posters[i]
		v := cell.View
		v.SetOnLongClick(func() { g.notify("Long-clicked " + cell.Title) })

		if i < half {
			v.SetImage(poster, true, func() {
				log.Printf("%s revealed", cell.Title)
				v.SetOnClick(func() { g.notify("Clicked " + cell.Title) })
			})
			continue
		}
		v.SetImage(poster, false, nil)
		v.StopAllSideEffects()
		v.SetOnClick(func() { g.notify("Clicked " + cell.Title) })
	}
}

func (g *Game) notify(msg string) {
	log.Print(msg)
	g.toast.Show(msg)
	g.dirty = true
}

func (g *Game) Update() error {
	now := time.Since(g.start)
	g.Clock.Tick(now)

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.handleKeybinds()

	dir, enter, longEnter := ui.InputState()
	g.Grid.Update(dir)
	if cell := g.Grid.Focused(); cell != nil && (enter || longEnter) {
		var ok bool
		if enter {
			ok = cell.View.PerformClick()
		} else {
			ok = cell.View.PerformLongClick()
		}
		if !ok {
			g.notify(cell.Title + " is busy")
		}
	}

	g.events = g.pointer.Poll(now, g.events[:0])
	for _, ev := range g.events {
		g.Grid.HandlePointer(ev)
	}

	top := float64(ui.GridPadding + ui.GridTitleH)
	g.Grid.SetViewport(fx.Rect{
		X: ui.GridPadding,
		Y: top,
		W: float64(g.Width - ui.GridPadding*2),
		H: float64(g.Height) - top - ui.GridPadding,
	})
	g.Grid.Layout()

	if g.toast.Update() {
		g.dirty = true
	}
	if g.debug.Visible {
		g.dirty = true
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) handleKeybinds() {
	kb := &g.Config.Keybinds
	if keyJustPressed(kb.Debug) {
		g.debug.Toggle()
		g.dirty = true
	}
	if keyJustPressed(kb.Reload) {
		g.LoadDemo()
		g.notify("Reloaded")
	}

	cell := g.Grid.Focused()
	if cell == nil {
		return
	}
	if keyJustPressed(kb.ToggleShimmer) {
		cell.View.SetShimmering(!cell.View.Shimmering())
	}
	if keyJustPressed(kb.ToggleTint) {
		cell.View.SetOverlayTinting(!cell.View.OverlayTinting())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	gridDirty := g.Grid.TakeDirty()
	if !g.dirty && !gridDirty {
		return
	}
	g.dirty = false

	screen.Fill(ui.ColorBackground)
	ui.DrawText(screen, "posterfx", ui.GridPadding, ui.GridPadding, ui.FontSizeTitle, ui.ColorText)
	kb := g.Config.Keybinds
	hint := fmt.Sprintf("%s shimmer   %s tint   %s reload   %s debug   Enter click   Shift+Enter long click",
		kb.ToggleShimmer, kb.ToggleTint, kb.Reload, kb.Debug)
	tw, _ := ui.MeasureText("posterfx", ui.FontSizeTitle)
	ui.DrawText(screen, hint, ui.GridPadding+tw+24, ui.GridPadding+10, ui.FontSizeSmall, ui.ColorTextMuted)

	g.Grid.Draw(screen, g.canvas)
	g.toast.Draw(screen)
	g.debug.Draw(screen, g.Grid, g.Clock.Active())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return g.Width, g.Height
}

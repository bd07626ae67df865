package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/posterfx/internal/fx"
)

// PointerTracker folds the left mouse button and the first touch into a
// single pointer stream. Only one pointer is tracked at a time.
type PointerTracker struct {
	down     bool
	touching bool
	touchID  ebiten.TouchID
	x, y     float64
	touches  []ebiten.TouchID
}

// Poll appends the pointer events of this frame to events, in screen
// coordinates, stamped with now.
func (p *PointerTracker) Poll(now time.Duration, events []fx.PointerEvent) []fx.PointerEvent {
	emit := func(kind fx.PointerKind) {
		events = append(events, fx.PointerEvent{Kind: kind, X: p.x, Y: p.y, Time: now})
	}

	if p.down && !ebiten.IsFocused() {
		p.down, p.touching = false, false
		emit(fx.PointerCancel)
		return events
	}

	if !p.down {
		p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
		if len(p.touches) > 0 {
			p.touchID = p.touches[0]
			p.touching = true
			p.down = true
			p.moveTo(ebiten.TouchPosition(p.touchID))
			emit(fx.PointerDown)
			return events
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.down = true
			p.moveTo(ebiten.CursorPosition())
			emit(fx.PointerDown)
		}
		return events
	}

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.down, p.touching = false, false
			emit(fx.PointerUp)
			return events
		}
		if p.moveTo(ebiten.TouchPosition(p.touchID)) {
			emit(fx.PointerMove)
		}
		return events
	}

	moved := p.moveTo(ebiten.CursorPosition())
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.down = false
		emit(fx.PointerUp)
		return events
	}
	if moved {
		emit(fx.PointerMove)
	}
	return events
}

func (p *PointerTracker) moveTo(x, y int) bool {
	nx, ny := float64(x), float64(y)
	if nx == p.x && ny == p.y {
		return false
	}
	p.x, p.y = nx, ny
	return true
}

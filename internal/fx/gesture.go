package fx

import (
	"time"

	"github.com/depeter/posterfx/internal/anim"
)

const (
	DefaultTouchSlop        = 8.0
	DefaultLongPressTimeout = 500 * time.Millisecond
)

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is a single pointer sample in view coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	Time time.Duration
}

// GestureDetector turns pointer events into taps and long presses.
//
// A session starts at PointerDown. Moving further than Slop from the down
// position leaves the tap region for the rest of the session: the pending
// long press is dropped, OnSlop fires once, and the release is not a tap even
// if it lands back near the origin. A long press fires after LongPressTimeout
// without leaving the tap region and suppresses the tap on release.
type GestureDetector struct {
	Slop             float64
	LongPressTimeout time.Duration

	OnTap       func(ev PointerEvent)
	OnLongPress func(ev PointerEvent)
	OnSlop      func(ev PointerEvent)

	timer       *anim.Animator
	down        PointerEvent
	inSession   bool
	inTapRegion bool
	longPressed bool
}

func NewGestureDetector(s anim.Scheduler) *GestureDetector {
	return &GestureDetector{
		Slop:             DefaultTouchSlop,
		LongPressTimeout: DefaultLongPressTimeout,
		timer:            anim.NewAnimator(s),
	}
}

// OnEvent feeds one event and reports whether it belonged to a session.
func (g *GestureDetector) OnEvent(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		g.Reset()
		g.down = ev
		g.inSession = true
		g.inTapRegion = true
		g.timer.Start(g.LongPressTimeout, nil, g.longPress)
		return true

	case PointerMove:
		if !g.inSession {
			return false
		}
		if g.inTapRegion && g.beyondSlop(ev) {
			g.inTapRegion = false
			g.timer.Cancel()
			if g.OnSlop != nil {
				g.OnSlop(ev)
			}
		}
		return true

	case PointerUp:
		if !g.inSession {
			return false
		}
		tap := g.inTapRegion && !g.longPressed
		g.Reset()
		if tap && g.OnTap != nil {
			g.OnTap(ev)
		}
		return true

	case PointerCancel:
		inSession := g.inSession
		g.Reset()
		return inSession
	}
	return false
}

// Reset abandons the current session without firing anything.
func (g *GestureDetector) Reset() {
	g.timer.Cancel()
	g.inSession = false
	g.inTapRegion = false
	g.longPressed = false
}

// InSession reports whether a pointer is currently down.
func (g *GestureDetector) InSession() bool {
	return g.inSession
}

// Origin returns where the current session started.
func (g *GestureDetector) Origin() (float64, float64) {
	return g.down.X, g.down.Y
}

func (g *GestureDetector) beyondSlop(ev PointerEvent) bool {
	dx, dy := ev.X-g.down.X, ev.Y-g.down.Y
	return dx*dx+dy*dy > g.Slop*g.Slop
}

func (g *GestureDetector) longPress() {
	if !g.inSession || !g.inTapRegion {
		return
	}
	g.longPressed = true
	if g.OnLongPress != nil {
		g.OnLongPress(g.down)
	}
}

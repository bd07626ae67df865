package fx

import (
	"testing"

	"github.com/depeter/posterfx/internal/anim"
)

type gestureLog struct {
	taps, longPresses, slops int
}

func newDetector() (*GestureDetector, *anim.Ticker, *gestureLog) {
	clock := anim.NewTicker()
	g := NewGestureDetector(clock)
	log := &gestureLog{}
	g.OnTap = func(PointerEvent) { log.taps++ }
	g.OnLongPress = func(PointerEvent) { log.longPresses++ }
	g.OnSlop = func(PointerEvent) { log.slops++ }
	return g, clock, log
}

func TestGestureTap(t *testing.T) {
	g, clock, log := newDetector()

	g.OnEvent(PointerEvent{Kind: PointerDown, X: 10, Y: 10})
	clock.Tick(ms(50))
	g.OnEvent(PointerEvent{Kind: PointerMove, X: 13, Y: 14})
	g.OnEvent(PointerEvent{Kind: PointerUp, X: 13, Y: 14})

	if log.taps != 1 || log.longPresses != 0 || log.slops != 0 {
		t.Fatalf("unexpected gestures %+v", *log)
	}
	if g.InSession() {
		t.Fatal("session still open after up")
	}
}

func TestGestureLongPressSuppressesTap(t *testing.T) {
	g, clock, log := newDetector()

	g.OnEvent(PointerEvent{Kind: PointerDown, X: 10, Y: 10})
	clock.Tick(ms(400))
	if log.longPresses != 0 {
		t.Fatal("long press fired early")
	}
	clock.Tick(ms(500))
	if log.longPresses != 1 {
		t.Fatal("long press did not fire")
	}
	g.OnEvent(PointerEvent{Kind: PointerUp, X: 10, Y: 10})
	if log.taps != 0 {
		t.Fatal("release after long press must not tap")
	}
}

func TestGestureDragLeavesTapRegion(t *testing.T) {
	g, clock, log := newDetector()

	g.OnEvent(PointerEvent{Kind: PointerDown, X: 10, Y: 10})
	g.OnEvent(PointerEvent{Kind: PointerMove, X: 30, Y: 10})
	g.OnEvent(PointerEvent{Kind: PointerMove, X: 40, Y: 10})
	g.OnEvent(PointerEvent{Kind: PointerMove, X: 10, Y: 11})
	clock.Tick(ms(1000))
	g.OnEvent(PointerEvent{Kind: PointerUp, X: 10, Y: 11})

	if log.slops != 1 {
		t.Fatalf("slop fired %d times, want once", log.slops)
	}
	if log.taps != 0 || log.longPresses != 0 {
		t.Fatalf("drag produced gestures %+v", *log)
	}
}

func TestGestureCancelAndStrayEvents(t *testing.T) {
	g, clock, log := newDetector()

	if g.OnEvent(PointerEvent{Kind: PointerUp}) {
		t.Fatal("up without down should not be consumed")
	}
	if g.OnEvent(PointerEvent{Kind: PointerMove}) {
		t.Fatal("move without down should not be consumed")
	}

	g.OnEvent(PointerEvent{Kind: PointerDown})
	if !g.OnEvent(PointerEvent{Kind: PointerCancel}) {
		t.Fatal("cancel of an open session should be consumed")
	}
	clock.Tick(ms(1000))
	g.OnEvent(PointerEvent{Kind: PointerUp})
	if log.taps != 0 || log.longPresses != 0 {
		t.Fatalf("cancelled session produced gestures %+v", *log)
	}
}

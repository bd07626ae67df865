package fx

import (
	"image/color"
	"math"
	"testing"

	"github.com/depeter/posterfx/internal/anim"
)

func newLaidOutRipple() (*Ripple, *anim.Ticker, *drawableCounter) {
	clock := anim.NewTicker()
	r := NewRipple(clock)
	cb := &drawableCounter{}
	r.SetCallback(cb)
	r.OnLayout(300, 600)
	return r, clock, cb
}

func TestRippleIgnoredWithoutPrerequisites(t *testing.T) {
	clock := anim.NewTicker()

	r := NewRipple(clock)
	r.OnLayout(100, 100)
	r.Start(10, 10)
	if r.Active() {
		t.Fatal("ripple without callback must not start")
	}

	r = NewRipple(clock)
	r.SetCallback(&drawableCounter{})
	r.Start(10, 10)
	if r.Active() {
		t.Fatal("ripple before layout must not start")
	}
	if clock.Active() != 0 {
		t.Fatal("ignored start registered an animation")
	}
}

func TestRippleGrowsOverItsDuration(t *testing.T) {
	r, clock, _ := newLaidOutRipple()

	r.Start(40, 50)
	if !r.Active() {
		t.Fatal("ripple not active after start")
	}
	if x, y := r.Origin(); x != 40 || y != 50 {
		t.Fatalf("origin = %v,%v", x, y)
	}
	if got := r.Radius(); math.Abs(got-200) > 1e-9 {
		t.Fatalf("initial radius = %v, want maxDim/3 = 200", got)
	}

	prev := r.Radius()
	for now := 20; now < 240; now += 20 {
		clock.Tick(ms(now))
		if r.Radius() <= prev {
			t.Fatalf("radius did not grow at %dms: %v <= %v", now, r.Radius(), prev)
		}
		prev = r.Radius()
	}
	if prev > 900 {
		t.Fatalf("radius %v exceeds maxDim*1.5", prev)
	}

	clock.Tick(ms(240))
	if r.Active() {
		t.Fatal("ripple still active after its duration")
	}
	cv := newRecordCanvas()
	r.Draw(cv)
	if len(cv.calls) != 0 {
		t.Fatalf("finished ripple drew %d calls", len(cv.calls))
	}
}

func TestRippleStartThenCancelLeavesNothing(t *testing.T) {
	r, clock, cb := newLaidOutRipple()

	r.Start(10, 10)
	before := cb.n
	r.Cancel()

	if r.Active() {
		t.Fatal("ripple active after cancel")
	}
	if r.Radius() != 0 {
		t.Fatalf("radius = %v after cancel", r.Radius())
	}
	if cb.n <= before {
		t.Fatal("cancel did not request a redraw")
	}
	cv := newRecordCanvas()
	r.Draw(cv)
	if len(cv.calls) != 0 {
		t.Fatal("cancelled ripple still draws")
	}

	clock.Tick(ms(100))
	if r.Active() || r.Radius() != 0 {
		t.Fatal("cancelled ripple came back on the next tick")
	}
	r.Cancel()
}

func TestRippleRestartPolicy(t *testing.T) {
	r, clock, _ := newLaidOutRipple()

	r.Start(10, 10)
	clock.Tick(ms(100))
	r.Start(90, 90)
	if x, _ := r.Origin(); x != 90 {
		t.Fatal("restart policy should move the ripple to the new touch")
	}
	if math.Abs(r.Radius()-200) > 1e-9 {
		t.Fatal("restarted ripple should begin at the minimum radius")
	}

	r.Restart = false
	clock.Tick(ms(150))
	r.Start(5, 5)
	if x, _ := r.Origin(); x != 90 {
		t.Fatal("without restart a running ripple must ignore new touches")
	}
}

func TestRipplePaintColor(t *testing.T) {
	r, _, _ := newLaidOutRipple()

	r.SetColor(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	if got := r.PaintColor(); got != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: DefaultRippleAlpha}) {
		t.Fatalf("paint = %v", got)
	}

	r.SetAlpha(255)
	if got := r.PaintColor().A; got != 0xFF {
		t.Fatalf("alpha override gave %d", got)
	}

	r.Start(0, 0)
	cv := newRecordCanvas()
	r.Draw(cv)
	if cv.count("drawPath") != 1 {
		t.Fatal("active ripple should draw exactly one path")
	}
	if got := cv.calls[0].clr; got != r.PaintColor() {
		t.Fatalf("drawn with %v, want %v", got, r.PaintColor())
	}
}

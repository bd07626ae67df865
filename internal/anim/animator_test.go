package anim

import (
	"math"
	"testing"
	"time"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestAnimatorRunsToCompletion(t *testing.T) {
	clock := NewTicker()
	a := NewAnimator(clock)

	var values []float64
	ended := 0
	a.Start(ms(100), func(v float64) { values = append(values, v) }, func() { ended++ })

	if len(values) != 1 || values[0] != 0 {
		t.Fatalf("expected immediate update with 0, got %v", values)
	}
	for _, now := range []int{25, 50, 75} {
		clock.Tick(ms(now))
	}
	if !a.Running() {
		t.Fatal("animator stopped early")
	}
	if got := a.Fraction(); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("fraction at 75ms = %v, want 0.75", got)
	}

	clock.Tick(ms(120))
	if a.Running() {
		t.Fatal("animator still running after its duration")
	}
	if ended != 1 {
		t.Fatalf("end callback ran %d times, want 1", ended)
	}
	if last := values[len(values)-1]; last != 1 {
		t.Fatalf("final update = %v, want 1", last)
	}
	if clock.Active() != 0 {
		t.Fatalf("ticker still has %d registrations", clock.Active())
	}

	clock.Tick(ms(200))
	if ended != 1 {
		t.Fatal("end callback ran again after completion")
	}
}

func TestAnimatorCancelIsSynchronousAndIdempotent(t *testing.T) {
	clock := NewTicker()
	a := NewAnimator(clock)

	updates, ended := 0, 0
	a.Start(ms(100), func(float64) { updates++ }, func() { ended++ })
	a.Cancel()
	a.Cancel()

	clock.Tick(ms(50))
	clock.Tick(ms(200))
	if updates != 1 {
		t.Fatalf("updates after cancel: got %d, want only the initial one", updates)
	}
	if ended != 0 {
		t.Fatal("cancel must not run the end callback")
	}
	if clock.Active() != 0 {
		t.Fatal("cancel leaked a registration")
	}
}

func TestAnimatorRestartSupersedes(t *testing.T) {
	clock := NewTicker()
	a := NewAnimator(clock)

	firstEnded := false
	a.Start(ms(100), nil, func() { firstEnded = true })
	clock.Tick(ms(80))

	secondEnded := false
	a.Start(ms(100), nil, func() { secondEnded = true })
	if clock.Active() != 1 {
		t.Fatalf("expected exactly one registration, got %d", clock.Active())
	}

	clock.Tick(ms(120))
	if firstEnded {
		t.Fatal("superseded run reached its end callback")
	}
	if secondEnded {
		t.Fatal("second run ended early")
	}
	clock.Tick(ms(180))
	if !secondEnded {
		t.Fatal("second run did not end")
	}
}

func TestAnimatorRepeatReverse(t *testing.T) {
	clock := NewTicker()
	a := NewAnimator(clock)
	a.Repeat = RepeatReverse
	a.Start(ms(100), nil, nil)

	tests := []struct {
		now  int
		want float64
	}{
		{50, 0.5},
		{100, 1},
		{150, 0.5},
		{200, 0},
		{250, 0.5},
		{1000, 0},
		{1100, 1},
	}
	for _, tt := range tests {
		clock.Tick(ms(tt.now))
		if got := a.Fraction(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("at %dms fraction = %v, want %v", tt.now, got, tt.want)
		}
	}
	if !a.Running() {
		t.Fatal("reverse animator must run until cancelled")
	}
}

func TestAnimatorRepeatRestart(t *testing.T) {
	clock := NewTicker()
	a := NewAnimator(clock)
	a.Repeat = RepeatRestart
	a.Start(ms(100), nil, nil)

	clock.Tick(ms(150))
	if got := a.Fraction(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("fraction = %v, want 0.5", got)
	}
}

func TestAnimatorEndCallbackMayRestart(t *testing.T) {
	clock := NewTicker()
	a := NewAnimator(clock)

	runs := 0
	var onEnd func()
	onEnd = func() {
		runs++
		if runs < 3 {
			a.Start(ms(50), nil, onEnd)
		}
	}
	a.Start(ms(50), nil, onEnd)
	for now := 10; now <= 400; now += 10 {
		clock.Tick(ms(now))
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want 3", runs)
	}
	if clock.Active() != 0 {
		t.Fatal("registration leaked")
	}
}

func TestClampDuration(t *testing.T) {
	if got := ClampDuration(-5 * time.Second); got != FrameInterval {
		t.Errorf("negative duration clamped to %v", got)
	}
	if got := ClampDuration(0); got != FrameInterval {
		t.Errorf("zero duration clamped to %v", got)
	}
	if got := ClampDuration(time.Second); got != time.Second {
		t.Errorf("valid duration changed to %v", got)
	}
}

func TestAccelerateDecelerate(t *testing.T) {
	if v := AccelerateDecelerate(0); math.Abs(v) > 1e-9 {
		t.Errorf("curve(0) = %v", v)
	}
	if v := AccelerateDecelerate(1); math.Abs(v-1) > 1e-9 {
		t.Errorf("curve(1) = %v", v)
	}
	prev := -1.0
	for i := 0; i <= 20; i++ {
		v := AccelerateDecelerate(float64(i) / 20)
		if v <= prev {
			t.Fatalf("curve not increasing at step %d", i)
		}
		prev = v
	}
}

func TestAfter(t *testing.T) {
	clock := NewTicker()
	clock.Tick(ms(1000))

	fired := 0
	After(clock, ms(500), func() { fired++ })
	clock.Tick(ms(1400))
	if fired != 0 {
		t.Fatal("fired early")
	}
	clock.Tick(ms(1500))
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}

	cancelled := After(clock, ms(100), func() { fired++ })
	cancelled.Cancel()
	clock.Tick(ms(2000))
	if fired != 1 {
		t.Fatal("cancelled timer fired")
	}
}

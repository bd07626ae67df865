package fx

import (
	"math"
	"testing"

	"github.com/depeter/posterfx/internal/anim"
)

func TestRevealScaleFallsLinearly(t *testing.T) {
	for _, d := range []int{100, 1200, 5000} {
		clock := anim.NewTicker()
		r := NewReveal(clock)
		if r.Scale() != 0 {
			t.Fatalf("idle scale = %v, want 0", r.Scale())
		}

		done := 0
		r.Start(ms(d), nil, func() { done++ })
		if r.Scale() != 1 {
			t.Fatalf("d=%d: scale at start = %v", d, r.Scale())
		}

		prev := 1.0
		for _, frac := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
			clock.Tick(ms(int(float64(d) * frac)))
			want := 1 - frac
			if math.Abs(r.Scale()-want) > 0.01 {
				t.Errorf("d=%d: scale at %.2f = %v, want %v", d, frac, r.Scale(), want)
			}
			if r.Scale() >= prev {
				t.Errorf("d=%d: scale not decreasing at %.2f", d, frac)
			}
			prev = r.Scale()
		}

		clock.Tick(ms(d))
		if r.Scale() != 0 || r.Running() {
			t.Fatalf("d=%d: scale %v running %v at end", d, r.Scale(), r.Running())
		}
		if done != 1 {
			t.Fatalf("d=%d: completion ran %d times", d, done)
		}
	}
}

func TestRevealRestartDropsFirstCompletion(t *testing.T) {
	clock := anim.NewTicker()
	r := NewReveal(clock)

	first, second := 0, 0
	r.Start(ms(100), nil, func() { first++ })
	clock.Tick(ms(60))
	r.Start(ms(100), nil, func() { second++ })
	if r.Scale() != 1 {
		t.Fatalf("restart scale = %v, want 1", r.Scale())
	}
	clock.Tick(ms(200))
	if first != 0 || second != 1 {
		t.Fatalf("completions first=%d second=%d", first, second)
	}
}

func TestRevealCancelNeverCompletes(t *testing.T) {
	clock := anim.NewTicker()
	r := NewReveal(clock)

	done := 0
	r.Start(ms(100), nil, func() { done++ })
	clock.Tick(ms(40))
	r.Cancel()
	if r.Running() || r.Scale() != 0 {
		t.Fatalf("after cancel running=%v scale=%v", r.Running(), r.Scale())
	}
	clock.Tick(ms(500))
	if done != 0 {
		t.Fatalf("cancelled reveal completed %d times", done)
	}
	r.Cancel()
}

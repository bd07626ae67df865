package fx

import (
	"image/color"
	"testing"

	"github.com/depeter/posterfx/internal/anim"
)

func TestTintCrossfadeHitsEndpointsEachHalfCycle(t *testing.T) {
	clock := anim.NewTicker()
	tc := NewTintCrossfade(clock)

	var applied []color.NRGBA
	if !tc.Start(red, blue, ms(100), LerpARGB, func(c color.NRGBA) { applied = append(applied, c) }) {
		t.Fatal("start refused valid endpoints")
	}
	if tc.Current() != red {
		t.Fatalf("cycle start = %v, want primary", tc.Current())
	}

	checkpoints := []struct {
		now  int
		want color.NRGBA
	}{
		{100, blue},
		{200, red},
		{300, blue},
		{400, red},
		{10_000, red},
		{10_100, blue},
	}
	for _, cp := range checkpoints {
		clock.Tick(ms(cp.now))
		if got := tc.Current(); got != cp.want {
			t.Errorf("at %dms: got %v, want %v", cp.now, got, cp.want)
		}
	}
	if !tc.Running() {
		t.Fatal("crossfade stopped on its own")
	}
	if len(applied) != len(checkpoints)+1 {
		t.Fatalf("apply called %d times", len(applied))
	}

	clock.Tick(ms(10_150))
	last := tc.Current()
	tc.Stop()
	clock.Tick(ms(10_180))
	if tc.Running() {
		t.Fatal("still running after stop")
	}
	if tc.Current() != last {
		t.Fatal("stop must leave the last colour in place")
	}
}

func TestTintCrossfadeMidpointIsBetween(t *testing.T) {
	clock := anim.NewTicker()
	tc := NewTintCrossfade(clock)
	tc.Start(red, blue, ms(100), nil, nil)

	clock.Tick(ms(50))
	mid := tc.Current()
	if mid == red || mid == blue {
		t.Fatalf("midpoint %v equals an endpoint", mid)
	}
	if mid.R == 0 || mid.B == 0 {
		t.Fatalf("midpoint %v does not mix both endpoints", mid)
	}
}

func TestTintCrossfadeUnsetEndpoint(t *testing.T) {
	clock := anim.NewTicker()
	tc := NewTintCrossfade(clock)

	if tc.Start(red, nil, ms(100), nil, nil) {
		t.Fatal("start with unset secondary should refuse")
	}
	if tc.Start(nil, blue, ms(100), nil, nil) {
		t.Fatal("start with unset primary should refuse")
	}
	if tc.Running() || clock.Active() != 0 {
		t.Fatal("refused start left an animation running")
	}
}

func TestTintCrossfadeRestartCancelsPrevious(t *testing.T) {
	clock := anim.NewTicker()
	tc := NewTintCrossfade(clock)

	tc.Start(red, blue, ms(100), nil, nil)
	tc.Start(blue, red, ms(100), nil, nil)
	if clock.Active() != 1 {
		t.Fatalf("expected one registration, got %d", clock.Active())
	}
	if tc.Current() != blue {
		t.Fatalf("restart should begin at the new primary, got %v", tc.Current())
	}
}

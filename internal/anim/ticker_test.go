package anim

import (
	"testing"
	"time"
)

func TestTickerOrderAndRemovalDuringTick(t *testing.T) {
	clock := NewTicker()

	var order []string
	var second Handle
	clock.Register(func(time.Duration) {
		order = append(order, "first")
		clock.Unregister(second)
	})
	second = clock.Register(func(time.Duration) { order = append(order, "second") })
	clock.Register(func(time.Duration) {
		order = append(order, "third")
		clock.Register(func(time.Duration) { order = append(order, "late") })
	})

	clock.Tick(time.Millisecond)
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Fatalf("unexpected order %v", order)
	}

	order = nil
	clock.Tick(2 * time.Millisecond)
	if len(order) != 3 || order[2] != "late" {
		t.Fatalf("late registration not run on next tick: %v", order)
	}
}

func TestTickerMonotonic(t *testing.T) {
	clock := NewTicker()
	clock.Tick(time.Second)
	clock.Tick(500 * time.Millisecond)
	if clock.Now() != time.Second {
		t.Fatalf("clock moved backwards to %v", clock.Now())
	}
}

func TestTickerUnregisterUnknown(t *testing.T) {
	clock := NewTicker()
	clock.Unregister(42)
	if clock.Active() != 0 {
		t.Fatal("unexpected registrations")
	}
}

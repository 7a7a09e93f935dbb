package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStepInterval(50 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock.advance(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after 20ms of a 50ms interval")
	}
	clock.advance(30 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}

	// A long frame is caught up one generation per call.
	clock.advance(120 * time.Millisecond)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("caught up %d steps, want 2", steps)
	}
}

func TestFixedStepRestart(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStepInterval(10 * time.Millisecond)
	fs.now = clock.now
	fs.Restart()
	if fs.ShouldStep() {
		t.Fatal("stepped right after Restart")
	}
	clock.advance(10 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step one interval after Restart")
	}
}

func TestFixedStepZeroIntervalAlwaysSteps(t *testing.T) {
	fs := NewFixedStepInterval(0)
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatal("zero interval should step every call")
		}
	}
}

func TestSetTPSFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want 1/60s", fs.Interval())
	}
	fs.SetTPS(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", fs.Interval())
	}
}

package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) should be visible through Has")
	}
	if f.Has(ActionPause) {
		t.Error("unrelated action reported as set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionJump:  "Jump",
		ActionPause: "Pause",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("Advance: elapsed = %v, expected 1.5s", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("Set: Now() = %v, expected %v", c.Now(), start)
	}
}

func TestInputFrameIgnoresInvalidActions(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(42))

	for _, a := range []Action{ActionNone, ActionJump, ActionPause, ActionQuit, Action(42)} {
		if f.Has(a) {
			t.Errorf("Has(%v) = true on a frame with no valid actions", a)
		}
	}
}

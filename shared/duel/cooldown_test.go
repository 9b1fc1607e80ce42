package duel

import (
	"testing"
	"time"
)

const sec = time.Second

func TestCooldownTicksToReady(t *testing.T) {
	var c Cooldown
	c.Set(4*sec, 0, sec)

	for i := 1; i <= 4; i++ {
		if c.Ready() {
			t.Fatalf("ready too early before tick %d", i)
		}
		c.Advance(time.Duration(i)*sec, sec, sec)
	}
	if !c.Ready() || c.Remaining() != 0 {
		t.Fatalf("remaining = %v, want 0 and ready", c.Remaining())
	}
	if c.Armed() {
		t.Fatal("cooldown should disarm once ready")
	}
}

func TestCooldownOnlyTicksAtDeadlines(t *testing.T) {
	var c Cooldown
	c.Set(2*sec, 0, sec)

	c.Advance(999*time.Millisecond, sec, sec)
	if c.Remaining() != 2*sec {
		t.Fatalf("ticked before deadline: %v", c.Remaining())
	}
	// A long frame catches up on every elapsed deadline.
	c.Advance(2500*time.Millisecond, sec, sec)
	if !c.Ready() {
		t.Fatalf("remaining = %v after catch-up", c.Remaining())
	}
}

func TestCooldownCanGoNegative(t *testing.T) {
	var c Cooldown
	c.Set(1500*time.Millisecond, 0, sec)
	c.Advance(2*sec, sec, sec)
	if c.Remaining() != -500*time.Millisecond || !c.Ready() {
		t.Fatalf("remaining = %v", c.Remaining())
	}
}

func TestCooldownStopReleasesWake(t *testing.T) {
	var c Cooldown
	c.Set(3*sec, 0, sec)
	c.Stop()
	c.Advance(10*sec, sec, sec)
	if c.Remaining() != 3*sec {
		t.Fatalf("stopped cooldown ticked: %v", c.Remaining())
	}
}

func TestCooldownSetRearmsFromNow(t *testing.T) {
	var c Cooldown
	c.Set(2*sec, 0, sec)
	c.Advance(sec, sec, sec)
	c.Set(2*sec, 1500*time.Millisecond, sec)

	c.Advance(2*sec, sec, sec)
	if c.Remaining() != 2*sec {
		t.Fatalf("old deadline fired after re-arm: %v", c.Remaining())
	}
	c.Advance(2500*time.Millisecond, sec, sec)
	if c.Remaining() != sec {
		t.Fatalf("remaining = %v, want 1s", c.Remaining())
	}
}

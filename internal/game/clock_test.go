package game

import "testing"

func TestClockPauseFreezesTime(t *testing.T) {
	var c Clock
	c.Start(15, 45)
	c.TickRound()
	c.TickSession()
	if !c.TogglePause() {
		t.Fatalf("expected clock to be paused")
	}
	for i := 0; i < 100; i++ {
		if c.TickRound() || c.TickSession() {
			t.Fatalf("paused clock must not expire")
		}
	}
	if c.RoundRemaining() != 14 || c.SessionRemaining() != 44 {
		t.Fatalf("expected 14/44 while paused, got %d/%d", c.RoundRemaining(), c.SessionRemaining())
	}
	c.TogglePause()
	c.TickRound()
	if c.RoundRemaining() != 13 {
		t.Fatalf("expected round to resume, got %d", c.RoundRemaining())
	}
}

func TestClockRoundExpiryReloads(t *testing.T) {
	var c Clock
	c.Start(3, 100)
	expired := 0
	for i := 0; i < 3; i++ {
		if c.TickRound() {
			expired++
		}
	}
	if expired != 1 {
		t.Fatalf("expected one expiry after 3 ticks, got %d", expired)
	}
	if c.RoundRemaining() != 3 {
		t.Fatalf("expected round reload to 3, got %d", c.RoundRemaining())
	}
	if c.Elapsed() != 0 {
		t.Fatalf("expected zero elapsed after reload, got %d", c.Elapsed())
	}
}

func TestClockSessionExpiryStops(t *testing.T) {
	var c Clock
	c.Start(10, 2)
	if c.TickSession() {
		t.Fatalf("unexpected expiry after first tick")
	}
	if !c.TickSession() {
		t.Fatalf("expected expiry at zero")
	}
	if c.Ticking() {
		t.Fatalf("expected clock to stop after session expiry")
	}
	if c.TickSession() || c.TickRound() {
		t.Fatalf("stopped clock must not tick")
	}
	if c.SessionRemaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", c.SessionRemaining())
	}
}

func TestClockTogglePauseStopped(t *testing.T) {
	var c Clock
	if c.TogglePause() {
		t.Fatalf("stopped clock must not pause")
	}
}

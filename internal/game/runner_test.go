package game

import (
	"testing"
	"time"

	"github.com/verte-zerg/colornova/internal/model"
)

func TestRunnerEndsSession(t *testing.T) {
	ctrl := NewController(&stubBoards{})
	ended := make(chan Result, 1)
	ctrl.Subscribe(func(ev Event) {
		if ev.Kind == EventSessionEnded {
			ended <- ev.Result
		}
	})
	r := NewRunner(ctrl, time.Millisecond)
	if err := r.Start(model.ModeEasy, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	select {
	case res := <-ended:
		if res.Mode != model.ModeEasy {
			t.Fatalf("unexpected result mode: %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not end")
	}
	if st := r.Snapshot().State; st != StateEnded {
		t.Fatalf("expected ended state, got %s", st)
	}
}

func TestRunnerResetStopsTicks(t *testing.T) {
	ctrl := NewController(&stubBoards{})
	r := NewRunner(ctrl, time.Millisecond)
	if err := r.Start(model.ModeEasy, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	r.Reset()
	before := r.Snapshot()
	time.Sleep(20 * time.Millisecond)
	snap := r.Snapshot()
	if snap.State != StateIdle {
		t.Fatalf("expected idle after reset, got %s", snap.State)
	}
	if snap.SessionTimeRemaining != before.SessionTimeRemaining {
		t.Fatalf("expected no ticks after reset, session moved from %d to %d", before.SessionTimeRemaining, snap.SessionTimeRemaining)
	}
}

func TestRunnerPauseKeepsTime(t *testing.T) {
	ctrl := NewController(&stubBoards{})
	r := NewRunner(ctrl, time.Millisecond)
	if err := r.Start(model.ModeHard, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	r.TogglePause()
	frozen := r.Snapshot().SessionTimeRemaining
	time.Sleep(20 * time.Millisecond)
	if got := r.Snapshot().SessionTimeRemaining; got != frozen {
		t.Fatalf("expected frozen session time %d, got %d", frozen, got)
	}
	if !r.Shuffle() {
		t.Fatalf("expected shuffle while paused")
	}
	r.Reset()
}

func TestRunnerStartUnavailable(t *testing.T) {
	r := NewRunner(NewController(&stubBoards{}), 0)
	if err := r.Start(model.ModeBonus, false); err == nil {
		t.Fatalf("expected error for bonus mode")
	}
}

func TestRunnerStopFreezesClock(t *testing.T) {
	ctrl := NewController(&stubBoards{})
	r := NewRunner(ctrl, time.Millisecond)
	if err := r.Start(model.ModeModerate, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	r.Stop()
	before := r.Snapshot()
	time.Sleep(20 * time.Millisecond)
	after := r.Snapshot()
	if after.State != StateActive {
		t.Fatalf("expected stop to leave the session active, got %s", after.State)
	}
	if after.SessionTimeRemaining != before.SessionTimeRemaining {
		t.Fatalf("expected no ticks after stop, session moved from %d to %d", before.SessionTimeRemaining, after.SessionTimeRemaining)
	}
}

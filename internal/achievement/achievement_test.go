package achievement

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/verte-zerg/colornova/internal/model"
	"github.com/verte-zerg/colornova/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "colornova.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return st
}

func TestEarnedRules(t *testing.T) {
	cases := []struct {
		name  string
		event GameEvent
		want  []string
	}{
		{"first game", GameEvent{GamesPlayed: 1, Mode: model.ModeEasy}, []string{FirstWin}},
		{"second game", GameEvent{GamesPlayed: 2, Mode: model.ModeEasy}, nil},
		{"streaks", GameEvent{GamesPlayed: 3, Streak: 5, Mode: model.ModeEasy}, []string{Streak3, Streak5}},
		{"scores", GameEvent{GamesPlayed: 3, Score: 100, Mode: model.ModeModerate}, []string{Score50, Score100}},
		{"hard", GameEvent{GamesPlayed: 3, Mode: model.ModeHard}, []string{HardMode}},
		{"shape master", GameEvent{GamesPlayed: 9, Mode: model.ModeEasy, ShapeMode: true, ShapeGames: 5}, []string{ShapeMaster}},
		{"four shape games", GameEvent{GamesPlayed: 9, Mode: model.ModeEasy, ShapeMode: true, ShapeGames: 4}, nil},
	}
	for _, tc := range cases {
		got := Earned(tc.event)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTrackerUnlocksOnce(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	tracker := NewTracker(st)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return fixed }

	first, err := tracker.Check(ctx, GameEvent{UserID: "u1", GamesPlayed: 1, Score: 60, Streak: 3, Mode: model.ModeEasy})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var ids []string
	for _, a := range first {
		ids = append(ids, a.ID)
		if !a.Unlocked || !a.UnlockedAt.Equal(fixed) {
			t.Fatalf("unexpected unlock state: %+v", a)
		}
	}
	if !reflect.DeepEqual(ids, []string{FirstWin, Streak3, Score50}) {
		t.Fatalf("unexpected unlocks: %v", ids)
	}

	again, err := tracker.Check(ctx, GameEvent{UserID: "u1", GamesPlayed: 2, Score: 60, Streak: 3, Mode: model.ModeHard})
	if err != nil {
		t.Fatalf("check again: %v", err)
	}
	if len(again) != 1 || again[0].ID != HardMode {
		t.Fatalf("expected only hard_mode, got %+v", again)
	}
}

func TestTrackerListAndProgress(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	tracker := NewTracker(st)
	if _, err := tracker.Check(ctx, GameEvent{UserID: "u1", GamesPlayed: 1, Mode: model.ModeHard}); err != nil {
		t.Fatalf("check: %v", err)
	}
	list, err := tracker.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(Catalog()) {
		t.Fatalf("expected full catalog, got %d", len(list))
	}
	if list[0].ID != FirstWin || !list[0].Unlocked {
		t.Fatalf("expected first_win unlocked: %+v", list[0])
	}
	if list[1].Unlocked {
		t.Fatalf("expected streak_3 locked")
	}
	p := ProgressOf(list)
	if p.Unlocked != 2 || p.Total != 7 {
		t.Fatalf("unexpected progress: %+v", p)
	}
	if got := p.Percent(); got < 0.28 || got > 0.29 {
		t.Fatalf("unexpected percent: %.3f", got)
	}

	other, err := tracker.List(ctx, "u2")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if ProgressOf(other).Unlocked != 0 {
		t.Fatalf("unlocks leaked across players")
	}
}

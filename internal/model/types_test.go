package model

import "testing"

func TestColorSpecEqualTolerance(t *testing.T) {
	a := ColorSpec{Hue: 0.5, Saturation: TileSaturation, Brightness: TileBrightness}
	b := ColorSpec{Hue: 0.5 + ColorEpsilon/2, Saturation: TileSaturation, Brightness: TileBrightness}
	c := ColorSpec{Hue: 0.5 + ColorEpsilon*2, Saturation: TileSaturation, Brightness: TileBrightness}
	if !a.Equal(b) {
		t.Fatalf("expected colors within epsilon to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected colors beyond epsilon to differ")
	}
}

func TestParseMode(t *testing.T) {
	id, err := ParseMode(" Hard ")
	if err != nil {
		t.Fatalf("parse mode: %v", err)
	}
	if id != ModeHard {
		t.Fatalf("expected hard, got %q", id)
	}
	if _, err := ParseMode("expert"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestModePresets(t *testing.T) {
	tests := []struct {
		id      ModeID
		grid    int
		round   int
		session int
	}{
		{ModeEasy, 3, 15, 45},
		{ModeModerate, 5, 25, 60},
		{ModeHard, 7, 35, 75},
		{ModeBonus, 4, 20, 50},
	}
	for _, tt := range tests {
		m, ok := Mode(tt.id)
		if !ok {
			t.Fatalf("missing preset %q", tt.id)
		}
		if m.GridSize != tt.grid || m.RoundSeconds != tt.round || m.SessionSeconds != tt.session {
			t.Fatalf("unexpected preset for %q: %+v", tt.id, m)
		}
	}
	if m, _ := Mode(ModeBonus); m.Playable {
		t.Fatalf("bonus mode must not be playable")
	}
}

func TestLeaderboardFilterMatch(t *testing.T) {
	mode := ModeEasy
	shape := true
	f := LeaderboardFilter{Mode: &mode, ShapeMode: &shape}
	if !f.Match(ScoreEntry{Mode: ModeEasy, ShapeMode: true}) {
		t.Fatalf("expected match")
	}
	if f.Match(ScoreEntry{Mode: ModeEasy, ShapeMode: false}) {
		t.Fatalf("expected shape mismatch")
	}
	if f.Match(ScoreEntry{Mode: ModeHard, ShapeMode: true}) {
		t.Fatalf("expected mode mismatch")
	}
	if !(LeaderboardFilter{}).Match(ScoreEntry{Mode: ModeHard}) {
		t.Fatalf("empty filter should match everything")
	}
}

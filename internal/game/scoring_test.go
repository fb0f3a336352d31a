package game

import "testing"

func TestScoreCorrectTapSpeedBands(t *testing.T) {
	tests := []struct {
		timeTaken int
		want      int
		label     string
	}{
		{0, 4, "Speed Bonus +3"},
		{1, 4, "Speed Bonus +3"},
		{2, 4, "Speed Bonus +3"},
		{3, 3, "Quick Bonus +2"},
		{5, 3, "Quick Bonus +2"},
		{6, 1, ""},
		{30, 1, ""},
	}
	for _, tt := range tests {
		res := ScoreCorrectTap(0, tt.timeTaken)
		if !res.Correct {
			t.Fatalf("timeTaken %d: expected correct result", tt.timeTaken)
		}
		if res.ScoreDelta != tt.want {
			t.Fatalf("timeTaken %d: expected delta %d, got %d", tt.timeTaken, tt.want, res.ScoreDelta)
		}
		if res.Streak != 1 {
			t.Fatalf("timeTaken %d: expected streak 1, got %d", tt.timeTaken, res.Streak)
		}
		labels := res.Labels()
		if tt.label == "" {
			if len(labels) != 0 {
				t.Fatalf("timeTaken %d: expected no bonus, got %v", tt.timeTaken, labels)
			}
			continue
		}
		if len(labels) != 1 || labels[0] != tt.label {
			t.Fatalf("timeTaken %d: expected label %q, got %v", tt.timeTaken, tt.label, labels)
		}
	}
}

func TestScoreCorrectTapStreakOneShot(t *testing.T) {
	// Slow taps isolate the streak bonus from the speed bonus.
	want := map[int]int{1: 1, 2: 1, 3: 3, 4: 1, 5: 6, 6: 1, 7: 1, 10: 1}
	streak := 0
	for i := 1; i <= 10; i++ {
		res := ScoreCorrectTap(streak, 10)
		streak = res.Streak
		if streak != i {
			t.Fatalf("expected streak %d, got %d", i, streak)
		}
		if expected, ok := want[i]; ok && res.ScoreDelta != expected {
			t.Fatalf("streak %d: expected delta %d, got %d", i, expected, res.ScoreDelta)
		}
	}
}

func TestScoreCorrectTapBonusesStack(t *testing.T) {
	res := ScoreCorrectTap(4, 1)
	if res.ScoreDelta != 1+3+5 {
		t.Fatalf("expected 9, got %d", res.ScoreDelta)
	}
	labels := res.Labels()
	if len(labels) != 2 || labels[0] != "Speed Bonus +3" || labels[1] != "5-Streak Bonus +5" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}

func TestScoreWrongTap(t *testing.T) {
	res := ScoreWrongTap()
	if res.Correct || res.Streak != 0 || res.ScoreDelta != 0 {
		t.Fatalf("unexpected wrong tap result: %+v", res)
	}
}

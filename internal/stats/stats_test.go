package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/colornova/internal/model"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]model.ScoreEntry{
		{Score: 10},
		{Score: 55, ShapeMode: true},
		{Score: 25},
	})
	if s.Games != 3 || s.Total != 90 || s.Best != 55 || s.ShapeRuns != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Average != 30 {
		t.Fatalf("expected average 30, got %.2f", s.Average)
	}
	if s.BestRank.Label != "Star Runner" {
		t.Fatalf("unexpected best rank: %+v", s.BestRank)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %.1f, got %.1f", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, []model.ScoreEntry{{Score: 4}, {Score: 12}, {Score: 30}}, 2)
	if err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "Games", "Best score", "30", "Space Explorer", "Trend: ["} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	buf.Reset()
	if err := RenderSummary(&buf, nil, 2); err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No games found." {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

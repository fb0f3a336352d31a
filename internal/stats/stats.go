package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/colornova/internal/game"
	"github.com/verte-zerg/colornova/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary condenses a player's score history.
type Summary struct {
	Games     int
	Total     int
	Best      int
	Average   float64
	BestRank  game.Rank
	ShapeRuns int
}

// Summarize computes totals over entries.
func Summarize(entries []model.ScoreEntry) Summary {
	var s Summary
	for _, e := range entries {
		s.Games++
		s.Total += e.Score
		if e.Score > s.Best {
			s.Best = e.Score
		}
		if e.ShapeMode {
			s.ShapeRuns++
		}
	}
	if s.Games > 0 {
		s.Average = float64(s.Total) / float64(s.Games)
	}
	s.BestRank = game.RankFor(s.Best)
	return s
}

// Scores extracts the score series from entries.
func Scores(entries []model.ScoreEntry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = float64(e.Score)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary of a player's games followed by a trend line.
func RenderSummary(w io.Writer, entries []model.ScoreEntry, window int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	s := Summarize(entries)
	rows := [][]string{
		{"Games", fmt.Sprintf("%d", s.Games)},
		{"Shape games", fmt.Sprintf("%d", s.ShapeRuns)},
		{"Best score", fmt.Sprintf("%d", s.Best)},
		{"Avg score", fmt.Sprintf("%.2f", s.Average)},
		{"Best rank", fmt.Sprintf("%s %s", s.BestRank.Emoji, s.BestRank.Label)},
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	for _, line := range formatTable(nil, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	trend := Sparkline(MovingAverage(Scores(entries), window))
	if _, err := fmt.Fprintf(w, "Trend: [%s]\n", trend); err != nil {
		return err
	}
	return nil
}

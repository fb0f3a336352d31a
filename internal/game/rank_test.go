package game

import "testing"

func TestRankForBoundaries(t *testing.T) {
	tests := []struct {
		score int
		band  int
		label string
	}{
		{-5, 0, "Cosmic Rookie"},
		{0, 0, "Cosmic Rookie"},
		{19, 0, "Cosmic Rookie"},
		{20, 1, "Space Explorer"},
		{49, 1, "Space Explorer"},
		{50, 2, "Star Runner"},
		{79, 2, "Star Runner"},
		{80, 3, "Nova Pro"},
		{119, 3, "Nova Pro"},
		{120, 4, "Galaxy Legend"},
		{10000, 4, "Galaxy Legend"},
	}
	for _, tt := range tests {
		r := RankFor(tt.score)
		if r.Band != tt.band || r.Label != tt.label {
			t.Fatalf("score %d: expected band %d %q, got %d %q", tt.score, tt.band, tt.label, r.Band, r.Label)
		}
	}
}

func TestRankForMonotonic(t *testing.T) {
	prev := RankFor(0).Band
	for score := 1; score <= 200; score++ {
		band := RankFor(score).Band
		if band < prev {
			t.Fatalf("rank decreased at score %d", score)
		}
		prev = band
	}
}

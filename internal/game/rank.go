package game

// Rank classifies a final score.
type Rank struct {
	Band  int
	Label string
	Emoji string
}

// rankBands are half-open [Min, next Min) ranges; the last band is unbounded.
var rankBands = []struct {
	min   int
	label string
	emoji string
}{
	{0, "Cosmic Rookie", "🌱"},
	{20, "Space Explorer", "🚀"},
	{50, "Star Runner", "⭐"},
	{80, "Nova Pro", "💫"},
	{120, "Galaxy Legend", "👑"},
}

// RankFor returns the band containing score. Negative scores fall in the lowest band.
func RankFor(score int) Rank {
	band := 0
	for i, b := range rankBands {
		if score >= b.min {
			band = i
		}
	}
	b := rankBands[band]
	return Rank{Band: band, Label: b.label, Emoji: b.emoji}
}

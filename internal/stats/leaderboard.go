package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/colornova/internal/model"
)

// LeaderboardSize caps the number of rows returned by Aggregate and TopEntries.
const LeaderboardSize = 10

// DefaultWindow is how many recent top entries feed aggregation.
const DefaultWindow = 500

type groupKey struct {
	userID    string
	mode      model.ModeID
	shapeMode bool
}

// Aggregate filters entries, sums scores per (user, mode, shape mode) and
// returns the top groups by total. Ties keep the order in which groups first
// appear in entries.
func Aggregate(entries []model.ScoreEntry, filter model.LeaderboardFilter) []model.AggregatedScore {
	index := map[groupKey]int{}
	var groups []model.AggregatedScore
	for _, e := range entries {
		if !filter.Match(e) {
			continue
		}
		key := groupKey{userID: e.UserID, mode: e.Mode, shapeMode: e.ShapeMode}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, model.AggregatedScore{
				UserID:    e.UserID,
				Name:      e.Name,
				Mode:      e.Mode,
				ShapeMode: e.ShapeMode,
			})
		}
		groups[i].TotalScore += e.Score
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalScore > groups[j].TotalScore
	})
	if len(groups) > LeaderboardSize {
		groups = groups[:LeaderboardSize]
	}
	return groups
}

// TopEntries returns the first LeaderboardSize entries passing filter, in input order.
func TopEntries(entries []model.ScoreEntry, filter model.LeaderboardFilter) []model.ScoreEntry {
	out := make([]model.ScoreEntry, 0, LeaderboardSize)
	for _, e := range entries {
		if len(out) == LeaderboardSize {
			break
		}
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// PlaceLabel returns a medal for the first three places and the number otherwise.
func PlaceLabel(place int) string {
	switch place {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", place)
	}
}

// ShapeLabel names the shape setting for display.
func ShapeLabel(shapeMode bool) string {
	if shapeMode {
		return "shapes"
	}
	return "colors"
}

// LeaderboardRows formats aggregated scores as table cells.
func LeaderboardRows(aggs []model.AggregatedScore) [][]string {
	rows := make([][]string, 0, len(aggs))
	for i, agg := range aggs {
		rows = append(rows, []string{
			PlaceLabel(i + 1),
			agg.Name,
			fmt.Sprintf("%d", agg.TotalScore),
			agg.Mode.Title(),
			ShapeLabel(agg.ShapeMode),
		})
	}
	return rows
}

// RenderLeaderboard prints aggregated scores as a plain table.
func RenderLeaderboard(w io.Writer, aggs []model.AggregatedScore) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Leaderboard"); err != nil {
		return err
	}
	headers := []string{"#", "Player", "Total", "Mode", "Variant"}
	lines := formatTable(headers, LeaderboardRows(aggs), map[int]bool{2: true})
	useColor := shouldUseColor(w)
	for i, line := range lines {
		if useColor && i > 0 && i <= 3 {
			line = colorHighlight + line + colorReset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Package model defines shared data structures.
package model

import (
	"math"
	"time"
)

// Config defines play settings.
type Config struct {
	PlayerName string
	Mode       ModeID
	ShapeMode  bool
}

// StatsConfig defines filters for personal history output.
type StatsConfig struct {
	Mode  *ModeID
	Since *time.Time
	Last  int
}

// Tile colors share a fixed saturation and brightness; only hue varies.
const (
	TileSaturation = 0.9
	TileBrightness = 0.85
	ColorEpsilon   = 1e-3
)

// ColorSpec is an HSB color with components in [0,1].
type ColorSpec struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

// Equal reports whether every component differs by less than ColorEpsilon.
func (c ColorSpec) Equal(other ColorSpec) bool {
	return math.Abs(c.Hue-other.Hue) < ColorEpsilon &&
		math.Abs(c.Saturation-other.Saturation) < ColorEpsilon &&
		math.Abs(c.Brightness-other.Brightness) < ColorEpsilon
}

// Tile is a single cell on the board.
type Tile struct {
	Color ColorSpec
	Shape ShapeKind
}

// Board is the arrangement shown for one round.
type Board struct {
	GridSize    int
	Tiles       []Tile
	TargetIndex int
	Target      Tile
}

// Len returns the number of tiles.
func (b Board) Len() int {
	return len(b.Tiles)
}

// Contains reports whether index addresses a tile.
func (b Board) Contains(index int) bool {
	return index >= 0 && index < len(b.Tiles)
}

// ScoreEntry is an append-only record of a finished session.
type ScoreEntry struct {
	ID        string
	UserID    string
	Name      string
	Score     int
	Mode      ModeID
	ShapeMode bool
	Timestamp time.Time
}

// AggregatedScore sums a player's entries for one mode and shape setting.
type AggregatedScore struct {
	UserID     string
	Name       string
	TotalScore int
	Mode       ModeID
	ShapeMode  bool
}

// LeaderboardFilter narrows entries before aggregation. Nil fields match everything.
type LeaderboardFilter struct {
	Mode      *ModeID
	ShapeMode *bool
}

// Match reports whether the entry passes the filter.
func (f LeaderboardFilter) Match(e ScoreEntry) bool {
	if f.Mode != nil && e.Mode != *f.Mode {
		return false
	}
	if f.ShapeMode != nil && e.ShapeMode != *f.ShapeMode {
		return false
	}
	return true
}

// Profile is the local player identity.
type Profile struct {
	ID           string
	Name         string
	CreatedAt    time.Time
	GamesPlayed  int
	HighestScore int
}

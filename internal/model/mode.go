package model

import (
	"fmt"
	"strings"
)

// ModeID names a game mode preset.
type ModeID string

// Mode identifiers.
const (
	ModeEasy     ModeID = "easy"
	ModeModerate ModeID = "moderate"
	ModeHard     ModeID = "hard"
	ModeBonus    ModeID = "bonus"
)

// GameMode fixes grid and timer settings for a session.
type GameMode struct {
	ID             ModeID
	GridSize       int
	RoundSeconds   int
	SessionSeconds int
	// Playable is false for modes whose gameplay is not implemented.
	Playable bool
	Subtitle string
	Tip      string
}

var modes = []GameMode{
	{ID: ModeEasy, GridSize: 3, RoundSeconds: 15, SessionSeconds: 45, Playable: true,
		Subtitle: "3×3 Grid", Tip: "Scan corners first, the match pops out."},
	{ID: ModeModerate, GridSize: 5, RoundSeconds: 25, SessionSeconds: 60, Playable: true,
		Subtitle: "5×5 Grid", Tip: "Use peripheral vision, don't stare too long."},
	{ID: ModeHard, GridSize: 7, RoundSeconds: 35, SessionSeconds: 75, Playable: true,
		Subtitle: "7×7 Grid", Tip: "Scan rows and columns, it's faster than random."},
	{ID: ModeBonus, GridSize: 4, RoundSeconds: 20, SessionSeconds: 50, Playable: false,
		Subtitle: "Coming Soon", Tip: "Multiplayer mode coming soon!"},
}

// Modes returns all presets in declaration order.
func Modes() []GameMode {
	out := make([]GameMode, len(modes))
	copy(out, modes)
	return out
}

// Mode returns the preset for id.
func Mode(id ModeID) (GameMode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return GameMode{}, false
}

// ParseMode resolves a case-insensitive mode name.
func ParseMode(name string) (ModeID, error) {
	id := ModeID(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Mode(id); !ok {
		return "", fmt.Errorf("unknown mode %q (available: easy, moderate, hard, bonus)", name)
	}
	return id, nil
}

// Title returns the capitalized mode name.
func (id ModeID) Title() string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(string(id[:1])) + string(id[1:])
}

// GridCount returns the number of tiles on a board.
func (m GameMode) GridCount() int {
	return m.GridSize * m.GridSize
}

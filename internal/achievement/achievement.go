// Package achievement evaluates unlock rules after each finished session.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/colornova/internal/model"
)

// Achievement identifiers.
const (
	FirstWin    = "first_win"
	Streak3     = "streak_3"
	Streak5     = "streak_5"
	Score50     = "score_50"
	Score100    = "score_100"
	HardMode    = "hard_mode"
	ShapeMaster = "shape_master"
)

// ShapeMasterGames is how many shape-mode games unlock ShapeMaster.
const ShapeMasterGames = 5

// Achievement is a catalog entry with its unlock state for one player.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Emoji       string
	Unlocked    bool
	UnlockedAt  time.Time
}

var catalog = []Achievement{
	{ID: FirstWin, Title: "Cosmic Beginner", Description: "Complete your first game", Emoji: "🌱"},
	{ID: Streak3, Title: "Nebula Navigator", Description: "Achieve a 3-streak", Emoji: "🌌"},
	{ID: Streak5, Title: "Supernova Speedster", Description: "Achieve a 5-streak", Emoji: "💫"},
	{ID: Score50, Title: "Star Collector", Description: "Score 50+ points in a game", Emoji: "⭐"},
	{ID: Score100, Title: "Galaxy Legend", Description: "Score 100+ points in a game", Emoji: "👑"},
	{ID: HardMode, Title: "Black Hole Survivor", Description: "Complete a Hard mode game", Emoji: "🕳️"},
	{ID: ShapeMaster, Title: "Constellation Master", Description: "Win 5 games in Shape Mode", Emoji: "✨"},
}

// Catalog returns every achievement, locked, in display order.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// GameEvent describes a finished session for rule evaluation.
type GameEvent struct {
	UserID      string
	Score       int
	Streak      int
	Mode        model.ModeID
	ShapeMode   bool
	GamesPlayed int
	ShapeGames  int
}

// Earned returns the ids whose rules e satisfies, in catalog order.
func Earned(e GameEvent) []string {
	var ids []string
	if e.GamesPlayed == 1 {
		ids = append(ids, FirstWin)
	}
	if e.Streak >= 3 {
		ids = append(ids, Streak3)
	}
	if e.Streak >= 5 {
		ids = append(ids, Streak5)
	}
	if e.Score >= 50 {
		ids = append(ids, Score50)
	}
	if e.Score >= 100 {
		ids = append(ids, Score100)
	}
	if e.Mode == model.ModeHard {
		ids = append(ids, HardMode)
	}
	if e.ShapeGames >= ShapeMasterGames {
		ids = append(ids, ShapeMaster)
	}
	return ids
}

// Store persists unlocks.
type Store interface {
	UnlockAchievement(ctx context.Context, userID, achievementID string, at time.Time) (bool, error)
	ListUnlocked(ctx context.Context, userID string) (map[string]time.Time, error)
}

// Tracker unlocks achievements through a Store.
type Tracker struct {
	store Store
	now   func() time.Time
}

// NewTracker returns a tracker backed by store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Check unlocks every achievement e earns and returns the ones that were not unlocked before.
func (t *Tracker) Check(ctx context.Context, e GameEvent) ([]Achievement, error) {
	at := t.now()
	var unlocked []Achievement
	for _, id := range Earned(e) {
		fresh, err := t.store.UnlockAchievement(ctx, e.UserID, id, at)
		if err != nil {
			return unlocked, fmt.Errorf("failed to unlock %s: %w", id, err)
		}
		if !fresh {
			continue
		}
		a, _ := Lookup(id)
		a.Unlocked = true
		a.UnlockedAt = at
		unlocked = append(unlocked, a)
	}
	return unlocked, nil
}

// List returns the catalog with the player's unlock state filled in.
func (t *Tracker) List(ctx context.Context, userID string) ([]Achievement, error) {
	times, err := t.store.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	list := Catalog()
	for i := range list {
		if at, ok := times[list[i].ID]; ok {
			list[i].Unlocked = true
			list[i].UnlockedAt = at
		}
	}
	return list, nil
}

// Progress summarizes how much of the catalog is unlocked.
type Progress struct {
	Unlocked int
	Total    int
}

// Percent returns the unlocked share in [0, 1].
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Unlocked) / float64(p.Total)
}

// ProgressOf counts unlocked entries in list.
func ProgressOf(list []Achievement) Progress {
	p := Progress{Total: len(list)}
	for _, a := range list {
		if a.Unlocked {
			p.Unlocked++
		}
	}
	return p
}

package game

import (
	"time"

	"github.com/verte-zerg/colornova/internal/model"
)

// EventKind identifies controller notifications.
type EventKind int

// Event kinds.
const (
	EventSessionStarted EventKind = iota
	EventBoardChanged
	EventTapCorrect
	EventTapWrong
	EventBonus
	EventRoundExpired
	EventPauseChanged
	EventSessionEnded
)

// BoardReason explains why a board was regenerated.
type BoardReason int

// Board reasons.
const (
	BoardStart BoardReason = iota
	BoardCorrect
	BoardExpired
	BoardShuffle
)

// Suggested display durations for transient feedback. Consumers own the timeout.
const (
	WrongFlashDuration  = 300 * time.Millisecond
	BonusBannerDuration = 1500 * time.Millisecond
)

// Event is emitted by the Controller after its state has changed.
type Event struct {
	Kind       EventKind
	Reason     BoardReason
	Index      int
	Label      string
	DisplayFor time.Duration
	Paused     bool
	Tap        TapResult
	Result     Result
}

// Result is the finalized outcome of a session.
type Result struct {
	Mode       model.ModeID
	ShapeMode  bool
	Score      int
	Streak     int
	BestStreak int
	Rank       Rank
	EndedAt    time.Time
}

// Listener receives controller events synchronously.
type Listener func(Event)

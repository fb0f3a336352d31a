package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/colornova/internal/model"
)

// State is the session lifecycle position.
type State int

// Session states.
const (
	StateIdle State = iota
	StateActive
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownMode is returned when starting a mode outside the presets.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrModeUnavailable is returned for presets whose gameplay is not implemented.
	ErrModeUnavailable = errors.New("mode is coming soon")
)

// BoardBuilder produces a fresh board for a mode.
type BoardBuilder interface {
	Build(mode model.GameMode, shapeMode bool) model.Board
}

// SessionState is a read-only copy of the controller state.
type SessionState struct {
	Mode                 model.GameMode
	ShapeMode            bool
	Score                int
	Streak               int
	BestStreak           int
	RoundTimeRemaining   int
	SessionTimeRemaining int
	State                State
	Board                model.Board
}

// IsActive reports whether a session is running, paused or not.
func (s SessionState) IsActive() bool {
	return s.State == StateActive || s.State == StatePaused
}

// IsPaused reports whether the session is paused.
func (s SessionState) IsPaused() bool {
	return s.State == StatePaused
}

type subscription struct {
	id int
	fn Listener
}

// Controller owns a single play session. It is not safe for concurrent use;
// ticks and taps must be delivered from one goroutine or under one lock.
type Controller struct {
	boards BoardBuilder
	now    func() time.Time

	clock      Clock
	mode       model.GameMode
	shapeMode  bool
	score      int
	streak     int
	bestStreak int
	board      model.Board
	state      State
	generation uint64
	result     *Result

	listeners []subscription
	nextSubID int
}

// Option configures a Controller.
type Option func(*Controller)

// WithNow overrides the wall clock used to stamp results.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController returns an idle controller building boards with boards.
func NewController(boards BoardBuilder, opts ...Option) *Controller {
	c := &Controller{boards: boards, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn for all future events and returns a function that removes it.
func (c *Controller) Subscribe(fn Listener) func() {
	c.nextSubID++
	id := c.nextSubID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Start resets all counters, loads the timers for mode and deals the first board.
func (c *Controller) Start(id model.ModeID, shapeMode bool) error {
	mode, ok := model.Mode(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, id)
	}
	if !mode.Playable {
		return fmt.Errorf("%w: %s", ErrModeUnavailable, mode.ID)
	}
	c.clear()
	c.mode = mode
	c.shapeMode = shapeMode
	c.clock.Start(mode.RoundSeconds, mode.SessionSeconds)
	c.board = c.boards.Build(mode, shapeMode)
	c.state = StateActive
	c.emit(Event{Kind: EventSessionStarted})
	c.emit(Event{Kind: EventBoardChanged, Reason: BoardStart})
	return nil
}

// Reset stops the session and clears all counters. It is safe from any state.
func (c *Controller) Reset() {
	c.clear()
}

func (c *Controller) clear() {
	c.clock.Stop()
	c.score = 0
	c.streak = 0
	c.bestStreak = 0
	c.board = model.Board{}
	c.state = StateIdle
	c.result = nil
	c.generation++
}

// Tap validates the tile at index against the target. Taps outside an active,
// unpaused session or outside the board are ignored and report false.
func (c *Controller) Tap(index int) (TapResult, bool) {
	if c.state != StateActive || !c.board.Contains(index) {
		return TapResult{}, false
	}
	tile := c.board.Tiles[index]
	if !IsMatch(tile, c.board.Target, c.shapeMode) {
		res := ScoreWrongTap()
		c.streak = res.Streak
		c.emit(Event{Kind: EventTapWrong, Index: index, DisplayFor: WrongFlashDuration, Tap: res})
		return res, true
	}

	res := ScoreCorrectTap(c.streak, c.clock.Elapsed())
	c.score += res.ScoreDelta
	c.streak = res.Streak
	if c.streak > c.bestStreak {
		c.bestStreak = c.streak
	}
	c.clock.ResetRound()
	c.board = c.boards.Build(c.mode, c.shapeMode)

	c.emit(Event{Kind: EventTapCorrect, Index: index, Tap: res})
	for _, b := range res.Bonuses {
		c.emit(Event{Kind: EventBonus, Label: b.Label, DisplayFor: BonusBannerDuration})
	}
	c.emit(Event{Kind: EventBoardChanged, Reason: BoardCorrect})
	return res, true
}

// Tick delivers one round tick followed by one session tick.
func (c *Controller) Tick() {
	c.TickRound()
	c.TickSession()
}

// TickRound advances the round timer. An expired round resets the streak and
// deals a new board without touching the score or session timer.
func (c *Controller) TickRound() {
	if c.state != StateActive {
		return
	}
	if !c.clock.TickRound() {
		return
	}
	c.streak = 0
	c.board = c.boards.Build(c.mode, c.shapeMode)
	c.emit(Event{Kind: EventRoundExpired})
	c.emit(Event{Kind: EventBoardChanged, Reason: BoardExpired})
}

// TickSession advances the session timer and ends the session at zero.
func (c *Controller) TickSession() {
	if c.state != StateActive {
		return
	}
	if !c.clock.TickSession() {
		return
	}
	c.end()
}

func (c *Controller) end() {
	c.clock.Stop()
	c.state = StateEnded
	res := Result{
		Mode:       c.mode.ID,
		ShapeMode:  c.shapeMode,
		Score:      c.score,
		Streak:     c.streak,
		BestStreak: c.bestStreak,
		Rank:       RankFor(c.score),
		EndedAt:    c.now(),
	}
	c.result = &res
	c.emit(Event{Kind: EventSessionEnded, Result: res})
}

// TogglePause flips between active and paused and returns whether the session
// is now paused. Outside a running session it does nothing.
func (c *Controller) TogglePause() bool {
	switch c.state {
	case StateActive:
		c.state = StatePaused
	case StatePaused:
		c.state = StateActive
	default:
		return false
	}
	paused := c.clock.TogglePause()
	c.emit(Event{Kind: EventPauseChanged, Paused: paused})
	return paused
}

// Shuffle deals a new board without touching timers, score or streak.
func (c *Controller) Shuffle() bool {
	if c.state != StateActive && c.state != StatePaused {
		return false
	}
	c.board = c.boards.Build(c.mode, c.shapeMode)
	c.emit(Event{Kind: EventBoardChanged, Reason: BoardShuffle})
	return true
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() SessionState {
	return SessionState{
		Mode:                 c.mode,
		ShapeMode:            c.shapeMode,
		Score:                c.score,
		Streak:               c.streak,
		BestStreak:           c.bestStreak,
		RoundTimeRemaining:   c.clock.RoundRemaining(),
		SessionTimeRemaining: c.clock.SessionRemaining(),
		State:                c.state,
		Board:                c.board,
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Board returns the current board.
func (c *Controller) Board() model.Board {
	return c.board
}

// Generation changes on every Start and Reset. Scheduled ticks carry the
// generation they were armed in and are dropped once it moves on.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Result returns the outcome of the last ended session.
func (c *Controller) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

func (c *Controller) emit(ev Event) {
	if len(c.listeners) == 0 {
		return
	}
	subs := make([]subscription, len(c.listeners))
	copy(subs, c.listeners)
	for _, sub := range subs {
		sub.fn(ev)
	}
}

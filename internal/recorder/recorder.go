// Package recorder persists finished sessions without blocking the game loop.
package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/colornova/internal/achievement"
	"github.com/verte-zerg/colornova/internal/game"
	"github.com/verte-zerg/colornova/internal/model"
)

// Store is the persistence used for finished sessions.
type Store interface {
	InsertScore(ctx context.Context, entry model.ScoreEntry) (string, error)
	RecordGame(ctx context.Context, userID string, score int) (int, error)
	CountGames(ctx context.Context, userID string, filter model.LeaderboardFilter) (int, error)
}

// Checker evaluates achievements for a finished session.
type Checker interface {
	Check(ctx context.Context, e achievement.GameEvent) ([]achievement.Achievement, error)
}

// Recorder writes each session result to the store in its own goroutine.
// Failures are logged and dropped.
type Recorder struct {
	store    Store
	tracker  Checker
	profile  model.Profile
	log      *logrus.Logger
	onUnlock func([]achievement.Achievement)
	timeout  time.Duration
	wg       sync.WaitGroup
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithUnlockHandler receives newly unlocked achievements. It runs on the
// recorder goroutine.
func WithUnlockHandler(fn func([]achievement.Achievement)) Option {
	return func(r *Recorder) {
		r.onUnlock = fn
	}
}

// WithTimeout bounds each hand-off.
func WithTimeout(d time.Duration) Option {
	return func(r *Recorder) {
		r.timeout = d
	}
}

// New returns a recorder saving results for profile. A nil tracker skips achievements.
func New(store Store, tracker Checker, profile model.Profile, log *logrus.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		store:   store,
		tracker: tracker,
		profile: profile,
		log:     log,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach subscribes the recorder to ctrl and returns the unsubscribe function.
func (r *Recorder) Attach(ctrl *game.Controller) func() {
	return ctrl.Subscribe(r.Handle)
}

// Handle records the result carried by a session-ended event and ignores the rest.
func (r *Recorder) Handle(ev game.Event) {
	if ev.Kind != game.EventSessionEnded {
		return
	}
	r.Record(ev.Result)
}

// Record starts saving res and returns immediately.
func (r *Recorder) Record(res game.Result) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.save(ctx, res)
	}()
}

// Wait blocks until every started hand-off has finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

func (r *Recorder) save(ctx context.Context, res game.Result) {
	log := r.log.WithFields(logrus.Fields{
		"user":  r.profile.ID,
		"mode":  res.Mode,
		"shape": res.ShapeMode,
		"score": res.Score,
	})

	entry := model.ScoreEntry{
		UserID:    r.profile.ID,
		Name:      r.profile.Name,
		Score:     res.Score,
		Mode:      res.Mode,
		ShapeMode: res.ShapeMode,
		Timestamp: res.EndedAt,
	}
	id, err := r.store.InsertScore(ctx, entry)
	if err != nil {
		log.WithError(err).Error("failed to save score")
		return
	}
	log.WithField("id", id).Debug("score saved")

	played, err := r.store.RecordGame(ctx, r.profile.ID, res.Score)
	if err != nil {
		log.WithError(err).Warn("failed to update profile")
		return
	}
	if r.tracker == nil {
		return
	}

	shape := true
	shapeGames, err := r.store.CountGames(ctx, r.profile.ID, model.LeaderboardFilter{ShapeMode: &shape})
	if err != nil {
		log.WithError(err).Warn("failed to count shape games")
		return
	}
	unlocked, err := r.tracker.Check(ctx, achievement.GameEvent{
		UserID:      r.profile.ID,
		Score:       res.Score,
		Streak:      res.BestStreak,
		Mode:        res.Mode,
		ShapeMode:   res.ShapeMode,
		GamesPlayed: played,
		ShapeGames:  shapeGames,
	})
	if err != nil {
		log.WithError(err).Warn("failed to check achievements")
	}
	for _, a := range unlocked {
		log.WithField("achievement", a.ID).Info("achievement unlocked")
	}
	if len(unlocked) > 0 && r.onUnlock != nil {
		r.onUnlock(unlocked)
	}
}

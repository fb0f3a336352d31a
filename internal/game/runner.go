package game

import (
	"sync"
	"time"

	"github.com/verte-zerg/colornova/internal/model"
)

// DefaultTickInterval is the cadence of both countdowns.
const DefaultTickInterval = time.Second

// Runner drives a Controller from wall-clock ticks. Each tick is a one-shot
// timer re-armed after it fires; a mutex serializes ticks with commands.
// Listeners run under that mutex and must not call back into the Runner.
type Runner struct {
	mu       sync.Mutex
	ctrl     *Controller
	interval time.Duration
	timer    *time.Timer
	// armed changes whenever the timer is cancelled so a callback already
	// waiting on mu can tell it was stopped.
	armed uint64
}

// NewRunner wraps ctrl. A non-positive interval uses DefaultTickInterval.
func NewRunner(ctrl *Controller, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Runner{ctrl: ctrl, interval: interval}
}

// Start begins a session and arms the first tick.
func (r *Runner) Start(mode model.ModeID, shapeMode bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimer()
	if err := r.ctrl.Start(mode, shapeMode); err != nil {
		return err
	}
	r.arm(r.ctrl.Generation())
	return nil
}

// Reset stops future ticks and clears the controller.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimer()
	r.ctrl.Reset()
}

// Stop cancels future ticks and leaves the controller as it is.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimer()
}

// Tap forwards a tap under the runner lock.
func (r *Runner) Tap(index int) (TapResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctrl.Tap(index)
}

// TogglePause forwards a pause toggle under the runner lock.
func (r *Runner) TogglePause() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctrl.TogglePause()
}

// Shuffle forwards a shuffle under the runner lock.
func (r *Runner) Shuffle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctrl.Shuffle()
}

// Snapshot returns the controller state under the runner lock.
func (r *Runner) Snapshot() SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctrl.Snapshot()
}

func (r *Runner) arm(gen uint64) {
	armed := r.armed
	r.timer = time.AfterFunc(r.interval, func() {
		r.fire(gen, armed)
	})
}

func (r *Runner) fire(gen, armed uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.armed != armed || r.ctrl.Generation() != gen {
		return
	}
	r.ctrl.Tick()
	switch r.ctrl.State() {
	case StateActive, StatePaused:
		r.arm(gen)
	default:
		r.timer = nil
	}
}

func (r *Runner) stopTimer() {
	r.armed++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

package game

// Clock holds the round and session countdowns in whole seconds. It does not
// schedule anything itself; callers deliver one tick per second.
type Clock struct {
	roundDuration    int
	sessionDuration  int
	roundRemaining   int
	sessionRemaining int
	running          bool
	paused           bool
}

// Start loads both countdowns and unpauses the clock.
func (c *Clock) Start(roundSeconds, sessionSeconds int) {
	c.roundDuration = roundSeconds
	c.sessionDuration = sessionSeconds
	c.roundRemaining = roundSeconds
	c.sessionRemaining = sessionSeconds
	c.running = true
	c.paused = false
}

// Stop freezes both countdowns until the next Start.
func (c *Clock) Stop() {
	c.running = false
	c.paused = false
}

// TogglePause flips the pause flag and returns the new value. It has no effect
// on a stopped clock.
func (c *Clock) TogglePause() bool {
	if !c.running {
		return c.paused
	}
	c.paused = !c.paused
	return c.paused
}

// Ticking reports whether a tick would advance time.
func (c *Clock) Ticking() bool {
	return c.running && !c.paused
}

// TickRound advances the round countdown. When it reaches zero the round has
// expired and the countdown reloads to the full round duration.
func (c *Clock) TickRound() (expired bool) {
	if !c.Ticking() {
		return false
	}
	c.roundRemaining--
	if c.roundRemaining > 0 {
		return false
	}
	c.roundRemaining = c.roundDuration
	return true
}

// TickSession advances the session countdown and reports whether it reached zero.
// The clock stops itself on expiry.
func (c *Clock) TickSession() (expired bool) {
	if !c.Ticking() {
		return false
	}
	c.sessionRemaining--
	if c.sessionRemaining > 0 {
		return false
	}
	c.sessionRemaining = 0
	c.running = false
	return true
}

// ResetRound reloads the round countdown.
func (c *Clock) ResetRound() {
	c.roundRemaining = c.roundDuration
}

// Elapsed returns whole seconds spent in the current round.
func (c *Clock) Elapsed() int {
	return c.roundDuration - c.roundRemaining
}

// RoundRemaining returns seconds left in the round.
func (c *Clock) RoundRemaining() int { return c.roundRemaining }

// SessionRemaining returns seconds left in the session.
func (c *Clock) SessionRemaining() int { return c.sessionRemaining }

// Paused reports the pause flag.
func (c *Clock) Paused() bool { return c.paused }

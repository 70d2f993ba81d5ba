package systems

import (
	"time"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/event"
)

// ClockSystem accumulates play time and counts down level time limits
// Only runs while playing; resuming resets the session's tick clock so pauses are not charged
type ClockSystem struct{}

// NewClockSystem creates the play clock system
func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

// Priority returns the system's priority
func (s *ClockSystem) Priority() int {
	return constants.PriorityClock
}

// Update advances the clock by the elapsed time since the previous tick
func (s *ClockSystem) Update(sess *engine.Session, now time.Time) {
	dt := min(max(now.Sub(sess.LastTick), 0), constants.MaxTickDelta)
	sess.LastTick = now
	sess.PlayTime += dt

	if !sess.Timed() || sess.Cleared {
		return
	}

	sess.TimeLeft -= dt
	if sess.TimeLeft <= 0 {
		// Surviving the time limit wins the level
		sess.TimeLeft = 0
		sess.Cleared = true
		sess.Emit(event.EventLevelCleared, nil)
	}
}

package systems

import (
	"time"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/event"
)

// EffectSystem applies scheduled effects of the active session once they are due
// Runs while paused so pop removals and level clears keep their wall-clock timing
type EffectSystem struct{}

// NewEffectSystem creates the scheduled effect system
func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

// Priority returns the system's priority
func (s *EffectSystem) Priority() int {
	return constants.PriorityEffects
}

// Background keeps the system running while the session is paused
func (s *EffectSystem) Background() bool {
	return true
}

// Update pops due effects; effects of abandoned sessions are dropped by the schedule
func (s *EffectSystem) Update(sess *engine.Session, now time.Time) {
	removed := false
	for _, e := range sess.Schedule.PopDue(now, sess.Generation) {
		switch e.Kind {
		case engine.TimerRemoveBalloon:
			if sess.RemoveBalloon(e.BalloonID) {
				removed = true
			}
		case engine.TimerLevelClear:
			sess.Emit(event.EventLevelCleared, nil)
		}
	}
	if removed {
		sess.RefreshOptions()
	}
}

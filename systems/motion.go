package systems

import (
	"slices"
	"time"

	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/event"
)

// MotionSystem moves balloons down and resolves the ones that leave the field
type MotionSystem struct{}

// NewMotionSystem creates the motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update advances every balloon, then partitions on the same positions:
// a tick with any missed answerable balloon costs exactly one life, and every balloon
// past the bottom edge is removed
func (s *MotionSystem) Update(sess *engine.Session, now time.Time) {
	scale := 1.0
	if sess.Frozen(now) {
		scale = constants.FreezeFactor
	}
	for _, b := range sess.Balloons {
		b.Advance(scale)
	}

	bound := sess.Field.Height
	missed := 0
	for _, b := range sess.Balloons {
		if b.Y > bound && b.Answerable() {
			missed++
		}
	}

	before := len(sess.Balloons)
	sess.Balloons = slices.DeleteFunc(sess.Balloons, func(b *components.Balloon) bool {
		return b.Y > bound
	})

	if len(sess.Balloons) != before {
		sess.RefreshOptions()
	}
	if missed > 0 {
		sess.Emit(event.EventBalloonMissed, &event.MissPayload{Count: missed})
	}
}

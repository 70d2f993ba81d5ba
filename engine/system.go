package engine

import "time"

// System is one stage of the per-tick simulation, run in ascending Priority
type System interface {
	Priority() int
	Update(s *Session, now time.Time)
}

// BackgroundSystem marks a system that keeps running while the session is paused
type BackgroundSystem interface {
	System
	Background() bool
}

func runsWhilePaused(sys System) bool {
	b, ok := sys.(BackgroundSystem)
	return ok && b.Background()
}

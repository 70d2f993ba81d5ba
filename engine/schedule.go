package engine

import (
	"slices"
	"time"
)

// TimerKind identifies a delayed session effect
type TimerKind int

const (
	// TimerRemoveBalloon removes a popped balloon after the settle delay
	TimerRemoveBalloon TimerKind = iota
	// TimerLevelClear signals level completion after the settle delay
	TimerLevelClear
)

// ScheduledEffect is a one-shot effect tagged with the session generation that created it
type ScheduledEffect struct {
	Kind       TimerKind
	Due        time.Time
	Generation uint64
	BalloonID  string
}

// Schedule holds pending effects checked once per tick
type Schedule struct {
	effects []ScheduledEffect
}

// Add queues an effect
func (s *Schedule) Add(e ScheduledEffect) {
	s.effects = append(s.effects, e)
}

// PopDue removes and returns effects of generation gen whose due time has passed, in due order
// Effects of any other generation are discarded
func (s *Schedule) PopDue(now time.Time, gen uint64) []ScheduledEffect {
	var due []ScheduledEffect
	kept := s.effects[:0]
	for _, e := range s.effects {
		switch {
		case e.Generation != gen:
			// Stale
		case !e.Due.After(now):
			due = append(due, e)
		default:
			kept = append(kept, e)
		}
	}
	clear(s.effects[len(kept):])
	s.effects = kept

	slices.SortStableFunc(due, func(a, b ScheduledEffect) int {
		return a.Due.Compare(b.Due)
	})
	return due
}

// Purge drops every effect not belonging to gen
func (s *Schedule) Purge(gen uint64) {
	s.effects = slices.DeleteFunc(s.effects, func(e ScheduledEffect) bool {
		return e.Generation != gen
	})
}

// Len returns the number of pending effects
func (s *Schedule) Len() int { return len(s.effects) }

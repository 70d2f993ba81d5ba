package engine

import "github.com/lixenwraith/balloon-math/constants"

// Stats is the player's running record
// Score, Lives, Combo and MaxCombo belong to one level attempt; Level and Stars persist across attempts
type Stats struct {
	Score    int
	Lives    int
	Combo    int
	MaxCombo int
	Level    int // Highest unlocked level id
	Stars    int
}

// NewStats returns a record with the first level unlocked
func NewStats(firstLevel int) Stats {
	return Stats{Lives: constants.StartingLives, Level: firstLevel}
}

// ResetAttempt clears per-attempt counters
func (s *Stats) ResetAttempt() {
	s.Score = 0
	s.Lives = constants.StartingLives
	s.Combo = 0
	s.MaxCombo = 0
}

// Penalize removes one life (floor 0) and breaks the combo
// Returns true when no lives remain
func (s *Stats) Penalize() bool {
	s.Lives = max(s.Lives-1, 0)
	s.Combo = 0
	return s.Lives == 0
}

// Hit advances the combo after a successful pop
func (s *Stats) Hit() {
	s.Combo++
	s.MaxCombo = max(s.MaxCombo, s.Combo)
}

// Credit records a completed level: unlocks the next id and awards stars
func (s *Stats) Credit(levelID int) {
	s.Level = max(s.Level, levelID+1)
	s.Stars += constants.LevelStarBonus
}

// Unlocked reports whether a level id is playable
func (s *Stats) Unlocked(levelID int) bool {
	return levelID <= s.Level
}

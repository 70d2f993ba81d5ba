package engine

import (
	"time"

	"github.com/lixenwraith/balloon-math/components"
)

// LevelSummary is one entry of the level map
type LevelSummary struct {
	ID          int
	Title       string
	Description string
	Unlocked    bool
}

// Snapshot is the render sink's copy of the game for one frame
type Snapshot struct {
	State string
	Field Field

	LevelID    int
	LevelTitle string
	Final      bool

	Balloons  []components.Balloon
	Particles []components.Particle
	Options   []int

	Score      int
	Lives      int
	Combo      int
	MaxCombo   int
	Multiplier int
	Frozen     bool
	Timed      bool
	TimeLeft   time.Duration
	Threshold  int

	Unlocked int
	Stars    int
	Levels   []LevelSummary
	Muted    bool

	// SplashReady is true once the splash screen accepts input
	SplashReady bool
}

// HasSession reports whether the snapshot carries level attempt data
func (s *Snapshot) HasSession() bool {
	return s.LevelID != 0
}

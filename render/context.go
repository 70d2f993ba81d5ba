package render

import (
	"time"

	"github.com/lixenwraith/balloon-math/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot *engine.Snapshot
	Layout   Layout
	Now      time.Time

	// Cursor is the highlighted level on the level map (index into Snapshot.Levels)
	Cursor int
}

// Playing reports whether the playfield is visible (playing or paused)
func (c RenderContext) Playing() bool {
	return c.Snapshot.State == engine.StatePlaying || c.Snapshot.State == engine.StatePaused
}

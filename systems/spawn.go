package systems

import (
	"time"

	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/problem"
)

// SpawnSystem releases at most one balloon per tick
type SpawnSystem struct{}

// NewSpawnSystem creates the spawner
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Interval returns the minimum gap between spawns for a level speed
// Faster levels spawn more densely
func Interval(speed float64) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(constants.BaseSpawnInterval) / speed)
}

// Update spawns a balloon when the interval has passed and the level is below its maximum
func (s *SpawnSystem) Update(sess *engine.Session, now time.Time) {
	if now.Sub(sess.LastSpawn) <= Interval(sess.Level.Speed) {
		return
	}
	if len(sess.Balloons) >= sess.Level.MaxBalloons {
		return
	}
	sess.LastSpawn = now
	sess.AddBalloon(s.create(sess))
}

func (s *SpawnSystem) create(sess *engine.Session) *components.Balloon {
	rng := sess.Rand
	cat := components.RollCategory(rng.Float64())

	span := sess.Field.Width - constants.BalloonWidth - 2*constants.BalloonMarginX
	x := constants.BalloonMarginX + rng.Float64()*max(span, 0)
	x = min(max(x, 0), max(sess.Field.Width-constants.BalloonWidth, 0))

	p := problem.Generate(rng, sess.Level.Operations, sess.Level.Low(), sess.Level.High())
	speed := sess.Level.Speed + rng.Float64()*constants.SpeedJitter
	color := rng.IntN(constants.PaletteSize)

	return components.NewBalloon(x, constants.SpawnY, speed, cat, p, color)
}

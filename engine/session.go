package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/event"
	"github.com/lixenwraith/balloon-math/level"
)

// Field is the playfield size in world units
type Field struct {
	Width  float64
	Height float64
}

// DefaultField returns the portrait playfield
func DefaultField() Field {
	return Field{Width: constants.FieldWidth, Height: constants.FieldHeight}
}

// Session is one level attempt; it exclusively owns its balloons and particles
type Session struct {
	Generation uint64
	Level      *level.Config
	Final      bool
	Stats      *Stats
	Field      Field

	Balloons  []*components.Balloon
	Particles []components.Particle
	Options   []int

	FreezeUntil     time.Time
	MultiplierUntil time.Time

	LastSpawn time.Time
	LastTick  time.Time
	PlayTime  time.Duration
	TimeLeft  time.Duration // Meaningful only when Level.TimeLimit > 0

	// Cleared is set once the level is won; a cleared session can no longer be lost
	Cleared bool

	Schedule *Schedule
	Rand     *rand.Rand

	queue *event.EventQueue
}

// NewSession starts a fresh attempt; stats are reset for the attempt
func NewSession(gen uint64, cfg *level.Config, final bool, stats *Stats, field Field, schedule *Schedule, rng *rand.Rand, queue *event.EventQueue, now time.Time) *Session {
	stats.ResetAttempt()
	schedule.Purge(gen)
	return &Session{
		Generation: gen,
		Level:      cfg,
		Final:      final,
		Stats:      stats,
		Field:      field,
		Options:    []int{},
		LastTick:   now,
		TimeLeft:   cfg.Duration(),
		Schedule:   schedule,
		Rand:       rng,
		queue:      queue,
	}
}

// Timed reports whether the level has a time limit
func (s *Session) Timed() bool {
	return s.Level.TimeLimit > 0
}

// Frozen reports whether slow motion is active
func (s *Session) Frozen(now time.Time) bool {
	return now.Before(s.FreezeUntil)
}

// Multiplier returns the active score multiplier
func (s *Session) Multiplier(now time.Time) int {
	if now.Before(s.MultiplierUntil) {
		return constants.StarMultiplier
	}
	return 1
}

// FindByAnswer returns the first non-popping balloon whose answer is value
func (s *Session) FindByAnswer(value int) *components.Balloon {
	for _, b := range s.Balloons {
		if b.Live() && b.Problem.Answer == value {
			return b
		}
	}
	return nil
}

// AddBalloon inserts a balloon and rebuilds the options
func (s *Session) AddBalloon(b *components.Balloon) {
	s.Balloons = append(s.Balloons, b)
	s.RefreshOptions()
}

// RemoveBalloon deletes a balloon by id, reporting whether it was present
func (s *Session) RemoveBalloon(id string) bool {
	for i, b := range s.Balloons {
		if b.ID == id {
			s.Balloons = append(s.Balloons[:i], s.Balloons[i+1:]...)
			return true
		}
	}
	return false
}

// RefreshOptions recomputes the option set from scratch
func (s *Session) RefreshOptions() {
	s.Options = BuildOptions(s.Balloons, s.Level.High(), s.Rand)
}

// After schedules an effect for this session
func (s *Session) After(d time.Duration, now time.Time, kind TimerKind, balloonID string) {
	s.Schedule.Add(ScheduledEffect{
		Kind:       kind,
		Due:        now.Add(d),
		Generation: s.Generation,
		BalloonID:  balloonID,
	})
}

// Emit queues an event for dispatch at the end of the current step
func (s *Session) Emit(et event.EventType, payload any) {
	if s.queue != nil {
		s.queue.Emit(et, payload)
	}
}

// Notify requests a sound
func (s *Session) Notify(sound audio.SoundType) {
	s.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: sound})
}

// Burst spawns pop debris at a balloon's center
func (s *Session) Burst(b *components.Balloon) {
	cx := b.X + constants.BalloonWidth/2
	cy := b.Y + constants.BalloonHeight/2
	for i := 0; i < constants.ParticleBurstCount; i++ {
		angle := 2 * math.Pi * float64(i) / constants.ParticleBurstCount
		speed := constants.ParticleSpeed * (0.5 + s.Rand.Float64())
		s.Particles = append(s.Particles, components.Particle{
			X:     cx,
			Y:     cy,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Color: b.Color,
			Life:  1,
			Size:  constants.ParticleSize * (0.5 + s.Rand.Float64()),
		})
	}
}

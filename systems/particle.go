package systems

import (
	"time"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
)

// ParticleSystem ages pop debris
type ParticleSystem struct{}

// NewParticleSystem creates the particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticles
}

// Update steps every particle and drops the dead ones
func (s *ParticleSystem) Update(sess *engine.Session, _ time.Time) {
	alive := sess.Particles[:0]
	for i := range sess.Particles {
		p := sess.Particles[i]
		if p.Step(constants.ParticleGravity, constants.ParticleLifeDecay, constants.ParticleShrink) {
			alive = append(alive, p)
		}
	}
	clear(sess.Particles[len(alive):])
	sess.Particles = alive
}

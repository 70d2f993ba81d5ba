package constants

// Playfield geometry in logical units; frontends scale it to their surface
const (
	FieldWidth  = 400.0
	FieldHeight = 800.0

	// BalloonWidth and BalloonHeight are the rendered footprint of a balloon
	BalloonWidth  = 80.0
	BalloonHeight = 100.0

	// BalloonMarginX keeps spawned balloons off the left and right edges
	BalloonMarginX = 10.0

	// SpawnY places new balloons above the visible top edge
	SpawnY = -150.0
)

// Particle Constants
const (
	ParticleBurstCount = 12
	ParticleSpeed      = 4.0
	ParticleSize       = 6.0
	ParticleGravity    = 0.2
	ParticleLifeDecay  = 0.03
	ParticleShrink     = 0.95
)

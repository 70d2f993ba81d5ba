package components

// Particle is visual-only pop debris
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  int
	Life   float64 // 1 at birth, dead at <= 0
	Size   float64
}

// Step ages the particle by one tick and reports whether it is still alive
func (p *Particle) Step(gravity, decay, shrink float64) bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Life -= decay
	p.Size *= shrink
	return p.Life > 0
}

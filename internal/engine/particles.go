package engine

import "github.com/vovakirdan/quiz-runner/internal/config"

// Particle is a cosmetic dust mote kicked up by the running character.
// Particles never affect collision, score, or mode.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at birth, removed at 0
}

// ParticleField owns the dust particles.
type ParticleField struct {
	particles []Particle
	rng       Rand
	cfg       *config.RunnerConfig
}

// NewParticleField creates an empty field drawing from rng.
func NewParticleField(cfg *config.RunnerConfig, rng Rand) *ParticleField {
	return &ParticleField{
		particles: make([]Particle, 0, 32),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset removes all particles.
func (f *ParticleField) Reset() {
	f.particles = f.particles[:0]
}

// Update maybe emits a particle at the character's feet, then advances and
// ages every particle.
func (f *ParticleField) Update(c Character, speed float64) {
	pc := f.cfg.Particles
	if c.Grounded() && f.rng.Float64() < pc.SpawnChance {
		f.particles = append(f.particles, Particle{
			X:    f.cfg.Player.X + pc.OffsetX,
			Y:    c.Y + f.cfg.Player.Height - pc.OffsetY,
			VX:   -speed * pc.Drift,
			VY:   f.rng.Float64() * pc.MaxVY,
			Life: 1,
		})
	}

	alive := f.particles[:0]
	for _, p := range f.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= pc.Decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	f.particles = alive
}

// Particles returns the live particles.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

package pinelight

import "math/rand/v2"

// Particle holds per-ornament simulation state. Only the integrator writes
// currentPosition, rotation, and parallaxShift; everything else is fixed at
// build time and lives until the whole set is rebuilt.
type Particle struct {
	restPosition    Vec3 // point on the cone, fixed at creation
	explosionTarget Vec3 // point in the shell, fixed at creation
	currentPosition Vec3 // the only continuously-mutated position

	rotation      Vec3 // per-axis orientation in radians
	rotationSpeed Vec3 // small fixed per-axis angular velocity

	parallaxShift       Vec2    // decays or tracks the pointer, state-dependent
	parallaxSensitivity float64 // fixed scalar in [0.4, 1.6]

	size       float64 // render scale
	brightness float64 // render tint
}

// Position returns the particle's live position.
func (p *Particle) Position() Vec3 { return p.currentPosition }

// Rest returns the particle's fixed resting position on the cone.
func (p *Particle) Rest() Vec3 { return p.restPosition }

// Target returns the particle's fixed explosion shell target.
func (p *Particle) Target() Vec3 { return p.explosionTarget }

// Rotation returns the particle's live orientation.
func (p *Particle) Rotation() Vec3 { return p.rotation }

// ParticleSet is a batch of particles animated together. Sets are built
// wholesale and replaced wholesale: there is no partial mutation of the
// collection outside a full rebuild.
type ParticleSet struct {
	particles []Particle
}

// Len returns the number of particles in the set.
func (s *ParticleSet) Len() int { return len(s.particles) }

// At returns the particle at index i for inspection. The returned pointer
// stays valid until the set is rebuilt.
func (s *ParticleSet) At(i int) *Particle { return &s.particles[i] }

// samplerFunc produces one rest position; the set builder pairs each rest
// position with a fresh shell target.
type samplerFunc func() Vec3

// buildSet creates count particles with rest positions from sample and
// explosion targets in the configured shell. Rotation speeds, parallax
// sensitivities, and render attributes are randomized once here.
func buildSet(cfg *Config, count int, sample samplerFunc) *ParticleSet {
	particles := make([]Particle, count)
	for i := range particles {
		p := &particles[i]
		p.restPosition = sample()
		p.currentPosition = p.restPosition
		p.explosionTarget = ShellPoint(cfg.ShellRadius, cfg.ShellOffset)
		p.rotationSpeed = Vec3{
			X: (rand.Float64() - 0.5) * 0.02,
			Y: (rand.Float64() - 0.5) * 0.02,
			Z: (rand.Float64() - 0.5) * 0.02,
		}
		p.parallaxSensitivity = 0.4 + rand.Float64()*1.2
		p.size = 0.35 + rand.Float64()*0.5
		p.brightness = 0.6 + rand.Float64()*0.4
	}
	return &ParticleSet{particles: particles}
}

// buildTreeSet builds the main ornament set on the cone surface.
func buildTreeSet(cfg *Config) *ParticleSet {
	return buildSet(cfg, cfg.ParticleCount, func() Vec3 {
		return ConePoint(cfg.TreeHeight, cfg.TreeRadius)
	})
}

// buildGarlandSet builds the auxiliary light set spiraling the cone.
func buildGarlandSet(cfg *Config) *ParticleSet {
	return buildSet(cfg, cfg.GarlandCount, func() Vec3 {
		return SpiralPoint(cfg.TreeHeight, cfg.TreeRadius, 6)
	})
}

package pinelight

import "math"

const (
	// parallaxSmoothing is the exponential smoothing factor for the
	// per-particle parallax offset while exploded.
	parallaxSmoothing = 0.08
	// parallaxDecay shrinks a stale parallax offset each frame.
	parallaxDecay = 0.95
	// returnTolerance is the max distance from rest at which a particle
	// counts as returned.
	returnTolerance = 0.1
)

// Integrator advances particle motion one frame at a time. It holds no
// mutable state of its own: the animation state is passed in explicitly so
// a single call is fully determined by its arguments and the particle.
type Integrator struct {
	cfg *Config
}

func newIntegrator(cfg *Config) *Integrator {
	return &Integrator{cfg: cfg}
}

// advance updates one particle for the current frame. now is scene time in
// seconds, index phases the per-particle waveforms, pointer is the
// normalized pointer vector in [-1, 1].
//
// A record whose position has gone non-finite is skipped so one bad
// particle cannot take the rest of the scene down with it.
func (in *Integrator) advance(p *Particle, st State, now float64, index int, pointer Vec2) {
	if !p.currentPosition.IsFinite() {
		return
	}

	// Rotation advances in every state.
	p.rotation = p.rotation.Add(p.rotationSpeed)

	cfg := in.cfg
	switch st {
	case StateIdle:
		// Vertical sine float only; horizontal and depth snap to rest
		// so no drift accumulates across cycles.
		p.currentPosition.X = p.restPosition.X
		p.currentPosition.Z = p.restPosition.Z
		p.currentPosition.Y = p.restPosition.Y +
			cfg.IdleFloatAmount*math.Sin(now*cfg.IdleFloatSpeed+float64(index)*0.1)
		p.parallaxShift.X *= parallaxDecay
		p.parallaxShift.Y *= parallaxDecay

	case StateExploding:
		if cfg.ParallaxEnabled {
			tx := pointer.X * cfg.ParallaxStrength.X * p.parallaxSensitivity
			ty := pointer.Y * cfg.ParallaxStrength.Y * p.parallaxSensitivity
			p.parallaxShift.X = approach(p.parallaxShift.X, tx, parallaxSmoothing)
			p.parallaxShift.Y = approach(p.parallaxShift.Y, ty, parallaxSmoothing)
		} else {
			p.parallaxShift.X *= parallaxDecay
			p.parallaxShift.Y *= parallaxDecay
		}

		// Parallax shifts the target laterally and vertically; depth is
		// left alone so the shell keeps its silhouette.
		target := p.explosionTarget
		target.X += p.parallaxShift.X
		target.Y += p.parallaxShift.Y
		p.currentPosition = approachVec(p.currentPosition, target, cfg.AnimationSpeed)

		// Small tri-axis jitter keeps the expanded shell organic.
		j := cfg.JitterAmount
		fi := float64(index)
		p.currentPosition.X += j * math.Sin(now*3.1+fi)
		p.currentPosition.Y += j * math.Sin(now*2.7+fi*1.3)
		p.currentPosition.Z += j * math.Cos(now*3.7+fi*0.7)

		// Faster fixed spin while exploded, distinct from the idle speed.
		p.rotation.X += cfg.ExplodeSpin
		p.rotation.Y += cfg.ExplodeSpin

	case StateReturning:
		p.currentPosition = approachVec(p.currentPosition, p.restPosition, cfg.AnimationSpeed)
		p.parallaxShift.X *= parallaxDecay
		p.parallaxShift.Y *= parallaxDecay
	}
}

// advanceAll runs the integrator over every particle in the set.
func (s *ParticleSet) advanceAll(in *Integrator, st State, now float64, pointer Vec2) {
	for i := range s.particles {
		in.advance(&s.particles[i], st, now, i, pointer)
	}
}

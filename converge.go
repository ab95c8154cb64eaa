package pinelight

// allReturned reports whether every particle in the set sits within tol of
// its rest position. Recomputed every frame while returning; this is the
// only signal that drives the StateReturning to StateIdle transition.
//
// Records with a non-finite position are skipped, matching the integrator:
// a faulted particle must not wedge the scene in StateReturning forever.
func (s *ParticleSet) allReturned(tol float64) bool {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.currentPosition.IsFinite() {
			continue
		}
		if p.currentPosition.DistanceTo(p.restPosition) > tol {
			return false
		}
	}
	return true
}

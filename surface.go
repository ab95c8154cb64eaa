package pinelight

import "github.com/hajimehoshi/ebiten/v2"

// glowDivisor is the downscale factor for the glow surface. Blurring falls
// out of drawing the scene into a smaller buffer and stretching it back.
const glowDivisor = 2

// Surfaces owns the offscreen buffers the scene renders through: the
// full-size render surface and the reduced glow surface for the additive
// post pass. Surfaces are created lazily on first use and recreated on
// resize; a resize to the current size is a no-op.
type Surfaces struct {
	scene *ebiten.Image
	glow  *ebiten.Image
	w, h  int
}

// Resize recreates both buffers for a new viewport. Idempotent for a
// repeated size.
func (s *Surfaces) Resize(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	s.w = width
	s.h = height
	if s.scene != nil {
		s.scene.Deallocate()
		s.scene = nil
	}
	if s.glow != nil {
		s.glow.Deallocate()
		s.glow = nil
	}
}

// Scene returns the full-size render surface, allocating it on first use.
func (s *Surfaces) Scene() *ebiten.Image {
	if s.scene == nil && s.w > 0 && s.h > 0 {
		s.scene = ebiten.NewImage(s.w, s.h)
	}
	return s.scene
}

// Glow returns the reduced post-processing surface, allocating it on first
// use.
func (s *Surfaces) Glow() *ebiten.Image {
	if s.glow == nil && s.w > 0 && s.h > 0 {
		s.glow = ebiten.NewImage(s.w/glowDivisor, s.h/glowDivisor)
	}
	return s.glow
}

// Size returns the current surface dimensions.
func (s *Surfaces) Size() (w, h int) {
	return s.w, s.h
}

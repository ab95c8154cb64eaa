package pinelight

import (
	"math"
	"math/rand/v2"
)

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// ConePoint samples a resting position on the surface of an upright cone
// with its base at y=0: radius shrinks linearly from baseRadius at the
// bottom to zero at height. Sampling is uniform in height, which leaves the
// tree denser toward the tip the way stacked branches look.
func ConePoint(height, baseRadius float64) Vec3 {
	t := rand.Float64()
	angle := rand.Float64() * 2 * math.Pi
	r := (1 - t) * baseRadius
	return Vec3{
		X: r * math.Cos(angle),
		Y: t * height,
		Z: r * math.Sin(angle),
	}
}

// SpiralPoint samples a position on a spiral winding up the same cone,
// used for the garland set. turns is the number of full revolutions from
// base to tip.
func SpiralPoint(height, baseRadius, turns float64) Vec3 {
	t := rand.Float64()
	angle := t * turns * 2 * math.Pi
	r := (1 - t) * baseRadius
	return Vec3{
		X: r * math.Cos(angle),
		Y: t * height,
		Z: r * math.Sin(angle),
	}
}

// ShellPoint samples an explosion target in a hollow sphere shell centered
// at offset: a uniform direction at a radius drawn from radii. Directions
// are uniform on the sphere (uniform cos-latitude), so the shell has no
// polar clustering.
func ShellPoint(radii Range, offset Vec3) Vec3 {
	u := rand.Float64()*2 - 1 // cos of polar angle
	angle := rand.Float64() * 2 * math.Pi
	s := math.Sqrt(1 - u*u)
	r := radii.Random()
	return Vec3{
		X: offset.X + r*s*math.Cos(angle),
		Y: offset.Y + r*u,
		Z: offset.Z + r*s*math.Sin(angle),
	}
}

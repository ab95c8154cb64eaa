package pinelight

import "math"

// Vec3 is a 3D vector used for positions, offsets, and angular velocities
// throughout the API. The coordinate system is right-handed with Y up;
// Z increases toward the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalized returns v scaled to unit length, or the zero vector if v has
// no length.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// IsFinite reports whether all three components are finite numbers.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vec2 is a 2D vector used for pointer positions and parallax offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned screen-space rectangle. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the position samplers and the scene builders.
type Range struct {
	Min, Max float64
}

// State identifies the scene's animation phase. Exactly one State value is
// live per Scene at any instant; the Machine is the only writer.
type State uint8

const (
	StateIdle      State = iota // particles rest on the tree, floating gently
	StateExploding              // particles travel toward their shell targets
	StateReturning              // particles travel back toward their rest positions
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExploding:
		return "exploding"
	case StateReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// PointerKind distinguishes the origin of an interaction event. Touch-born
// taps ask the host to suppress the default action; mouse taps never do,
// so pointer tracking elsewhere keeps working.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Event is a single user interaction delivered to Controller.Trigger.
// X and Y are screen coordinates.
type Event struct {
	Kind PointerKind
	X, Y float64
}

// approach moves current toward target by fraction k and returns the result.
// This is a first-order exponential decay, not a fixed-step traversal: the
// value asymptotically nears the target without necessarily reaching it.
func approach(current, target, k float64) float64 {
	return current + (target-current)*k
}

// approachVec applies approach per component.
func approachVec(current, target Vec3, k float64) Vec3 {
	return Vec3{
		X: approach(current.X, target.X, k),
		Y: approach(current.Y, target.Y, k),
		Z: approach(current.Z, target.Z, k),
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

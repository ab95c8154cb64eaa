package pinelight

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// reactDistance scales the rig's resting distance per state: the camera
// pulls back while the shell is expanded.
func reactDistance(base float64, st State) float64 {
	switch st {
	case StateExploding:
		return base * 1.35
	default:
		return base
	}
}

// CameraRig is the 3D view into the scene: a perspective camera orbiting
// the tree center plus an orthographic overlay frustum for flat props.
// The rig reacts to state changes with a distance tween and smooths a
// small orbit toward the pointer each frame.
type CameraRig struct {
	// LookAt is the world point the camera centers on.
	LookAt Vec3

	fov        float64
	near       float64
	width      int
	height     int
	aspect     float64
	orthoZoom  float64
	orthoHalfW float64
	orthoHalfH float64

	baseDistance float64
	distance     float64

	yaw, pitch float64 // pointer-driven orbit, radians

	distTween *gween.Tween
}

// maxOrbit bounds the pointer-driven orbit angles.
const (
	maxOrbitYaw   = 0.35
	maxOrbitPitch = 0.18
	orbitLerp     = 0.06
	nearPlane     = 0.1
)

func newCameraRig(cfg *Config) *CameraRig {
	return &CameraRig{
		LookAt:       Vec3{Y: cfg.TreeHeight * 0.45},
		fov:          cfg.FieldOfView,
		near:         nearPlane,
		orthoZoom:    cfg.OrthoZoom,
		baseDistance: cfg.CameraDistance,
		distance:     cfg.CameraDistance,
	}
}

// SetViewport updates both projections for a new viewport size: the
// perspective aspect ratio and the symmetric orthographic frustum sized by
// the zoom constant and the same aspect. Idempotent for a repeated size.
func (r *CameraRig) SetViewport(width, height int) {
	r.width = width
	r.height = height
	r.aspect = float64(width) / float64(height)
	r.orthoHalfH = r.orthoZoom
	r.orthoHalfW = r.orthoZoom * r.aspect
}

// OrthoExtents returns the orthographic overlay frustum's half extents.
func (r *CameraRig) OrthoExtents() (halfW, halfH float64) {
	return r.orthoHalfW, r.orthoHalfH
}

// React starts the rig's distance tween for the new state. Registered as
// the Machine's change hook, so it runs synchronously inside SetState.
func (r *CameraRig) React(st State) {
	target := reactDistance(r.baseDistance, st)
	r.distTween = gween.New(float32(r.distance), float32(target), 1.2, ease.OutCubic)
}

// update advances the reaction tween and eases the orbit toward the
// pointer. Called once per tick before the particles integrate.
func (r *CameraRig) update(dt float32, pointer Vec2) {
	if r.distTween != nil {
		val, done := r.distTween.Update(dt)
		r.distance = float64(val)
		if done {
			r.distTween = nil
		}
	}
	r.yaw = approach(r.yaw, pointer.X*maxOrbitYaw, orbitLerp)
	r.pitch = approach(r.pitch, -pointer.Y*maxOrbitPitch, orbitLerp)
}

// Eye returns the camera position on its orbit around LookAt.
func (r *CameraRig) Eye() Vec3 {
	cp := math.Cos(r.pitch)
	return Vec3{
		X: r.LookAt.X + r.distance*cp*math.Sin(r.yaw),
		Y: r.LookAt.Y + r.distance*math.Sin(r.pitch),
		Z: r.LookAt.Z + r.distance*cp*math.Cos(r.yaw),
	}
}

// Project maps a world point to screen coordinates with a perspective
// divide. ok is false when the point sits behind the near plane. depth is
// the camera-space distance along the view axis, used for painter sorting
// and size attenuation.
func (r *CameraRig) Project(v Vec3) (sx, sy, depth float64, ok bool) {
	eye := r.Eye()
	forward := r.LookAt.Sub(eye).Normalized()
	right := forward.Cross(Vec3{Y: 1}).Normalized()
	up := right.Cross(forward)

	d := v.Sub(eye)
	z := d.Dot(forward)
	if z <= r.near {
		return 0, 0, z, false
	}
	x := d.Dot(right)
	y := d.Dot(up)

	f := float64(r.height) / 2 / math.Tan(r.fov/2)
	sx = float64(r.width)/2 + x*f/z
	sy = float64(r.height)/2 - y*f/z
	return sx, sy, z, true
}

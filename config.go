package pinelight

import "time"

// Config controls scene construction and animation behavior. Obtain a
// baseline with DefaultConfig and adjust fields before NewScene; after
// construction, tune live through Scene.Config().
//
// Malformed values (negative durations, non-finite coordinates) are not
// validated: they produce garbage motion, never a crash.
type Config struct {
	// ParticleCount is the size of the main ornament set.
	ParticleCount int
	// TreeHeight and TreeRadius define the cone the ornaments rest on.
	TreeHeight float64
	TreeRadius float64
	// GarlandCount is the size of the auxiliary spiral light set.
	// Zero disables the garland.
	GarlandCount int
	// SnowfallCount is the number of falling snow props around the
	// tree. Snow never joins the explosion; zero disables it.
	SnowfallCount int

	// HoldDuration is how long an explosion stays expanded before the
	// auto-return fires.
	HoldDuration time.Duration
	// ReassembleOnClick makes a tap during StateExploding start the return
	// immediately instead of being ignored.
	ReassembleOnClick bool

	// AnimationSpeed is the per-frame approach fraction in (0, 1] used
	// while exploding and returning.
	AnimationSpeed float64
	// IdleFloatSpeed and IdleFloatAmount shape the vertical sine float
	// while idle. The float's period is 2π/IdleFloatSpeed seconds.
	IdleFloatSpeed  float64
	IdleFloatAmount float64
	// JitterAmount is the amplitude of the per-axis sinusoidal jitter
	// superimposed while exploded.
	JitterAmount float64
	// ExplodeSpin is the extra fixed rotation increment per frame while
	// exploded, on top of each particle's own rotation speed.
	ExplodeSpin float64

	// ShellRadius is the hollow-sphere explosion shell: targets are
	// sampled at a radius in [Min, Max] around ShellOffset.
	ShellRadius Range
	// ShellOffset shifts the shell center away from the tree origin.
	ShellOffset Vec3

	// ParallaxEnabled turns on per-particle pointer parallax while
	// exploded; when false, existing offsets decay instead.
	ParallaxEnabled bool
	// ParallaxStrength scales the normalized pointer vector into world
	// units before each particle's own sensitivity applies.
	ParallaxStrength Vec2

	// TapSlop is the maximum pointer travel in pixels for a
	// press/release pair to count as a tap. Zero means every release
	// counts, regardless of travel.
	TapSlop float64
	// UIRegion is a screen-space rectangle whose taps never reach the
	// scene (reserved for host UI).
	UIRegion Rect

	// FieldOfView is the perspective camera's vertical FOV in radians.
	FieldOfView float64
	// OrthoZoom sizes the orthographic overlay frustum: half-height is
	// OrthoZoom, half-width is OrthoZoom times the aspect ratio.
	OrthoZoom float64
	// CameraDistance is the rig's resting distance from the tree center.
	CameraDistance float64

	// UncapFPS disables vsync and ticks as fast as the host allows
	// instead of syncing to the display refresh.
	UncapFPS bool
	// GlowEnabled turns on the additive glow pass.
	GlowEnabled bool
}

// DefaultConfig returns the tuning used by the stock tree scene.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 420,
		TreeHeight:    9.0,
		TreeRadius:    3.2,
		GarlandCount:  140,
		SnowfallCount: 120,

		HoldDuration:      4 * time.Second,
		ReassembleOnClick: true,

		AnimationSpeed:  0.04,
		IdleFloatSpeed:  1.6,
		IdleFloatAmount: 0.08,
		JitterAmount:    0.012,
		ExplodeSpin:     0.05,

		ShellRadius: Range{Min: 7.5, Max: 10.5},
		ShellOffset: Vec3{Y: 4.5},

		ParallaxEnabled:  true,
		ParallaxStrength: Vec2{X: 1.4, Y: 0.9},

		TapSlop: 6,

		FieldOfView:    0.9,
		OrthoZoom:      7.0,
		CameraDistance: 22.0,

		GlowEnabled: true,
	}
}

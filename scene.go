package pinelight

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object: it owns the particle sets, the state
// machine, the camera rig, the render surfaces, and the per-tick loop.
// Scene implements ebiten.Game; hand it to Run (or ebiten.RunGame) to
// start the loop.
//
// Everything runs on ebiten's single update goroutine. The integrator runs
// for every particle before convergence is inspected, and both run before
// the frame is drawn; nothing outside the Scene writes particle positions.
type Scene struct {
	// Background is the clear color behind the particles.
	Background Color

	cfg        Config
	machine    *Machine
	controller *Controller
	integrator *Integrator
	rig        *CameraRig
	surfaces   *Surfaces
	rend       renderer

	main *ParticleSet
	aux  []*ParticleSet
	snow *snowfield

	pointer PointerTracker
	taps    tapWatcher
	injectQ []Event

	hooks    Hooks
	sink     EventSink
	clock    func() time.Time
	epoch    time.Time
	lastTick time.Time

	starAngle float64

	showFPS bool
	fps     fpsOverlay
	debug   bool
}

// Tints for the stock particle sets and the snow props.
var (
	mainTint    = Color{R: 1.0, G: 0.86, B: 0.57}
	garlandTint = Color{R: 0.62, G: 0.86, B: 1.0}
	snowTint    = Color{R: 0.92, G: 0.95, B: 1.0}
)

// NewScene builds a scene from the config: the main ornament set on the
// cone, the garland set if enabled, and the wired-up controller. All hooks
// are optional.
func NewScene(cfg Config, hooks Hooks) *Scene {
	hooks.normalize()

	s := &Scene{
		Background: Color{R: 0.01, G: 0.02, B: 0.05},
		cfg:        cfg,
		hooks:      hooks,
		clock:      time.Now,
		surfaces:   &Surfaces{},
	}
	s.rig = newCameraRig(&s.cfg)

	// The rig's reaction runs first, then the host's camera hook, both
	// synchronously inside every state write.
	s.machine = newMachine(func(st State) {
		s.rig.React(st)
		s.hooks.UpdateCamera(st)
		s.publish(SceneEvent{Kind: EventTransition, State: st})
	})

	s.integrator = newIntegrator(&s.cfg)
	s.controller = newController(&s.cfg, s.machine, hooks, s.rig, s.surfaces, func() time.Time {
		return s.clock()
	})
	s.taps.slop = cfg.TapSlop
	s.epoch = s.clock()

	s.Rebuild()
	return s
}

// Config returns a pointer to the scene's config for live tuning. Fields
// that affect particle construction take effect on the next Rebuild.
func (s *Scene) Config() *Config { return &s.cfg }

// Rebuild replaces every particle set wholesale, resampling rest positions
// and shell targets from the current config.
func (s *Scene) Rebuild() {
	s.main = buildTreeSet(&s.cfg)
	s.aux = s.aux[:0]
	if s.cfg.GarlandCount > 0 {
		s.aux = append(s.aux, buildGarlandSet(&s.cfg))
	}
	s.snow = nil
	if s.cfg.SnowfallCount > 0 {
		s.snow = newSnowfield(s.cfg.SnowfallCount, s.cfg.TreeHeight, s.cfg.TreeRadius)
	}
	s.taps.slop = s.cfg.TapSlop
}

// State returns the current animation state.
func (s *Scene) State() State { return s.machine.State() }

// SetState forces an animation state, firing the camera hooks the same way
// a transition would.
func (s *Scene) SetState(st State) { s.machine.SetState(st) }

// Particles returns the main ornament set.
func (s *Scene) Particles() *ParticleSet { return s.main }

// Trigger feeds one interaction event through the transition rules. The
// return value reports whether the host should suppress the event's
// default action (touch only). Exposed for hosts that do their own input
// handling; the built-in tap watcher calls this itself.
func (s *Scene) Trigger(ev Event) bool { return s.controller.Trigger(ev) }

// CancelPendingTimer clears any outstanding auto-return.
func (s *Scene) CancelPendingTimer() { s.controller.CancelPendingTimer() }

// HandleResize reacts to a new viewport size. Called automatically from
// Layout; exposed for hosts that drive the loop themselves.
func (s *Scene) HandleResize(width, height int) { s.controller.HandleResize(width, height) }

// SetShowFPS toggles the FPS overlay.
func (s *Scene) SetShowFPS(show bool) { s.showFPS = show }

// SetDebugMode enables per-frame timing stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// InjectTap queues a synthetic tap at the given screen coordinates,
// consumed on the next tick exactly like a real one. Useful for demos and
// automated runs.
func (s *Scene) InjectTap(x, y float64) {
	s.injectQ = append(s.injectQ, Event{Kind: PointerMouse, X: x, Y: y})
}

// Update advances the scene one tick. Implements ebiten.Game.
func (s *Scene) Update() error {
	now := s.clock()

	w, h := s.surfaces.Size()
	s.pointer.update(now, w, h)

	s.tick(now)

	// Host input last, so a tap's transition lands on the next tick's
	// integration, never in the middle of this one.
	for _, ev := range s.injectQ {
		s.acceptTap(ev)
	}
	s.injectQ = s.injectQ[:0]
	s.taps.poll(s.acceptTap)
	return nil
}

// acceptTap routes one tap through the transition rules and publishes it.
func (s *Scene) acceptTap(ev Event) {
	s.controller.Trigger(ev)
	s.publish(SceneEvent{Kind: EventTap, Tap: ev})
}

// tick is one frame of scene logic, separated from host input reads.
// Ordering is fixed: timer poll, auxiliary effects, integration over every
// set, then the convergence check.
func (s *Scene) tick(now time.Time) {
	t := now.Sub(s.epoch).Seconds()
	stats := tickStats{start: now}

	s.controller.pollTimer(now)

	dt := s.tickDelta(now)
	s.rig.update(float32(dt), s.pointer.Vector())
	s.starAngle += 0.01
	if s.snow != nil {
		s.snow.update(dt, t)
	}
	s.hooks.UpdateAux(t)

	st := s.machine.State()
	ptr := s.pointer.Vector()
	s.main.advanceAll(s.integrator, st, t, ptr)
	for _, set := range s.aux {
		set.advanceAll(s.integrator, st, t, ptr)
	}
	stats.advanceTime = time.Since(now)
	stats.particleCount = s.particleCount()

	if st == StateReturning && s.converged() {
		s.machine.SetState(StateIdle)
	}

	if s.debug {
		s.debugLog(stats)
	}
}

// Bounds for the measured frame delta. Outside them (first tick, a clock
// jump, a long stall) the nominal 60 Hz step is used instead.
const (
	nominalTickDelta = 1.0 / 60.0
	maxTickDelta     = 0.25
)

// tickDelta measures the time since the previous tick. The delta comes
// from the scene clock, not ebiten's TPS setting: with UncapFPS the TPS is
// ebiten.SyncWithFPS (-1) and reading it back would poison every
// time-step consumer.
func (s *Scene) tickDelta(now time.Time) float64 {
	last := s.lastTick
	s.lastTick = now
	if last.IsZero() {
		return nominalTickDelta
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 || dt > maxTickDelta {
		return nominalTickDelta
	}
	return dt
}

// converged reports whether every set has returned to rest.
func (s *Scene) converged() bool {
	if !s.main.allReturned(returnTolerance) {
		return false
	}
	for _, set := range s.aux {
		if !set.allReturned(returnTolerance) {
			return false
		}
	}
	return true
}

func (s *Scene) particleCount() int {
	n := s.main.Len()
	for _, set := range s.aux {
		n += set.Len()
	}
	return n
}

// Draw renders the scene. Implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.controller.HandleResize(b.Dx(), b.Dy())

	target := s.surfaces.Scene()
	if target == nil {
		return
	}
	target.Fill(s.Background.toRGBA())

	s.rend.collect(s.main, s.rig, mainTint)
	for _, set := range s.aux {
		s.rend.collect(set, s.rig, garlandTint)
	}
	if s.snow != nil {
		s.snow.collect(&s.rend, s.rig, snowTint)
	}
	s.collectStar()
	s.rend.flush(target)

	composite(screen, s.surfaces, s.cfg.GlowEnabled)

	if s.showFPS {
		s.fps.draw(screen)
	}
}

// collectStar queues the spinning tree-topper quad. The star is an
// ancillary prop: it rides the tick like everything else but never joins
// the explosion.
func (s *Scene) collectStar() {
	tip := Vec3{Y: s.cfg.TreeHeight + 0.3}
	sx, sy, depth, ok := s.rig.Project(tip)
	if !ok {
		return
	}
	focal := float64(s.rig.height) / 2 / math.Tan(s.rig.fov/2)
	s.rend.items = append(s.rend.items, renderItem{
		sx:       sx,
		sy:       sy,
		scale:    1.1 * focal / depth,
		rotation: s.starAngle,
		depth:    depth,
		alpha:    1,
		tint:     Color{R: 1, G: 0.95, B: 0.7},
	})
}

// Layout reports the render size and reacts to window resizes.
// Implements ebiten.Game.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.controller.HandleResize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

package pinelight

import "time"

// Hooks are the side-effecting capabilities the scene core invokes at
// transitions and per frame. Any nil hook is replaced with a no-op at
// construction, so partially-wired hosts degrade instead of crashing.
type Hooks struct {
	// OnExplosionStart fires when a trigger starts an explosion.
	OnExplosionStart func()
	// OnReturnStart fires when the hold timer elapses or a reassemble
	// tap starts the return.
	OnReturnStart func()
	// UpdateCamera is invoked synchronously on every state write, after
	// the rig's own reaction.
	UpdateCamera func(State)
	// UpdateAux runs once per tick before the particles integrate, for
	// host-driven ancillary animations. now is scene time in seconds.
	UpdateAux func(now float64)
}

// normalize fills nil hooks with no-ops.
func (h *Hooks) normalize() {
	if h.OnExplosionStart == nil {
		h.OnExplosionStart = func() {}
	}
	if h.OnReturnStart == nil {
		h.OnReturnStart = func() {}
	}
	if h.UpdateCamera == nil {
		h.UpdateCamera = func(State) {}
	}
	if h.UpdateAux == nil {
		h.UpdateAux = func(float64) {}
	}
}

// Controller owns the transition rules and the single outstanding
// auto-return timer. Everything runs on the scene's tick; the timer is a
// deadline polled from the frame loop, so scheduling and cancellation are
// plain field writes inside one handler and can never race a firing.
type Controller struct {
	cfg     *Config
	machine *Machine
	hooks   Hooks
	clock   func() time.Time

	rig      *CameraRig
	surfaces *Surfaces

	returnAt     time.Time
	timerPending bool
}

func newController(cfg *Config, machine *Machine, hooks Hooks, rig *CameraRig, surfaces *Surfaces, clock func() time.Time) *Controller {
	hooks.normalize()
	if clock == nil {
		clock = time.Now
	}
	return &Controller{
		cfg:      cfg,
		machine:  machine,
		hooks:    hooks,
		clock:    clock,
		rig:      rig,
		surfaces: surfaces,
	}
}

// Trigger handles one scene tap. Taps inside the configured UI region are
// never treated as scene interactions. The return value tells the host
// whether to suppress the event's default action: true only for
// touch-originated events, so mouse taps keep pointer tracking intact.
func (c *Controller) Trigger(ev Event) bool {
	if r := c.cfg.UIRegion; r.Width > 0 && r.Height > 0 && r.Contains(ev.X, ev.Y) {
		return false
	}
	suppress := ev.Kind == PointerTouch

	switch st := c.machine.State(); {
	case st == StateExploding && c.cfg.ReassembleOnClick:
		// Manual reassemble: no new timer. The return ends on
		// convergence, not on time.
		c.CancelPendingTimer()
		c.hooks.OnReturnStart()
		c.machine.SetState(StateReturning)

	case st != StateIdle && st != StateReturning:
		// Already exploding (reassemble disabled) or an unrecognized
		// state: ignore.

	default:
		// Idle, or re-explode while returning. Cancelling first leaves
		// no window where the old timer and the new explosion could
		// both take effect.
		c.CancelPendingTimer()
		c.machine.SetState(StateExploding)
		c.hooks.OnExplosionStart()
		c.returnAt = c.clock().Add(c.cfg.HoldDuration)
		c.timerPending = true
	}
	return suppress
}

// CancelPendingTimer clears any outstanding auto-return. Idempotent.
func (c *Controller) CancelPendingTimer() {
	c.timerPending = false
}

// pollTimer fires the auto-return once its deadline has passed. Called at
// the top of every tick.
func (c *Controller) pollTimer(now time.Time) {
	if !c.timerPending || now.Before(c.returnAt) {
		return
	}
	c.timerPending = false
	c.hooks.OnReturnStart()
	c.machine.SetState(StateReturning)
}

// HandleResize reacts to a new viewport size: the perspective projection
// gets the new aspect ratio, the orthographic overlay frustum is resized
// from the zoom constant and the same aspect, and the render and glow
// surfaces are recreated at the new size. Repeated calls with an identical
// size are no-ops.
func (c *Controller) HandleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.rig.SetViewport(width, height)
	c.surfaces.Resize(width, height)
}

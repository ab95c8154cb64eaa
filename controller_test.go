package pinelight

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time               { return c.now }
func (c *fakeClock) Advance(d time.Duration)      { c.now = c.now.Add(d) }
func (c *fakeClock) At(d time.Duration) time.Time { return c.now.Add(d) }

// controllerFixture wires a controller with counting hooks and a fake
// clock.
type controllerFixture struct {
	cfg        Config
	machine    *Machine
	controller *Controller
	clock      *fakeClock
	explosions int
	returns    int
}

func newControllerFixture(t *testing.T, mutate func(*Config)) *controllerFixture {
	t.Helper()
	f := &controllerFixture{
		cfg:   testConfig(),
		clock: &fakeClock{now: time.Unix(1000, 0)},
	}
	f.cfg.HoldDuration = time.Second
	if mutate != nil {
		mutate(&f.cfg)
	}
	f.machine = newMachine(nil)
	rig := newCameraRig(&f.cfg)
	f.controller = newController(&f.cfg, f.machine, Hooks{
		OnExplosionStart: func() { f.explosions++ },
		OnReturnStart:    func() { f.returns++ },
	}, rig, &Surfaces{}, f.clock.Now)
	return f
}

func (f *controllerFixture) tap() {
	f.controller.Trigger(Event{Kind: PointerMouse, X: 400, Y: 300})
}

func TestExplodeFromIdle(t *testing.T) {
	f := newControllerFixture(t, nil)

	f.tap()
	if f.machine.State() != StateExploding {
		t.Fatalf("state = %s, want exploding", f.machine.State())
	}
	if f.explosions != 1 {
		t.Errorf("OnExplosionStart fired %d times, want 1", f.explosions)
	}
	if !f.controller.timerPending {
		t.Error("explosion must schedule the auto-return")
	}
}

func TestExplodeFromReturning(t *testing.T) {
	f := newControllerFixture(t, nil)
	f.machine.SetState(StateReturning)

	f.tap()
	if f.machine.State() != StateExploding {
		t.Fatalf("state = %s, want exploding", f.machine.State())
	}
	if f.explosions != 1 {
		t.Errorf("OnExplosionStart fired %d times, want 1", f.explosions)
	}
}

func TestTapWhileExplodingIsNoopWithoutReassemble(t *testing.T) {
	f := newControllerFixture(t, func(cfg *Config) {
		cfg.ReassembleOnClick = false
	})

	f.tap()
	deadline := f.controller.returnAt
	f.tap() // second tap while exploding

	if f.machine.State() != StateExploding {
		t.Errorf("state = %s, want exploding", f.machine.State())
	}
	if f.explosions != 1 {
		t.Errorf("OnExplosionStart fired %d times, want 1", f.explosions)
	}
	if !f.controller.timerPending || f.controller.returnAt != deadline {
		t.Error("no-op tap must leave the pending timer untouched")
	}
}

func TestReassembleTapWhileExploding(t *testing.T) {
	f := newControllerFixture(t, func(cfg *Config) {
		cfg.ReassembleOnClick = true
	})

	f.tap()
	f.tap() // reassemble

	if f.machine.State() != StateReturning {
		t.Fatalf("state = %s, want returning", f.machine.State())
	}
	if f.returns != 1 {
		t.Errorf("OnReturnStart fired %d times, want 1", f.returns)
	}
	if f.controller.timerPending {
		t.Error("reassemble must cancel the timer and schedule no new one")
	}

	// The return ends on convergence, never on time: polling far in the
	// future must not fire anything.
	f.controller.pollTimer(f.clock.At(time.Hour))
	if f.returns != 1 || f.machine.State() != StateReturning {
		t.Error("no timer may drive the return after a reassemble")
	}
}

func TestNewExplosionCancelsPriorTimer(t *testing.T) {
	f := newControllerFixture(t, func(cfg *Config) {
		cfg.ReassembleOnClick = true
	})

	f.tap() // explode; deadline at +1s
	f.clock.Advance(200 * time.Millisecond)
	f.tap() // reassemble; timer cancelled
	f.clock.Advance(100 * time.Millisecond)
	f.tap() // re-explode while returning; new deadline at +1.3s

	// Past the original deadline, before the new one: the original
	// callback must never fire.
	f.clock.Advance(800 * time.Millisecond) // t = +1.1s
	f.controller.pollTimer(f.clock.Now())
	if f.machine.State() != StateExploding {
		t.Fatal("original timer fired after being superseded")
	}
	if f.returns != 1 {
		t.Errorf("OnReturnStart fired %d times, want 1 (reassemble only)", f.returns)
	}

	// The replacement deadline still works.
	f.clock.Advance(200 * time.Millisecond) // t = +1.3s
	f.controller.pollTimer(f.clock.Now())
	if f.machine.State() != StateReturning {
		t.Error("replacement timer did not fire")
	}
	if f.returns != 2 {
		t.Errorf("OnReturnStart fired %d times, want 2", f.returns)
	}
}

func TestTimerFiresAfterExactlyHoldDuration(t *testing.T) {
	f := newControllerFixture(t, nil)

	f.tap()
	f.controller.pollTimer(f.clock.At(999 * time.Millisecond))
	if f.machine.State() != StateExploding {
		t.Fatal("timer fired early")
	}

	f.controller.pollTimer(f.clock.At(1000 * time.Millisecond))
	if f.machine.State() != StateReturning {
		t.Fatal("timer did not fire at the hold duration")
	}
	if f.returns != 1 {
		t.Errorf("OnReturnStart fired %d times, want 1", f.returns)
	}
	if f.controller.timerPending {
		t.Error("firing must clear the timer's own handle")
	}

	// Further polls are inert.
	f.controller.pollTimer(f.clock.At(2 * time.Second))
	if f.returns != 1 {
		t.Error("timer fired twice")
	}
}

func TestCancelPendingTimerIdempotent(t *testing.T) {
	f := newControllerFixture(t, nil)

	f.controller.CancelPendingTimer() // nothing scheduled: no-op
	f.tap()
	f.controller.CancelPendingTimer()
	f.controller.CancelPendingTimer()

	f.controller.pollTimer(f.clock.At(time.Hour))
	if f.machine.State() != StateExploding {
		t.Error("cancelled timer still fired")
	}
	if f.returns != 0 {
		t.Errorf("OnReturnStart fired %d times, want 0", f.returns)
	}
}

func TestUIRegionTapsIgnored(t *testing.T) {
	f := newControllerFixture(t, func(cfg *Config) {
		cfg.UIRegion = Rect{X: 0, Y: 0, Width: 200, Height: 100}
	})

	suppress := f.controller.Trigger(Event{Kind: PointerTouch, X: 50, Y: 50})
	if f.machine.State() != StateIdle {
		t.Error("UI-region tap reached the scene")
	}
	if suppress {
		t.Error("UI-region tap must not suppress the default action")
	}

	// Just outside the region counts.
	f.controller.Trigger(Event{Kind: PointerMouse, X: 201, Y: 50})
	if f.machine.State() != StateExploding {
		t.Error("tap outside the UI region was ignored")
	}
}

func TestOnlyTouchSuppressesDefault(t *testing.T) {
	f := newControllerFixture(t, nil)

	if f.controller.Trigger(Event{Kind: PointerMouse, X: 400, Y: 300}) {
		t.Error("mouse tap must not suppress the default action")
	}

	f.machine.SetState(StateIdle)
	if !f.controller.Trigger(Event{Kind: PointerTouch, X: 400, Y: 300}) {
		t.Error("touch tap must suppress the default action")
	}
}

func TestUnrecognizedStateIgnoresTriggers(t *testing.T) {
	f := newControllerFixture(t, nil)
	f.machine.SetState(State(42))

	f.tap()
	if f.machine.State() != State(42) {
		t.Error("trigger in unrecognized state must be ignored")
	}
	if f.explosions != 0 || f.returns != 0 {
		t.Error("no hook may fire for an ignored trigger")
	}
}

func TestHandleResizeIdempotent(t *testing.T) {
	f := newControllerFixture(t, nil)
	rig := f.controller.rig

	f.controller.HandleResize(800, 600)
	aspect1 := rig.aspect
	hw1, hh1 := rig.OrthoExtents()

	f.controller.HandleResize(800, 600)
	aspect2 := rig.aspect
	hw2, hh2 := rig.OrthoExtents()

	assertNear(t, "aspect stable", aspect2, aspect1)
	assertNear(t, "ortho half width stable", hw2, hw1)
	assertNear(t, "ortho half height stable", hh2, hh1)

	// The ortho frustum follows the zoom constant and the aspect.
	assertNear(t, "ortho half height", hh1, f.cfg.OrthoZoom)
	assertNear(t, "ortho half width", hw1, f.cfg.OrthoZoom*800.0/600.0)

	// Degenerate sizes are ignored.
	f.controller.HandleResize(0, 600)
	assertNear(t, "aspect after degenerate resize", rig.aspect, aspect1)
}

package pinelight

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointerSmoothing eases the published vector toward the raw pointer.
const pointerSmoothing = 0.1

// PointerTracker maintains the normalized pointer vector the integrator
// consumes read-only. The vector maps the viewport to [-1, 1] on both axes
// (up positive) and is exponentially smoothed; the raw position also feeds
// the last-move timestamp.
type PointerTracker struct {
	vector   Vec2
	raw      Vec2
	lastMove time.Time
	lastX    int
	lastY    int
	seen     bool
}

// Vector returns the smoothed normalized pointer vector.
func (t *PointerTracker) Vector() Vec2 { return t.vector }

// LastMove returns the time of the most recent pointer movement.
func (t *PointerTracker) LastMove() time.Time { return t.lastMove }

// update reads the host cursor once per tick, renormalizes against the
// viewport, and advances the smoothing.
func (t *PointerTracker) update(now time.Time, width, height int) {
	x, y := ebiten.CursorPosition()
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
	}
	t.observe(now, x, y, width, height)
}

// observe feeds one raw pointer position. Split from update so tests can
// drive the tracker without a window. Positions outside the viewport, as
// ebiten reports for an out-of-window cursor, clamp to the unit square so
// the published vector never leaves [-1, 1].
func (t *PointerTracker) observe(now time.Time, x, y, width, height int) {
	if width > 0 && height > 0 {
		t.raw = Vec2{
			X: clampUnit(float64(x)/float64(width)*2 - 1),
			Y: clampUnit(-(float64(y)/float64(height)*2 - 1)),
		}
	}
	if !t.seen || x != t.lastX || y != t.lastY {
		t.lastMove = now
		t.lastX, t.lastY = x, y
		t.seen = true
	}
	t.vector.X = approach(t.vector.X, t.raw.X, pointerSmoothing)
	t.vector.Y = approach(t.vector.Y, t.raw.Y, pointerSmoothing)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// tapWatcher turns raw press/release pairs into tap Events. A press that
// travels more than slop pixels before releasing is a drag, not a tap;
// slop zero disables the distance check entirely.
type tapWatcher struct {
	slop float64

	mouseDown                bool
	mouseStartX, mouseStartY float64
	mouseTravel              float64

	touchDown                bool
	touchID                  ebiten.TouchID
	touchStartX, touchStartY float64
	touchLastX, touchLastY   float64
	touchTravel              float64

	touchScratch []ebiten.TouchID
}

// poll reads the host input state once per tick and emits at most one tap
// per pointer transition.
func (w *tapWatcher) poll(emit func(Event)) {
	w.pollMouse(emit)
	w.pollTouch(emit)
}

func (w *tapWatcher) pollMouse(emit func(Event)) {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !w.mouseDown:
		w.mouseDown = true
		w.mouseStartX, w.mouseStartY = fx, fy
		w.mouseTravel = 0
	case pressed && w.mouseDown:
		w.mouseTravel = math.Max(w.mouseTravel, dist2D(fx, fy, w.mouseStartX, w.mouseStartY))
	case !pressed && w.mouseDown:
		w.mouseDown = false
		if w.isTap(w.mouseTravel) {
			emit(Event{Kind: PointerMouse, X: fx, Y: fy})
		}
	}
}

// isTap applies the travel threshold; slop zero accepts any release.
func (w *tapWatcher) isTap(travel float64) bool {
	return w.slop == 0 || travel <= w.slop
}

func (w *tapWatcher) pollTouch(emit func(Event)) {
	w.touchScratch = ebiten.AppendTouchIDs(w.touchScratch[:0])

	if !w.touchDown {
		if len(w.touchScratch) > 0 {
			id := w.touchScratch[0]
			x, y := ebiten.TouchPosition(id)
			w.touchDown = true
			w.touchID = id
			w.touchStartX, w.touchStartY = float64(x), float64(y)
			w.touchLastX, w.touchLastY = float64(x), float64(y)
			w.touchTravel = 0
		}
		return
	}

	for _, id := range w.touchScratch {
		if id != w.touchID {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		w.touchLastX, w.touchLastY = float64(x), float64(y)
		w.touchTravel = math.Max(w.touchTravel,
			dist2D(w.touchLastX, w.touchLastY, w.touchStartX, w.touchStartY))
		return
	}

	// Tracked touch lifted.
	w.touchDown = false
	if w.isTap(w.touchTravel) {
		emit(Event{Kind: PointerTouch, X: w.touchLastX, Y: w.touchLastY})
	}
}

func dist2D(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

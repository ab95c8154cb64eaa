package pinelight

import (
	"testing"
	"time"
)

func TestObserveNormalizesToUnitSquare(t *testing.T) {
	cases := []struct {
		name  string
		x, y  int
		wantX float64
		wantY float64
	}{
		{"center", 400, 300, 0, 0},
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 800, 600, 1, -1},
		{"right-middle", 800, 300, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tr PointerTracker
			tr.observe(time.Unix(0, 0), tc.x, tc.y, 800, 600)
			assertNear(t, "raw x", tr.raw.X, tc.wantX)
			assertNear(t, "raw y", tr.raw.Y, tc.wantY)
		})
	}
}

func TestObserveClampsOutOfWindowPositions(t *testing.T) {
	cases := []struct {
		name  string
		x, y  int
		wantX float64
		wantY float64
	}{
		{"beyond right edge", 1200, 300, 1, 0},
		{"negative cursor", -150, -40, -1, 1},
		{"far below", 400, 5000, 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tr PointerTracker
			tr.observe(time.Unix(0, 0), tc.x, tc.y, 800, 600)
			assertNear(t, "clamped x", tr.raw.X, tc.wantX)
			assertNear(t, "clamped y", tr.raw.Y, tc.wantY)
		})
	}
}

func TestObserveSmoothsTowardRaw(t *testing.T) {
	var tr PointerTracker
	now := time.Unix(0, 0)

	tr.observe(now, 800, 300, 800, 600)
	assertNear(t, "first step", tr.Vector().X, pointerSmoothing)

	for i := 0; i < 500; i++ {
		tr.observe(now, 800, 300, 800, 600)
	}
	assertNearTol(t, "converged", tr.Vector().X, 1, 1e-4)
}

func TestObserveZeroViewportKeepsLastVector(t *testing.T) {
	var tr PointerTracker
	now := time.Unix(0, 0)
	tr.observe(now, 800, 300, 800, 600)
	before := tr.raw

	tr.observe(now, 123, 456, 0, 0)
	if tr.raw != before {
		t.Error("degenerate viewport must not renormalize")
	}
}

func TestLastMoveTracksMovementOnly(t *testing.T) {
	var tr PointerTracker
	t0 := time.Unix(100, 0)
	t1 := t0.Add(time.Second)
	t2 := t1.Add(time.Second)

	tr.observe(t0, 10, 10, 800, 600)
	if !tr.LastMove().Equal(t0) {
		t.Fatal("first observation must stamp last-move")
	}

	tr.observe(t1, 10, 10, 800, 600)
	if !tr.LastMove().Equal(t0) {
		t.Error("stationary pointer must not advance last-move")
	}

	tr.observe(t2, 11, 10, 800, 600)
	if !tr.LastMove().Equal(t2) {
		t.Error("movement must advance last-move")
	}
}

func TestTapWatcherSlop(t *testing.T) {
	cases := []struct {
		name   string
		slop   float64
		travel float64
		want   bool
	}{
		{"within slop", 10, 6, true},
		{"exactly slop", 10, 10, true},
		{"beyond slop is a drag", 10, 40, false},
		{"zero slop never drops", 0, 500, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := tapWatcher{slop: tc.slop}
			if got := w.isTap(tc.travel); got != tc.want {
				t.Errorf("isTap(%v) with slop %v = %v, want %v", tc.travel, tc.slop, got, tc.want)
			}
		})
	}
}

func TestDist2D(t *testing.T) {
	assertNear(t, "3-4-5", dist2D(0, 0, 3, 4), 5)
	assertNear(t, "zero", dist2D(7, 7, 7, 7), 0)
}

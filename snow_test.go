package pinelight

import "testing"

func TestSnowfieldFallsAndWraps(t *testing.T) {
	f := newSnowfield(30, 9.0, 3.2)

	// Pin every flake mid-box so none can wrap during the first step.
	for i := range f.flakes {
		f.flakes[i].pos.Y = 5
	}
	f.update(1.0/60.0, 0)
	for i := range f.flakes {
		if f.flakes[i].pos.Y >= 5 {
			t.Fatalf("flake %d did not fall", i)
		}
	}

	// Run long enough for every flake to cross the floor at least once;
	// heights must stay inside the box.
	for step := 0; step < 60*60; step++ {
		f.update(1.0/60.0, float64(step)/60.0)
		for i := range f.flakes {
			y := f.flakes[i].pos.Y
			if y < -1 || y > f.top {
				t.Fatalf("flake %d escaped the box: y=%v", i, y)
			}
		}
	}
}

func TestSnowfieldStaysOutOfExplosion(t *testing.T) {
	cfg := testConfig()
	cfg.SnowfallCount = 10
	s := NewScene(cfg, Hooks{})

	if s.snow == nil {
		t.Fatal("snowfall not built")
	}
	// Snow is a prop, not an aux particle set: it never gates
	// convergence.
	if len(s.aux) != 0 {
		t.Error("snow must not join the integrator's aux sets")
	}
}

func TestSnowfallDisabledByZeroCount(t *testing.T) {
	s := NewScene(testConfig(), Hooks{})
	if s.snow != nil {
		t.Error("expected no snowfield with SnowfallCount=0")
	}
}

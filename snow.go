package pinelight

import (
	"math"
	"math/rand/v2"
)

// snowflake is one falling prop particle. Snow is ancillary: it never
// joins the explosion and runs its own fall rule instead of the integrator.
type snowflake struct {
	pos   Vec3
	speed float64 // fall speed, world units per second
	phase float64 // horizontal drift phase offset
	size  float64
}

// snowfield animates a loop of falling flakes inside a box around the
// tree. A flake that drops below the floor respawns at the ceiling with a
// fresh horizontal position.
type snowfield struct {
	flakes []snowflake
	halfW  float64
	top    float64
	drift  float64 // horizontal sway amplitude
}

func newSnowfield(count int, height, radius float64) *snowfield {
	f := &snowfield{
		flakes: make([]snowflake, count),
		halfW:  radius * 2.2,
		top:    height * 1.3,
		drift:  0.3,
	}
	for i := range f.flakes {
		f.flakes[i] = snowflake{
			pos: Vec3{
				X: (rand.Float64()*2 - 1) * f.halfW,
				Y: rand.Float64() * f.top,
				Z: (rand.Float64()*2 - 1) * f.halfW,
			},
			speed: 0.6 + rand.Float64()*0.8,
			phase: rand.Float64() * 2 * math.Pi,
			size:  0.06 + rand.Float64()*0.08,
		}
	}
	return f
}

// update advances every flake one frame. now phases the sway so flakes
// don't fall in lockstep.
func (f *snowfield) update(dt, now float64) {
	for i := range f.flakes {
		fl := &f.flakes[i]
		fl.pos.Y -= fl.speed * dt
		fl.pos.X += f.drift * math.Sin(now+fl.phase) * dt
		if fl.pos.Y < 0 {
			fl.pos.Y = f.top
			fl.pos.X = (rand.Float64()*2 - 1) * f.halfW
			fl.pos.Z = (rand.Float64()*2 - 1) * f.halfW
		}
	}
}

// collect projects the flakes into the renderer's item queue.
func (f *snowfield) collect(r *renderer, rig *CameraRig, tint Color) {
	focal := float64(rig.height) / 2 / math.Tan(rig.fov/2)
	for i := range f.flakes {
		fl := &f.flakes[i]
		sx, sy, depth, ok := rig.Project(fl.pos)
		if !ok {
			continue
		}
		r.items = append(r.items, renderItem{
			sx:    sx,
			sy:    sy,
			scale: fl.size * focal / depth,
			depth: depth,
			alpha: 0.8,
			tint:  tint,
		})
	}
}

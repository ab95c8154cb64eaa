package pinelight

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an RGB tint with components in [0, 1]. Alpha comes from the
// particle's brightness at draw time.
type Color struct {
	R, G, B float64
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: 255,
	}
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// whitePixel is a 1x1 white image scaled per particle for solid quads.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// renderItem is one projected particle awaiting the depth-sorted draw.
type renderItem struct {
	sx, sy   float64
	scale    float64
	rotation float64
	depth    float64
	alpha    float64
	tint     Color
}

// renderer projects particle sets to screen space and draws them back to
// front. The item buffer is reused across frames.
type renderer struct {
	items []renderItem
}

// collect projects every particle in the set against the rig, skipping
// points behind the near plane, and queues them for the sorted draw.
func (r *renderer) collect(set *ParticleSet, rig *CameraRig, tint Color) {
	focal := float64(rig.height) / 2 / math.Tan(rig.fov/2)
	for i := range set.particles {
		p := &set.particles[i]
		sx, sy, depth, ok := rig.Project(p.currentPosition)
		if !ok {
			continue
		}
		r.items = append(r.items, renderItem{
			sx:       sx,
			sy:       sy,
			scale:    p.size * focal / depth,
			rotation: p.rotation.Z,
			depth:    depth,
			alpha:    p.brightness,
			tint:     tint,
		})
	}
}

// flush depth-sorts the queued items (far first, painter's order) and
// draws them to dst, then clears the queue.
func (r *renderer) flush(dst *ebiten.Image) {
	sort.Slice(r.items, func(a, b int) bool {
		return r.items[a].depth > r.items[b].depth
	})
	op := &ebiten.DrawImageOptions{}
	for i := range r.items {
		it := &r.items[i]
		op.GeoM.Reset()
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Rotate(it.rotation)
		op.GeoM.Scale(it.scale, it.scale)
		op.GeoM.Translate(it.sx, it.sy)
		op.ColorScale.Reset()
		op.ColorScale.Scale(
			float32(it.tint.R*it.alpha),
			float32(it.tint.G*it.alpha),
			float32(it.tint.B*it.alpha),
			float32(it.alpha),
		)
		dst.DrawImage(whitePixel, op)
	}
	r.items = r.items[:0]
}

// composite copies the render surface to the screen and, when enabled,
// adds the reduced glow surface back on top with additive blending.
func composite(screen *ebiten.Image, surfaces *Surfaces, glow bool) {
	sceneImg := surfaces.Scene()
	if sceneImg == nil {
		return
	}
	screen.DrawImage(sceneImg, nil)

	if !glow {
		return
	}
	glowImg := surfaces.Glow()
	if glowImg == nil {
		return
	}
	glowImg.Clear()

	down := &ebiten.DrawImageOptions{}
	down.GeoM.Scale(1.0/glowDivisor, 1.0/glowDivisor)
	down.Filter = ebiten.FilterLinear
	glowImg.DrawImage(sceneImg, down)

	up := &ebiten.DrawImageOptions{}
	up.GeoM.Scale(glowDivisor, glowDivisor)
	up.Filter = ebiten.FilterLinear
	up.Blend = ebiten.BlendLighter
	up.ColorScale.ScaleAlpha(0.55)
	screen.DrawImage(glowImg, up)
}

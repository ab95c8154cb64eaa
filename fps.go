package pinelight

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the corner. The text image
// is refreshed at most twice a second.
type fpsOverlay struct {
	img   *ebiten.Image
	since int // draws since last refresh
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
		f.since = 1 << 16
	}

	f.since++
	if float64(f.since) > ebiten.ActualTPS()/2 {
		f.since = 0
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	screen.DrawImage(f.img, nil)
}

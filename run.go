package pinelight

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig controls the window Run creates.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// Resizable allows the user to resize the window; the scene reacts
	// through HandleResize.
	Resizable bool
	// ShowFPS enables the FPS overlay.
	ShowFPS bool
}

// Run opens a window and drives the scene until the window closes. The
// scheduling strategy is chosen once here: display-synced by default, or
// free-running when the scene's UncapFPS flag is set.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetShowFPS(cfg.ShowFPS)

	if scene.Config().UncapFPS {
		ebiten.SetVsyncEnabled(false)
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	return ebiten.RunGame(scene)
}

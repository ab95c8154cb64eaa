// Package pinelight renders an interactive 3D particle scene for
// [Ebitengine]: hundreds of ornaments resting on a cone-shaped tree that a
// tap sends flying into a hollow spherical shell, hold there, and drift
// back home.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// drives the loop for you:
//
//	scene := pinelight.NewScene(pinelight.DefaultConfig(), pinelight.Hooks{})
//	if err := pinelight.Run(scene, pinelight.RunConfig{
//		Title: "Tree", Width: 960, Height: 720,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, [Scene] implements [ebiten.Game]: call
// ebiten.RunGame(scene) yourself, or drive Update/Draw from your own game.
//
// # Animation states
//
// A scene is always in exactly one of three states: [StateIdle] (particles
// float gently on the tree), [StateExploding] (particles travel toward
// their shell targets, with pointer parallax), and [StateReturning]
// (particles travel home; the scene goes idle once every particle is
// within tolerance of its rest position). Taps drive the transitions: an
// idle or returning scene explodes, and an exploded scene either ignores
// the tap or, with [Config].ReassembleOnClick, returns immediately. An
// explosion left alone returns on its own after [Config].HoldDuration.
//
// # Hooks
//
// Side effects hang off [Hooks]: explosion/return callbacks (showcase an
// image, or play a chime with [AudioSystem]), a synchronous camera hook for
// every state write, and a per-tick hook for ancillary animations. All
// hooks are optional.
//
// [Ebitengine]: https://ebitengine.org
package pinelight

// Package ecs bridges pinelight scene events into an ECS world.
//
// The primary adapter is [NewDonburiSink], which publishes scene events
// (state transitions and accepted taps) into a [Donburi] world as typed
// events. Subscribe to [SceneEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

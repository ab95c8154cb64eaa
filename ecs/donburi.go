package ecs

import (
	"github.com/glimmerworks/pinelight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for pinelight scene events.
// Subscribe to this in your ECS systems to receive state transitions and
// accepted taps.
var SceneEventType = events.NewEventType[pinelight.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Scene
// events are published to SceneEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pinelight.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pinelight.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}

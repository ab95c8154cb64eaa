package pinelight

// SceneEventKind distinguishes the events a Scene publishes to an
// optional EventSink.
type SceneEventKind uint8

const (
	// EventTransition reports a state write; State carries the new value.
	EventTransition SceneEventKind = iota
	// EventTap reports an accepted scene tap; Tap carries the pointer
	// event that caused it.
	EventTap
)

// SceneEvent is one entry in the scene's outbound event stream.
type SceneEvent struct {
	Kind  SceneEventKind
	State State
	Tap   Event
}

// EventSink receives scene events. Set one with Scene.SetEventSink to
// observe transitions and taps without registering hooks; the ecs
// subpackage bridges a sink into a Donburi world.
type EventSink interface {
	EmitEvent(SceneEvent)
}

// SetEventSink installs the optional event sink. Pass nil to detach.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// publish forwards an event to the sink, if any.
func (s *Scene) publish(ev SceneEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}

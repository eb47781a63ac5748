package pointfield

// EventSink is the interface for optional lifecycle observers such as an ECS
// bridge. Engines and the sequencer call EmitEvent synchronously from Step.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a lifecycle event.
type EventType uint8

const (
	EventTransitionStart  EventType = iota // a sweep began (Activate or Transition)
	EventTransitionCancel                  // an in-flight transition was superseded
	EventSweepEnd                          // the sweep finished and the engine is holding
	EventTransitionDone                    // the hold elapsed; the handle completed
	EventShapeChange                       // the sequencer advanced to a new shape
	EventFieldSampled                      // a particle field was (re)sampled
)

var eventTypeNames = [...]string{
	EventTransitionStart:  "transition-start",
	EventTransitionCancel: "transition-cancel",
	EventSweepEnd:         "sweep-end",
	EventTransitionDone:   "transition-done",
	EventShapeChange:      "shape-change",
	EventFieldSampled:     "field-sampled",
}

// String returns a short kebab-case name for the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries lifecycle data to an EventSink.
type Event struct {
	Type EventType
	// Transition is the sequence number of the transition the event belongs
	// to (0 for field events).
	Transition uint64
	// Shape is the shape name for EventShapeChange.
	Shape string
	// Clock is the emitting engine's clock in seconds.
	Clock float64
	// Count is the number of points or particles involved.
	Count int
}

func emit(sink EventSink, e Event) {
	if sink != nil {
		sink.EmitEvent(e)
	}
}

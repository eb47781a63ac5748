package pointfield

import "fmt"

// Sequencer cycles a GridWaveEngine through a fixed list of shape names. Each
// cycle transitions from the current shape to the next; when the handle
// completes the sequencer advances and starts the following transition.
//
// The sequencer assumes it is the only caller of Transition/Activate on its
// engine. If another caller supersedes its transition, the next Update
// restarts the current step.
type Sequencer struct {
	engine  *GridWaveEngine
	library *ShapeLibrary
	names   []string
	index   int
	handle  *TransitionHandle
	running bool
	sink    EventSink
}

// NewSequencer validates that every name is registered in lib.
func NewSequencer(engine *GridWaveEngine, lib *ShapeLibrary, names []string) (*Sequencer, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("sequencer: no shapes")
	}
	for _, name := range names {
		if _, err := lib.Get(name); err != nil {
			return nil, fmt.Errorf("sequencer: %w", err)
		}
	}
	return &Sequencer{
		engine:  engine,
		library: lib,
		names:   append([]string(nil), names...),
	}, nil
}

// SetEventSink sets the optional lifecycle observer.
func (s *Sequencer) SetEventSink(sink EventSink) { s.sink = sink }

// Current returns the name of the shape being transitioned away from.
func (s *Sequencer) Current() string { return s.names[s.index] }

// Next returns the name of the shape being transitioned to.
func (s *Sequencer) Next() string { return s.names[(s.index+1)%len(s.names)] }

// Running reports whether Start has been called.
func (s *Sequencer) Running() bool { return s.running }

// Start begins cycling from the first shape.
func (s *Sequencer) Start() {
	s.running = true
	s.index = 0
	s.startStep()
}

// Stop stops advancing. The engine finishes whatever it is doing.
func (s *Sequencer) Stop() {
	s.running = false
}

// Update restarts the current step if its transition was superseded. Call
// it once per frame after stepping the engine.
func (s *Sequencer) Update() {
	if !s.running || s.handle == nil {
		return
	}
	if s.handle.Cancelled() {
		s.startStep()
	}
}

func (s *Sequencer) startStep() {
	from, _ := s.library.Get(s.Current())
	to, _ := s.library.Get(s.Next())
	h := s.engine.Transition(from, to)
	s.handle = h
	emit(s.sink, Event{
		Type:       EventShapeChange,
		Transition: h.ID(),
		Shape:      s.Next(),
		Clock:      s.engine.Clock(),
	})
	debugLogf("sequencer: %s -> %s", s.Current(), s.Next())
	h.OnComplete(s.advance)
}

func (s *Sequencer) advance() {
	if !s.running {
		return
	}
	s.index = (s.index + 1) % len(s.names)
	s.startStep()
}

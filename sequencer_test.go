package pointfield

import (
	"errors"
	"testing"
)

func newTestSequencer(t *testing.T, names ...string) (*Sequencer, *GridWaveEngine) {
	t.Helper()
	e := newTestWave(80, 80, 4, 0.1, 0.1)
	s, err := NewSequencer(e, DefaultShapeLibrary(), names)
	if err != nil {
		t.Fatal(err)
	}
	return s, e
}

func TestNewSequencerValidates(t *testing.T) {
	e := newTestWave(80, 80, 4, 0.1, 0.1)
	if _, err := NewSequencer(e, DefaultShapeLibrary(), nil); err == nil {
		t.Error("expected an error for an empty sequence")
	}
	_, err := NewSequencer(e, DefaultShapeLibrary(), []string{ShapeLineChart, "star"})
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("error = %v, want ErrUnknownShape", err)
	}
}

func TestSequencerCycles(t *testing.T) {
	s, e := newTestSequencer(t, ShapeLineChart, ShapeBarChart, ShapePieChart)
	s.Start()
	if s.Current() != ShapeLineChart || s.Next() != ShapeBarChart {
		t.Fatalf("start: %s -> %s", s.Current(), s.Next())
	}

	var order []string
	lastID := e.Handle().ID()
	for i := 0; i < 200 && len(order) < 3; i++ {
		e.Step(frame)
		s.Update()
		if id := e.Handle().ID(); id != lastID {
			lastID = id
			order = append(order, s.Current())
		}
	}
	want := []string{ShapeBarChart, ShapePieChart, ShapeLineChart}
	if len(order) != len(want) {
		t.Fatalf("advanced through %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("advanced through %v, want %v", order, want)
		}
	}
}

func TestSequencerEmitsShapeChange(t *testing.T) {
	sink := &recordingSink{}
	s, _ := newTestSequencer(t, ShapeLineChart, ShapePieChart)
	s.SetEventSink(sink)
	s.Start()
	if len(sink.events) != 1 {
		t.Fatalf("events = %+v", sink.events)
	}
	if e := sink.events[0]; e.Type != EventShapeChange || e.Shape != ShapePieChart {
		t.Errorf("event = %+v", e)
	}
}

func TestSequencerRestartsSupersededStep(t *testing.T) {
	s, e := newTestSequencer(t, ShapeLineChart, ShapeBarChart)
	s.Start()
	first := e.Handle()

	e.Activate(MaskAll)
	s.Update()
	if !first.Cancelled() {
		t.Fatal("first handle should be cancelled")
	}
	if e.Handle().ID() != 3 {
		t.Errorf("handle ID = %d, want 3 (restart after the external call)", e.Handle().ID())
	}
	if s.Current() != ShapeLineChart {
		t.Errorf("Current = %s, want %s", s.Current(), ShapeLineChart)
	}
}

func TestSequencerStop(t *testing.T) {
	s, e := newTestSequencer(t, ShapeLineChart, ShapeBarChart)
	s.Start()
	s.Stop()
	if s.Running() {
		t.Fatal("still running after Stop")
	}
	stepUntilIdle(t, e, 100)
	s.Update()
	if e.Handle().ID() != 1 || s.Current() != ShapeLineChart {
		t.Errorf("stopped sequencer advanced: handle %d current %s", e.Handle().ID(), s.Current())
	}
}

func TestSequencerSingleShape(t *testing.T) {
	s, e := newTestSequencer(t, ShapePieChart)
	s.Start()
	if s.Current() != ShapePieChart || s.Next() != ShapePieChart {
		t.Fatalf("%s -> %s", s.Current(), s.Next())
	}
	for i := 0; i < 60; i++ {
		e.Step(frame)
		s.Update()
	}
	if e.Handle().ID() < 2 {
		t.Error("single-shape sequence did not loop")
	}
}

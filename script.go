package pointfield

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("script has no steps")

// scriptStep is a single action in a script.
//
//	{"action": "pointer", "x": 320, "y": 200}
//	{"action": "glide", "fromX": 0, "fromY": 0, "toX": 640, "toY": 480, "frames": 60}
//	{"action": "release"}
//	{"action": "wait", "frames": 30}
//	{"action": "shape", "name": "pieChart"}
//	{"action": "screenshot", "label": "after-wave"}
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences pointer positions, shape changes and screenshots
// across frames for unattended visual runs. Attach it with
// App.SetScriptRunner; pointer positions are in screen pixels.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "pointer", "glide", "release", "wait", "shape", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from App.Update.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Let queued pointer positions drain before advancing.
	if len(a.pointerBuf) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "pointer":
		a.QueuePointer(st.X, st.Y)
	case "glide":
		frames := max(st.Frames, 2)
		a.QueueGlide(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "release":
		a.particles.ClearPointer()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "shape":
		if mask, err := a.library.Get(st.Name); err != nil {
			warnf("script: %v", err)
		} else {
			a.sequencer.Stop()
			a.wave.Activate(mask)
		}
	case "screenshot":
		a.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.pointerBuf) == 0 {
		r.done = true
	}
}

// QueuePointer queues a pointer position in screen pixels, consumed on the
// next frame.
func (a *App) QueuePointer(x, y float64) {
	a.pointerBuf = append(a.pointerBuf, Vec2{x, y})
}

// QueueGlide queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spanning frames frames, both endpoints included. Minimum frames
// is 2.
func (a *App) QueueGlide(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		a.QueuePointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

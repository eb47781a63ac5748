package pointfield

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WaveState is the state of a GridWaveEngine.
type WaveState uint8

const (
	StateIdle     WaveState = iota // nothing animating; waiting for a trigger
	StateSweeping                  // the wave is crossing the lattice
	StateHolding                   // the sweep finished; holding the shape for PauseDuration
)

// String returns the state name.
func (s WaveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSweeping:
		return "sweeping"
	case StateHolding:
		return "holding"
	default:
		return "unknown"
	}
}

// SweepDirection selects which way the wave crosses the column axis.
type SweepDirection uint8

const (
	// SweepRightward moves from column 0 to the last column. A point has
	// been passed once col − progress ≤ 0.
	SweepRightward SweepDirection = iota
	// SweepLeftward moves from the last column to column 0. A point has
	// been passed once col − progress ≥ 0.
	SweepLeftward
)

// WaveConfig controls the timing and shape of a sweep.
type WaveConfig struct {
	// FlowDuration is the sweep time in seconds. The wave moves at a
	// constant rate, no easing.
	FlowDuration float64
	// PauseDuration is the hold time in seconds after the sweep.
	PauseDuration float64
	// ActiveColumnWidth is the width of the lit leading band, in columns.
	ActiveColumnWidth float64
	// Direction of the sweep; fixed for the lifetime of the engine.
	Direction SweepDirection
}

// DefaultWaveConfig returns a 2s rightward sweep with a 20-column band and a
// 2s hold.
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		FlowDuration:      2,
		PauseDuration:     2,
		ActiveColumnWidth: 20,
		Direction:         SweepRightward,
	}
}

// TransitionHandle tracks one Activate or Transition call. It completes when
// the hold after the sweep elapses, or is cancelled when a newer call
// supersedes it.
type TransitionHandle struct {
	id         uint64
	done       bool
	cancelled  bool
	onComplete []func()
}

// ID returns the transition sequence number (1-based per engine).
func (h *TransitionHandle) ID() uint64 { return h.id }

// Done reports whether the transition ran to completion.
func (h *TransitionHandle) Done() bool { return h.done }

// Cancelled reports whether a newer transition superseded this one.
func (h *TransitionHandle) Cancelled() bool { return h.cancelled }

// Finished reports whether the handle is either done or cancelled.
func (h *TransitionHandle) Finished() bool { return h.done || h.cancelled }

// OnComplete registers fn to run when the transition completes. Callbacks do
// not run for cancelled transitions. If the handle is already done, fn runs
// immediately.
func (h *TransitionHandle) OnComplete(fn func()) {
	if fn == nil || h.cancelled {
		return
	}
	if h.done {
		fn()
		return
	}
	h.onComplete = append(h.onComplete, fn)
}

func (h *TransitionHandle) complete() {
	h.done = true
	fns := h.onComplete
	h.onComplete = nil
	for _, fn := range fns {
		fn()
	}
}

func (h *TransitionHandle) cancel() {
	h.cancelled = true
	h.onComplete = nil
}

// GridWaveEngine drives a Lattice through timed sweep transitions between
// shape masks. It owns the lattice exclusively: only Step, Activate,
// Transition and SetLattice write point state.
//
// There is no global animation manager; the host calls Step once per frame.
type GridWaveEngine struct {
	config  WaveConfig
	lattice *Lattice
	sink    EventSink

	state    WaveState
	clock    float64
	elapsed  float64 // time spent in the current state
	progress float64
	sweep    *gween.Tween
	hold     *gween.Tween

	handle *TransitionHandle
	seq    uint64

	// Masks of the active (or last) transition, kept so a rebuilt lattice
	// can be re-evaluated mid-flight.
	fromMask ShapeMask
	toMask   ShapeMask
	single   bool
}

// NewGridWaveEngine creates an idle engine over l. A nil lattice is treated
// as empty.
func NewGridWaveEngine(l *Lattice, cfg WaveConfig) *GridWaveEngine {
	if l == nil {
		l = &Lattice{}
	}
	if !(cfg.ActiveColumnWidth >= 0) {
		cfg.ActiveColumnWidth = 0
	}
	return &GridWaveEngine{config: cfg, lattice: l}
}

// Config returns the engine configuration.
func (e *GridWaveEngine) Config() WaveConfig { return e.config }

// Lattice returns the lattice the engine drives.
func (e *GridWaveEngine) Lattice() *Lattice { return e.lattice }

// State returns the current state.
func (e *GridWaveEngine) State() WaveState { return e.state }

// Progress returns the wave position in columns. Only meaningful while
// sweeping.
func (e *GridWaveEngine) Progress() float64 { return e.progress }

// Clock returns the seconds accumulated by Step since creation. Masks are
// evaluated with t = Clock().
func (e *GridWaveEngine) Clock() float64 { return e.clock }

// Handle returns the most recent transition handle, or nil.
func (e *GridWaveEngine) Handle() *TransitionHandle { return e.handle }

// SetEventSink sets the optional lifecycle observer.
func (e *GridWaveEngine) SetEventSink(sink EventSink) { e.sink = sink }

// Activate starts a sweep toward mask. Points keep their current opacity
// until the wave reaches them; the shape shown before the call (the previous
// target) persists ahead of the wave.
func (e *GridWaveEngine) Activate(mask ShapeMask) *TransitionHandle {
	h := e.begin(nil, mask, true)
	pts := e.lattice.points
	failures := 0
	for i := range pts {
		p := &pts[i]
		p.WasInPreviousShape = p.InNextShape
		p.InCurrentShape = p.WasInPreviousShape
		p.InNextShape = e.member(mask, p, &failures)
		p.Opacity = clampOpacity(p.Opacity)
	}
	e.reportFailures(failures)
	return h
}

// Transition starts a sweep from one mask to another. Every point is reset
// to its state in from; the wave then reveals to behind it.
func (e *GridWaveEngine) Transition(from, to ShapeMask) *TransitionHandle {
	h := e.begin(from, to, false)
	pts := e.lattice.points
	failures := 0
	for i := range pts {
		p := &pts[i]
		p.WasInPreviousShape = p.InNextShape
		p.InCurrentShape = e.member(from, p, &failures)
		p.InNextShape = e.member(to, p, &failures)
		p.Opacity = restingOpacity(p.InCurrentShape)
	}
	e.reportFailures(failures)
	return h
}

// begin cancels any in-flight transition and enters SWEEPING with a fresh
// handle. The newest call always wins.
func (e *GridWaveEngine) begin(from, to ShapeMask, single bool) *TransitionHandle {
	if e.handle != nil && !e.handle.Finished() {
		e.handle.cancel()
		debugLogf("wave: transition %d cancelled by %d", e.handle.id, e.seq+1)
		emit(e.sink, Event{Type: EventTransitionCancel, Transition: e.handle.id, Clock: e.clock})
	}
	e.seq++
	e.handle = &TransitionHandle{id: e.seq}
	e.fromMask, e.toMask, e.single = from, to, single
	e.state = StateSweeping
	e.elapsed = 0
	e.hold = nil
	e.resetSweep()
	emit(e.sink, Event{
		Type:       EventTransitionStart,
		Transition: e.seq,
		Clock:      e.clock,
		Count:      len(e.lattice.points),
	})
	debugLogf("wave: transition %d started over %d points", e.seq, len(e.lattice.points))
	return e.handle
}

// sweepRange returns the start and end wave positions for the configured
// direction. The wave starts one band-width outside the grid and ends one
// band-width past it.
func (e *GridWaveEngine) sweepRange() (start, end float64) {
	acw := e.config.ActiveColumnWidth
	cols := float64(e.lattice.columns)
	if e.config.Direction == SweepLeftward {
		return cols + acw, -acw
	}
	return -acw, cols + acw
}

// resetSweep builds the sweep tween for the current lattice and fast-forwards
// it by e.elapsed.
func (e *GridWaveEngine) resetSweep() {
	start, end := e.sweepRange()
	e.progress = start
	e.sweep = nil
	if e.config.FlowDuration <= 0 {
		return
	}
	e.sweep = gween.New(float32(start), float32(end), float32(e.config.FlowDuration), ease.Linear)
	if e.elapsed > 0 {
		v, _ := e.sweep.Update(float32(e.elapsed))
		e.progress = float64(v)
	}
}

// Step advances the engine by dt seconds. Negative or NaN dt is ignored.
func (e *GridWaveEngine) Step(dt float64) {
	if !(dt >= 0) {
		return
	}
	e.clock += dt
	switch e.state {
	case StateSweeping:
		e.stepSweep(dt)
	case StateHolding:
		e.stepHold(dt)
	}
}

func (e *GridWaveEngine) stepSweep(dt float64) {
	e.elapsed += dt
	if e.sweep == nil {
		e.finishSweep()
		return
	}
	v, finished := e.sweep.Update(float32(dt))
	e.progress = float64(v)
	if finished {
		e.finishSweep()
		return
	}
	e.applyWave()
}

// finishSweep settles every point to its terminal state and enters HOLDING.
func (e *GridWaveEngine) finishSweep() {
	_, e.progress = e.sweepRange()
	e.settle()
	e.state = StateHolding
	e.elapsed = 0
	e.sweep = nil
	emit(e.sink, Event{
		Type:       EventSweepEnd,
		Transition: e.seq,
		Clock:      e.clock,
		Count:      len(e.lattice.points),
	})
	debugLogf("wave: transition %d holding", e.seq)
	if e.config.PauseDuration <= 0 {
		e.finishHold()
		return
	}
	e.hold = gween.New(0, 1, float32(e.config.PauseDuration), ease.Linear)
}

func (e *GridWaveEngine) stepHold(dt float64) {
	e.elapsed += dt
	if e.hold == nil {
		e.finishHold()
		return
	}
	if _, finished := e.hold.Update(float32(dt)); finished {
		e.finishHold()
	}
}

func (e *GridWaveEngine) finishHold() {
	e.state = StateIdle
	e.elapsed = 0
	e.hold = nil
	emit(e.sink, Event{Type: EventTransitionDone, Transition: e.seq, Clock: e.clock})
	debugLogf("wave: transition %d done", e.seq)
	if e.handle != nil && !e.handle.Finished() {
		e.handle.complete()
	}
}

// applyWave writes every point's opacity for the current wave position.
func (e *GridWaveEngine) applyWave() {
	acw := e.config.ActiveColumnWidth
	leftward := e.config.Direction == SweepLeftward
	pts := e.lattice.points
	for i := range pts {
		p := &pts[i]
		d := float64(p.Col) - e.progress
		// ahead > 0 means the wave has not reached the point yet.
		ahead := d
		if leftward {
			ahead = -d
		}
		switch {
		case ahead <= 0:
			if p.InNextShape {
				p.Opacity = OpacityLit
			} else {
				p.Opacity = fadeOpacity(p, math.Abs(d))
			}
		case ahead <= acw:
			p.Opacity = OpacityLit
		default:
			p.Opacity = restingOpacity(p.InCurrentShape)
		}
	}
}

// fadeOpacity is the opacity of a non-member point dist columns behind the
// wave.
func fadeOpacity(p *GridPoint, dist float64) float64 {
	if !(p.FadeLength > 0) || dist > p.FadeLength {
		return OpacityDim
	}
	fade := (dist / p.FadeLength) * p.FadeMultiplier
	return clampOpacity(1 - fade)
}

func restingOpacity(member bool) float64 {
	if member {
		return OpacityLit
	}
	return OpacityDim
}

// settle puts every point in its terminal state for the current target.
func (e *GridWaveEngine) settle() {
	pts := e.lattice.points
	for i := range pts {
		pts[i].Opacity = restingOpacity(pts[i].InNextShape)
	}
}

// SetLattice swaps in a rebuilt lattice, typically after a canvas resize. An
// in-flight transition keeps its handle and timing; memberships are
// re-evaluated on the new points from the stored masks.
func (e *GridWaveEngine) SetLattice(l *Lattice) {
	if l == nil {
		l = &Lattice{}
	}
	e.lattice = l
	if e.toMask == nil {
		return
	}

	failures := 0
	pts := l.points
	for i := range pts {
		p := &pts[i]
		p.InNextShape = e.member(e.toMask, p, &failures)
		if e.single {
			// The previous target of the new points is unknown; show the
			// new target ahead of the wave as well.
			p.InCurrentShape = p.InNextShape
		} else {
			p.InCurrentShape = e.member(e.fromMask, p, &failures)
		}
		p.WasInPreviousShape = p.InCurrentShape
	}
	e.reportFailures(failures)

	switch e.state {
	case StateSweeping:
		e.resetSweep()
		e.applyWave()
	default:
		e.settle()
	}
	debugLogf("wave: lattice replaced (%d points, state %s)", len(pts), e.state)
}

// member evaluates mask at p's normalized coordinates. Failed evaluations
// count as "not a member" and are tallied in failures.
func (e *GridWaveEngine) member(mask ShapeMask, p *GridPoint, failures *int) bool {
	x, y := e.lattice.Normalized(p)
	in, ok := mask.Member(e.clock, x, y)
	if !ok {
		*failures++
	}
	return in
}

func (e *GridWaveEngine) reportFailures(n int) {
	if n > 0 {
		debugLogf("wave: transition %d: %d mask evaluations failed, treated as non-members", e.seq, n)
	}
}

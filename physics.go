package pointfield

import "math"

// PhysicsConfig controls the particle force model. All rates are per frame;
// the engine is stepped once per rendered frame.
type PhysicsConfig struct {
	// InfluenceRadius is the pointer distance inside which particles are
	// repelled and scaled up.
	InfluenceRadius float64
	// PushForce is the repulsive impulse at zero distance.
	PushForce float64
	// MaxScale is the scale target right under the pointer.
	MaxScale float64
	// ScaleRate is the fraction of the gap to the scale target closed each
	// frame.
	ScaleRate float64
	// Gravity is the spring constant pulling particles to their home.
	Gravity float64
	// Damping multiplies the velocity each frame. Must be < 1 for the
	// integration to settle.
	Damping float64
}

// PhysicsPresetPie is the stiffer, snappier tuning.
var PhysicsPresetPie = PhysicsConfig{
	InfluenceRadius: 150,
	PushForce:       0.8,
	MaxScale:        2,
	ScaleRate:       0.1,
	Gravity:         0.2,
	Damping:         0.85,
}

// PhysicsPresetDelta is the softer tuning with a larger scale-up.
var PhysicsPresetDelta = PhysicsConfig{
	InfluenceRadius: 150,
	PushForce:       0.5,
	MaxScale:        2.5,
	ScaleRate:       0.15,
	Gravity:         0.1,
	Damping:         0.9,
}

// DefaultPhysicsConfig returns PhysicsPresetDelta.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsPresetDelta
}

// ParticleFieldEngine runs the spring, damping and repulsion simulation over
// a ParticleField. It has no start/stop state: every Step integrates one
// frame. An empty field makes Step a no-op.
type ParticleFieldEngine struct {
	config     PhysicsConfig
	field      *ParticleField
	sink       EventSink
	pointer    Vec2
	hasPointer bool
	frames     uint64
}

// NewParticleFieldEngine creates an engine over f. A nil field is treated
// as empty.
func NewParticleFieldEngine(f *ParticleField, cfg PhysicsConfig) *ParticleFieldEngine {
	if f == nil {
		f = &ParticleField{}
	}
	return &ParticleFieldEngine{config: cfg, field: f}
}

// Config returns a pointer to the engine's config for live tuning.
func (e *ParticleFieldEngine) Config() *PhysicsConfig { return &e.config }

// Field returns the particle field.
func (e *ParticleFieldEngine) Field() *ParticleField { return e.field }

// Frames returns the number of Step calls so far.
func (e *ParticleFieldEngine) Frames() uint64 { return e.frames }

// SetEventSink sets the optional lifecycle observer.
func (e *ParticleFieldEngine) SetEventSink(sink EventSink) { e.sink = sink }

// SetField replaces the particle set wholesale, typically after resampling a
// new silhouette.
func (e *ParticleFieldEngine) SetField(f *ParticleField) {
	if f == nil {
		f = &ParticleField{}
	}
	e.field = f
	emit(e.sink, Event{Type: EventFieldSampled, Count: len(f.particles)})
}

// SetPointer sets the latest pointer position in field coordinates. Only the
// most recent value matters.
func (e *ParticleFieldEngine) SetPointer(x, y float64) {
	e.pointer = Vec2{x, y}
	e.hasPointer = true
}

// ClearPointer removes the pointer; no particle is repelled until the next
// SetPointer.
func (e *ParticleFieldEngine) ClearPointer() {
	e.hasPointer = false
}

// Pointer returns the latest pointer position and whether one is set.
func (e *ParticleFieldEngine) Pointer() (Vec2, bool) {
	return e.pointer, e.hasPointer
}

// Step integrates one frame for every particle: pointer repulsion and scale
// relaxation, spring to home, damping, then a forward-Euler position update.
func (e *ParticleFieldEngine) Step() {
	e.frames++
	cfg := &e.config
	ps := e.field.particles
	for i := range ps {
		p := &ps[i]

		targetScale := 1.0
		if e.hasPointer {
			dx := e.pointer.X - p.Position.X
			dy := e.pointer.Y - p.Position.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < cfg.InfluenceRadius {
				influence := 1 - dist/cfg.InfluenceRadius
				// Zero distance has no direction to push along.
				if dist > 0 {
					push := cfg.PushForce * influence / dist
					p.Velocity.X -= dx * push
					p.Velocity.Y -= dy * push
				}
				targetScale = 1 + (cfg.MaxScale-1)*influence
			}
		}
		p.Scale += (targetScale - p.Scale) * cfg.ScaleRate
		if p.Scale < 0 {
			p.Scale = 0
		}

		p.Velocity.X += (p.Home.X - p.Position.X) * cfg.Gravity
		p.Velocity.Y += (p.Home.Y - p.Position.Y) * cfg.Gravity

		p.Velocity.X *= cfg.Damping
		p.Velocity.Y *= cfg.Damping

		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
	}
}

// Resting reports whether every particle is within eps of home with a scale
// within eps of 1.
func (e *ParticleFieldEngine) Resting(eps float64) bool {
	for i := range e.field.particles {
		p := &e.field.particles[i]
		if p.Position.Sub(p.Home).Len() > eps || math.Abs(p.Scale-1) > eps {
			return false
		}
	}
	return true
}

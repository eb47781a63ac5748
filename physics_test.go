package pointfield

import (
	"math"
	"testing"
)

func singleParticle(pos, home Vec2) *ParticleField {
	return &ParticleField{particles: []Particle{{Position: pos, Home: home, Scale: 1}}}
}

func TestParticleSettlesHome(t *testing.T) {
	cfg := PhysicsConfig{
		InfluenceRadius: 150,
		PushForce:       0.5,
		MaxScale:        2.5,
		ScaleRate:       0.15,
		Gravity:         0.1,
		Damping:         0.9,
	}
	e := NewParticleFieldEngine(singleParticle(Vec2{10, -10}, Vec2{}), cfg)
	e.SetPointer(1000, 1000)
	for i := 0; i < 200; i++ {
		e.Step()
	}
	p := e.Field().Particles()[0]
	if d := p.Position.Len(); d >= 1e-3 {
		t.Fatalf("distance from home after 200 steps = %v, want < 1e-3", d)
	}
	if !e.Resting(1e-3) {
		t.Error("Resting(1e-3) = false")
	}
	if e.Frames() != 200 {
		t.Errorf("Frames = %d, want 200", e.Frames())
	}
}

func TestParticleSettlesWithBothPresets(t *testing.T) {
	for name, cfg := range map[string]PhysicsConfig{
		"pie":   PhysicsPresetPie,
		"delta": PhysicsPresetDelta,
	} {
		t.Run(name, func(t *testing.T) {
			e := NewParticleFieldEngine(singleParticle(Vec2{30, 40}, Vec2{}), cfg)
			for i := 0; i < 300; i++ {
				e.Step()
			}
			if !e.Resting(1e-3) {
				t.Errorf("not resting: %+v", e.Field().Particles()[0])
			}
		})
	}
}

func TestParticleRepelledFromPointer(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	e := NewParticleFieldEngine(singleParticle(Vec2{}, Vec2{}), cfg)
	e.SetPointer(10, 0)
	e.Step()

	p := e.Field().Particles()[0]
	influence := 1 - 10/cfg.InfluenceRadius
	wantVX := -cfg.PushForce * influence * cfg.Damping
	assertNear(t, "Velocity.X", p.Velocity.X, wantVX)
	assertNear(t, "Velocity.Y", p.Velocity.Y, 0)
	assertNear(t, "Position.X", p.Position.X, wantVX)
	if p.Scale <= 1 {
		t.Errorf("Scale = %v, want > 1 near the pointer", p.Scale)
	}
}

func TestParticlePointerAtSamePosition(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	e := NewParticleFieldEngine(singleParticle(Vec2{5, 5}, Vec2{5, 5}), cfg)
	e.SetPointer(5, 5)
	e.Step()

	p := e.Field().Particles()[0]
	if math.IsNaN(p.Position.X) || math.IsNaN(p.Velocity.X) {
		t.Fatalf("NaN state: %+v", p)
	}
	if p.Velocity != (Vec2{}) {
		t.Errorf("Velocity = %v, want zero", p.Velocity)
	}
	assertNear(t, "Scale", p.Scale, 1+(cfg.MaxScale-1)*cfg.ScaleRate)
}

func TestParticleOutsideInfluence(t *testing.T) {
	e := NewParticleFieldEngine(singleParticle(Vec2{}, Vec2{}), DefaultPhysicsConfig())
	e.SetPointer(200, 0)
	e.Step()
	p := e.Field().Particles()[0]
	if p.Position != (Vec2{}) || p.Scale != 1 {
		t.Errorf("particle outside influence moved: %+v", p)
	}
}

func TestParticleScaleRelaxes(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	f := singleParticle(Vec2{}, Vec2{})
	f.particles[0].Scale = 2
	e := NewParticleFieldEngine(f, cfg)
	e.Step()
	assertNear(t, "Scale", f.particles[0].Scale, 2+(1-2)*cfg.ScaleRate)
}

func TestParticleClearPointer(t *testing.T) {
	e := NewParticleFieldEngine(singleParticle(Vec2{}, Vec2{}), DefaultPhysicsConfig())
	e.SetPointer(1, 1)
	if _, ok := e.Pointer(); !ok {
		t.Fatal("pointer not set")
	}
	e.ClearPointer()
	if _, ok := e.Pointer(); ok {
		t.Fatal("pointer still set")
	}
	e.Step()
	if p := e.Field().Particles()[0]; p.Velocity != (Vec2{}) {
		t.Errorf("cleared pointer still pushed: %+v", p)
	}
}

func TestParticleEmptyField(t *testing.T) {
	e := NewParticleFieldEngine(nil, DefaultPhysicsConfig())
	e.SetPointer(0, 0)
	e.Step()
	if e.Field().Len() != 0 || e.Frames() != 1 {
		t.Errorf("Len %d Frames %d", e.Field().Len(), e.Frames())
	}
	if !e.Resting(0) {
		t.Error("empty field should be resting")
	}
}

func TestParticleConfigLiveTuning(t *testing.T) {
	e := NewParticleFieldEngine(singleParticle(Vec2{10, 0}, Vec2{}), DefaultPhysicsConfig())
	e.Config().Gravity = 0
	e.Config().Damping = 1
	e.Step()
	assertNear(t, "Position.X", e.Field().Particles()[0].Position.X, 10)
}

func TestParticleSetFieldEmits(t *testing.T) {
	sink := &recordingSink{}
	e := NewParticleFieldEngine(nil, DefaultPhysicsConfig())
	e.SetEventSink(sink)
	e.SetField(SampleField(RectSilhouette{0, 0, 20, 20}, 10))
	if len(sink.events) != 1 || sink.events[0].Type != EventFieldSampled || sink.events[0].Count != 4 {
		t.Fatalf("events = %+v", sink.events)
	}
}

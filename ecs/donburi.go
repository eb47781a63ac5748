package ecs

import (
	"github.com/phanxgames/pointfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// LifecycleEventType is the Donburi event type for pointfield lifecycle
// events.
var LifecycleEventType = events.NewEventType[pointfield.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to LifecycleEventType and can be consumed with Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) pointfield.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pointfield.Event) {
	LifecycleEventType.Publish(s.world, event)
}

// WaveEngineData holds a grid wave engine on an entity.
type WaveEngineData struct {
	Engine *pointfield.GridWaveEngine
}

// ParticleEngineData holds a particle engine on an entity.
type ParticleEngineData struct {
	Engine *pointfield.ParticleFieldEngine
}

// WaveEngine is the component type for WaveEngineData.
var WaveEngine = donburi.NewComponentType[WaveEngineData]()

// ParticleEngine is the component type for ParticleEngineData.
var ParticleEngine = donburi.NewComponentType[ParticleEngineData]()

var (
	waveQuery     = donburi.NewQuery(filter.Contains(WaveEngine))
	particleQuery = donburi.NewQuery(filter.Contains(ParticleEngine))
)

// StepEngines steps every wave engine by dt seconds and every particle
// engine by one frame.
func StepEngines(world donburi.World, dt float64) {
	waveQuery.Each(world, func(entry *donburi.Entry) {
		if e := WaveEngine.Get(entry).Engine; e != nil {
			e.Step(dt)
		}
	})
	particleQuery.Each(world, func(entry *donburi.Entry) {
		if e := ParticleEngine.Get(entry).Engine; e != nil {
			e.Step()
		}
	})
}

// Package ecs provides ECS adapters for pointfield engines.
//
// [NewDonburiSink] bridges engine lifecycle events (transition start,
// cancel, sweep end, done, shape change, field sampled) into a [Donburi]
// world as typed events. Subscribe to [LifecycleEventType] in your ECS
// systems to receive them.
//
// Engines can also live on entities: attach [WaveEngine] or
// [ParticleEngine] components and call [StepEngines] once per tick.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

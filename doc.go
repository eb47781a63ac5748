// Package pointfield animates fields of points for [Ebitengine].
//
// It provides two independent engines:
//
//   - [GridWaveEngine] drives a [Lattice] of dots through timed sweep
//     transitions between shapes. A vertical wave crosses the grid; dots
//     behind it light up when they belong to the next shape and fade out
//     along per-row trails when they do not.
//   - [ParticleFieldEngine] runs a spring, damping and pointer-repulsion
//     simulation over a [ParticleField] sampled from a [Silhouette].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop hosting both engines:
//
//	app, err := pointfield.NewApp(pointfield.DefaultConfig(), pointfield.CircleSilhouette{
//		CenterX: 600, CenterY: 600, Radius: 500,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	pointfield.Run(app, pointfield.RunConfig{Title: "Point Field", Resizable: true})
//
// For full control, own the engines and step them yourself:
//
//	lattice := pointfield.NewLattice(800, 600, pointfield.DefaultLatticeConfig())
//	wave := pointfield.NewGridWaveEngine(lattice, pointfield.DefaultWaveConfig())
//	h := wave.Transition(pointfield.LineChartMask, pointfield.PieChartMask)
//	h.OnComplete(func() { fmt.Println("pie shown") })
//	// each frame:
//	wave.Step(1.0 / 60)
//
// # Shapes
//
// A [ShapeMask] is a pure function of time and normalized grid coordinates;
// a positive result means "member". Masks are evaluated once per point when
// a transition starts. [ShapeLibrary] registers masks by name and
// [Sequencer] cycles a wave engine through a list of names.
//
// # Opacity
//
// Every lattice point's opacity stays within [OpacityDim, OpacityLit]. After
// a transition's hold elapses, members of the target are lit and everything
// else is dim.
//
// # Configuration
//
// [LoadConfig] reads a YAML file layered over [DefaultConfig]. Scripts
// ([LoadScript]) drive the pointer, shape changes and screenshots for
// unattended runs. Lifecycle events go to an optional [EventSink]; the
// pointfield/ecs module forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package pointfield

package pointfield

import (
	"math"
	"testing"
)

// setupBenchWave creates a wave engine over a 1920x1080 lattice at the
// default spacing (96x54 points).
func setupBenchWave() *GridWaveEngine {
	return NewGridWaveEngine(
		NewLattice(1920, 1080, testLatticeConfig(20)),
		WaveConfig{FlowDuration: 1e9, ActiveColumnWidth: 20},
	)
}

// setupBenchField samples a disc of radius 600 at 15-unit spacing
// (~5000 particles).
func setupBenchField() *ParticleFieldEngine {
	f := SampleField(CircleSilhouette{CenterX: 600, CenterY: 600, Radius: 600}, 15)
	return NewParticleFieldEngine(f, DefaultPhysicsConfig())
}

// --- Wave Benchmarks ---

func BenchmarkWave_Step_1080p(b *testing.B) {
	e := setupBenchWave()
	e.Transition(LineChartMask, PieChartMask)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Step(frame)
	}
}

func BenchmarkWave_Transition_1080p(b *testing.B) {
	e := setupBenchWave()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Transition(LineChartMask, BarChartMask)
	}
}

func BenchmarkNewLattice_1080p(b *testing.B) {
	cfg := testLatticeConfig(20)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		NewLattice(1920, 1080, cfg)
	}
}

// --- Particle Benchmarks ---

func BenchmarkParticles_Step_PointerInside(b *testing.B) {
	e := setupBenchField()
	e.SetPointer(600, 600)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Step()
	}
}

func BenchmarkParticles_Step_NoPointer(b *testing.B) {
	e := setupBenchField()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Step()
	}
}

func BenchmarkSampleField_Polygon(b *testing.B) {
	ring := make([]Vec2, 0, 64)
	for i := 0; i < 64; i++ {
		a := float64(i) / 64 * 2 * math.Pi
		ring = append(ring, Vec2{600 + 500*math.Cos(a), 600 + 500*math.Sin(a)})
	}
	sil := NewPolygonSilhouette(ring)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SampleField(sil, 15)
	}
}

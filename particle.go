package pointfield

import "math"

// Particle is one point of a ParticleField.
type Particle struct {
	Position Vec2
	// Home is the rest position, fixed at sampling time.
	Home     Vec2
	Velocity Vec2
	// Scale relaxes toward 1, or toward an influence-driven target near the
	// pointer. Never negative.
	Scale float64
}

// ParticleField is a fixed set of particles sampled from a silhouette.
// Resampling builds a new field; particles are never added or removed
// individually.
type ParticleField struct {
	bounds    Rect
	spacing   float64
	particles []Particle
}

// SampleField places one particle at the centre of every spacing×spacing cell
// of sil's bounding rectangle whose centre passes sil.Contains. A nil
// silhouette, an empty bounding box or a non-positive spacing yield an empty
// field. Sampling completes before the field is returned.
func SampleField(sil Silhouette, spacing float64) *ParticleField {
	f := &ParticleField{spacing: spacing}
	if sil == nil {
		return f
	}
	b := sil.Bounds()
	f.bounds = b
	if b.Empty() || !(spacing > 0) {
		debugLogf("particles: degenerate silhouette bounds %+v spacing %v", b, spacing)
		return f
	}

	cols := int(math.Floor(b.Width / spacing))
	rows := int(math.Floor(b.Height / spacing))
	failures := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := b.X + (float64(col)+0.5)*spacing
			y := b.Y + (float64(row)+0.5)*spacing
			in, ok := safeContains(sil, x, y)
			if !ok {
				failures++
			}
			if !in {
				continue
			}
			pos := Vec2{x, y}
			f.particles = append(f.particles, Particle{
				Position: pos,
				Home:     pos,
				Scale:    1,
			})
		}
	}
	if failures > 0 {
		debugLogf("particles: %d containment tests failed, treated as outside", failures)
	}
	debugLogf("particles: sampled %d of %d cells", len(f.particles), cols*rows)
	return f
}

func safeContains(sil Silhouette, x, y float64) (in, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			in, ok = false, false
		}
	}()
	return sil.Contains(x, y), true
}

// Len returns the number of particles.
func (f *ParticleField) Len() int { return len(f.particles) }

// Bounds returns the sampled silhouette's bounding rectangle.
func (f *ParticleField) Bounds() Rect { return f.bounds }

// Spacing returns the sampling spacing.
func (f *ParticleField) Spacing() float64 { return f.spacing }

// Particles returns the particles. The returned slice is owned by the field
// and MUST NOT be mutated; renderers read it.
func (f *ParticleField) Particles() []Particle { return f.particles }

package pointfield

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer paints lattice dots and particles with ebiten's vector package.
// It only reads engine state; it never mutates points or particles.
type Renderer struct {
	// DotColor tints lattice dots; each dot's alpha is scaled by its opacity.
	DotColor Color
	// DotRadius is the lattice dot radius in pixels.
	DotRadius float64
	// ParticleColor tints particles.
	ParticleColor Color
	// ParticleRadius is the particle radius in field units at scale 1.
	ParticleRadius float64
	// Debug draws each lattice cell's outline.
	Debug bool
	// AntiAlias enables anti-aliased circles.
	AntiAlias bool
}

var debugCellColor = color.NRGBA{0xdd, 0xdd, 0xdd, 0xff}

// NewRenderer returns a renderer with white dots of the lattice's radius and
// pink particles.
func NewRenderer(lc LatticeConfig) *Renderer {
	return &Renderer{
		DotColor:       ColorWhite,
		DotRadius:      lc.DotRadius,
		ParticleColor:  Color{R: 1, G: 0.41, B: 0.71, A: 1},
		ParticleRadius: 4,
		AntiAlias:      true,
	}
}

// DrawLattice paints every lattice point at its position with alpha scaled
// by its opacity.
func (r *Renderer) DrawLattice(dst *ebiten.Image, l *Lattice) {
	if l == nil {
		return
	}
	radius := float32(r.DotRadius)
	spacing := float32(l.config.Spacing)
	for i := range l.points {
		p := &l.points[i]
		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledCircle(dst, x, y, radius, r.DotColor.toNRGBA(p.Opacity), r.AntiAlias)
		if r.Debug {
			vector.StrokeRect(dst, x-spacing/2, y-spacing/2, spacing, spacing, 1, debugCellColor, false)
		}
	}
}

// DrawParticles paints every particle through the viewport, with radius
// scaled by the particle's scale.
func (r *Renderer) DrawParticles(dst *ebiten.Image, f *ParticleField, view Viewport) {
	if f == nil {
		return
	}
	k := view.Scale()
	clr := r.ParticleColor.toNRGBA(1)
	for i := range f.particles {
		p := &f.particles[i]
		s := view.ToScreen(p.Position)
		radius := float32(r.ParticleRadius * p.Scale * k)
		if radius <= 0 {
			continue
		}
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), radius, clr, r.AntiAlias)
	}
}

package pointfield

import (
	"math"
	"math/rand/v2"
)

// GridPoint is one dot of a Lattice.
type GridPoint struct {
	// Pixel position, fixed after layout.
	X, Y float64
	// Grid coordinates, fixed after layout.
	Col, Row int

	// Membership, recomputed for every point at the start of a transition.
	InCurrentShape     bool
	InNextShape        bool
	WasInPreviousShape bool

	// Opacity is the only field mutated every frame. Always within
	// [OpacityDim, OpacityLit].
	Opacity float64

	// Decay behind the sweep for points outside the next shape. FadeLength
	// is in columns. Both are assigned at construction and never change.
	FadeLength     float64
	FadeMultiplier float64
}

// LatticeConfig controls lattice layout and the per-row fade personalities.
type LatticeConfig struct {
	// Spacing is the distance in pixels between neighbouring dots.
	Spacing float64
	// DotRadius is the rendered dot radius in pixels.
	DotRadius float64
	// ActiveColumnWidth scales the fade-length tiers into columns. It should
	// match the WaveConfig of the engine driving the lattice.
	ActiveColumnWidth float64
	// MultiplierTiers is drawn once per row for FadeMultiplier.
	MultiplierTiers TierTable
	// LengthTiers is drawn once per row for FadeLength, in units of
	// ActiveColumnWidth.
	LengthTiers TierTable
	// Jitter is the per-point relative variation on the row multiplier
	// (0.2 gives ±20%). Negative values are treated as zero.
	Jitter float64
	// Rand, when non-nil, is the random source for tier draws.
	Rand *rand.Rand
}

// DefaultLatticeConfig returns the standard layout: 20px spacing, 2px dots,
// a 20-column active band, the default tier tables and ±20% jitter.
func DefaultLatticeConfig() LatticeConfig {
	return LatticeConfig{
		Spacing:           20,
		DotRadius:         2,
		ActiveColumnWidth: 20,
		MultiplierTiers:   DefaultMultiplierTiers,
		LengthTiers:       DefaultLengthTiers,
		Jitter:            0.2,
	}
}

// Lattice is a row-major, centered grid of points sized to a canvas.
type Lattice struct {
	config        LatticeConfig
	width, height float64
	columns, rows int
	points        []GridPoint
}

// NewLattice lays out a lattice centered in a width×height canvas. Degenerate
// input (non-positive spacing or a canvas smaller than one cell) produces an
// empty lattice. Calling it twice with the same size yields the same layout;
// fade values are redrawn.
func NewLattice(width, height float64, cfg LatticeConfig) *Lattice {
	l := &Lattice{config: cfg, width: width, height: height}
	if !(cfg.Spacing > 0) || !(width > 0) || !(height > 0) {
		debugLogf("lattice: degenerate layout %vx%v spacing %v", width, height, cfg.Spacing)
		return l
	}

	l.columns = int(math.Floor(width / cfg.Spacing))
	l.rows = int(math.Floor(height / cfg.Spacing))
	if l.columns <= 0 || l.rows <= 0 {
		l.columns, l.rows = 0, 0
		return l
	}

	offsetX := (width - float64(l.columns-1)*cfg.Spacing) / 2
	offsetY := (height - float64(l.rows-1)*cfg.Spacing) / 2

	jitter := max(cfg.Jitter, 0)
	acw := cfg.ActiveColumnWidth
	if !(acw > 0) {
		acw = 1
	}

	l.points = make([]GridPoint, 0, l.columns*l.rows)
	for row := 0; row < l.rows; row++ {
		rowMultiplier := cfg.MultiplierTiers.Sample(cfg.Rand, 1)
		rowLength := cfg.LengthTiers.Sample(cfg.Rand, 1) * acw
		for col := 0; col < l.columns; col++ {
			variation := 1 - jitter + float64Of(cfg.Rand)*2*jitter
			l.points = append(l.points, GridPoint{
				X:              offsetX + float64(col)*cfg.Spacing,
				Y:              offsetY + float64(row)*cfg.Spacing,
				Col:            col,
				Row:            row,
				Opacity:        OpacityDim,
				FadeLength:     rowLength,
				FadeMultiplier: rowMultiplier * variation,
			})
		}
	}
	debugLogf("lattice: %dx%d points in %vx%v", l.columns, l.rows, width, height)
	return l
}

// Columns returns the number of columns.
func (l *Lattice) Columns() int { return l.columns }

// Rows returns the number of rows.
func (l *Lattice) Rows() int { return l.rows }

// Len returns the number of points.
func (l *Lattice) Len() int { return len(l.points) }

// Size returns the canvas size the lattice was laid out for.
func (l *Lattice) Size() (width, height float64) { return l.width, l.height }

// Config returns the configuration the lattice was built with.
func (l *Lattice) Config() LatticeConfig { return l.config }

// Points returns the lattice points in row-major order. The returned slice
// is owned by the lattice and MUST NOT be mutated; renderers read it.
func (l *Lattice) Points() []GridPoint { return l.points }

// At returns the point at (col, row).
func (l *Lattice) At(col, row int) (GridPoint, bool) {
	if col < 0 || row < 0 || col >= l.columns || row >= l.rows {
		return GridPoint{}, false
	}
	return l.points[row*l.columns+col], true
}

// Normalized maps a point's grid coordinates into [0, 1]×[0, 1]. A single
// column or row maps to 0.
func (l *Lattice) Normalized(p *GridPoint) (x, y float64) {
	return float64(p.Col) / float64(max(l.columns-1, 1)),
		float64(p.Row) / float64(max(l.rows-1, 1))
}

package pointfield

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Opacity bounds for lattice points. Every write to GridPoint.Opacity is
// clamped to [OpacityDim, OpacityLit].
const (
	OpacityDim = 0.2 // dim / inactive
	OpacityLit = 1.0 // lit
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default dot color.
var ColorWhite = Color{1, 1, 1, 1}

// toNRGBA converts c to a straight-alpha color scaled by the given alpha.
func (c Color) toNRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A * alpha),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp(v, 0, 1)*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, velocities and pointer coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max). A nil rng uses the global
// source.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + float64Of(rng)*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func float64Of(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampOpacity pins v to the legal opacity range. NaN maps to OpacityDim.
func clampOpacity(v float64) float64 {
	if math.IsNaN(v) {
		return OpacityDim
	}
	return clamp(v, OpacityDim, OpacityLit)
}

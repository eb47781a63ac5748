package pointfield

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownShape is returned when a shape name is not registered.
var ErrUnknownShape = errors.New("unknown shape")

// Built-in shape names.
const (
	ShapeLineChart = "lineChart"
	ShapeBarChart  = "barChart"
	ShapePieChart  = "pieChart"
)

// ShapeLibrary is a registry of named shape masks.
type ShapeLibrary struct {
	shapes map[string]ShapeMask
}

// NewShapeLibrary returns an empty library.
func NewShapeLibrary() *ShapeLibrary {
	return &ShapeLibrary{shapes: make(map[string]ShapeMask)}
}

// DefaultShapeLibrary returns a library holding the line, bar and pie chart
// masks.
func DefaultShapeLibrary() *ShapeLibrary {
	lib := NewShapeLibrary()
	lib.Add(ShapeLineChart, LineChartMask)
	lib.Add(ShapeBarChart, BarChartMask)
	lib.Add(ShapePieChart, PieChartMask)
	return lib
}

// Add registers mask under name, replacing any previous entry.
func (l *ShapeLibrary) Add(name string, mask ShapeMask) {
	l.shapes[name] = mask
}

// Get returns the mask registered under name.
func (l *ShapeLibrary) Get(name string) (ShapeMask, error) {
	m, ok := l.shapes[name]
	if !ok || m == nil {
		return nil, fmt.Errorf("shape %q: %w", name, ErrUnknownShape)
	}
	return m, nil
}

// Evaluate runs the named mask. Unknown names evaluate to 0.
func (l *ShapeLibrary) Evaluate(name string, t, x, y float64) float64 {
	m, ok := l.shapes[name]
	if !ok || m == nil {
		return 0
	}
	return m(t, x, y)
}

// Names returns the registered names in sorted order.
func (l *ShapeLibrary) Names() []string {
	names := make([]string, 0, len(l.shapes))
	for name := range l.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineChartMask fills the area below a sine-shaped line, with a thin soft
// edge along the line itself.
func LineChartMask(t, x, y float64) float64 {
	const edge = 0.01
	line := 0.7 - 0.4*math.Sin(x*math.Pi*2)
	d := y - line
	switch {
	case d > edge:
		return 1
	case d > 0:
		return d / edge
	default:
		return 0
	}
}

type chartBar struct {
	pos, height float64
}

var chartBars = [...]chartBar{
	{0.1, 0.6},
	{0.3, 0.4},
	{0.5, 0.8},
	{0.7, 0.5},
	{0.9, 0.7},
}

// BarChartMask draws five vertical bars rising from the bottom edge.
func BarChartMask(t, x, y float64) float64 {
	const barWidth = 0.15
	for _, bar := range chartBars {
		if math.Abs(x-bar.pos) < barWidth/2 {
			if y >= 1-bar.height {
				return 1
			}
			return 0
		}
	}
	return 0
}

// PieChartMask draws a centered disc of radius 0.4 split into quarters, with
// alternating quarters filled.
func PieChartMask(t, x, y float64) float64 {
	const radius = 0.4
	dx := x - 0.5
	dy := y - 0.5
	if math.Hypot(dx, dy) > radius {
		return 0
	}
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	quarter := min(int(angle/(math.Pi/2)), 3)
	if quarter%2 == 0 {
		return 1
	}
	return 0
}

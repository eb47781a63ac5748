package pointfield

import (
	"errors"
	"slices"
	"testing"
)

func TestShapeLibraryGet(t *testing.T) {
	lib := DefaultShapeLibrary()
	for _, name := range []string{ShapeLineChart, ShapeBarChart, ShapePieChart} {
		if _, err := lib.Get(name); err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
	}
	if _, err := lib.Get("hexagon"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("Get(unknown) error = %v, want ErrUnknownShape", err)
	}
}

func TestShapeLibraryAddAndNames(t *testing.T) {
	lib := NewShapeLibrary()
	lib.Add("b", MaskAll)
	lib.Add("a", MaskNone)
	if got, want := lib.Names(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	lib.Add("a", MaskAll)
	assertNear(t, "Evaluate(a)", lib.Evaluate("a", 0, 0, 0), 1)
	assertNear(t, "Evaluate(missing)", lib.Evaluate("missing", 0, 0, 0), 0)
}

func TestBuiltinShapes(t *testing.T) {
	tests := []struct {
		name string
		mask ShapeMask
		x, y float64
		want bool
	}{
		{"line below", LineChartMask, 0.25, 0.9, true},
		{"line above", LineChartMask, 0.25, 0.1, false},
		{"line trough", LineChartMask, 0.75, 0.5, false},
		{"bar inside", BarChartMask, 0.5, 0.9, true},
		{"bar above top", BarChartMask, 0.3, 0.3, false},
		{"bar gap", BarChartMask, 0.2, 0.9, false},
		{"bar bottom edge", BarChartMask, 0.9, 1, true},
		{"pie first quarter", PieChartMask, 0.7, 0.55, true},
		{"pie second quarter", PieChartMask, 0.45, 0.7, false},
		{"pie third quarter", PieChartMask, 0.3, 0.45, true},
		{"pie outside", PieChartMask, 0.95, 0.5, false},
		{"pie corner", PieChartMask, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.mask.Member(0, tt.x, tt.y)
			if !ok {
				t.Fatal("evaluation failed")
			}
			if got != tt.want {
				t.Errorf("member(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBuiltinShapesAreNonTrivial(t *testing.T) {
	l := NewLattice(400, 400, testLatticeConfig(4))
	for _, name := range DefaultShapeLibrary().Names() {
		mask, _ := DefaultShapeLibrary().Get(name)
		in := 0
		for _, p := range l.Points() {
			x, y := l.Normalized(&p)
			if m, _ := mask.Member(0, x, y); m {
				in++
			}
		}
		if in == 0 || in == l.Len() {
			t.Errorf("%s covers %d of %d points", name, in, l.Len())
		}
	}
}

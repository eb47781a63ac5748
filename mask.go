package pointfield

import "math"

// ShapeMask decides membership of a normalized point (x, y ∈ [0, 1]) in a
// shape at time t. A result > 0 means "member". Masks must be pure functions
// of their inputs: engines cache per-point membership for a whole transition.
type ShapeMask func(t, x, y float64) float64

// Member evaluates m at (t, x, y) and reports membership. A nil mask, a
// NaN or infinite result, or a panic inside the mask all count as "not a
// member". The second result is false when evaluation failed.
func (m ShapeMask) Member(t, x, y float64) (member, ok bool) {
	if m == nil {
		return false, false
	}
	v, ok := m.eval(t, x, y)
	if !ok {
		return false, false
	}
	return v > 0, true
}

func (m ShapeMask) eval(t, x, y float64) (v float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = 0, false
		}
	}()
	v = m(t, x, y)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// MaskAll is a mask that includes every point.
func MaskAll(t, x, y float64) float64 { return 1 }

// MaskNone is a mask that excludes every point.
func MaskNone(t, x, y float64) float64 { return 0 }

// Invert returns a mask whose membership is the complement of m.
func Invert(m ShapeMask) ShapeMask {
	return func(t, x, y float64) float64 {
		if member, _ := m.Member(t, x, y); member {
			return 0
		}
		return 1
	}
}

// Union returns a mask that includes a point when any of masks does.
func Union(masks ...ShapeMask) ShapeMask {
	return func(t, x, y float64) float64 {
		for _, m := range masks {
			if member, _ := m.Member(t, x, y); member {
				return 1
			}
		}
		return 0
	}
}

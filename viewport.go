package pointfield

import "math"

// Viewport maps a rectangle of field space (for example a silhouette's
// viewBox) onto a rectangle of screen pixels with uniform scale.
type Viewport struct {
	Field  Rect
	Screen Rect
}

// FitViewport centers field inside a screenW×screenH screen, scaled
// uniformly so it covers fraction of the smaller screen dimension
// (0.8 reproduces an 80vmin box). A non-positive fraction means 1.
func FitViewport(field Rect, screenW, screenH, fraction float64) Viewport {
	if !(fraction > 0) {
		fraction = 1
	}
	v := Viewport{Field: field}
	if field.Empty() || !(screenW > 0) || !(screenH > 0) {
		v.Screen = Rect{0, 0, field.Width, field.Height}
		return v
	}
	side := math.Min(screenW, screenH) * fraction
	k := math.Min(side/field.Width, side/field.Height)
	w, h := field.Width*k, field.Height*k
	v.Screen = Rect{(screenW - w) / 2, (screenH - h) / 2, w, h}
	return v
}

// Scale returns screen pixels per field unit along X.
func (v Viewport) Scale() float64 {
	if !(v.Field.Width > 0) {
		return 1
	}
	return v.Screen.Width / v.Field.Width
}

func (v Viewport) scaleY() float64 {
	if !(v.Field.Height > 0) {
		return 1
	}
	return v.Screen.Height / v.Field.Height
}

// ToScreen converts a field position to screen pixels.
func (v Viewport) ToScreen(p Vec2) Vec2 {
	return Vec2{
		X: v.Screen.X + (p.X-v.Field.X)*v.Scale(),
		Y: v.Screen.Y + (p.Y-v.Field.Y)*v.scaleY(),
	}
}

// ToField converts screen pixels to a field position.
func (v Viewport) ToField(x, y float64) Vec2 {
	return Vec2{
		X: v.Field.X + (x-v.Screen.X)/v.Scale(),
		Y: v.Field.Y + (y-v.Screen.Y)/v.scaleY(),
	}
}

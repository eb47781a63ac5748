package pointfield

import "testing"

func TestFitViewport(t *testing.T) {
	v := FitViewport(Rect{0, 0, 1200, 1200}, 1000, 500, 0.8)
	if want := (Rect{300, 50, 400, 400}); v.Screen != want {
		t.Fatalf("Screen = %v, want %v", v.Screen, want)
	}
	assertNear(t, "Scale", v.Scale(), 1.0/3)

	s := v.ToScreen(Vec2{600, 600})
	assertNear(t, "screen.X", s.X, 500)
	assertNear(t, "screen.Y", s.Y, 250)

	f := v.ToField(500, 250)
	assertNear(t, "field.X", f.X, 600)
	assertNear(t, "field.Y", f.Y, 600)
}

func TestFitViewportNonSquare(t *testing.T) {
	v := FitViewport(Rect{10, 20, 200, 100}, 400, 400, 1)
	if want := (Rect{0, 100, 400, 200}); v.Screen != want {
		t.Fatalf("Screen = %v, want %v", v.Screen, want)
	}
	origin := v.ToScreen(Vec2{10, 20})
	assertNear(t, "origin.X", origin.X, 0)
	assertNear(t, "origin.Y", origin.Y, 100)
}

func TestFitViewportDegenerate(t *testing.T) {
	v := FitViewport(Rect{0, 0, 50, 50}, 0, 0, 0.8)
	p := v.ToField(12, 34)
	assertNear(t, "X", p.X, 12)
	assertNear(t, "Y", p.Y, 34)

	empty := FitViewport(Rect{}, 800, 600, 0.8)
	assertNear(t, "Scale", empty.Scale(), 1)
}

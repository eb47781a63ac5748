package pointfield

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestPolygonSilhouetteConcave(t *testing.T) {
	// L shape: a 20x20 square with the top-right 10x10 quarter removed.
	l := NewPolygonSilhouette([]Vec2{{0, 0}, {10, 0}, {10, 10}, {20, 10}, {20, 20}, {0, 20}})
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top-left arm", 5, 5, true},
		{"bottom-right arm", 15, 15, true},
		{"notch", 15, 5, false},
		{"outside", 25, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPolygonSilhouetteHole(t *testing.T) {
	outer := []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	hole := []Vec2{{25, 25}, {75, 25}, {75, 75}, {25, 75}}
	p := NewPolygonSilhouette(outer, hole)
	if !p.Contains(10, 50) {
		t.Error("ring area should be inside")
	}
	if p.Contains(50, 50) {
		t.Error("hole should be outside")
	}
}

func TestPolygonSilhouetteBounds(t *testing.T) {
	p := NewPolygonSilhouette(
		[]Vec2{{10, 20}, {50, 20}, {30, 60}},
		[]Vec2{{-100, -100}, {100, 100}}, // too short, ignored
	)
	if got, want := p.Bounds(), (Rect{10, 20, 40, 40}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if got := NewPolygonSilhouette().Bounds(); !got.Empty() {
		t.Errorf("empty polygon Bounds = %v", got)
	}
}

func TestCircleSilhouette(t *testing.T) {
	c := CircleSilhouette{CenterX: 10, CenterY: 10, Radius: 5}
	if !c.Contains(10, 15) {
		t.Error("edge should be inside")
	}
	if c.Contains(14, 14) {
		t.Error("corner of the bounding square should be outside")
	}
	if got, want := c.Bounds(), (Rect{5, 5, 10, 10}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func checkerImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 255, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 200})
	img.Set(1, 0, color.NRGBA{255, 255, 255, 50})
	return img
}

func TestImageSilhouette(t *testing.T) {
	s := NewImageSilhouette(checkerImage())
	s.Scale = 10
	s.Origin = Vec2{100, 0}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"opaque pixel", 105, 5, true},
		{"translucent above threshold", 115, 15, true},
		{"below threshold", 115, 5, false},
		{"transparent", 105, 15, false},
		{"left of image", 95, 5, false},
		{"past image", 125, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if got, want := s.Bounds(), (Rect{100, 0, 20, 20}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestImageSilhouetteNilImage(t *testing.T) {
	s := &ImageSilhouette{}
	if s.Contains(0, 0) || !s.Bounds().Empty() {
		t.Error("nil image should be empty")
	}
}

func TestLoadImageSilhouette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.png")
	if err := writePNG(path, checkerImage()); err != nil {
		t.Fatal(err)
	}
	s, err := LoadImageSilhouette(path)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains(0.5, 0.5) || s.Contains(0.5, 1.5) {
		t.Error("loaded silhouette does not match the source image")
	}
	if f := SampleField(s, 1); f.Len() != 2 {
		t.Errorf("sampled %d particles, want 2", f.Len())
	}
}

func TestLoadImageSilhouetteMissing(t *testing.T) {
	if _, err := LoadImageSilhouette(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

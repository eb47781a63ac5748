package pointfield

import (
	"fmt"
	"image"
	_ "image/png" // register PNG for LoadImageSilhouette
	"math"
	"os"
)

// Silhouette is a closed 2D region given as a fill test over a known
// bounding rectangle.
type Silhouette interface {
	Contains(x, y float64) bool
	Bounds() Rect
}

// RectSilhouette is an axis-aligned rectangle.
type RectSilhouette struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r RectSilhouette) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bounds returns the rectangle itself.
func (r RectSilhouette) Bounds() Rect {
	return Rect{r.X, r.Y, r.Width, r.Height}
}

// CircleSilhouette is a disc.
type CircleSilhouette struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c CircleSilhouette) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the circle's bounding square.
func (c CircleSilhouette) Bounds() Rect {
	return Rect{c.CenterX - c.Radius, c.CenterY - c.Radius, 2 * c.Radius, 2 * c.Radius}
}

// PolygonSilhouette is a set of closed rings filled with the even-odd rule.
// Rings may be concave; an inner ring cuts a hole. Rings with fewer than
// three points are ignored.
type PolygonSilhouette struct {
	Rings [][]Vec2
}

// NewPolygonSilhouette builds a silhouette from one or more rings.
func NewPolygonSilhouette(rings ...[]Vec2) *PolygonSilhouette {
	return &PolygonSilhouette{Rings: rings}
}

// Contains reports whether (x, y) is inside an odd number of rings, using a
// horizontal ray crossing test.
func (p *PolygonSilhouette) Contains(x, y float64) bool {
	inside := false
	for _, ring := range p.Rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > y) == (b.Y > y) {
				continue
			}
			cross := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x < cross {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the bounding rectangle of all usable rings.
func (p *PolygonSilhouette) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ring := range p.Rings {
		if len(ring) < 3 {
			continue
		}
		for _, pt := range ring {
			minX = min(minX, pt.X)
			minY = min(minY, pt.Y)
			maxX = max(maxX, pt.X)
			maxY = max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// ImageSilhouette treats every pixel of an image whose alpha exceeds
// Threshold as inside. The image is placed at Origin and stretched by Scale
// (field units per pixel; zero means 1).
type ImageSilhouette struct {
	Image     image.Image
	Origin    Vec2
	Scale     float64
	Threshold uint8
}

// NewImageSilhouette wraps img with a mid-range alpha threshold.
func NewImageSilhouette(img image.Image) *ImageSilhouette {
	return &ImageSilhouette{Image: img, Scale: 1, Threshold: 127}
}

// LoadImageSilhouette decodes a PNG file into an ImageSilhouette.
func LoadImageSilhouette(path string) (*ImageSilhouette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load silhouette %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode silhouette %s: %w", path, err)
	}
	return NewImageSilhouette(img), nil
}

func (s *ImageSilhouette) scale() float64 {
	if s.Scale > 0 {
		return s.Scale
	}
	return 1
}

// Contains reports whether the pixel under (x, y) is opaque enough.
func (s *ImageSilhouette) Contains(x, y float64) bool {
	if s.Image == nil {
		return false
	}
	k := s.scale()
	b := s.Image.Bounds()
	px := b.Min.X + int(math.Floor((x-s.Origin.X)/k))
	py := b.Min.Y + int(math.Floor((y-s.Origin.Y)/k))
	if !(image.Point{px, py}.In(b)) {
		return false
	}
	_, _, _, a := s.Image.At(px, py).RGBA()
	return uint8(a>>8) > s.Threshold
}

// Bounds returns the image rectangle in field units.
func (s *ImageSilhouette) Bounds() Rect {
	if s.Image == nil {
		return Rect{}
	}
	k := s.scale()
	b := s.Image.Bounds()
	return Rect{s.Origin.X, s.Origin.Y, float64(b.Dx()) * k, float64(b.Dy()) * k}
}

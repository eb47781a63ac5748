package pointfield

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next rendered frame to be saved as
// ScreenshotDir/<time>_<n>_<label>.png. The capture happens at the end of
// Draw, so the file shows everything drawn in that frame.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label from screen.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	labels := a.screenshotQueue
	a.screenshotQueue = a.screenshotQueue[:0]

	if err := os.MkdirAll(a.ScreenshotDir, 0o755); err != nil {
		warnf("screenshot: %v", err)
		return
	}

	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		a.screenshotSeq++
		name := fmt.Sprintf("%s_%03d_%s.png", stamp, a.screenshotSeq, sanitizeLabel(label))
		path := filepath.Join(a.ScreenshotDir, name)
		if err := writePNG(path, frame); err != nil {
			warnf("screenshot: %v", err)
			continue
		}
		debugLogf("screenshot: wrote %s", path)
	}
}

// captureFrame copies screen into an image.RGBA. ebiten pixels are
// premultiplied, which is what image.RGBA holds, so no conversion is needed.
func captureFrame(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// writePNG encodes img to path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := pngEncoder.Encode(f, img); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', turns everything
// else into '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

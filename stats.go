package pointfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay prints FPS, TPS and engine state in the top-left corner. The
// text is refreshed every ~0.5 seconds.
type statsOverlay struct {
	enabled bool
	elapsed float64
	text    string
}

func newStatsOverlay() *statsOverlay {
	return &statsOverlay{}
}

func (s *statsOverlay) update(dt float64) {
	s.elapsed += dt
}

func (s *statsOverlay) draw(screen *ebiten.Image, a *App) {
	if !s.enabled {
		return
	}
	if s.text == "" || s.elapsed >= 0.5 {
		s.elapsed = 0
		s.text = statsText(a, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, s.text)
}

// statsText formats the overlay lines.
func statsText(a *App, fps, tps float64) string {
	w := a.wave
	l := w.Lattice()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nGrid: %dx%d %s %.1f\nShape: %s -> %s\nParticles: %d",
		fps, tps,
		l.Columns(), l.Rows(), w.State(), w.Progress(),
		a.sequencer.Current(), a.sequencer.Next(),
		a.particles.Field().Len())
}

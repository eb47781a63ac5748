package pointfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// App hosts both engines in an ebiten game loop: it rebuilds the lattice when
// the window size changes, feeds the pointer to the particle engine, steps
// everything once per tick and renders the result.
//
// Implement ebiten.Game yourself for full control, or call Run.
type App struct {
	config     *Config
	latticeCfg LatticeConfig
	library    *ShapeLibrary

	wave      *GridWaveEngine
	sequencer *Sequencer
	particles *ParticleFieldEngine
	renderer  *Renderer
	stats     *statsOverlay

	silhouette Silhouette
	view       Viewport

	width, height int
	started       bool

	// ClearColor fills the screen before drawing.
	ClearColor Color
	// ShowGrid and ShowParticles toggle the two layers.
	ShowGrid      bool
	ShowParticles bool
	// ViewportFraction is the share of the smaller screen side the particle
	// field occupies.
	ViewportFraction float64

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir   string
	screenshotQueue []string
	screenshotSeq   int

	script     *ScriptRunner
	pointerBuf []Vec2 // queued scripted pointer positions (screen space)
	scripted   bool   // a script owns the pointer
	touchIDs   []ebiten.TouchID

	updateFunc func() error
}

// NewApp builds an app from cfg. sil may be nil, in which case the particle
// layer stays empty. The sequencer starts on the first Update.
func NewApp(cfg *Config, sil Silhouette) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	SetDebugMode(cfg.Debug)

	a := &App{
		config:           cfg,
		latticeCfg:       cfg.LatticeConfig(),
		library:          DefaultShapeLibrary(),
		ClearColor:       Color{R: 0.04, G: 0.04, B: 0.07, A: 1},
		ShowGrid:         true,
		ShowParticles:    sil != nil,
		ViewportFraction: 0.8,
		ScreenshotDir:    "screenshots",
		stats:            newStatsOverlay(),
	}
	a.wave = NewGridWaveEngine(nil, cfg.WaveConfig())
	seq, err := NewSequencer(a.wave, a.library, cfg.Sequence)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}
	a.sequencer = seq
	a.particles = NewParticleFieldEngine(nil, cfg.PhysicsConfig())
	a.renderer = NewRenderer(a.latticeCfg)
	if cfg.Particles.DotRadius > 0 {
		a.renderer.ParticleRadius = cfg.Particles.DotRadius
	}
	a.SetSilhouette(sil)
	return a, nil
}

// Library returns the app's shape library. Register extra shapes before the
// first Update to use them in the sequence.
func (a *App) Library() *ShapeLibrary { return a.library }

// Wave returns the grid wave engine.
func (a *App) Wave() *GridWaveEngine { return a.wave }

// Sequencer returns the shape sequencer.
func (a *App) Sequencer() *Sequencer { return a.sequencer }

// Particles returns the particle engine.
func (a *App) Particles() *ParticleFieldEngine { return a.particles }

// Renderer returns the renderer for live tuning.
func (a *App) Renderer() *Renderer { return a.renderer }

// Viewport returns the current field-to-screen mapping.
func (a *App) Viewport() Viewport { return a.view }

// SetEventSink forwards lifecycle events from all engines to sink.
func (a *App) SetEventSink(sink EventSink) {
	a.wave.SetEventSink(sink)
	a.sequencer.SetEventSink(sink)
	a.particles.SetEventSink(sink)
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (a *App) SetUpdateFunc(fn func() error) { a.updateFunc = fn }

// SetScriptRunner attaches a script. Its step runs at the start of every
// Update, and it owns the pointer while attached.
func (a *App) SetScriptRunner(r *ScriptRunner) {
	a.script = r
	a.scripted = r != nil
}

// SetSilhouette resamples the particle field from sil. A nil silhouette
// leaves the field empty.
func (a *App) SetSilhouette(sil Silhouette) {
	a.silhouette = sil
	a.particles.SetField(SampleField(sil, a.config.Particles.Spacing))
	a.refit()
}

// Update steps the script, the pointer, both engines and the sequencer.
func (a *App) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if !a.started {
		a.started = true
		a.sequencer.Start()
	}
	if a.script != nil {
		a.script.step(a)
	}
	a.updatePointer()

	a.wave.Step(dt)
	a.sequencer.Update()
	a.particles.Step()
	a.stats.update(dt)

	if a.updateFunc != nil {
		return a.updateFunc()
	}
	return nil
}

// Draw renders the visible layers and any queued screenshots.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.ClearColor.toNRGBA(1))
	if a.ShowGrid {
		a.renderer.DrawLattice(screen, a.wave.Lattice())
	}
	if a.ShowParticles {
		a.renderer.DrawParticles(screen, a.particles.Field(), a.view)
	}
	a.stats.draw(screen, a)
	a.flushScreenshots(screen)
}

// Layout rebuilds the lattice whenever the outside size changes and returns
// it unchanged.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Resize rebuilds the lattice for a new canvas size. Same-size calls are
// no-ops.
func (a *App) Resize(width, height int) {
	if width == a.width && height == a.height {
		return
	}
	a.width, a.height = width, height
	a.wave.SetLattice(NewLattice(float64(width), float64(height), a.latticeCfg))
	a.refit()
}

func (a *App) refit() {
	if a.silhouette == nil {
		a.view = Viewport{}
		return
	}
	a.view = FitViewport(a.silhouette.Bounds(), float64(a.width), float64(a.height), a.ViewportFraction)
}

// updatePointer feeds the latest pointer to the particle engine: a queued
// scripted position, else the first touch, else the mouse cursor.
func (a *App) updatePointer() {
	if a.scripted {
		if len(a.pointerBuf) == 0 {
			return
		}
		p := a.pointerBuf[0]
		copy(a.pointerBuf, a.pointerBuf[1:])
		a.pointerBuf = a.pointerBuf[:len(a.pointerBuf)-1]
		a.setScreenPointer(p.X, p.Y)
		return
	}

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	if len(a.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(a.touchIDs[0])
		a.setScreenPointer(float64(x), float64(y))
		return
	}
	x, y := ebiten.CursorPosition()
	a.setScreenPointer(float64(x), float64(y))
}

func (a *App) setScreenPointer(x, y float64) {
	p := a.view.ToField(x, y)
	a.particles.SetPointer(p.X, p.Y)
}

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the initial window size. Zero means 1280×720.
	Width, Height int
	// ShowFPS enables the stats overlay.
	ShowFPS bool
	// Resizable lets the user resize the window; the lattice follows.
	Resizable bool
}

// Run opens a window and runs app until the window closes or Update returns
// an error.
func Run(app *App, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 1280, 720
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	app.stats.enabled = cfg.ShowFPS
	return ebiten.RunGame(app)
}

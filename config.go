package pointfield

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file-level configuration for a pointfield app. Zero-valued
// fields take their defaults in ParseConfig.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Particles ParticlesConfig `yaml:"particles"`
	// Sequence is the list of shape names the sequencer cycles through.
	Sequence []string `yaml:"sequence"`
	Debug    bool     `yaml:"debug"`
}

// GridConfig configures the lattice and the wave engine.
type GridConfig struct {
	Spacing           float64    `yaml:"spacing"`
	DotRadius         float64    `yaml:"dotRadius"`
	FlowDuration      float64    `yaml:"flowDuration"`
	PauseDuration     float64    `yaml:"pauseDuration"`
	ActiveColumnWidth float64    `yaml:"activeColumnWidth"`
	Direction         string     `yaml:"direction"` // "rightward" (default) or "leftward"
	Jitter            *float64   `yaml:"jitter"`
	MultiplierTiers   []TierSpec `yaml:"multiplierTiers"`
	LengthTiers       []TierSpec `yaml:"lengthTiers"`
}

// TierSpec is the YAML form of a FadeTier.
type TierSpec struct {
	Weight float64 `yaml:"weight"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// ParticlesConfig configures silhouette sampling and the particle physics.
type ParticlesConfig struct {
	Spacing    float64 `yaml:"spacing"`
	DotRadius  float64 `yaml:"dotRadius"`
	Silhouette string  `yaml:"silhouette"` // optional PNG path
	// Preset selects "delta" (default) or "pie" tuning before overrides.
	Preset          string   `yaml:"preset"`
	InfluenceRadius *float64 `yaml:"influenceRadius"`
	PushForce       *float64 `yaml:"pushForce"`
	MaxScale        *float64 `yaml:"maxScale"`
	ScaleRate       *float64 `yaml:"scaleRate"`
	Gravity         *float64 `yaml:"gravity"`
	Damping         *float64 `yaml:"damping"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	lc := DefaultLatticeConfig()
	wc := DefaultWaveConfig()
	jitter := lc.Jitter
	return &Config{
		Grid: GridConfig{
			Spacing:           lc.Spacing,
			DotRadius:         lc.DotRadius,
			FlowDuration:      wc.FlowDuration,
			PauseDuration:     wc.PauseDuration,
			ActiveColumnWidth: wc.ActiveColumnWidth,
			Direction:         "rightward",
			Jitter:            &jitter,
			MultiplierTiers:   tierSpecs(lc.MultiplierTiers),
			LengthTiers:       tierSpecs(lc.LengthTiers),
		},
		Particles: ParticlesConfig{
			Spacing:   15,
			DotRadius: 4,
			Preset:    "delta",
		},
		Sequence: []string{ShapeLineChart, ShapeBarChart, ShapePieChart},
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	g := &c.Grid
	switch {
	case !(g.Spacing > 0):
		return fmt.Errorf("%w: grid.spacing must be > 0, got %v", ErrInvalidConfig, g.Spacing)
	case g.FlowDuration < 0:
		return fmt.Errorf("%w: grid.flowDuration must be >= 0, got %v", ErrInvalidConfig, g.FlowDuration)
	case g.PauseDuration < 0:
		return fmt.Errorf("%w: grid.pauseDuration must be >= 0, got %v", ErrInvalidConfig, g.PauseDuration)
	case g.ActiveColumnWidth < 0:
		return fmt.Errorf("%w: grid.activeColumnWidth must be >= 0, got %v", ErrInvalidConfig, g.ActiveColumnWidth)
	case g.Jitter != nil && (*g.Jitter < 0 || *g.Jitter >= 1):
		return fmt.Errorf("%w: grid.jitter must be in [0, 1), got %v", ErrInvalidConfig, *g.Jitter)
	}
	if _, err := parseDirection(g.Direction); err != nil {
		return err
	}
	if err := validateTiers("grid.multiplierTiers", g.MultiplierTiers); err != nil {
		return err
	}
	if err := validateTiers("grid.lengthTiers", g.LengthTiers); err != nil {
		return err
	}

	p := &c.Particles
	if !(p.Spacing > 0) {
		return fmt.Errorf("%w: particles.spacing must be > 0, got %v", ErrInvalidConfig, p.Spacing)
	}
	if _, err := physicsPreset(p.Preset); err != nil {
		return err
	}
	if p.Damping != nil && (*p.Damping < 0 || *p.Damping >= 1) {
		return fmt.Errorf("%w: particles.damping must be in [0, 1), got %v", ErrInvalidConfig, *p.Damping)
	}
	if p.InfluenceRadius != nil && *p.InfluenceRadius < 0 {
		return fmt.Errorf("%w: particles.influenceRadius must be >= 0, got %v", ErrInvalidConfig, *p.InfluenceRadius)
	}
	return nil
}

func validateTiers(field string, tiers []TierSpec) error {
	total := 0.0
	for i, t := range tiers {
		if t.Weight < 0 {
			return fmt.Errorf("%w: %s[%d].weight must be >= 0", ErrInvalidConfig, field, i)
		}
		if t.Min > t.Max {
			return fmt.Errorf("%w: %s[%d] min %v > max %v", ErrInvalidConfig, field, i, t.Min, t.Max)
		}
		total += t.Weight
	}
	if len(tiers) > 0 && total == 0 {
		return fmt.Errorf("%w: %s has no positive weight", ErrInvalidConfig, field)
	}
	return nil
}

func parseDirection(s string) (SweepDirection, error) {
	switch s {
	case "", "rightward":
		return SweepRightward, nil
	case "leftward":
		return SweepLeftward, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, s)
	}
}

func physicsPreset(name string) (PhysicsConfig, error) {
	switch name {
	case "", "delta":
		return PhysicsPresetDelta, nil
	case "pie":
		return PhysicsPresetPie, nil
	default:
		return PhysicsConfig{}, fmt.Errorf("%w: unknown physics preset %q", ErrInvalidConfig, name)
	}
}

func tierSpecs(t TierTable) []TierSpec {
	out := make([]TierSpec, len(t))
	for i, tier := range t {
		out[i] = TierSpec{Weight: tier.Weight, Min: tier.Values.Min, Max: tier.Values.Max}
	}
	return out
}

func tierTable(specs []TierSpec) TierTable {
	out := make(TierTable, len(specs))
	for i, s := range specs {
		out[i] = FadeTier{Weight: s.Weight, Values: Range{s.Min, s.Max}}
	}
	return out
}

// LatticeConfig converts the grid section into a LatticeConfig.
func (c *Config) LatticeConfig() LatticeConfig {
	lc := DefaultLatticeConfig()
	g := &c.Grid
	lc.Spacing = g.Spacing
	if g.DotRadius > 0 {
		lc.DotRadius = g.DotRadius
	}
	lc.ActiveColumnWidth = g.ActiveColumnWidth
	if g.Jitter != nil {
		lc.Jitter = *g.Jitter
	}
	if len(g.MultiplierTiers) > 0 {
		lc.MultiplierTiers = tierTable(g.MultiplierTiers)
	}
	if len(g.LengthTiers) > 0 {
		lc.LengthTiers = tierTable(g.LengthTiers)
	}
	return lc
}

// WaveConfig converts the grid section into a WaveConfig.
func (c *Config) WaveConfig() WaveConfig {
	dir, _ := parseDirection(c.Grid.Direction)
	return WaveConfig{
		FlowDuration:      c.Grid.FlowDuration,
		PauseDuration:     c.Grid.PauseDuration,
		ActiveColumnWidth: c.Grid.ActiveColumnWidth,
		Direction:         dir,
	}
}

// PhysicsConfig converts the particles section into a PhysicsConfig: the
// preset first, then any explicit overrides.
func (c *Config) PhysicsConfig() PhysicsConfig {
	pc, _ := physicsPreset(c.Particles.Preset)
	p := &c.Particles
	override := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	override(&pc.InfluenceRadius, p.InfluenceRadius)
	override(&pc.PushForce, p.PushForce)
	override(&pc.MaxScale, p.MaxScale)
	override(&pc.ScaleRate, p.ScaleRate)
	override(&pc.Gravity, p.Gravity)
	override(&pc.Damping, p.Damping)
	return pc
}

// Package config provides configuration management for sociogram.
//
// The config file holds presentation and resource settings only: layout
// preset and overrides, the initial filter, viewport, tick budget, analysis
// size guards, watcher debounce and log level. Datasets are never stored.
//
// Config file locations (priority order):
//  1. $SOCIOGRAM_CONFIG
//  2. ./sociogram.yaml
//  3. ~/.config/sociogram/config.yaml
//  4. /etc/sociogram/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"sociogram/internal/analysis"
	"sociogram/internal/layout"
	"sociogram/internal/session"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Defaults
const (
	DefaultMaxTicks       = 600
	DefaultMaxCliqueNodes = 2000
	DefaultMinCliqueSize  = 2
	DefaultDebounce       = 500 * time.Millisecond
	DefaultLogLevel       = "info"
)

var validate = validator.New()

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	vp := layout.DefaultViewport()
	return &Config{
		Version:  1,
		Preset:   PresetBalanced,
		Viewport: ViewportConfig{Width: vp.Width, Height: vp.Height},
		Run:      RunConfig{MaxTicks: DefaultMaxTicks, Seed: 1},
		Analysis: AnalysisConfig{
			MaxCliqueNodes: DefaultMaxCliqueNodes,
			MinCliqueSize:  DefaultMinCliqueSize,
		},
		Watch:   WatchConfig{Debounce: Duration(DefaultDebounce)},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Preset == "" {
		c.Preset = def.Preset
	}
	if c.Viewport.Width == 0 {
		c.Viewport.Width = def.Viewport.Width
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = def.Viewport.Height
	}
	if c.Run.MaxTicks == 0 {
		c.Run.MaxTicks = def.Run.MaxTicks
	}
	if c.Run.Seed == 0 {
		c.Run.Seed = def.Run.Seed
	}
	if c.Analysis.MaxCliqueNodes == 0 {
		c.Analysis.MaxCliqueNodes = def.Analysis.MaxCliqueNodes
	}
	if c.Analysis.MinCliqueSize == 0 {
		c.Analysis.MinCliqueSize = def.Analysis.MinCliqueSize
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = def.Watch.Debounce
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// EffectiveParams returns the preset parameters with overrides applied
func (c *Config) EffectiveParams() layout.Params {
	base := c.Preset.Params()

	if c.Layout == nil {
		return base
	}

	// Apply overrides
	if c.Layout.LinkDistance != nil {
		base.LinkDistance = *c.Layout.LinkDistance
	}
	if c.Layout.ChargeStrength != nil {
		base.ChargeStrength = *c.Layout.ChargeStrength
	}
	if c.Layout.CollideFactor != nil {
		base.CollideFactor = *c.Layout.CollideFactor
	}

	return base
}

// EffectiveFilter returns the initial filter with unset toggles shown
func (c *Config) EffectiveFilter() session.Filter {
	f := session.DefaultFilter()
	if c.Filter.ShowPositive != nil {
		f.ShowPositive = *c.Filter.ShowPositive
	}
	if c.Filter.ShowNegative != nil {
		f.ShowNegative = *c.Filter.ShowNegative
	}
	f.MinPreferences = c.Filter.MinPreferences
	return f
}

// SessionOptions converts the config into session options
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Filter:   c.EffectiveFilter(),
		Params:   c.EffectiveParams(),
		Viewport: layout.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height},
		Analysis: analysis.Options{
			MaxCliqueNodes:     c.Analysis.MaxCliqueNodes,
			MaxCentralityNodes: c.Analysis.MaxCentralityNodes,
		},
		Seed: c.Run.Seed,
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	p := c.EffectiveParams()
	f := c.EffectiveFilter()

	summary := fmt.Sprintf("Preset: %s (link %.0f, charge %.0f, collide %.2f)\n",
		c.Preset, p.LinkDistance, p.ChargeStrength, p.CollideFactor)
	summary += fmt.Sprintf("Filter: positive=%t negative=%t min_preferences=%d\n",
		f.ShowPositive, f.ShowNegative, f.MinPreferences)
	summary += fmt.Sprintf("Viewport: %.0fx%.0f, max ticks: %d, clique guard: %d nodes",
		c.Viewport.Width, c.Viewport.Height, c.Run.MaxTicks, c.Analysis.MaxCliqueNodes)

	return summary
}

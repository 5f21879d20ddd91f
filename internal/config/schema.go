package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version  int             `yaml:"version" validate:"gte=1"`
	Preset   Preset          `yaml:"preset" validate:"omitempty,oneof=compact balanced spread"`
	Layout   *LayoutOverride `yaml:"layout,omitempty"`
	Viewport ViewportConfig  `yaml:"viewport"`
	Filter   FilterConfig    `yaml:"filter"`
	Run      RunConfig       `yaml:"run"`
	Analysis AnalysisConfig  `yaml:"analysis"`
	Watch    WatchConfig     `yaml:"watch"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// LayoutOverride allows overriding preset layout parameters
type LayoutOverride struct {
	LinkDistance   *float64 `yaml:"link_distance,omitempty" validate:"omitempty,gt=0"`
	ChargeStrength *float64 `yaml:"charge_strength,omitempty" validate:"omitempty,lte=0"`
	CollideFactor  *float64 `yaml:"collide_factor,omitempty" validate:"omitempty,gte=0"`
}

// ViewportConfig is the layout drawing area
type ViewportConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// FilterConfig holds the initial filter. Unset toggles default to shown.
type FilterConfig struct {
	ShowPositive   *bool `yaml:"show_positive,omitempty"`
	ShowNegative   *bool `yaml:"show_negative,omitempty"`
	MinPreferences int   `yaml:"min_preferences" validate:"gte=0"`
}

// RunConfig bounds the layout loop
type RunConfig struct {
	MaxTicks int   `yaml:"max_ticks" validate:"gte=0"`
	Seed     int64 `yaml:"seed"`
}

// AnalysisConfig holds the size guards of the expensive stages and the
// clique display threshold
type AnalysisConfig struct {
	MaxCliqueNodes     int `yaml:"max_clique_nodes" validate:"gte=0"`
	MaxCentralityNodes int `yaml:"max_centrality_nodes" validate:"gte=0"`
	MinCliqueSize      int `yaml:"min_clique_size" validate:"gte=2"`
}

// WatchConfig holds file watcher settings
type WatchConfig struct {
	Debounce Duration `yaml:"debounce"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

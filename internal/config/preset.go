package config

import "sociogram/internal/layout"

// Preset names a starting set of layout parameters
type Preset string

const (
	PresetCompact  Preset = "compact"  // Short links, weak repulsion
	PresetBalanced Preset = "balanced" // Default layout
	PresetSpread   Preset = "spread"   // Long links, strong repulsion
)

// ParsePreset converts a string to Preset, defaulting to PresetBalanced
func ParsePreset(s string) Preset {
	switch s {
	case "compact":
		return PresetCompact
	case "balanced":
		return PresetBalanced
	case "spread":
		return PresetSpread
	default:
		return PresetBalanced
	}
}

// PresetParams maps presets to their layout parameters
var PresetParams = map[Preset]layout.Params{
	PresetCompact: {
		LinkDistance:   60,
		ChargeStrength: -80,
		CollideFactor:  1.0,
	},
	PresetBalanced: layout.DefaultParams(),
	PresetSpread: {
		LinkDistance:   160,
		ChargeStrength: -400,
		CollideFactor:  1.5,
	},
}

// Params returns the layout parameters for a preset
func (p Preset) Params() layout.Params {
	if params, ok := PresetParams[p]; ok {
		return params
	}
	return PresetParams[PresetBalanced]
}

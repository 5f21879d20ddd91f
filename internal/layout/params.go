package layout

import (
	"errors"
	"math"
)

// ErrInvalidViewport is returned for non-positive viewport dimensions
var ErrInvalidViewport = errors.New("viewport dimensions must be positive")

// Fixed force constants
const (
	LinkStrength    = 0.4
	CollideStrength = 0.8
	CollideMargin   = 3.0
	Theta           = 0.9
)

// Alpha schedule
const (
	AlphaInitial     = 1.0
	AlphaMin         = 0.001
	VelocityDecay    = 0.4
	AlphaViewRestart = 0.6
	AlphaRestart     = 0.3
	AlphaDragTarget  = 0.3
	// reheatBelow is the alpha under which a view change restarts the layout
	reheatBelow = 0.1
)

// AlphaDecay brings alpha from 1 to AlphaMin in about 300 ticks
var AlphaDecay = 1 - math.Pow(AlphaMin, 1.0/300)

// Params are the user-tunable layout controls
type Params struct {
	LinkDistance   float64 `json:"link_distance" yaml:"link_distance" validate:"gt=0"`
	ChargeStrength float64 `json:"charge_strength" yaml:"charge_strength" validate:"lte=0"`
	CollideFactor  float64 `json:"collide_factor" yaml:"collide_factor" validate:"gte=0"`
}

// DefaultParams returns the default layout controls
func DefaultParams() Params {
	return Params{
		LinkDistance:   100,
		ChargeStrength: -200,
		CollideFactor:  1.2,
	}
}

// Viewport is the drawing area the layout centers on
type Viewport struct {
	Width  float64 `json:"width" yaml:"width" validate:"gt=0"`
	Height float64 `json:"height" yaml:"height" validate:"gt=0"`
}

// DefaultViewport returns a 960x600 viewport
func DefaultViewport() Viewport {
	return Viewport{Width: 960, Height: 600}
}

// Valid reports whether both dimensions are positive
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// collideRadius is the minimum separation radius of a node
func (p Params) collideRadius(radius float64) float64 {
	return radius*p.CollideFactor + CollideMargin
}

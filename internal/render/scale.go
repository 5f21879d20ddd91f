package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"sociogram/internal/domain"
)

// Ramps for the sequential modes, light to dark except betweenness
var ramps = map[ColorMode][]string{
	ColorPreferencesReceived:    {"#f7fcf5", "#74c476", "#00441b"},
	ColorNonPreferencesReceived: {"#fff5f0", "#fb6a4a", "#67000d"},
	ColorDegree:                 {"#f7fbff", "#6baed6", "#08306b"},
	ColorBetweenness:            {"#440154", "#21918c", "#fde725"},
}

// Extent is the closed value domain of a scale
type Extent struct {
	Min, Max float64
}

// Key identifies the extent for cache invalidation
func (e Extent) Key() string {
	return fmt.Sprintf("%g-%g", e.Min, e.Max)
}

// Degenerate reports whether the extent is a single value
func (e Extent) Degenerate() bool {
	return e.Min == e.Max
}

// ExtentOf returns the extent of a mode's value over nodes
func ExtentOf(nodes []*domain.Node, mode ColorMode) Extent {
	e := Extent{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, n := range nodes {
		v, ok := NodeValue(n, mode)
		if !ok {
			continue
		}
		e.Min = math.Min(e.Min, v)
		e.Max = math.Max(e.Max, v)
	}
	if math.IsInf(e.Min, 1) {
		return Extent{}
	}
	return e
}

// Scale maps values in an extent onto a color ramp
type Scale struct {
	Domain Extent
	stops  []colorful.Color
}

// NewScale builds the scale of a sequential mode over extent
func NewScale(mode ColorMode, extent Extent) (Scale, error) {
	hexes, ok := ramps[mode]
	if !ok {
		return Scale{}, fmt.Errorf("color mode %q has no sequential scale", mode)
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Scale{}, fmt.Errorf("ramp color %s: %w", h, err)
		}
		stops[i] = c
	}
	return Scale{Domain: extent, stops: stops}, nil
}

// At returns the color for v. A degenerate domain maps every value to the
// middle of the ramp.
func (s Scale) At(v float64) colorful.Color {
	t := 0.5
	if !s.Domain.Degenerate() {
		t = (v - s.Domain.Min) / (s.Domain.Max - s.Domain.Min)
	}
	return s.interpolate(t)
}

func (s Scale) interpolate(t float64) colorful.Color {
	t = math.Max(0, math.Min(1, t))
	segments := len(s.stops) - 1
	if segments <= 0 {
		return s.stops[0]
	}
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return s.stops[segments]
	}
	return s.stops[i].BlendLab(s.stops[i+1], pos-float64(i)).Clamped()
}

// ScaleCache holds one scale per mode, rebuilt when its extent changes
type ScaleCache struct {
	entries map[ColorMode]Scale
	builds  int
}

// NewScaleCache creates an empty cache
func NewScaleCache() *ScaleCache {
	return &ScaleCache{entries: make(map[ColorMode]Scale)}
}

// Scale returns the scale of mode over nodes, reusing the cached one when the
// extent is unchanged
func (c *ScaleCache) Scale(mode ColorMode, nodes []*domain.Node) (Scale, error) {
	extent := ExtentOf(nodes, mode)
	if s, ok := c.entries[mode]; ok && s.Domain.Key() == extent.Key() {
		return s, nil
	}
	s, err := NewScale(mode, extent)
	if err != nil {
		return Scale{}, err
	}
	c.entries[mode] = s
	c.builds++
	return s, nil
}

// Builds returns how many scales have been computed
func (c *ScaleCache) Builds() int { return c.builds }

// Invalidate drops every cached scale
func (c *ScaleCache) Invalidate() {
	c.entries = make(map[ColorMode]Scale)
}

// NodeColor returns the hex color of n under mode. nodes is the full node
// collection the sequential scales are fitted to.
func (c *ScaleCache) NodeColor(n *domain.Node, mode ColorMode, nodes []*domain.Node) (string, error) {
	switch mode {
	case ColorStatus:
		return StatusColor(n.Status), nil
	case ColorDefault, "":
		return AccentColor, nil
	}
	if len(nodes) == 0 {
		return AccentColor, nil
	}
	s, err := c.Scale(mode, nodes)
	if err != nil {
		return "", err
	}
	v, _ := NodeValue(n, mode)
	return s.At(v).Hex(), nil
}

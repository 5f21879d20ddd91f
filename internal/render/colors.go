package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"sociogram/internal/domain"
)

// ColorMode selects what a node's color encodes
type ColorMode string

const (
	ColorStatus                 ColorMode = "status"
	ColorPreferencesReceived    ColorMode = "preferencesReceived"
	ColorNonPreferencesReceived ColorMode = "nonPreferencesReceived"
	ColorDegree                 ColorMode = "degree"
	ColorBetweenness            ColorMode = "betweenness"
	ColorDefault                ColorMode = "default"
)

// ColorModes lists every mode in menu order
var ColorModes = []ColorMode{
	ColorStatus,
	ColorPreferencesReceived,
	ColorNonPreferencesReceived,
	ColorDegree,
	ColorBetweenness,
	ColorDefault,
}

// ParseColorMode converts a string to a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	for _, m := range ColorModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// Palette
const (
	AccentColor = "#4f7cac"
	MutedColor  = "#8a8f98"
)

// StatusColors maps each status to its display color
var StatusColors = map[domain.Status]string{
	domain.StatusPopular:       "#2e9e44",
	domain.StatusRejected:      "#d64541",
	domain.StatusControversial: "#e08e0b",
	domain.StatusNeglected:     "#7f8c8d",
	domain.StatusAverage:       "#4f7cac",
}

// StatusColor returns the color of a status, Average's for unknown ones
func StatusColor(s domain.Status) string {
	if c, ok := StatusColors[s]; ok {
		return c
	}
	return StatusColors[domain.StatusAverage]
}

// NodeValue returns the counter a sequential mode encodes. ok is false for
// modes without a numeric value.
func NodeValue(n *domain.Node, mode ColorMode) (v float64, ok bool) {
	switch mode {
	case ColorPreferencesReceived:
		return float64(n.PreferencesReceived), true
	case ColorNonPreferencesReceived:
		return float64(n.NonPreferencesReceived), true
	case ColorDegree:
		return float64(n.TotalDegree), true
	case ColorBetweenness:
		return n.Betweenness, true
	default:
		return 0, false
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(MutedColor))
)

func statusStyle(s domain.Status) lipgloss.Style {
	return cellStyle.Foreground(lipgloss.Color(StatusColor(s)))
}

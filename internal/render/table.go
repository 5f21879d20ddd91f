package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"sociogram/internal/domain"
)

// MetricsHeaders are the metrics table columns
var MetricsHeaders = []string{
	"Code", "Name", "PR", "NPR", "PG", "NPG", "Degree", "Reciprocal", "Social Pref.", "Status", "Betweenness",
}

const statusColumn = 9

// MetricsRow formats one node as metrics table cells
func MetricsRow(n *domain.Node) []string {
	return []string{
		n.ID,
		n.DisplayName(),
		strconv.Itoa(n.PreferencesReceived),
		strconv.Itoa(n.NonPreferencesReceived),
		strconv.Itoa(n.PreferencesGiven),
		strconv.Itoa(n.NonPreferencesGiven),
		strconv.Itoa(n.TotalDegree),
		strconv.Itoa(n.PositiveReciprocal),
		strconv.Itoa(n.SocialPreferenceScore()),
		string(n.Status),
		fmt.Sprintf("%.3f", n.Betweenness),
	}
}

// MetricsTable renders the metrics of every node, status cells colored by
// status
func MetricsTable(nodes []*domain.Node) string {
	rows := make([][]string, len(nodes))
	statuses := make([]domain.Status, len(nodes))
	for i, n := range nodes {
		rows[i] = MetricsRow(n)
		statuses[i] = n.Status
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(MetricsHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == statusColumn && row >= 0 && row < len(statuses):
				return statusStyle(statuses[row])
			default:
				return cellStyle
			}
		})

	return t.String()
}

// PositionsTable renders node coordinates
func PositionsTable(positions []domain.NodePosition) string {
	rows := make([][]string, len(positions))
	for i, p := range positions {
		pinned := ""
		if p.Pinned {
			pinned = "yes"
		}
		rows[i] = []string{p.NodeID, fmt.Sprintf("%.1f", p.X), fmt.Sprintf("%.1f", p.Y), pinned}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("Node", "X", "Y", "Pinned").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String()
}

// StatusSummary counts nodes per status in priority order
func StatusSummary(nodes []*domain.Node) string {
	counts := make(map[domain.Status]int)
	for _, n := range nodes {
		counts[n.Status]++
	}
	parts := make([]string, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		parts = append(parts, fmt.Sprintf("%s %d", statusStyle(s).UnsetPadding().Render(string(s)), counts[s]))
	}
	return strings.Join(parts, "  ")
}

package render

import (
	"fmt"
	"strings"

	"sociogram/internal/domain"
)

// CliqueList renders cliques as a numbered list using display names. The
// highlighted clique, if any, is marked.
func CliqueList(cliques []domain.Clique, g *domain.Graph, minSize int, highlighted domain.Clique) string {
	var sb strings.Builder

	if len(cliques) == 0 {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("No cliques of size %d+", minSize)))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Found %d cliques with at least %d members", len(cliques), minSize)))
	sb.WriteString("\n")

	for i, c := range cliques {
		marker := " "
		if highlighted != nil && c.Key() == highlighted.Key() {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %2d. (%d) %s\n", marker, i+1, c.Size(), strings.Join(memberNames(c, g), ", "))
	}
	return sb.String()
}

func memberNames(c domain.Clique, g *domain.Graph) []string {
	names := make([]string, len(c))
	for i, id := range c {
		names[i] = id
		if g == nil {
			continue
		}
		if n, ok := g.Node(id); ok && n.Label != "" && n.Label != id {
			names[i] = fmt.Sprintf("%s (%s)", n.Label, id)
		}
	}
	return names
}

// Legend describes what node colors mean under mode
func Legend(mode ColorMode) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Node color: " + string(mode)))
	sb.WriteString("\n")

	switch mode {
	case ColorStatus:
		for _, s := range domain.Statuses {
			fmt.Fprintf(&sb, "  %s\n", statusStyle(s).UnsetPadding().Render(string(s)))
		}
	case ColorPreferencesReceived:
		sb.WriteString("  greener nodes received more preferred nominations\n")
	case ColorNonPreferencesReceived:
		sb.WriteString("  redder nodes received more non-preferred nominations\n")
	case ColorDegree:
		sb.WriteString("  darker nodes have more nominations in or out\n")
	case ColorBetweenness:
		sb.WriteString("  brighter nodes lie on more shortest paths between others\n")
	default:
		sb.WriteString("  all nodes share one color\n")
	}
	return sb.String()
}

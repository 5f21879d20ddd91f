package analysis

import (
	"sociogram/internal/domain"
)

// Build turns rows into a nomination graph with counters and reciprocity
// filled in. Status, betweenness and radius are left for later stages.
func Build(rows []domain.Row) *domain.Graph {
	g := domain.NewGraph()

	// Every code that appears anywhere gets a node, even if it never has a row
	codes := make([]string, 0, len(rows))
	seen := make(map[string]struct{})
	names := make(map[string]string)
	register := func(code string) {
		if code == "" {
			return
		}
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	for _, r := range rows {
		register(r.Code)
		for _, target := range r.Targets {
			register(target)
		}
		// First non-empty name wins
		if r.Code != "" && r.Name != "" {
			if _, ok := names[r.Code]; !ok {
				names[r.Code] = r.Name
			}
		}
	}
	for _, code := range codes {
		g.AddNode(domain.NewNode(code, names[code]))
	}

	positive := make(map[string]map[string]struct{})
	for _, r := range rows {
		source, ok := g.Node(r.Code)
		if r.Code == "" || !ok {
			continue
		}
		if _, ok := positive[r.Code]; !ok {
			positive[r.Code] = make(map[string]struct{})
		}

		for slot, targetCode := range r.Targets {
			if targetCode == "" {
				continue
			}
			target, ok := g.Node(targetCode)
			if !ok {
				continue
			}

			edge := domain.NewNomination(r.Code, targetCode, slot)
			if err := g.AddNomination(edge); err != nil {
				continue
			}

			source.TotalDegree++
			target.TotalDegree++

			if edge.IsPositive() {
				target.PreferencesReceived++
				source.PreferencesGiven++
				positive[r.Code][targetCode] = struct{}{}
			} else {
				target.NonPreferencesReceived++
				source.NonPreferencesGiven++
			}
		}
	}

	computeReciprocity(g, positive)
	return g
}

// computeReciprocity counts, per node, the distinct positive targets that
// named the node back positively.
func computeReciprocity(g *domain.Graph, positive map[string]map[string]struct{}) {
	for _, id := range g.Order {
		node := g.Nodes[id]
		node.PositiveReciprocal = 0
		for target := range positive[id] {
			if _, ok := positive[target][id]; ok {
				node.PositiveReciprocal++
			}
		}
	}
}

// BuildFromCells adapts raw cell rows (code, name, 3 preferred, 3 non-preferred)
func BuildFromCells(cells [][]string) *domain.Graph {
	rows := make([]domain.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, domain.RowFromCells(c))
	}
	return Build(rows)
}

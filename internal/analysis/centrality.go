package analysis

import (
	"gonum.org/v1/gonum/graph/network"

	"sociogram/internal/domain"
)

// Betweenness computes normalized betweenness centrality for every node over
// the undirected graph of all nominations. Every node gets an entry; graphs
// with fewer than three people score zero throughout.
func Betweenness(g *domain.Graph) (map[string]float64, error) {
	scores := make(map[string]float64)
	if g == nil {
		return scores, nil
	}
	for _, id := range g.Order {
		scores[id] = 0
	}

	n := g.Len()
	if n < 3 {
		return scores, nil
	}

	view := newUndirectedView(g, nil)

	// gonum walks every source, so each unordered pair is counted twice;
	// (n-1)(n-2) is therefore the undirected (n-1)(n-2)/2 normalization.
	norm := float64((n - 1) * (n - 2))
	for gid, raw := range network.Betweenness(view.graph) {
		code, ok := view.code(gid)
		if !ok {
			continue
		}
		scores[code] = clampUnit(raw / norm)
	}

	return scores, nil
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

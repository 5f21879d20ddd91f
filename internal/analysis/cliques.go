package analysis

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"sociogram/internal/domain"
)

// MinCliqueSize is the smallest clique reported. Bron-Kerbosch also yields
// isolated people as singleton maximal cliques; those are dropped.
const MinCliqueSize = 2

// FindCliques enumerates all maximal cliques of size >= 2 over positive
// nominations, treating an edge in either direction as adjacency.
// Members of each clique are sorted; the list itself is in SortCliques order.
func FindCliques(g *domain.Graph) ([]domain.Clique, error) {
	if g == nil || g.Len() == 0 {
		return []domain.Clique{}, nil
	}

	view := newUndirectedView(g, func(e domain.Nomination) bool {
		return e.IsPositive()
	})

	found := topo.BronKerbosch(view.graph)
	cliques := make([]domain.Clique, 0, len(found))
	for _, members := range found {
		if len(members) < MinCliqueSize {
			continue
		}
		ids := make([]string, 0, len(members))
		for _, n := range members {
			if code, ok := view.code(n.ID()); ok {
				ids = append(ids, code)
			}
		}
		cliques = append(cliques, domain.NewClique(ids))
	}

	SortCliques(cliques)
	return cliques, nil
}

// SortCliques orders cliques by size descending, then by their stringified
// member list.
func SortCliques(cliques []domain.Clique) {
	sort.SliceStable(cliques, func(i, j int) bool {
		if cliques[i].Size() != cliques[j].Size() {
			return cliques[i].Size() > cliques[j].Size()
		}
		return cliques[i].Key() < cliques[j].Key()
	})
}

// FilterCliques returns the cliques with at least minSize members, sorted.
// A minSize below 2 is treated as 2.
func FilterCliques(cliques []domain.Clique, minSize int) []domain.Clique {
	if minSize < MinCliqueSize {
		minSize = MinCliqueSize
	}
	filtered := make([]domain.Clique, 0, len(cliques))
	for _, c := range cliques {
		if c.Size() >= minSize {
			filtered = append(filtered, c)
		}
	}
	SortCliques(filtered)
	return filtered
}

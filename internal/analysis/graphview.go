package analysis

import (
	"gonum.org/v1/gonum/graph/simple"

	"sociogram/internal/domain"
)

// undirectedView is a gonum graph over the nomination graph with a mapping
// between gonum node ids and person codes.
type undirectedView struct {
	graph *simple.UndirectedGraph
	ids   []string         // gonum id -> code
	index map[string]int64 // code -> gonum id
}

// newUndirectedView converts g to an undirected simple graph. Direction is
// ignored, repeated nominations collapse to a single edge and self-loops are
// dropped. keep selects which nominations take part; nil keeps all of them.
func newUndirectedView(g *domain.Graph, keep func(domain.Nomination) bool) *undirectedView {
	v := &undirectedView{
		graph: simple.NewUndirectedGraph(),
		ids:   make([]string, 0, len(g.Order)),
		index: make(map[string]int64, len(g.Order)),
	}

	// Add all nodes first so isolated people are still present
	for _, id := range g.Order {
		if _, ok := g.Nodes[id]; !ok {
			continue
		}
		gid := int64(len(v.ids))
		v.graph.AddNode(simple.Node(gid))
		v.ids = append(v.ids, id)
		v.index[id] = gid
	}

	for _, e := range g.Edges {
		if keep != nil && !keep(e) {
			continue
		}
		if e.IsSelfLoop() {
			continue
		}
		from, fromOK := v.index[e.Source]
		to, toOK := v.index[e.Target]
		if !fromOK || !toOK {
			continue
		}
		if v.graph.HasEdgeBetween(from, to) {
			continue
		}
		v.graph.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}

	return v
}

// code returns the person code for a gonum node id
func (v *undirectedView) code(id int64) (string, bool) {
	if id < 0 || id >= int64(len(v.ids)) {
		return "", false
	}
	return v.ids[id], true
}

// Len returns the number of nodes in the view
func (v *undirectedView) Len() int {
	return len(v.ids)
}

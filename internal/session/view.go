package session

import (
	"sociogram/internal/domain"
)

// Filter selects the visible part of the graph
type Filter struct {
	ShowPositive   bool `json:"show_positive" yaml:"show_positive"`
	ShowNegative   bool `json:"show_negative" yaml:"show_negative"`
	MinPreferences int  `json:"min_preferences" yaml:"min_preferences" validate:"gte=0"`
}

// DefaultFilter shows everything
func DefaultFilter() Filter {
	return Filter{ShowPositive: true, ShowNegative: true}
}

// ShowsType reports whether nominations of type t pass the filter
func (f Filter) ShowsType(t domain.NominationType) bool {
	switch t {
	case domain.NominationPositive:
		return f.ShowPositive
	case domain.NominationNegative:
		return f.ShowNegative
	default:
		return false
	}
}

// View is the filtered subset of a graph handed to the layout and renderer
type View struct {
	Nodes []*domain.Node
	Edges []domain.Nomination

	ids map[string]bool
}

// ApplyFilter computes the view of g under f. A node is visible when it has
// received at least MinPreferences positive nominations; a nomination is
// visible when its type is shown and both endpoints are visible.
func ApplyFilter(g *domain.Graph, f Filter) View {
	v := View{
		Nodes: []*domain.Node{},
		Edges: []domain.Nomination{},
		ids:   make(map[string]bool),
	}
	if g == nil {
		return v
	}
	for _, n := range g.OrderedNodes() {
		if n.PreferencesReceived >= f.MinPreferences {
			v.Nodes = append(v.Nodes, n)
			v.ids[n.ID] = true
		}
	}
	for _, e := range g.Edges {
		if f.ShowsType(e.Type) && v.ids[e.Source] && v.ids[e.Target] {
			v.Edges = append(v.Edges, e)
		}
	}
	return v
}

// HasNode reports whether id is visible
func (v View) HasNode(id string) bool {
	return v.ids[id]
}

// Len returns the number of visible nodes
func (v View) Len() int {
	return len(v.Nodes)
}

// Empty reports whether no node is visible
func (v View) Empty() bool {
	return len(v.Nodes) == 0
}

// NodeIDs returns the visible node ids in order
func (v View) NodeIDs() []string {
	ids := make([]string, len(v.Nodes))
	for i, n := range v.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// EdgeIDs returns the visible nomination ids in order
func (v View) EdgeIDs() []string {
	ids := make([]string, len(v.Edges))
	for i, e := range v.Edges {
		ids[i] = e.ID
	}
	return ids
}

// Diff is a keyed reconciliation between two views
type Diff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Updated []string `json:"updated"`

	EdgesAdded   []string `json:"edges_added"`
	EdgesRemoved []string `json:"edges_removed"`
	EdgesUpdated []string `json:"edges_updated"`
}

// Changed reports whether the visible node or nomination set differs
func (d Diff) Changed() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 ||
		len(d.EdgesAdded) > 0 || len(d.EdgesRemoved) > 0
}

// Reconcile diffs next against prev by id. Added and Updated follow next's
// order; Removed follows prev's order.
//
// Ids are keys, so duplicates collapse: a person with two rows yields two
// nominations with the same id (same source, target, slot and type), and the
// diff reports that id once while the view and the layout keep both.
func Reconcile(prev, next View) Diff {
	var d Diff
	d.Added, d.Removed, d.Updated = diffKeys(prev.NodeIDs(), next.NodeIDs())
	d.EdgesAdded, d.EdgesRemoved, d.EdgesUpdated = diffKeys(prev.EdgeIDs(), next.EdgeIDs())
	return d
}

func diffKeys(prev, next []string) (added, removed, matched []string) {
	added, removed, matched = []string{}, []string{}, []string{}
	old := make(map[string]bool, len(prev))
	for _, id := range prev {
		old[id] = true
	}
	seen := make(map[string]bool, len(next))
	for _, id := range next {
		if seen[id] {
			continue
		}
		seen[id] = true
		if old[id] {
			matched = append(matched, id)
		} else {
			added = append(added, id)
		}
	}
	for _, id := range prev {
		if !seen[id] {
			removed = append(removed, id)
			seen[id] = true
		}
	}
	return added, removed, matched
}

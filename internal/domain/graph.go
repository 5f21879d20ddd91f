package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when a nomination references a code with no node
var ErrUnknownNode = errors.New("unknown node")

// Graph is the nomination graph built from one analysis run
type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	// Order keeps node codes in first-seen order so output is stable
	Order []string     `json:"order"`
	Edges []Nomination `json:"edges"`
}

// NewGraph creates an empty graph with initialized collections
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]*Node),
		Order: make([]string, 0),
		Edges: make([]Nomination, 0),
	}
}

// AddNode registers a node. If the id already exists the existing node is
// kept and returned.
func (g *Graph) AddNode(node *Node) *Node {
	if g.Nodes == nil {
		g.Nodes = make(map[string]*Node)
	}
	if existing, ok := g.Nodes[node.ID]; ok {
		return existing
	}
	g.Nodes[node.ID] = node
	g.Order = append(g.Order, node.ID)
	return node
}

// Node returns the node with the given id
func (g *Graph) Node(id string) (*Node, bool) {
	if g.Nodes == nil {
		return nil, false
	}
	n, ok := g.Nodes[id]
	return n, ok
}

// HasNode reports whether id is registered
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// AddNomination appends an edge; both endpoints must already exist
func (g *Graph) AddNomination(edge Nomination) error {
	if !g.HasNode(edge.Source) {
		return fmt.Errorf("nomination %s: source %q: %w", edge.ID, edge.Source, ErrUnknownNode)
	}
	if !g.HasNode(edge.Target) {
		return fmt.Errorf("nomination %s: target %q: %w", edge.ID, edge.Target, ErrUnknownNode)
	}
	g.Edges = append(g.Edges, edge)
	return nil
}

// OrderedNodes returns the nodes in first-seen order
func (g *Graph) OrderedNodes() []*Node {
	nodes := make([]*Node, 0, len(g.Order))
	for _, id := range g.Order {
		if n, ok := g.Nodes[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Clone returns a deep copy, so a snapshot can be handed out without
// exposing mutable nodes.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Nodes: make(map[string]*Node, len(g.Nodes)),
		Order: append([]string(nil), g.Order...),
		Edges: append([]Nomination(nil), g.Edges...),
	}
	for id, n := range g.Nodes {
		c.Nodes[id] = n.Clone()
	}
	return c
}

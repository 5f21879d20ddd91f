package domain

// NodePosition represents the position and pinning state of a node in the layout
type NodePosition struct {
	NodeID string  `json:"node_id" yaml:"node_id"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Pinned bool    `json:"pinned" yaml:"pinned"`
}

// NewNodePosition creates a new node position
func NewNodePosition(nodeID string, x, y float64) *NodePosition {
	return &NodePosition{
		NodeID: nodeID,
		X:      x,
		Y:      y,
		Pinned: false,
	}
}

// EdgePosition is a nomination with its endpoints resolved to coordinates
type EdgePosition struct {
	EdgeID string         `json:"edge_id" yaml:"edge_id"`
	Type   NominationType `json:"type" yaml:"type"`
	X1     float64        `json:"x1" yaml:"x1"`
	Y1     float64        `json:"y1" yaml:"y1"`
	X2     float64        `json:"x2" yaml:"x2"`
	Y2     float64        `json:"y2" yaml:"y2"`
}

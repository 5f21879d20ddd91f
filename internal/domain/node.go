package domain

import "math"

// Status is a sociometric status category
type Status string

const (
	StatusPopular       Status = "Popular"
	StatusRejected      Status = "Rejected"
	StatusControversial Status = "Controversial"
	StatusNeglected     Status = "Neglected"
	StatusAverage       Status = "Average"
)

// Statuses lists every status in classification priority order
var Statuses = []Status{
	StatusPopular,
	StatusRejected,
	StatusControversial,
	StatusNeglected,
	StatusAverage,
}

// Node represents a person in the sociogram
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`

	PreferencesReceived    int `json:"preferences_received" yaml:"preferences_received"`
	NonPreferencesReceived int `json:"non_preferences_received" yaml:"non_preferences_received"`
	PreferencesGiven       int `json:"preferences_given" yaml:"preferences_given"`
	NonPreferencesGiven    int `json:"non_preferences_given" yaml:"non_preferences_given"`

	// TotalDegree counts every incident nomination, not distinct neighbors
	TotalDegree        int `json:"total_degree" yaml:"total_degree"`
	PositiveReciprocal int `json:"positive_reciprocal" yaml:"positive_reciprocal"`

	Status      Status  `json:"status" yaml:"status"`
	Betweenness float64 `json:"betweenness" yaml:"betweenness"`
	Radius      float64 `json:"radius" yaml:"radius"`
}

// NewNode creates a node with zeroed counters and the default status.
// An empty label falls back to the id.
func NewNode(id, label string) *Node {
	if label == "" {
		label = id
	}
	return &Node{
		ID:     id,
		Label:  label,
		Status: StatusAverage,
	}
}

// DisplayName returns the label, or the id when no label is set
func (n *Node) DisplayName() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// SocialPreferenceScore returns the raw received difference (PR - NPR)
func (n *Node) SocialPreferenceScore() int {
	return n.PreferencesReceived - n.NonPreferencesReceived
}

// ComputeRadius returns the visual radius for a node, growing with the
// positive nominations it took part in.
func ComputeRadius(preferencesReceived, preferencesGiven int) float64 {
	total := preferencesReceived + preferencesGiven
	if total < 0 {
		total = 0
	}
	return 5 + math.Sqrt(float64(total))*2.5
}

// UpdateRadius recomputes Radius from the current counters
func (n *Node) UpdateRadius() {
	n.Radius = ComputeRadius(n.PreferencesReceived, n.PreferencesGiven)
}

// Clone returns a copy of the node
func (n *Node) Clone() *Node {
	c := *n
	return &c
}

package domain

import "fmt"

// NominationType is the sign of a nomination
type NominationType string

const (
	NominationPositive NominationType = "positive"
	NominationNegative NominationType = "negative"
)

// PreferredSlots is the number of positive slots per row; the remaining
// slots up to NominationSlots are negative.
const (
	PreferredSlots  = 3
	NominationSlots = 6
)

// SlotType returns the nomination type for a slot index
func SlotType(slot int) NominationType {
	if slot < PreferredSlots {
		return NominationPositive
	}
	return NominationNegative
}

// Nomination is a directed edge from the person who nominated to the person named
type Nomination struct {
	ID     string         `json:"id" yaml:"id"`
	Source string         `json:"source" yaml:"source"`
	Target string         `json:"target" yaml:"target"`
	Type   NominationType `json:"type" yaml:"type"`
	Slot   int            `json:"slot" yaml:"slot"`
}

// NewNomination creates a nomination for the given slot
func NewNomination(source, target string, slot int) Nomination {
	n := Nomination{
		Source: source,
		Target: target,
		Type:   SlotType(slot),
		Slot:   slot,
	}
	n.ID = n.GenerateID()
	return n
}

// GenerateID creates a stable identifier from the endpoints, slot and type.
// Unlike undirected ids the endpoints are not normalized: direction matters.
func (e Nomination) GenerateID() string {
	return fmt.Sprintf("e-%s-%s-%d-%s", e.Source, e.Target, e.Slot, e.Type)
}

// IsPositive reports whether the nomination is a preference
func (e Nomination) IsPositive() bool {
	return e.Type == NominationPositive
}

// IsSelfLoop reports whether someone nominated themselves
func (e Nomination) IsSelfLoop() bool {
	return e.Source == e.Target
}

// Touches reports whether id is either endpoint
func (e Nomination) Touches(id string) bool {
	return e.Source == id || e.Target == id
}

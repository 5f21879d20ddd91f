package domain

import (
	"encoding/json"
	"sort"
)

// Clique is a maximal set of mutually positively connected node ids
type Clique []string

// NewClique copies and sorts the members
func NewClique(members []string) Clique {
	c := append(Clique(nil), members...)
	sort.Strings(c)
	return c
}

// Size returns the number of members
func (c Clique) Size() int {
	return len(c)
}

// Contains reports whether id is a member
func (c Clique) Contains(id string) bool {
	for _, m := range c {
		if m == id {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every member of c is in other
func (c Clique) IsSubsetOf(other Clique) bool {
	set := make(map[string]struct{}, len(other))
	for _, m := range other {
		set[m] = struct{}{}
	}
	for _, m := range c {
		if _, ok := set[m]; !ok {
			return false
		}
	}
	return true
}

// Key is the stringified member list used as a deterministic tiebreak
func (c Clique) Key() string {
	data, err := json.Marshal([]string(c))
	if err != nil {
		return ""
	}
	return string(data)
}

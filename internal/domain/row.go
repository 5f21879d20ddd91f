package domain

import "strings"

// RowColumns is the fixed column count of an input row:
// code, name, three preferred and three non-preferred target codes.
const RowColumns = 2 + NominationSlots

// Row is one line of nomination input
type Row struct {
	Code    string                  `json:"code" yaml:"code"`
	Name    string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Targets [NominationSlots]string `json:"targets" yaml:"targets"`
}

// RowFromCells maps raw cells onto the fixed column layout. Cells are
// trimmed; missing cells are empty and extra cells are ignored.
func RowFromCells(cells []string) Row {
	var r Row
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	r.Code = get(0)
	r.Name = get(1)
	for i := 0; i < NominationSlots; i++ {
		r.Targets[i] = get(2 + i)
	}
	return r
}

// Cells returns the row in column layout
func (r Row) Cells() []string {
	cells := make([]string, 0, RowColumns)
	cells = append(cells, r.Code, r.Name)
	cells = append(cells, r.Targets[:]...)
	return cells
}

// Preferred returns the three positive target cells
func (r Row) Preferred() []string {
	return r.Targets[:PreferredSlots]
}

// NonPreferred returns the three negative target cells
func (r Row) NonPreferred() []string {
	return r.Targets[PreferredSlots:]
}

// IsBlank reports whether every cell of the row is empty
func (r Row) IsBlank() bool {
	if r.Code != "" || r.Name != "" {
		return false
	}
	for _, t := range r.Targets {
		if t != "" {
			return false
		}
	}
	return true
}

package session

import (
	"sociogram/internal/domain"
)

// exampleRows: A<->B and A<->C mutual, C->B one way, A->D negative.
func exampleRows() []domain.Row {
	cells := [][]string{
		{"A", "Alice", "B", "C", "", "D", "", ""},
		{"B", "Bob", "A", "", "", "", "", ""},
		{"C", "Carol", "A", "B", "", "", "", ""},
	}
	rows := make([]domain.Row, len(cells))
	for i, c := range cells {
		rows[i] = domain.RowFromCells(c)
	}
	return rows
}

func newTestSession() *Session {
	return New(nil, DefaultOptions())
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case e := <-ch:
			events = append(events, e)
		default:
			return events
		}
	}
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

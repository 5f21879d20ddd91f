package analysis

import (
	"fmt"

	"sociogram/internal/domain"
)

// exampleRows: A<->B and A<->C mutual, C->B one way, A->D negative.
func exampleRows() []domain.Row {
	return rowsFromCells([][]string{
		{"A", "Alice", "B", "C", "", "D", "", ""},
		{"B", "Bob", "A", "", "", "", "", ""},
		{"C", "Carol", "A", "B", "", "", "", ""},
	})
}

func rowsFromCells(cells [][]string) []domain.Row {
	rows := make([]domain.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, domain.RowFromCells(c))
	}
	return rows
}

// cycleRows builds n people each preferring the next one around a ring
func cycleRows(n int) []domain.Row {
	cells := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, []string{
			fmt.Sprintf("P%02d", i), "",
			fmt.Sprintf("P%02d", (i+1)%n),
		})
	}
	return rowsFromCells(cells)
}

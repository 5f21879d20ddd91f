package codec

import (
	"io"

	"sociogram/internal/domain"
)

// Importer interface for reading nomination rows from various formats
type Importer interface {
	Parse(r io.Reader) ([]domain.Row, error)
	Format() string
}

// Exporter interface for writing analysis reports to various formats
type Exporter interface {
	Export(report *Report, w io.Writer) error
	Format() string
}

// rowsDocument is the structured row file layout shared by the JSON and
// YAML importers
type rowsDocument struct {
	Rows [][]string `json:"rows" yaml:"rows"`
}

// toRows maps raw cell arrays onto rows, dropping blank ones
func (d rowsDocument) toRows() []domain.Row {
	rows := make([]domain.Row, 0, len(d.Rows))
	for _, cells := range d.Rows {
		row := domain.RowFromCells(cells)
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

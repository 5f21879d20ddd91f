package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sociogram/internal/domain"
)

// Known header rows. A first line containing every name of either set is
// treated as a header.
var headerSets = [][]string{
	{"code", "name", "mp1", "mp2", "mp3", "lp1", "lp2", "lp3"},
	{"code", "name", "ml1", "ml2", "ml3", "ll1", "ll2", "ll3"},
}

// CSVImporter reads comma-delimited nomination rows. Quoting and escaping
// are not supported: every comma separates a cell.
type CSVImporter struct{}

// NewCSVImporter creates a new CSV importer
func NewCSVImporter() *CSVImporter {
	return &CSVImporter{}
}

// Format returns the codec format identifier
func (c *CSVImporter) Format() string {
	return "csv"
}

// Parse reads rows from r. Blank lines are dropped and a recognised header
// line is skipped.
func (c *CSVImporter) Parse(r io.Reader) ([]domain.Row, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(lines) > 0 && IsHeader(splitCells(lines[0])) {
		lines = lines[1:]
	}

	rows := make([]domain.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, domain.RowFromCells(splitCells(line)))
	}
	return rows, nil
}

// Export writes rows back in the column layout with an mp/lp header
func (c *CSVImporter) Export(rows []domain.Row, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(headerSets[0], ",") + "\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if _, err := bw.WriteString(strings.Join(row.Cells(), ",") + "\n"); err != nil {
			return fmt.Errorf("failed to write CSV row %s: %w", row.Code, err)
		}
	}
	return bw.Flush()
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// IsHeader reports whether cells contain every name of a known header set,
// ignoring case and order
func IsHeader(cells []string) bool {
	present := make(map[string]bool, len(cells))
	for _, cell := range cells {
		present[strings.ToLower(strings.TrimSpace(cell))] = true
	}
	for _, set := range headerSets {
		all := true
		for _, name := range set {
			if !present[name] {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

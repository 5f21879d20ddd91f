package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"sociogram/internal/domain"
)

// JSONCodec handles JSON row import and report export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports rows from a JSON document of the form {"rows": [[...], ...]}
func (c *JSONCodec) Parse(r io.Reader) ([]domain.Row, error) {
	var doc rowsDocument
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return doc.toRows(), nil
}

// Export exports a report to JSON
func (c *JSONCodec) Export(report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

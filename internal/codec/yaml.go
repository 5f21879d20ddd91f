package codec

import (
	"fmt"
	"io"

	"sociogram/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML row import and report export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports rows from a YAML document with a rows list of cell arrays
func (c *YAMLCodec) Parse(r io.Reader) ([]domain.Row, error) {
	var doc rowsDocument
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return []domain.Row{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc.toRows(), nil
}

// Export exports a report to YAML
func (c *YAMLCodec) Export(report *Report, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

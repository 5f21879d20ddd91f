// Package loader reads nomination rows from files, choosing the codec by
// file extension.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sociogram/internal/codec"
	"sociogram/internal/domain"
)

// ErrUnsupportedFormat is returned for files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported row file format")

// ImporterFor returns the row importer for path's extension
func ImporterFor(path string) (codec.Importer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return codec.NewCSVImporter(), nil
	case ".yaml", ".yml":
		return codec.NewYAMLCodec(), nil
	case ".json":
		return codec.NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// LoadRows reads every row from the file at path
func LoadRows(path string) ([]domain.Row, error) {
	importer, err := ImporterFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rows file: %w", err)
	}
	defer f.Close()

	rows, err := importer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return rows, nil
}

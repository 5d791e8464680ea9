package feed

import (
	"fmt"
	"path/filepath"
	"strings"

	"finflow/dealrecon/internal/feederror"
)

// FormatType defines the feed file formats available.
type FormatType string

const (
	CSV  FormatType = "csv"
	YAML FormatType = "yaml"
	JSON FormatType = "json"
)

// GetParser returns a new instance of the appropriate parser for the given
// format. It acts as a factory for creating Parser implementations.
func GetParser(format FormatType, delimiter rune) (Parser, error) {
	switch format {
	case CSV:
		return NewCSVParser(delimiter), nil
	case YAML:
		return NewYAMLParser(), nil
	case JSON:
		return NewJSONParser(), nil
	default:
		return nil, fmt.Errorf("unknown feed format: %s", format)
	}
}

// DetectFormat determines the feed format of a file from its extension.
func DetectFormat(path string) (FormatType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", &feederror.InvalidFormatError{
			FilePath: path,
			Msg:      "expected a .csv, .yaml/.yml or .json feed file",
		}
	}
}

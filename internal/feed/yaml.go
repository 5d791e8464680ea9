package feed

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"finflow/dealrecon/internal/models"
)

// YAMLParser reads operation feeds stored as YAML documents. Both a bare
// sequence of operations and a document with a top-level `operations:` list
// are accepted.
type YAMLParser struct{}

// NewYAMLParser creates a YAML feed parser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

type yamlFeedDocument struct {
	Operations []*operationRecord `yaml:"operations"`
}

// Parse reads operation records from r and converts them to the engine model.
func (p *YAMLParser) Parse(r io.Reader) ([]models.Operation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading operation YAML: %w", err)
	}

	var records []*operationRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		var doc yamlFeedDocument
		if docErr := yaml.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("error decoding operation YAML: %w", err)
		}
		records = doc.Operations
	}

	return convertRecords(records, "yaml")
}

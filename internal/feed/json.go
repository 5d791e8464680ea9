package feed

import (
	"encoding/json"
	"fmt"
	"io"

	"finflow/dealrecon/internal/models"
)

// JSONParser reads operation feeds stored as a JSON array of operations.
// Amounts are carried as strings to preserve decimal precision.
type JSONParser struct{}

// NewJSONParser creates a JSON feed parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse reads operation records from r and converts them to the engine model.
func (p *JSONParser) Parse(r io.Reader) ([]models.Operation, error) {
	var records []*operationRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding operation JSON: %w", err)
	}

	return convertRecords(records, "json")
}

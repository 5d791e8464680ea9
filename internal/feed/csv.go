package feed

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"finflow/dealrecon/internal/models"
)

// CSVParser reads operation feeds exported as delimited text.
type CSVParser struct {
	delimiter rune
}

// NewCSVParser creates a CSV feed parser. A zero delimiter means comma.
func NewCSVParser(delimiter rune) *CSVParser {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVParser{delimiter: delimiter}
}

// Parse reads operation rows from r and converts them to the engine model.
func (p *CSVParser) Parse(r io.Reader) ([]models.Operation, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.delimiter
	reader.TrimLeadingSpace = true

	var records []*operationRecord
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, fmt.Errorf("error reading operation CSV: %w", err)
	}

	return convertRecords(records, "csv")
}

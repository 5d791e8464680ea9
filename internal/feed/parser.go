// Package feed is the operation feed adapter: it reads canonical operation
// snapshots from CSV, YAML or JSON files into the flat model the engine
// consumes, and validates the feed contract at the boundary so the engine can
// assume a well-typed feed.
package feed

import (
	"io"

	"finflow/dealrecon/internal/models"
)

// Parser reads operation records from the provided io.Reader and returns the
// standardized Operation slice. Implementations understand one specific input
// format and return typed feederror errors for parsing failures.
type Parser interface {
	Parse(r io.Reader) ([]models.Operation, error)
}

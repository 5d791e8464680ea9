// Package feederror defines the typed errors returned by the operation feed
// adapter. The engine itself never raises for malformed operations; everything
// that can go wrong with an input file surfaces here, at the boundary.
package feederror

import "fmt"

// ParseError represents a failure to parse a single field of a feed record.
type ParseError struct {
	Format string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s feed: failed to parse %s='%s': %v",
		e.Format, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a feed that parsed but violates the feed contract
// (duplicate ids, missing dates, unknown operation types).
type ValidationError struct {
	OperationID string
	Reason      string
}

func (e *ValidationError) Error() string {
	if e.OperationID != "" {
		return fmt.Sprintf("invalid feed: operation %s: %s", e.OperationID, e.Reason)
	}
	return fmt.Sprintf("invalid feed: %s", e.Reason)
}

// InvalidFormatError represents an input file that does not conform to any
// supported feed format.
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid feed format in file '%s': %s", e.FilePath, e.Msg)
}

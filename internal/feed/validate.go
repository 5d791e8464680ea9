package feed

import (
	"fmt"
	"os"

	"finflow/dealrecon/internal/feederror"
	"finflow/dealrecon/internal/logging"
	"finflow/dealrecon/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger for the feed adapter.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Validate checks the feed contract: unique non-empty ids, known operation
// types and usable dates. An inconsistent feed is a contract violation of the
// upstream exporter, reported here rather than inside the engine.
func Validate(ops []models.Operation) error {
	seen := make(map[string]struct{}, len(ops))
	for i := range ops {
		op := &ops[i]
		if op.ID == "" {
			return &feederror.ValidationError{Reason: "operation with empty id"}
		}
		if _, dup := seen[op.ID]; dup {
			return &feederror.ValidationError{OperationID: op.ID, Reason: "duplicate operation id"}
		}
		seen[op.ID] = struct{}{}

		if !op.Type.IsValid() {
			return &feederror.ValidationError{
				OperationID: op.ID,
				Reason:      fmt.Sprintf("unknown operation type %q", op.Type),
			}
		}
		if op.Date.IsZero() {
			return &feederror.ValidationError{OperationID: op.ID, Reason: "missing date"}
		}
	}
	return nil
}

// LoadFile reads, parses and validates an operation feed file, detecting the
// format from the file extension.
func LoadFile(path string, delimiter rune) ([]models.Operation, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	parser, err := GetParser(format, delimiter)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening feed file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close feed file")
		}
	}()

	ops, err := parser.Parse(f)
	if err != nil {
		return nil, err
	}
	if err := Validate(ops); err != nil {
		return nil, err
	}

	log.Info("Loaded operation feed",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(ops)})

	return ops, nil
}

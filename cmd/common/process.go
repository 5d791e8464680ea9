// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"os"
	"time"

	"finflow/dealrecon/internal/dateutils"
	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/pkg/recon"
)

// LoadResult loads the feed at path and reconciles it under the given retail
// counterparty. The reconciler memoizes by feed content, so repeated calls
// with an unchanged file are cheap.
func LoadResult(r *recon.Reconciler, path string, delimiter rune) (*engine.Result, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given (use --input)")
	}
	return r.ReconcileFile(path, delimiter)
}

// ResolveAsOf parses the as-of flag, defaulting to the current day when it is
// empty.
func ResolveAsOf(asOf string) (time.Time, error) {
	if asOf == "" {
		return time.Now(), nil
	}
	t, err := dateutils.ParseDate(asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q: %w", asOf, err)
	}
	return t, nil
}

// OpenOutput returns a writer for the output path, or stdout when the path is
// empty. The returned closer is a no-op for stdout.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, f.Close, nil
}

// Package dateutils provides the date parsing used by the operation feed adapter.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used by feed files.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutISOTime  = "2006-01-02 15:04:05"
	DateLayoutEuropean = "02.01.2006"
)

// CommonFormats is the list of formats tried in order when parsing feed dates.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutISOTime,
	time.RFC3339,
	DateLayoutEuropean,
	"02/01/2006",
	"2006/01/02",
}

// ParseDate attempts to parse a date string using the common feed formats.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time.Time value according to the specified layout.
// If no layout is provided, DateLayoutISO is used.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

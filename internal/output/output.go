// Package output renders scan outcomes as a table, JSON, or CSV.
package output

import (
	"fmt"
	"io"

	"github.com/urlscout/urlscout-go/internal/scanner"
)

// Format names a supported renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// Write renders the outcome in the given format.
func Write(w io.Writer, format Format, outcome *scanner.Outcome) error {
	switch format {
	case FormatTable:
		return WriteTable(w, outcome)
	case FormatJSON:
		return WriteJSON(w, outcome)
	case FormatCSV:
		return WriteCSV(w, outcome)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

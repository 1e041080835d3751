package output

import (
	"encoding/json"
	"io"

	"github.com/urlscout/urlscout-go/internal/scanner"
)

// WriteJSON renders the outcome as indented JSON.
func WriteJSON(w io.Writer, outcome *scanner.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(outcome)
}

package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/urlscout/urlscout-go/internal/scanner"
)

// WriteCSV renders one row per match: file, line, column, type, url.
func WriteCSV(w io.Writer, outcome *scanner.Outcome) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"file", "line", "column", "type", "url"}); err != nil {
		return err
	}
	for _, f := range outcome.Files {
		for _, m := range f.Matches {
			row := []string{
				f.Path,
				strconv.Itoa(m.Line),
				strconv.Itoa(m.Column),
				string(m.Source),
				m.URL,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

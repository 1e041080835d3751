package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/urlscout/urlscout-go/internal/scanner"
)

// WriteTable renders a per-match table followed by summary counters.
// Columns are padded by display width so URLs with wide runes stay
// aligned.
func WriteTable(w io.Writer, outcome *scanner.Outcome) error {
	headers := []string{"FILE", "LINE", "COL", "TYPE", "URL"}
	var rows [][]string
	for _, f := range outcome.Files {
		for _, m := range f.Matches {
			rows = append(rows, []string{
				f.Path,
				fmt.Sprintf("%d", m.Line),
				fmt.Sprintf("%d", m.Column),
				string(m.Source),
				m.URL,
			})
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if wdt := runewidth.StringWidth(cell); wdt > widths[i] {
				widths[i] = wdt
			}
		}
	}

	if err := writeRow(w, headers, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d files scanned, %d URLs (%d unique)\n",
		outcome.FilesScanned, outcome.TotalURLs, outcome.UniqueURLs)
	return err
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

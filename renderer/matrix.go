// Package renderer turns correlation results into terminal output: markdown
// matrix tables, skipped-pair reports, and ASCII relative-performance charts.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nroux/assetcorr"
)

// Matrix writes a correlation matrix as a markdown table. Undefined cells are
// rendered as "n/a", never as a number.
func Matrix(w io.Writer, title string, m *assetcorr.Matrix) {
	labels := m.Labels()

	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "| %s |", "")
	for _, label := range labels {
		fmt.Fprintf(w, " %s |", sanitize(label))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "|---|")
	for range labels {
		fmt.Fprint(w, "---:|")
	}
	fmt.Fprintln(w)

	for _, row := range labels {
		fmt.Fprintf(w, "| **%s** |", sanitize(row))
		for _, col := range labels {
			fmt.Fprintf(w, " %s |", cell(m.Cell(row, col)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func cell(c assetcorr.Cell) string {
	if !c.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", c.Value)
}

// Skipped reports the pairs excluded from a matrix and why, one line each.
// Nothing is written when every pair is defined.
func Skipped(w io.Writer, m *assetcorr.Matrix) {
	skips := m.Skipped()
	if len(skips) == 0 {
		return
	}
	fmt.Fprintln(w, "Skipped pairs:")
	for _, s := range skips {
		fmt.Fprintf(w, "  - %s / %s: %s\n", s.A, s.B, s.Reason)
	}
	fmt.Fprintln(w)
}

// Autocorr writes a small markdown table of lag-1 autocorrelations per
// period. Entries with a nil error carry a value; the others show the reason.
type AutocorrRow struct {
	Period string
	Value  float64
	Err    error
}

// AutocorrTable renders one instrument's autocorrelation rows.
func AutocorrTable(w io.Writer, label string, rows []AutocorrRow) {
	fmt.Fprintf(w, "## %s\n\n", label)
	fmt.Fprintln(w, "| period | lag-1 autocorrelation |")
	fmt.Fprintln(w, "|---|---:|")
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "| %s | n/a (%s) |\n", r.Period, r.Err)
			continue
		}
		fmt.Fprintf(w, "| %s | %.4f |\n", r.Period, r.Value)
	}
	fmt.Fprintln(w)
}

// sanitize keeps labels from breaking the table markup.
func sanitize(label string) string {
	return strings.ReplaceAll(label, "|", "\\|")
}

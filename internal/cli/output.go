package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aalvaropc/contrastly/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func passLabel(ok bool) string {
	if ok {
		return "Pass"
	}
	return "Fail"
}

func ratioLabel(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

// newTable renders plain rounded tables; lipgloss drops colors when stdout is
// not a terminal.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...)
}

func printResultGrid(w io.Writer, r domain.ContrastResult) {
	rows := []struct {
		name string
		min  float64
		ok   bool
	}{
		{"AA normal", domain.MinRatioAANormal, r.AANormal},
		{"AA large", domain.MinRatioAALarge, r.AALarge},
		{"AAA normal", domain.MinRatioAAANormal, r.AAANormal},
		{"AAA large", domain.MinRatioAAALarge, r.AAALarge},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-11s %s  (needs %g:1)\n", row.name, passLabel(row.ok), row.min)
	}
}

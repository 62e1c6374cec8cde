package rasqal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// The table format is a human-readable text rendering for terminals and
// logs. Write-only: nothing parses it back.
func registerTableFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"table"},
			Label: "Table",
		}
		fm.write = writeResultsTable
		return nil
	})
	return err
}

func writeResultsTable(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	var header []string
	var rows [][]string
	if results.Kind() == ResultsBoolean {
		header = []string{"result"}
		rows = [][]string{{fmt.Sprintf("%t", results.Boolean())}}
	} else {
		header = results.Variables().Names()
		for {
			row, ok := results.NextRow()
			if !ok {
				break
			}
			cells := make([]string, len(row))
			for i, term := range row {
				cells[i] = term.N3()
			}
			rows = append(rows, cells)
		}
	}

	widths := tableWidths(header, rows)
	if err := drawTableLine(w, widths); err != nil {
		return err
	}
	if err := drawTableRow(w, header, widths); err != nil {
		return err
	}
	if err := drawTableLine(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawTableRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawTableLine(w, widths)
}

func tableWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawTableLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawTableRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := width - runewidth.StringWidth(cell)
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", pad+1))
		sb.WriteString("|")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

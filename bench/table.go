package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

var tableHeader = []string{"routine", "ns/op", "B/op", "allocs/op"}

// WriteTable writes the aligned comparison table for results.
// When colorize is set, the fastest routine is printed green and
// the slowest red (only meaningful with two or more results).
func WriteTable(out io.Writer, results []Result, colorize bool) {
	if len(results) == 0 {
		return
	}
	rows := lo.Map(results, func(r Result, _ int) []string {
		return []string{
			r.Name,
			strconv.FormatInt(r.NsPerOp, 10),
			strconv.FormatInt(r.BytesPerOp, 10),
			strconv.FormatInt(r.AllocsPerOp, 10),
		}
	})

	widths := make([]int, len(tableHeader))
	for col := range widths {
		widths[col] = len(tableHeader[col])
		for _, row := range rows {
			widths[col] = max(widths[col], len(row[col]))
		}
	}

	style := rowStyles(results, colorize)
	writeRow(out, tableHeader, widths, fmt.Sprint)
	for i, row := range rows {
		writeRow(out, row, widths, style[i])
	}
}

// rowStyles picks a colorizer per row: green for the lowest
// ns/op, red for the highest.
func rowStyles(results []Result, colorize bool) []func(...any) string {
	styles := make([]func(...any) string, len(results))
	for i := range styles {
		styles[i] = fmt.Sprint
	}
	if !colorize || len(results) < 2 {
		return styles
	}
	fastest := lo.MinBy(results, func(a, b Result) bool { return a.NsPerOp < b.NsPerOp })
	slowest := lo.MaxBy(results, func(a, b Result) bool { return a.NsPerOp > b.NsPerOp })
	for i, r := range results {
		switch r.Name {
		case fastest.Name:
			styles[i] = color.New(color.FgGreen).SprintFunc()
		case slowest.Name:
			styles[i] = color.New(color.FgRed).SprintFunc()
		}
	}
	return styles
}

func writeRow(out io.Writer, cells []string, widths []int, style func(...any) string) {
	parts := make([]string, len(cells))
	for col, cell := range cells {
		if col == 0 {
			// The routine name is the only left-aligned column.
			parts[col] = cell + strings.Repeat(" ", widths[col]-len(cell))
		} else {
			parts[col] = strings.Repeat(" ", widths[col]-len(cell)) + cell
		}
	}
	fmt.Fprintln(out, style(strings.TrimRight(strings.Join(parts, "  "), " ")))
}

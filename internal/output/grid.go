package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const gridGutter = 2

// LayoutGrid arranges cells into a column-major grid that fits within width
// terminal columns, one cell per line when width cannot hold more. Cells may
// contain ANSI styling; widths are measured ignoring escape sequences.
func LayoutGrid(cells []string, width int) []string {
	if len(cells) == 0 {
		return nil
	}
	if width <= 0 {
		return append([]string(nil), cells...)
	}

	widths := make([]int, len(cells))
	for i, cell := range cells {
		widths[i] = lipgloss.Width(cell)
	}

	cols, colWidths := fitColumns(widths, width)
	rows := (len(cells) + cols - 1) / cols

	lines := make([]string, 0, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i >= len(cells) {
				break
			}
			b.WriteString(cells[i])
			if (col+1)*rows+row < len(cells) {
				pad := colWidths[col] - widths[i] + gridGutter
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

// fitColumns finds the largest column count whose column-major layout fits
// the width, returning the per-column widths.
func fitColumns(widths []int, width int) (int, []int) {
	n := len(widths)
	for cols := n; cols > 1; cols-- {
		rows := (n + cols - 1) / cols
		// A taller-than-necessary layout wastes a column; skip duplicates.
		if (n+rows-1)/rows < cols {
			continue
		}
		colWidths := make([]int, cols)
		total := gridGutter * (cols - 1)
		for col := 0; col < cols; col++ {
			for row := 0; row < rows; row++ {
				i := col*rows + row
				if i < n && widths[i] > colWidths[col] {
					colWidths[col] = widths[i]
				}
			}
			total += colWidths[col]
		}
		if total <= width {
			return cols, colWidths
		}
	}
	return 1, []int{maxInt(widths)}
}

func maxInt(values []int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

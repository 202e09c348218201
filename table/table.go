// Package table renders row/column matrices as aligned plain text. It is
// used by the reporting engine for balance tables but carries no accounting
// semantics of its own.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render formats a matrix of cells as an aligned table.
//
// The first output row is a header row: a synthetic empty row-label cell
// followed by the column headers. Row header cells are left-aligned and
// padded to the widest row header; data cells are right-aligned and padded
// to the widest data cell in their column. Cells are joined with " | " and
// rows with "\n"; there is no trailing newline.
//
// cells is indexed [row][column]; rows shorter than the header count are
// treated as having empty trailing cells. Empty cells render as blanks,
// never as "0".
func Render(rowHeaders, colHeaders []string, cells [][]string) string {
	rowWidth := 0
	for _, h := range rowHeaders {
		if w := runewidth.StringWidth(h); w > rowWidth {
			rowWidth = w
		}
	}

	colWidths := make([]int, len(colHeaders))
	for _, row := range cells {
		for j, cell := range row {
			if j >= len(colWidths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > colWidths[j] {
				colWidths[j] = w
			}
		}
	}

	var rows []string

	header := make([]string, 0, len(colHeaders)+1)
	header = append(header, runewidth.FillRight("", rowWidth))
	header = append(header, colHeaders...)
	rows = append(rows, strings.Join(header, " | "))

	for i, rowHeader := range rowHeaders {
		row := make([]string, 0, len(colHeaders)+1)
		row = append(row, runewidth.FillRight(rowHeader, rowWidth))
		for j := range colHeaders {
			cell := ""
			if i < len(cells) && j < len(cells[i]) {
				cell = cells[i][j]
			}
			row = append(row, runewidth.FillLeft(cell, colWidths[j]))
		}
		rows = append(rows, strings.Join(row, " | "))
	}

	return strings.Join(rows, "\n")
}

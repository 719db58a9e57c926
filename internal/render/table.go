// Package render draws query results as box-drawing tables on the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
)

// Table writes result as an aligned box-drawing table. NULL values print as
// the literal NULL.
func Table(w io.Writer, result *common.QueryResult) {
	if result == nil || len(result.Columns) == 0 {
		return
	}

	widths := make([]int, len(result.Columns))
	for i, col := range result.Columns {
		widths[i] = len(col)
	}
	for _, row := range result.Rows {
		for i, col := range result.Columns {
			if n := len(cell(row[col])); n > widths[i] {
				widths[i] = n
			}
		}
	}

	border(w, widths, "┌", "┬", "┐")
	fmt.Fprint(w, "│")
	for i, col := range result.Columns {
		fmt.Fprintf(w, " %-*s │", widths[i], col)
	}
	fmt.Fprintln(w)
	border(w, widths, "├", "┼", "┤")

	for _, row := range result.Rows {
		fmt.Fprint(w, "│")
		for i, col := range result.Columns {
			fmt.Fprintf(w, " %-*s │", widths[i], cell(row[col]))
		}
		fmt.Fprintln(w)
	}

	border(w, widths, "└", "┴", "┘")
}

func border(w io.Writer, widths []int, left, mid, right string) {
	fmt.Fprint(w, left)
	for i, width := range widths {
		fmt.Fprint(w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(w, mid)
		}
	}
	fmt.Fprintln(w, right)
}

func cell(val interface{}) string {
	if val == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", val)
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dot5enko/mini-column-sql/manager/meta"
	"github.com/dot5enko/mini-column-sql/schema"
)

const separatorCell = "-----------------"

// renderResult prints the tab separated header and rows framed by dashed
// separators.
func renderResult(w io.Writer, result *schema.Result) {

	separator := strings.Repeat(separatorCell, len(result.Columns))

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, strings.Join(result.Columns, "\t"))
	fmt.Fprintln(w, separator)

	cells := make([]string, len(result.Columns))
	for _, row := range result.Rows {
		for i, v := range row {
			cells[i] = v.String()
		}
		fmt.Fprintln(w, strings.Join(cells[:len(row)], "\t"))
	}

	fmt.Fprintln(w, separator)
}

func renderTables(w io.Writer, tables []meta.TableInfo) {
	for _, table := range tables {
		source := "csv"
		if table.Compressed {
			source = "csv.lz4"
		}
		fmt.Fprintf(w, "%s (%d rows, %s)\n", table.Name, table.Rows, source)

		for _, col := range table.Columns {
			if col.Empty {
				fmt.Fprintf(w, "\t%s\n", col.Name)
				continue
			}
			fmt.Fprintf(w, "\t%s [%d .. %d]\n", col.Name, col.Bounds.Min, col.Bounds.Max)
		}
	}
}

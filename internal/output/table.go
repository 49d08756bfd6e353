package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TableWriter renders records as a table. Styled selects the rounded box
// style for terminals; plain output keeps the default ASCII borders.
type TableWriter struct {
	Styled bool
}

func (t *TableWriter) Write(w io.Writer, list List) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if t.Styled {
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, len(list.Columns))
	for i, col := range list.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, item := range list.Items {
		row := make(table.Row, len(list.Columns))
		for i := range list.Columns {
			if i < len(item.Row) {
				row[i] = item.Row[i]
			} else {
				row[i] = ""
			}
		}
		tw.AppendRow(row)
	}

	tw.Render()
	return nil
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.viam.com/scarakin/spatialmath"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// transformTable renders a 4x4 transform as a table.
func transformTable(title string, t spatialmath.Transform) string {
	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.SetStyle(table.StyleLight)
	for _, row := range t.Rows() {
		r := make(table.Row, 0, len(row))
		for _, v := range row {
			r = append(r, formatFloat(v))
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// formatFloat prints six decimals and folds negative zero into zero.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if s == "-0.000000" {
		return "0.000000"
	}
	return s
}

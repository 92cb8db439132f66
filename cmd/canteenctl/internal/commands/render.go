package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/appetiteclub/canteen/pkg/view"
)

var (
	menuHeaders    = []string{"ID", "ITEM", "CATEGORY", "PRICE", "PREP (MIN)"}
	kitchenHeaders = []string{"ORDER", "STUDENT", "REG ID", "ITEM", "QTY", "STATUS", "ORDER TIME"}
)

func renderTable(out io.Writer, headers []string, rows []view.Row) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row.Cells, "\t"))
	}
	return tw.Flush()
}

// renderPanel prints a titled block; unlabelled lines stand alone.
func renderPanel(out io.Writer, title string, lines []view.Line) {
	fmt.Fprintf(out, "%s\n", title)
	for _, line := range lines {
		if line.Label == "" {
			fmt.Fprintf(out, "  %s\n", line.Value)
			continue
		}
		fmt.Fprintf(out, "  %s: %s\n", line.Label, line.Value)
	}
}

func renderMessage(out io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(out, text)
}

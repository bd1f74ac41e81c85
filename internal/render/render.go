// Package render turns a materialized result buffer into the bounded
// textual report printed on stdout: an elided table followed by a summary
// block. Output size depends on the elision policy, never on the result
// size, so arbitrarily large results stay scannable.
package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/qlens/qlens/internal/resultset"
)

const (
	headCols = 3  // leading columns always shown
	tailCols = 4  // trailing columns shown when the middle is elided
	headRows = 5  // rows shown before the elision row
	tailRows = 5  // rows shown after the elision row
	maxRows  = 10 // row count above which the body is elided

	ellipsis = "..."
)

// colPlan is the set of real column indexes the table displays, split
// around the optional hidden-columns marker.
type colPlan struct {
	head   []int
	tail   []int
	hidden int // columns the marker stands in for; 0 means no marker
}

// planCols picks the displayed columns for a result n columns wide.
// Narrow results show everything; mid-width results show the first three
// plus all remaining trailing columns; wide results keep the first three
// and last four with a marker in between.
func planCols(n int) colPlan {
	var p colPlan
	if n <= headCols {
		for c := 0; c < n; c++ {
			p.head = append(p.head, c)
		}
		return p
	}
	for c := 0; c < headCols; c++ {
		p.head = append(p.head, c)
	}
	if n <= headCols+tailCols {
		for c := headCols; c < n; c++ {
			p.tail = append(p.tail, c)
		}
		return p
	}
	p.hidden = n - headCols - tailCols
	for c := n - tailCols; c < n; c++ {
		p.tail = append(p.tail, c)
	}
	return p
}

// count returns the number of table columns the plan produces, marker
// included.
func (p colPlan) count() int {
	n := len(p.head) + len(p.tail)
	if p.hidden > 0 {
		n++
	}
	return n
}

// cellBudget is the width cap applied to body cells: the longest displayed
// real column header, with a floor of one byte. Hidden columns do not
// contribute, so the cap tracks what the reader actually sees.
func cellBudget(buf *resultset.Buffer, p colPlan) int {
	budget := 1
	for _, c := range p.head {
		if n := len(buf.Header(c).Name); n > budget {
			budget = n
		}
	}
	for _, c := range p.tail {
		if n := len(buf.Header(c).Name); n > budget {
			budget = n
		}
	}
	return budget
}

// truncate caps s at width bytes, replacing the overflow with a trailing
// ellipsis. Widths at or below the ellipsis itself degrade to a bare
// ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return ellipsis
	}
	return s[:width-len(ellipsis)] + ellipsis
}

// Report renders buf as the complete report: the elided table, the row
// count, the estimated footprint, and the exhaustive column legend.
// Rendering never fails; empty shapes produce the structural parts only.
func Report(buf *resultset.Buffer) string {
	var b strings.Builder

	if tbl := renderTable(buf); tbl != "" {
		b.WriteString(tbl)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Total number of rows: %d\n", buf.NumRows())
	fmt.Fprintf(&b, "Size in memory: %.7f GB\n", float64(buf.ApproxBytes())/(1<<30))
	b.WriteString("\nColumn names and data types:\n")
	for c := 0; c < buf.NumCols(); c++ {
		h := buf.Header(c)
		fmt.Fprintf(&b, "%s (%s => %s)\n", h.Name, h.SQLType, h.GoType)
	}
	return b.String()
}

func renderTable(buf *resultset.Buffer) string {
	if buf.NumCols() == 0 {
		return ""
	}

	plan := planCols(buf.NumCols())
	budget := cellBudget(buf, plan)

	tw := table.NewWriter()
	tw.Style().Format.Header = text.FormatDefault // keep column names as-is

	configs := make([]table.ColumnConfig, plan.count())
	for i := range configs {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)

	header := make(table.Row, 0, plan.count())
	for _, c := range plan.head {
		header = append(header, buf.Header(c).Name)
	}
	if plan.hidden > 0 {
		header = append(header, fmt.Sprintf("<<+%d cols>>", plan.hidden))
	}
	for _, c := range plan.tail {
		header = append(header, buf.Header(c).Name)
	}
	tw.AppendHeader(header)

	appendRow := func(r int) {
		row := make(table.Row, 0, plan.count())
		for _, c := range plan.head {
			row = append(row, truncate(buf.Cell(r, c), budget))
		}
		if plan.hidden > 0 {
			row = append(row, ellipsis)
		}
		for _, c := range plan.tail {
			row = append(row, truncate(buf.Cell(r, c), budget))
		}
		tw.AppendRow(row)
	}

	rows := buf.NumRows()
	if rows <= maxRows {
		for r := 0; r < rows; r++ {
			appendRow(r)
		}
	} else {
		for r := 0; r < headRows; r++ {
			appendRow(r)
		}
		elision := make(table.Row, plan.count())
		for i := range elision {
			elision[i] = ellipsis
		}
		tw.AppendRow(elision)
		for r := rows - tailRows; r < rows; r++ {
			appendRow(r)
		}
	}

	return tw.Render()
}

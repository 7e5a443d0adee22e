package formatter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/penwyp/go-activity-timeline/internal/util"
)

type TableFormatter struct {
	style table.Style
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{style: table.StyleRounded}
}

// Format prints the segment timeline followed by the per-category totals.
func (f *TableFormatter) Format(w io.Writer, report Report) error {
	day := report.WindowStart

	segments := table.NewWriter()
	segments.SetStyle(f.style)
	segments.SetTitle(fmt.Sprintf("Timeline %s", report.Date))
	segments.AppendHeader(table.Row{"Start", "End", "Category", "Duration", "Samples", "Pixels"})
	for _, row := range report.Segments {
		pixels := "-"
		if row.Rendered {
			pixels = fmt.Sprintf("%d-%d", row.StartPx, row.EndPx)
		}
		samples := ""
		if row.Samples > 0 {
			samples = strconv.Itoa(row.Samples)
		}
		segments.AppendRow(table.Row{
			util.FormatClock(row.Start, day),
			util.FormatClock(row.End, day),
			row.Category,
			util.FormatDuration(seconds(row.Seconds)),
			samples,
			pixels,
		})
	}
	segments.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	if _, err := fmt.Fprintln(w, segments.Render()); err != nil {
		return err
	}

	totals := table.NewWriter()
	totals.SetStyle(f.style)
	totals.AppendHeader(table.Row{"Category", "Time", "Share", "Segments"})
	for _, row := range report.Totals {
		totals.AppendRow(table.Row{
			row.Category,
			util.FormatDuration(seconds(row.Seconds)),
			fmt.Sprintf("%.1f%%", row.Share*100),
			row.Segments,
		})
	}
	totals.AppendFooter(table.Row{"Tracked: " + report.TrackedName, util.FormatDuration(report.TrackedDuration()), "", ""})
	totals.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	_, err := fmt.Fprintln(w, totals.Render())
	return err
}

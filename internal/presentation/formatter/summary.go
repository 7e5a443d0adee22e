package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-activity-timeline/internal/util"
)

// SummaryFormatter prints a short plain-text digest of the day.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(w io.Writer, report Report) error {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString("Activity Summary " + report.Date + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&sb, "Window: %s - %s\n",
		util.FormatClock(report.WindowStart, report.WindowStart)[:5],
		util.FormatClock(report.WindowEnd, report.WindowStart)[:5])
	fmt.Fprintf(&sb, "Samples: %d", report.Observations)
	if report.Dropped > 0 {
		fmt.Fprintf(&sb, " (%d dropped)", report.Dropped)
	}
	sb.WriteString("\n")
	if report.Paused {
		sb.WriteString("Status: paused\n")
	}
	fmt.Fprintf(&sb, "%s: %s\n\n", report.TrackedName, util.FormatDuration(report.TrackedDuration()))

	width := 0
	for _, row := range report.Totals {
		if dw := util.GetDisplayWidth(row.Category); dw > width {
			width = dw
		}
	}
	for _, row := range report.Totals {
		fmt.Fprintf(&sb, "  %s  %9s  %6s\n",
			util.PadRight(row.Category, width),
			util.FormatDuration(seconds(row.Seconds)),
			util.FormatPercent(seconds(row.Seconds), report.WindowEnd.Sub(report.WindowStart)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// Formatter writes a chart report in one output format.
type Formatter interface {
	Format(w io.Writer, report Report) error
}

// SegmentRow is one synthesized segment with its pixel mapping.
type SegmentRow struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category string    `json:"category"`
	Color    string    `json:"color"`
	Samples  int       `json:"samples"`
	Seconds  float64   `json:"seconds"`
	StartPx  int       `json:"start_px"`
	EndPx    int       `json:"end_px"`
	Rendered bool      `json:"rendered"`
}

// TotalRow is the time accumulated in one category.
type TotalRow struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Seconds  float64 `json:"seconds"`
	Segments int     `json:"segments"`
	Share    float64 `json:"share"` // Fraction of the window
}

// Report is the presentation view of a computed chart.
type Report struct {
	Date           string        `json:"date"`
	WindowStart    time.Time     `json:"window_start"`
	WindowEnd      time.Time     `json:"window_end"`
	Width          int           `json:"width"`
	Paused         bool          `json:"paused"`
	Observations   int           `json:"observations"`
	Dropped        int           `json:"dropped"`
	TrackedName    string        `json:"tracked_category"`
	TrackedSeconds float64       `json:"tracked_seconds"`
	Segments       []SegmentRow  `json:"segments"`
	Totals         []TotalRow    `json:"totals"`
	windowDuration time.Duration
}

// NewReport flattens a chart result; colours come from registry.
func NewReport(result *chart.Result, registry *category.Registry) Report {
	report := Report{
		Date:           result.Date.Format("2006-01-02"),
		WindowStart:    result.Window.Start,
		WindowEnd:      result.Window.End,
		Width:          result.Layout.Width,
		Paused:         result.Paused,
		Observations:   len(result.Observations),
		Dropped:        result.Dropped,
		TrackedName:    result.Layout.TrackedCategory,
		TrackedSeconds: result.Layout.TrackedTotal.Seconds(),
		Segments:       make([]SegmentRow, 0, len(result.Segments)),
		Totals:         make([]TotalRow, 0, len(result.Layout.Totals)),
		windowDuration: result.Window.Duration(),
	}

	// Columns are a subsequence of segments in the same order
	columns := result.Layout.Columns
	next := 0
	for _, seg := range result.Segments {
		row := SegmentRow{
			Start:    seg.Start,
			End:      seg.End,
			Category: seg.Category,
			Color:    registry.Lookup(seg.Category).Color.Hex(),
			Samples:  seg.Samples,
			Seconds:  seg.Duration().Seconds(),
			StartPx:  -1,
			EndPx:    -1,
		}
		if next < len(columns) && columns[next].Start.Equal(seg.Start) && columns[next].End.Equal(seg.End) {
			row.StartPx = columns[next].StartPx
			row.EndPx = columns[next].EndPx
			row.Rendered = true
			next++
		}
		report.Segments = append(report.Segments, row)
	}

	for _, t := range result.Layout.Totals {
		share := 0.0
		if report.windowDuration > 0 {
			share = float64(t.Duration) / float64(report.windowDuration)
		}
		report.Totals = append(report.Totals, TotalRow{
			Category: t.Category,
			Color:    registry.Lookup(t.Category).Color.Hex(),
			Seconds:  t.Duration.Seconds(),
			Segments: t.Segments,
			Share:    share,
		})
	}
	return report
}

// TrackedDuration returns the tracked total as a duration.
func (r Report) TrackedDuration() time.Duration {
	return time.Duration(r.TrackedSeconds * float64(time.Second))
}

// New returns the formatter for a textual output format.
func New(format string) (Formatter, error) {
	switch format {
	case model.OutputTable:
		return NewTableFormatter(), nil
	case model.OutputJSON:
		return NewJSONFormatter(), nil
	case model.OutputCSV:
		return NewCSVFormatter(), nil
	case model.OutputSummary:
		return NewSummaryFormatter(), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes one row per segment; unrendered segments have empty pixel columns.
func (f *CSVFormatter) Format(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	headers := []string{"Start", "End", "Category", "Seconds", "Samples", "Start Px", "End Px", "Color"}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Segments {
		startPx, endPx := "", ""
		if row.Rendered {
			startPx = strconv.Itoa(row.StartPx)
			endPx = strconv.Itoa(row.EndPx)
		}
		record := []string{
			row.Start.Format(time.RFC3339),
			row.End.Format(time.RFC3339),
			row.Category,
			fmt.Sprintf("%.0f", row.Seconds),
			strconv.Itoa(row.Samples),
			startPx,
			endPx,
			row.Color,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

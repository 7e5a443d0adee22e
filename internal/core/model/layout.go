package model

import "time"

// PixelRange is a half-open column range [StartPx, EndPx) painted with one category.
type PixelRange struct {
	StartPx  int       `json:"start_px"`
	EndPx    int       `json:"end_px"`
	Category string    `json:"category"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func (p PixelRange) Width() int {
	return p.EndPx - p.StartPx
}

// CategoryTotal is the accumulated time spent in one category.
type CategoryTotal struct {
	Category string        `json:"category"`
	Duration time.Duration `json:"duration"`
	Segments int           `json:"segments"`
}

// ChartLayout is the pixel mapping of a timeline plus the statistics gathered while mapping it.
type ChartLayout struct {
	Width           int             `json:"width"`
	Columns         []PixelRange    `json:"columns"`
	TrackedCategory string          `json:"tracked_category"`
	TrackedTotal    time.Duration   `json:"tracked_total"`
	Totals          []CategoryTotal `json:"totals"`
}

// Total returns the accumulated duration for category, zero if it never appeared.
func (l ChartLayout) Total(category string) time.Duration {
	for _, t := range l.Totals {
		if t.Category == category {
			return t.Duration
		}
	}
	return 0
}

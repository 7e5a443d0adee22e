package model

import (
	"fmt"
	"time"
)

// Observation is a single captured sample: what category the user was in at Timestamp.
type Observation struct {
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Source    string    `json:"source,omitempty"` // Record the observation was read from
}

func (o Observation) String() string {
	return fmt.Sprintf("%s %s", o.Timestamp.Format(time.RFC3339), o.Category)
}

// ChartWindow is the fixed interval a chart covers, normally 07:00 to the next midnight.
type ChartWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the length of the window. It is non-positive for degenerate windows.
func (w ChartWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Valid reports whether the window has a positive duration.
func (w ChartWindow) Valid() bool {
	return w.End.After(w.Start)
}

// Contains reports whether t lies in [Start, End).
func (w ChartWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Clamp limits t to [Start, End].
func (w ChartWindow) Clamp(t time.Time) time.Time {
	if t.Before(w.Start) {
		return w.Start
	}
	if t.After(w.End) {
		return w.End
	}
	return t
}

// TimelineSegment is one gapless interval of the synthesized timeline.
type TimelineSegment struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category string    `json:"category"`
	Samples  int       `json:"samples"` // Observations merged into this segment, 0 for gaps
}

func (s TimelineSegment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsGap reports whether the segment was inserted for uncovered time.
func (s TimelineSegment) IsGap() bool {
	return s.Samples == 0
}

func (s TimelineSegment) String() string {
	return fmt.Sprintf("[%s, %s) %s", s.Start.Format("15:04:05"), s.End.Format("15:04:05"), s.Category)
}

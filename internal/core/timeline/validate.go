package timeline

import (
	"fmt"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// CheckCoverage verifies that segments tile window exactly: ordered, non-empty,
// non-overlapping and gapless.
func CheckCoverage(window model.ChartWindow, segments []model.TimelineSegment) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments for window %s .. %s", window.Start, window.End)
	}
	if !segments[0].Start.Equal(window.Start) {
		return fmt.Errorf("first segment starts at %s, window starts at %s", segments[0].Start, window.Start)
	}

	for i, seg := range segments {
		if !seg.End.After(seg.Start) {
			return fmt.Errorf("segment %d %s has non-positive duration", i, seg)
		}
		if i > 0 && !seg.Start.Equal(segments[i-1].End) {
			return fmt.Errorf("segment %d starts at %s but previous ends at %s", i, seg.Start, segments[i-1].End)
		}
	}

	if last := segments[len(segments)-1]; !last.End.Equal(window.End) {
		return fmt.Errorf("last segment ends at %s, window ends at %s", last.End, window.End)
	}
	return nil
}

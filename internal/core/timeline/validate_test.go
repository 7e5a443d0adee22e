package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

func TestCheckCoverage(t *testing.T) {
	mid := at(12, 0, 0)

	tests := []struct {
		name     string
		segments []model.TimelineSegment
		wantErr  string
	}{
		{
			name: "exact tiling",
			segments: []model.TimelineSegment{
				seg(windowStart, mid, "A", 1),
				seg(mid, windowEnd, "B", 1),
			},
		},
		{
			name:    "empty",
			wantErr: "no segments",
		},
		{
			name:     "late start",
			segments: []model.TimelineSegment{seg(mid, windowEnd, "A", 1)},
			wantErr:  "first segment",
		},
		{
			name: "gap",
			segments: []model.TimelineSegment{
				seg(windowStart, mid, "A", 1),
				seg(mid.Add(time.Second), windowEnd, "B", 1),
			},
			wantErr: "previous ends",
		},
		{
			name: "zero width",
			segments: []model.TimelineSegment{
				seg(windowStart, windowStart, "A", 1),
				seg(windowStart, windowEnd, "B", 1),
			},
			wantErr: "non-positive",
		},
		{
			name:     "short end",
			segments: []model.TimelineSegment{seg(windowStart, mid, "A", 1)},
			wantErr:  "last segment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCoverage(dayWindow, tt.segments)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

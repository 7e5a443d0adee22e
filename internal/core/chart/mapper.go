package chart

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
)

// ErrInvalidWidth is returned for a non-positive pixel width.
var ErrInvalidWidth = errors.New("chart width must be positive")

// Mapper converts timeline segments to pixel column ranges and accumulates per-category time
type Mapper struct {
	width   int
	tracked string
}

// NewMapper creates a mapper for a chart of width columns that totals time spent in tracked.
func NewMapper(width int, tracked string) *Mapper {
	return &Mapper{
		width:   width,
		tracked: tracked,
	}
}

// PixelAt maps t to a column using floor((t-start)/secondsPerPixel), clamped to [0, width].
// The window end always maps to width.
func PixelAt(window model.ChartWindow, t time.Time, width int) int {
	if !t.Before(window.End) {
		return width
	}
	if !t.After(window.Start) {
		return 0
	}
	secondsPerPixel := window.Duration().Seconds() / float64(width)
	px := int(math.Floor(t.Sub(window.Start).Seconds() / secondsPerPixel))
	if px < 0 {
		return 0
	}
	if px > width {
		return width
	}
	return px
}

// Map returns the pixel layout of segments. Ranges that collapse to zero width are left out of
// the columns but still count towards the totals.
func (m *Mapper) Map(window model.ChartWindow, segments []model.TimelineSegment) (model.ChartLayout, error) {
	if m.width <= 0 {
		return model.ChartLayout{}, fmt.Errorf("%w: %d", ErrInvalidWidth, m.width)
	}
	if !window.Valid() {
		return model.ChartLayout{}, timeline.ErrDegenerateWindow
	}

	layout := model.ChartLayout{
		Width:           m.width,
		Columns:         make([]model.PixelRange, 0, len(segments)),
		TrackedCategory: m.tracked,
	}

	totals := make(map[string]*model.CategoryTotal)
	for _, seg := range segments {
		d := seg.Duration()
		if d > 0 {
			total, ok := totals[seg.Category]
			if !ok {
				total = &model.CategoryTotal{Category: seg.Category}
				totals[seg.Category] = total
			}
			total.Duration += d
			total.Segments++
			if seg.Category == m.tracked {
				layout.TrackedTotal += d
			}
		}

		startPx := PixelAt(window, seg.Start, m.width)
		endPx := PixelAt(window, seg.End, m.width)
		if endPx <= startPx {
			continue
		}
		layout.Columns = append(layout.Columns, model.PixelRange{
			StartPx:  startPx,
			EndPx:    endPx,
			Category: seg.Category,
			Start:    seg.Start,
			End:      seg.End,
		})
	}

	layout.Totals = make([]model.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		layout.Totals = append(layout.Totals, *t)
	}
	sort.Slice(layout.Totals, func(i, j int) bool {
		if layout.Totals[i].Duration != layout.Totals[j].Duration {
			return layout.Totals[i].Duration > layout.Totals[j].Duration
		}
		return layout.Totals[i].Category < layout.Totals[j].Category
	})

	return layout, nil
}

package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

func at(hh, mm, ss int) time.Time {
	return time.Date(2025, 4, 19, hh, mm, ss, 0, time.UTC)
}

// The window is 07:00-09:00 so each of 40 cells covers three minutes.
func sampleResult(t *testing.T) *chart.Result {
	t.Helper()
	day := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)
	spec, err := chart.ParseWindowSpec("07:00", "09:00")
	require.NoError(t, err)
	window := spec.On(day)
	segments := []model.TimelineSegment{
		{Start: at(7, 0, 0), End: at(7, 30, 0), Category: model.CategoryUnknown},
		{Start: at(7, 30, 0), End: at(8, 0, 0), Category: "Programming", Samples: 20},
		{Start: at(8, 0, 0), End: at(8, 30, 0), Category: "Youtube", Samples: 20},
		{Start: at(8, 30, 0), End: at(9, 0, 0), Category: model.CategoryUnknown},
	}
	layout, err := chart.NewMapper(1000, "Programming").Map(window, segments)
	require.NoError(t, err)
	return &chart.Result{Date: day, Window: window, Segments: segments, Layout: layout}
}

func TestBarPlain(t *testing.T) {
	bar := NewBar(category.Default(), &bytes.Buffer{}).WithWidth(40)
	assert.Equal(t, 40, bar.Width())

	out, err := bar.Render(sampleResult(t))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "07:00"))
	assert.True(t, strings.HasSuffix(lines[0], "09:00"))
	assert.Len(t, lines[0], 40)

	expected := strings.Repeat(".", 10) + strings.Repeat("P", 10) + strings.Repeat("Y", 10) + strings.Repeat(".", 10)
	assert.Equal(t, expected, lines[1])

	assert.Contains(t, out, "[.] Unknown")
	assert.Contains(t, out, "[P] Programming")
	assert.Contains(t, out, "Programming: 30m 00s")
	assert.NotContains(t, out, "paused")
}

func TestBarPaused(t *testing.T) {
	result := sampleResult(t)
	result.Paused = true
	out, err := NewBar(category.Default(), &bytes.Buffer{}).WithWidth(40).Render(result)
	require.NoError(t, err)
	assert.Contains(t, out, "paused\n")
}

func TestBarNonTerminalDefaults(t *testing.T) {
	bar := NewBar(category.Default(), &bytes.Buffer{})
	assert.Equal(t, defaultBarWidth, bar.Width())
	assert.False(t, bar.colorize)

	// Widths below the minimum are ignored
	assert.Equal(t, defaultBarWidth, bar.WithWidth(3).Width())
}

func TestBarWrite(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(category.Default(), &buf).WithWidth(40)
	require.NoError(t, bar.Write(&buf, sampleResult(t)))
	assert.Contains(t, buf.String(), "[Y] Youtube")
}

func TestBarColorRunsCoverWidth(t *testing.T) {
	bar := NewBar(category.Default(), &bytes.Buffer{}).WithWidth(40).WithColor(true)
	out, err := bar.Render(sampleResult(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Programming")
	assert.NotContains(t, out, "[P]")
}

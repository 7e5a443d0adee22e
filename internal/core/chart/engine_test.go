package chart

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
	"github.com/penwyp/go-activity-timeline/internal/data/loader"
)

type stubSource struct {
	result *loader.LoadResult
	err    error
	calls  int
}

func (s *stubSource) Load(date time.Time) (*loader.LoadResult, error) {
	s.calls++
	return s.result, s.err
}

var defaultOpts = timeline.Options{Validity: 90 * time.Second, MergeGap: 90 * time.Second}

func defaultRequest() Request {
	return Request{Date: day, Window: DefaultWindowSpec, Width: 1000, Tracked: "Programming"}
}

func TestEngineCompute(t *testing.T) {
	source := &stubSource{result: &loader.LoadResult{
		Observations: []model.Observation{{Timestamp: at(7, 10, 0), Category: "Programming"}},
		Dropped:      []loader.DroppedRecord{{Path: "x", Reason: loader.ErrEmptyLabel}},
	}}
	req := defaultRequest()
	req.Paused = true

	result, err := NewEngine(source, category.Default(), defaultOpts).Compute(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, dayWindow, result.Window)
	assert.Len(t, result.Segments, 3)
	assert.Len(t, result.Layout.Columns, 3)
	assert.Equal(t, 90*time.Second, result.Layout.TrackedTotal)
	assert.Equal(t, 1, result.Dropped)
	assert.True(t, result.Paused)
}

func TestEngineRejectsDegenerateWindowBeforeLoading(t *testing.T) {
	source := &stubSource{result: &loader.LoadResult{}}
	req := defaultRequest()
	req.Window = WindowSpec{Start: DefaultWindowSpec.End, End: DefaultWindowSpec.Start}

	_, err := NewEngine(source, category.Default(), defaultOpts).Compute(context.Background(), req)

	assert.ErrorIs(t, err, timeline.ErrDegenerateWindow)
	assert.Equal(t, 0, source.calls)
}

func TestEngineLoadError(t *testing.T) {
	source := &stubSource{err: errors.New("permission denied")}

	_, err := NewEngine(source, category.Default(), defaultOpts).Compute(context.Background(), defaultRequest())

	assert.ErrorContains(t, err, "load observations")
}

func TestEngineWithDirectoryIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	for name, label := range map[string]string{
		"20250419_090000.txt": "Programming\n",
		"20250419_090100.txt": "Programming\n",
		"20250419_090200.txt": "Youtube\n",
		"20250419_093000.txt": "NotARealCategory\n",
		"20250419_100000.txt": "\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(label), 0644))
	}
	engine := NewEngine(loader.NewLoader(dir, time.UTC), category.Default(), defaultOpts)

	first, err := engine.Compute(context.Background(), defaultRequest())
	require.NoError(t, err)
	second, err := engine.Compute(context.Background(), defaultRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Segments, second.Segments)
	assert.Equal(t, first.Layout, second.Layout)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 1, first.Dropped)
	require.NoError(t, timeline.CheckCoverage(first.Window, first.Segments))
	assert.Equal(t, 2*time.Minute, first.Layout.TrackedTotal)
	assert.Equal(t, 90*time.Second, first.Layout.Total("Other"))
}

func TestEngineMissingDirectory(t *testing.T) {
	engine := NewEngine(loader.NewLoader(filepath.Join(t.TempDir(), "nope"), time.UTC), category.Default(), defaultOpts)

	result, err := engine.Compute(context.Background(), defaultRequest())

	require.NoError(t, err)
	assert.Equal(t, []model.TimelineSegment{{Start: dayWindow.Start, End: dayWindow.End, Category: model.CategoryUnknown}}, result.Segments)
	assert.Equal(t, []model.PixelRange{{StartPx: 0, EndPx: 1000, Category: model.CategoryUnknown, Start: dayWindow.Start, End: dayWindow.End}}, result.Layout.Columns)
}

package chart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
	"github.com/penwyp/go-activity-timeline/internal/data/loader"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// ObservationSource provides the observations of one calendar day.
type ObservationSource interface {
	Load(date time.Time) (*loader.LoadResult, error)
}

// Request describes one chart computation. Paused is a snapshot taken by the caller.
type Request struct {
	Date    time.Time
	Window  WindowSpec
	Width   int
	Tracked string
	Paused  bool
}

// Result is everything computed for one chart.
type Result struct {
	RunID        string                  `json:"run_id"`
	Date         time.Time               `json:"date"`
	Window       model.ChartWindow       `json:"window"`
	Observations []model.Observation     `json:"observations"`
	Dropped      int                     `json:"dropped"`
	Segments     []model.TimelineSegment `json:"segments"`
	Layout       model.ChartLayout       `json:"layout"`
	Paused       bool                    `json:"paused"`
}

// Engine runs Loader, Synthesizer and Mapper in sequence
type Engine struct {
	source      ObservationSource
	registry    *category.Registry
	synthesizer *timeline.Synthesizer
}

// NewEngine creates an engine reading observations from source.
func NewEngine(source ObservationSource, registry *category.Registry, opts timeline.Options) *Engine {
	return &Engine{
		source:      source,
		registry:    registry,
		synthesizer: timeline.NewSynthesizer(registry, opts),
	}
}

// Registry returns the category registry used for lookups.
func (e *Engine) Registry() *category.Registry {
	return e.registry
}

// Compute builds the chart for req. A degenerate window is rejected before any data is read.
func (e *Engine) Compute(ctx context.Context, req Request) (*Result, error) {
	runID := uuid.NewString()
	ctx = util.WithRunID(ctx, runID)
	start := time.Now()

	window := req.Window.On(req.Date)
	if !window.Valid() {
		return nil, fmt.Errorf("invalid time range for chart %s: %w", req.Window, timeline.ErrDegenerateWindow)
	}

	loaded, err := e.source.Load(req.Date)
	if err != nil {
		return nil, fmt.Errorf("load observations: %w", err)
	}

	segments, err := e.synthesizer.Synthesize(window, loaded.Observations)
	if err != nil {
		return nil, err
	}

	layout, err := NewMapper(req.Width, req.Tracked).Map(window, segments)
	if err != nil {
		return nil, err
	}

	if log := util.LoggerFor(ctx); log != nil {
		log.Info("Chart computed",
			util.F("date", req.Date.Format("2006-01-02")),
			util.F("observations", len(loaded.Observations)),
			util.F("dropped", len(loaded.Dropped)),
			util.F("segments", len(segments)),
			util.F("columns", len(layout.Columns)),
			util.F("tracked", util.FormatDuration(layout.TrackedTotal)),
			util.F("paused", req.Paused),
			util.F("duration", time.Since(start)))
		for _, seg := range segments {
			log.Debugf("Segment %s samples=%d", seg, seg.Samples)
		}
	}

	return &Result{
		RunID:        runID,
		Date:         req.Date,
		Window:       window,
		Observations: loaded.Observations,
		Dropped:      len(loaded.Dropped),
		Segments:     segments,
		Layout:       layout,
		Paused:       req.Paused,
	}, nil
}

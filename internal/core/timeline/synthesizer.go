package timeline

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// ErrDegenerateWindow is returned when the chart window does not have a positive duration.
var ErrDegenerateWindow = errors.New("chart window has non-positive duration")

// MergeAnchor selects which sample the merge gap of a run is measured from.
type MergeAnchor string

const (
	// AnchorLast measures each gap from the previous merged sample.
	AnchorLast MergeAnchor = "last"
	// AnchorFirst measures each gap from the sample that started the run.
	AnchorFirst MergeAnchor = "first"
)

// ParseMergeAnchor parses "last" or "first"; empty means AnchorLast.
func ParseMergeAnchor(s string) (MergeAnchor, error) {
	switch MergeAnchor(s) {
	case "", AnchorLast:
		return AnchorLast, nil
	case AnchorFirst:
		return AnchorFirst, nil
	}
	return "", fmt.Errorf("invalid merge anchor %q (want last or first)", s)
}

// Options tunes synthesis.
type Options struct {
	// Validity is how long a run's colour is trusted after its last sample.
	Validity time.Duration
	// MergeGap is the largest distance between same-category samples that still merge into one run.
	MergeGap time.Duration
	Anchor   MergeAnchor
}

// Synthesizer turns sparse observations into a gapless sequence of timeline segments
type Synthesizer struct {
	registry *category.Registry
	opts     Options
}

// NewSynthesizer creates a synthesizer resolving labels through registry
func NewSynthesizer(registry *category.Registry, opts Options) *Synthesizer {
	if opts.Anchor == "" {
		opts.Anchor = AnchorLast
	}
	return &Synthesizer{
		registry: registry,
		opts:     opts,
	}
}

// Options returns the synthesizer's configuration.
func (s *Synthesizer) Options() Options {
	return s.opts
}

// run is a maximal group of merged observations
type run struct {
	category string
	first    time.Time
	last     time.Time
	samples  int
}

// Synthesize walks observations once and returns segments covering [window.Start, window.End)
// without gaps or overlaps. Uncovered time becomes Unknown segments.
func (s *Synthesizer) Synthesize(window model.ChartWindow, observations []model.Observation) ([]model.TimelineSegment, error) {
	if !window.Valid() {
		return nil, fmt.Errorf("%w: %s .. %s", ErrDegenerateWindow,
			window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
	}

	points := s.prepare(window, observations)
	unknown := s.registry.Unknown().Name

	segments := make([]model.TimelineSegment, 0, 2*len(points)+1)
	emit := func(start, end time.Time, name string, samples int) {
		// Zero and negative extents are never emitted
		if !end.After(start) {
			return
		}
		segments = append(segments, model.TimelineSegment{
			Start:    start,
			End:      end,
			Category: name,
			Samples:  samples,
		})
	}

	cursor := window.Start
	for i := 0; i < len(points) && cursor.Before(window.End); {
		ts := points[i].Timestamp

		// Gap before this observation
		if ts.After(cursor) {
			emit(cursor, ts, unknown, 0)
			cursor = ts
		}

		r, next := s.mergeRun(points, i)

		boundary := window.End
		if next < len(points) {
			boundary = points[next].Timestamp
		}
		end := minTime(r.last.Add(s.opts.Validity), boundary, window.End)

		emit(cursor, end, r.category, r.samples)
		if end.After(cursor) {
			cursor = end
		}
		i = next
	}

	emit(cursor, window.End, unknown, 0)
	return segments, nil
}

// prepare drops observations outside the window, clamps the rest, resolves their labels
// and orders them by timestamp.
func (s *Synthesizer) prepare(window model.ChartWindow, observations []model.Observation) []model.Observation {
	points := make([]model.Observation, 0, len(observations))
	for _, o := range observations {
		if !window.Contains(o.Timestamp) {
			continue
		}
		points = append(points, model.Observation{
			Timestamp: window.Clamp(o.Timestamp),
			Category:  s.registry.Resolve(o.Category),
			Source:    o.Source,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points
}

// mergeRun groups points[i] with the same-category observations that follow it within the
// merge gap. It returns the run and the index of the first observation not consumed.
func (s *Synthesizer) mergeRun(points []model.Observation, i int) (run, int) {
	r := run{
		category: points[i].Category,
		first:    points[i].Timestamp,
		last:     points[i].Timestamp,
		samples:  1,
	}

	j := i + 1
	for ; j < len(points); j++ {
		p := points[j]
		if p.Category != r.category {
			break
		}
		anchor := r.last
		if s.opts.Anchor == AnchorFirst {
			anchor = r.first
		}
		if p.Timestamp.Sub(anchor) > s.opts.MergeGap {
			break
		}
		r.last = p.Timestamp
		r.samples++
	}
	return r, j
}

func minTime(first time.Time, rest ...time.Time) time.Time {
	m := first
	for _, t := range rest {
		if t.Before(m) {
			m = t
		}
	}
	return m
}

package watch

import (
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/presentation/render"
)

// Sink receives every regenerated chart.
type Sink interface {
	Write(result *chart.Result) error
}

// PNGSink rewrites one PNG file per regeneration.
type PNGSink struct {
	renderer *render.PNG
	path     string
}

func NewPNGSink(renderer *render.PNG, path string) *PNGSink {
	return &PNGSink{renderer: renderer, path: path}
}

func (s *PNGSink) Write(result *chart.Result) error {
	return s.renderer.WriteFile(s.path, result.Layout, result.Paused)
}

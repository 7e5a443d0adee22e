package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// PausedColor marks the top row of a chart drawn while tracking was paused.
var PausedColor = category.RGB{R: 220, G: 20, B: 60}

// ErrInvalidHeight is returned for a non-positive image height.
var ErrInvalidHeight = errors.New("chart height must be positive")

// PNG rasterises chart layouts.
type PNG struct {
	registry *category.Registry
	height   int
}

func NewPNG(registry *category.Registry, height int) *PNG {
	return &PNG{registry: registry, height: height}
}

// Image paints the layout onto a width x height canvas filled with the Unknown colour.
// Every pixel range spans the full height.
func (p *PNG) Image(layout model.ChartLayout, paused bool) (*image.RGBA, error) {
	if p.height <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeight, p.height)
	}
	if layout.Width <= 0 {
		return nil, fmt.Errorf("chart width must be positive: %d", layout.Width)
	}

	img := image.NewRGBA(image.Rect(0, 0, layout.Width, p.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toColor(p.registry.Unknown().Color)), image.Point{}, draw.Src)

	for _, col := range layout.Columns {
		rect := image.Rect(col.StartPx, 0, col.EndPx, p.height)
		fill := toColor(p.registry.Lookup(col.Category).Color)
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	if paused {
		stripe := image.Rect(0, 0, layout.Width, 1)
		draw.Draw(img, stripe, image.NewUniform(toColor(PausedColor)), image.Point{}, draw.Src)
	}
	return img, nil
}

// Encode writes the layout as PNG to w.
func (p *PNG) Encode(w io.Writer, layout model.ChartLayout, paused bool) error {
	img, err := p.Image(layout, paused)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteFile renders to a temporary file next to path and renames it onto path.
func (p *PNG) WriteFile(path string, layout model.ChartLayout, paused bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := p.Encode(tmp, layout, paused); err != nil {
		tmp.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func toColor(c category.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

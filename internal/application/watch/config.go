package watch

import (
	"errors"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/constants"
)

// WatchConfig contains configuration for the watch loop
type WatchConfig struct {
	DataDir    string
	OutputPath string

	// Chart settings
	Window  chart.WindowSpec
	Width   int
	Tracked string

	// Refresh settings
	RefreshInterval time.Duration
	Debounce        time.Duration
}

// Validate fills defaults and rejects unusable settings
func (c *WatchConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory is required")
	}
	if c.OutputPath == "" {
		return errors.New("output path is required")
	}
	if c.Window == (chart.WindowSpec{}) {
		c.Window = chart.DefaultWindowSpec
	}
	if c.Width == 0 {
		c.Width = constants.DefaultChartWidth
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = constants.DefaultRefreshInterval
	}
	if c.Debounce == 0 {
		c.Debounce = constants.WatchDebounce
	}
	if c.Width < 0 || c.RefreshInterval < 0 || c.Debounce < 0 {
		return errors.New("width, refresh interval and debounce must be positive")
	}
	return nil
}

// LockPath is the lock file guarding OutputPath against a second watcher.
func (c *WatchConfig) LockPath() string {
	return c.OutputPath + ".lock"
}

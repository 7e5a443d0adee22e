package config

import (
	"errors"
	"fmt"

	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWindow(); err != nil {
		return err
	}
	if err := c.validateChart(); err != nil {
		return err
	}
	if err := c.validateSynthesis(); err != nil {
		return err
	}
	if c.RefreshSeconds <= 0 {
		return errors.New("refresh_seconds must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error, fatal", c.LogLevel)
	}
	return nil
}

func (c *Config) validateWindow() error {
	start, err := util.ParseClock(c.WindowStart)
	if err != nil {
		return fmt.Errorf("window_start: %w", err)
	}
	end, err := util.ParseClock(c.WindowEnd)
	if err != nil {
		return fmt.Errorf("window_end: %w", err)
	}
	if end.Hour*60+end.Minute <= start.Hour*60+start.Minute {
		return fmt.Errorf("window_end %s must be after window_start %s: %w", c.WindowEnd, c.WindowStart, timeline.ErrDegenerateWindow)
	}
	return nil
}

func (c *Config) validateChart() error {
	if c.ChartWidth <= 0 {
		return errors.New("chart_width must be positive")
	}
	if c.ChartHeight <= 0 {
		return errors.New("chart_height must be positive")
	}
	return nil
}

func (c *Config) validateSynthesis() error {
	if c.ValiditySeconds <= 0 {
		return errors.New("validity_seconds must be positive")
	}
	if c.MergeGapSeconds <= 0 {
		return errors.New("merge_gap_seconds must be positive")
	}
	if _, err := timeline.ParseMergeAnchor(c.MergeAnchor); err != nil {
		return fmt.Errorf("merge_anchor: %w", err)
	}
	return nil
}

package config

import (
	"strings"

	"github.com/penwyp/go-activity-timeline/internal/core/constants"
)

// normalize expands paths and fills zero values left by a partial file.
func (c *Config) normalize() error {
	defaults := Default()

	for _, p := range []*string{&c.DataDir, &c.OutputPath, &c.CategoriesFile} {
		*p = strings.TrimSpace(*p)
	}
	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}
	if c.OutputPath == "" {
		c.OutputPath = defaults.OutputPath
	}

	var err error
	if c.DataDir, err = ExpandPath(c.DataDir); err != nil {
		return err
	}
	if c.OutputPath, err = ExpandPath(c.OutputPath); err != nil {
		return err
	}
	if c.CategoriesFile, err = ExpandPath(c.CategoriesFile); err != nil {
		return err
	}

	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = defaults.Timezone
	}
	if c.WindowStart == "" {
		c.WindowStart = constants.DefaultWindowStart
	}
	if c.WindowEnd == "" {
		c.WindowEnd = constants.DefaultWindowEnd
	}
	if c.ChartWidth == 0 {
		c.ChartWidth = constants.DefaultChartWidth
	}
	if c.ChartHeight == 0 {
		c.ChartHeight = constants.DefaultChartHeight
	}
	if c.ValiditySeconds == 0 {
		c.ValiditySeconds = constants.DefaultValiditySeconds
	}
	if c.MergeGapSeconds == 0 {
		c.MergeGapSeconds = constants.DefaultMergeGapSeconds
	}
	c.MergeAnchor = strings.ToLower(strings.TrimSpace(c.MergeAnchor))
	if c.MergeAnchor == "" {
		c.MergeAnchor = defaults.MergeAnchor
	}
	if strings.TrimSpace(c.TrackedCategory) == "" {
		c.TrackedCategory = defaults.TrackedCategory
	}
	if c.RefreshSeconds == 0 {
		c.RefreshSeconds = constants.DefaultRefreshSeconds
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	return nil
}

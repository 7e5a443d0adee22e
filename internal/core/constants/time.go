package constants

import "time"

const (
	// Validity and merging of samples
	DefaultValidity        = 90 * time.Second
	DefaultValiditySeconds = 90
	DefaultMergeGap        = 90 * time.Second
	DefaultMergeGapSeconds = 90

	// Chart window, local clock of the target date
	DefaultWindowStart = "07:00"
	DefaultWindowEnd   = "24:00"

	// Chart raster size
	DefaultChartWidth  = 1000
	DefaultChartHeight = 22

	// Watch mode
	DefaultRefreshInterval = 60 * time.Second
	DefaultRefreshSeconds  = 60
	WatchDebounce          = 2 * time.Second
)

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/constants"
	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

const defaultConfigPath = "~/.activity-timeline/config.toml"

// Config holds every setting of the chart pipeline. Zero values are replaced by defaults on load.
type Config struct {
	DataDir         string `toml:"data_dir"`
	OutputPath      string `toml:"output_path"`
	Timezone        string `toml:"timezone"`
	WindowStart     string `toml:"window_start"`
	WindowEnd       string `toml:"window_end"`
	ChartWidth      int    `toml:"chart_width"`
	ChartHeight     int    `toml:"chart_height"`
	ValiditySeconds int    `toml:"validity_seconds"`
	MergeGapSeconds int    `toml:"merge_gap_seconds"`
	MergeAnchor     string `toml:"merge_anchor"`
	TrackedCategory string `toml:"tracked_category"`
	CategoriesFile  string `toml:"categories_file,omitempty"`
	RefreshSeconds  int    `toml:"refresh_seconds"`
	LogLevel        string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:         "~/.activity-timeline/data",
		OutputPath:      "/tmp/time.png",
		Timezone:        "Local",
		WindowStart:     constants.DefaultWindowStart,
		WindowEnd:       constants.DefaultWindowEnd,
		ChartWidth:      constants.DefaultChartWidth,
		ChartHeight:     constants.DefaultChartHeight,
		ValiditySeconds: constants.DefaultValiditySeconds,
		MergeGapSeconds: constants.DefaultMergeGapSeconds,
		MergeAnchor:     string(timeline.AnchorLast),
		TrackedCategory: "Programming",
		RefreshSeconds:  constants.DefaultRefreshSeconds,
		LogLevel:        "info",
	}
}

// DefaultConfigPath returns the absolute path of the default configuration file.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load parses and validates the configuration at path, or the default path when empty.
// A missing file yields the defaults. It also reports the resolved path and whether it existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	if path == "" {
		path = defaultConfigPath
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return nil, "", false, err
	}

	exists := true
	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		exists = false
	}
	if exists {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// WriteSample writes c as a TOML file at path, creating parent directories.
func (c *Config) WriteSample(path string) error {
	var buf bytes.Buffer
	buf.WriteString("# activity-timeline configuration\n\n")
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Window returns the daily chart window.
func (c *Config) Window() (chart.WindowSpec, error) {
	return chart.ParseWindowSpec(c.WindowStart, c.WindowEnd)
}

// SynthesisOptions returns the synthesizer tuning.
func (c *Config) SynthesisOptions() (timeline.Options, error) {
	anchor, err := timeline.ParseMergeAnchor(c.MergeAnchor)
	if err != nil {
		return timeline.Options{}, err
	}
	return timeline.Options{
		Validity: time.Duration(c.ValiditySeconds) * time.Second,
		MergeGap: time.Duration(c.MergeGapSeconds) * time.Second,
		Anchor:   anchor,
	}, nil
}

// Registry loads the categories file, or returns the built-in registry when none is set.
func (c *Config) Registry() (*category.Registry, error) {
	if c.CategoriesFile == "" {
		return category.Default(), nil
	}
	return category.LoadFile(c.CategoriesFile)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return util.LoadLocation(c.Timezone)
}

// RefreshInterval is the period of the watch loop's regeneration tick.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// ExpandPath expands a leading ~ and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

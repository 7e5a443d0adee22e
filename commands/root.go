package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-timeline/internal/config"
	"github.com/penwyp/go-activity-timeline/internal/core/category"
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/data/loader"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

var (
	// Logging related
	debug bool

	// Configuration
	configPath string

	// Data path
	dataDir string

	// Time
	timezone string

	rootCmd = &cobra.Command{
		Use:   "activity-timeline [flags]",
		Short: "Daily activity timeline chart generator",
		Long: `activity-timeline turns sparse activity samples into a daily timeline chart.

Each sample is a text file named YYYYMMDD_HHMMSS.txt whose first line is the
activity category observed at that instant. Samples are merged into runs,
decayed after a validity period, painted onto a fixed-width raster and summed
per category.

Examples:
  activity-timeline                                # Render today's chart to /tmp/time.png
  activity-timeline --date yesterday -o summary    # Print yesterday's totals
  activity-timeline -o table --dir ~/samples       # Segment table for another data directory
  activity-timeline -o bar                         # Coloured preview in the terminal
  activity-timeline watch                          # Keep the chart up to date
  activity-timeline categories                     # List configured categories`,
		RunE:          runChart,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

const defaultLogFile = "~/.activity-timeline/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.activity-timeline/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "",
		"Sample directory path (overrides data_dir)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	addChartFlags(rootCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// app holds what every command needs after configuration is resolved.
type app struct {
	cfg      *config.Config
	clock    *util.TimeProvider
	registry *category.Registry
}

// setup loads the configuration, applies persistent flag overrides and initialises logging and time.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.DataDir = expandPath(dataDir)
	}
	if flags.Changed("timezone") {
		cfg.Timezone = timezone
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(util.LoggerOptions{Level: cfg.LogLevel, File: logFile, Console: debug}); err != nil {
		return nil, err
	}
	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}
	if exists {
		util.LogDebugf("Loaded config %s", resolved)
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, clock: util.GetTimeProvider(), registry: registry}, nil
}

// newEngine wires the loader for the configured data directory into a chart engine.
func (a *app) newEngine() (*chart.Engine, error) {
	opts, err := a.cfg.SynthesisOptions()
	if err != nil {
		return nil, err
	}
	source := loader.NewLoader(a.cfg.DataDir, a.clock.Location())
	return chart.NewEngine(source, a.registry, opts), nil
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-timeline/internal/config"
	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/presentation/formatter"
	"github.com/penwyp/go-activity-timeline/internal/presentation/render"
	"github.com/penwyp/go-activity-timeline/internal/presentation/terminal"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

var (
	// Target day
	chartDate string

	// Output related
	outputFormat string
	formatAlias  string
	outputPath   string
	paused       bool

	// Chart geometry
	chartWidth  int
	chartHeight int
	windowStart string
	windowEnd   string

	// Synthesis
	validitySeconds int
	mergeGapSeconds int
	mergeAnchor     string
	trackedCategory string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the timeline chart for one day",
	Long: `Render the timeline chart for one day.

The default output is a PNG raster (1000x22, 07:00-24:00). The table, json,
csv and summary outputs report the synthesized segments and per-category
totals; bar draws a coloured preview in the terminal.`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addChartFlags(chartCmd)
}

func addChartFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&chartDate, "date", "today",
		"Target date (YYYY-MM-DD, today, yesterday)")

	flags.StringVarP(&outputFormat, "output", "o", model.OutputPNG,
		"Output format (png, table, json, csv, summary, bar)")
	flags.StringVar(&formatAlias, "format", "",
		"Alias for --output")
	flags.StringVar(&outputPath, "out", "",
		"PNG output path (overrides output_path)")
	flags.BoolVar(&paused, "paused", false,
		"Mark the chart as paused")

	flags.IntVar(&chartWidth, "width", 0,
		"Chart width in pixels (overrides chart_width)")
	flags.IntVar(&chartHeight, "height", 0,
		"Chart height in pixels (overrides chart_height)")
	flags.StringVar(&windowStart, "window-start", "",
		"Window start HH:MM (overrides window_start)")
	flags.StringVar(&windowEnd, "window-end", "",
		"Window end HH:MM, 24:00 is midnight (overrides window_end)")

	flags.IntVar(&validitySeconds, "validity", 0,
		"Seconds a sample stays valid (overrides validity_seconds)")
	flags.IntVar(&mergeGapSeconds, "merge-gap", 0,
		"Largest gap in seconds between merged samples (overrides merge_gap_seconds)")
	flags.StringVar(&mergeAnchor, "merge-anchor", "",
		"Measure merge gaps from the last or first sample of a run")
	flags.StringVar(&trackedCategory, "tracked", "",
		"Category whose total is reported (overrides tracked_category)")
}

// applyChartFlags copies explicitly set chart flags onto cfg and revalidates it.
func applyChartFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputPath = expandPath(outputPath)
	}
	if flags.Changed("width") {
		cfg.ChartWidth = chartWidth
	}
	if flags.Changed("height") {
		cfg.ChartHeight = chartHeight
	}
	if flags.Changed("window-start") {
		cfg.WindowStart = windowStart
	}
	if flags.Changed("window-end") {
		cfg.WindowEnd = windowEnd
	}
	if flags.Changed("validity") {
		cfg.ValiditySeconds = validitySeconds
	}
	if flags.Changed("merge-gap") {
		cfg.MergeGapSeconds = mergeGapSeconds
	}
	if flags.Changed("merge-anchor") {
		cfg.MergeAnchor = mergeAnchor
	}
	if flags.Changed("tracked") {
		cfg.TrackedCategory = trackedCategory
	}
	return cfg.Validate()
}

func runChart(cmd *cobra.Command, args []string) error {
	// Handle format alias
	if cmd.Flags().Changed("format") {
		outputFormat = formatAlias
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := applyChartFlags(cmd, a.cfg); err != nil {
		return err
	}

	date, err := util.ParseDate(chartDate, a.clock)
	if err != nil {
		return err
	}
	window, err := a.cfg.Window()
	if err != nil {
		return err
	}
	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	result, err := engine.Compute(cmd.Context(), chart.Request{
		Date:    date,
		Window:  window,
		Width:   a.cfg.ChartWidth,
		Tracked: a.cfg.TrackedCategory,
		Paused:  paused,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case model.OutputPNG:
		renderer := render.NewPNG(a.registry, a.cfg.ChartHeight)
		if err := renderer.WriteFile(a.cfg.OutputPath, result.Layout, result.Paused); err != nil {
			return fmt.Errorf("error saving chart image to %s: %w", a.cfg.OutputPath, err)
		}
		fmt.Fprintf(out, "Chart saved to: %s\n", a.cfg.OutputPath)
		fmt.Fprintf(out, "%s: %s\n", result.Layout.TrackedCategory, util.FormatDuration(result.Layout.TrackedTotal))
		return nil
	case model.OutputBar:
		return terminal.NewBar(a.registry, out).Write(out, result)
	}

	f, err := formatter.New(outputFormat)
	if err != nil {
		return err
	}
	return f.Format(out, formatter.NewReport(result, a.registry))
}

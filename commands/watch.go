package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-timeline/internal/application/watch"
	"github.com/penwyp/go-activity-timeline/internal/presentation/render"
)

var watchRefreshSeconds int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep today's chart up to date",
	Long: `Regenerate today's chart on start, whenever a new sample record appears,
every refresh interval and at midnight.

Send SIGUSR1 to mark the chart as paused and SIGUSR2 to resume. Only one
watcher may write a given output file at a time.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&outputPath, "out", "",
		"PNG output path (overrides output_path)")
	watchCmd.Flags().IntVar(&watchRefreshSeconds, "refresh", 0,
		"Regeneration interval in seconds (overrides refresh_seconds)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		a.cfg.OutputPath = expandPath(outputPath)
	}
	if cmd.Flags().Changed("refresh") {
		a.cfg.RefreshSeconds = watchRefreshSeconds
	}
	if err := a.cfg.Validate(); err != nil {
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

	sink := watch.NewPNGSink(render.NewPNG(a.registry, a.cfg.ChartHeight), a.cfg.OutputPath)
	runner, err := watch.NewRunner(&watch.WatchConfig{
		DataDir:         a.cfg.DataDir,
		OutputPath:      a.cfg.OutputPath,
		Window:          window,
		Width:           a.cfg.ChartWidth,
		Tracked:         a.cfg.TrackedCategory,
		RefreshInterval: a.cfg.RefreshInterval(),
	}, engine, sink, a.clock)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	watch.HandlePauseSignals(ctx, runner.PauseState())

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s, writing %s (pid %d)\n", a.cfg.DataDir, a.cfg.OutputPath, os.Getpid())
	return runner.Run(ctx)
}

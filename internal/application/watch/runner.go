package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/penwyp/go-activity-timeline/internal/core/chart"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/core/timeline"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// ErrAlreadyRunning is returned when another watcher holds the output lock.
var ErrAlreadyRunning = errors.New("another watch instance is already writing this chart")

// ChartComputer computes one chart; *chart.Engine satisfies it.
type ChartComputer interface {
	Compute(ctx context.Context, req chart.Request) (*chart.Result, error)
}

// Runner regenerates the chart on start, on new sample records, on every refresh tick and at midnight
type Runner struct {
	config *WatchConfig
	engine ChartComputer
	sink   Sink
	clock  *util.TimeProvider
	pause  *PauseState
	lock   *flock.Flock
}

// NewRunner creates a runner; clock decides which date is "today".
func NewRunner(config *WatchConfig, engine ChartComputer, sink Sink, clock *util.TimeProvider) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Runner{
		config: config,
		engine: engine,
		sink:   sink,
		clock:  clock,
		pause:  &PauseState{},
		lock:   flock.New(config.LockPath()),
	}, nil
}

// PauseState returns the flag toggled by pause/resume signals.
func (r *Runner) PauseState() *PauseState {
	return r.pause
}

// Regenerate computes today's chart with a single snapshot of the paused flag and hands it to the sink.
func (r *Runner) Regenerate(ctx context.Context) (*chart.Result, error) {
	req := chart.Request{
		Date:    r.clock.Today(),
		Window:  r.config.Window,
		Width:   r.config.Width,
		Tracked: r.config.Tracked,
		Paused:  r.pause.Snapshot(),
	}

	result, err := r.engine.Compute(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := r.sink.Write(result); err != nil {
		return nil, fmt.Errorf("write chart: %w", err)
	}
	return result, nil
}

// Run holds the output lock and loops until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ok, err := r.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	defer func() {
		if err := r.lock.Unlock(); err != nil {
			util.LogWarnf("Failed to release lock %s: %v", r.config.LockPath(), err)
		}
	}()

	util.LogInfo("Starting watch",
		util.F("data_dir", r.config.DataDir),
		util.F("output", r.config.OutputPath),
		util.F("refresh", r.config.RefreshInterval.String()))

	var events <-chan model.FileEvent
	if err := os.MkdirAll(r.config.DataDir, 0755); err != nil {
		util.LogWarnf("Cannot create data directory %s: %v", r.config.DataDir, err)
	}
	watcher, err := NewFileWatcher(r.config.DataDir)
	if err != nil {
		util.LogWarnf("File watching disabled, relying on refresh tick: %v", err)
	} else {
		defer watcher.Close()
		events = watcher.Events()
	}

	if err := r.regenerate(ctx, "start"); err != nil {
		return err
	}

	ticker := time.NewTicker(r.config.RefreshInterval)
	defer ticker.Stop()

	midnight := time.NewTimer(r.untilMidnight())
	defer midnight.Stop()

	var debounce *time.Timer
	var debounceC <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down watch...")
			return nil

		case <-ticker.C:
			if err := r.regenerate(ctx, "tick"); err != nil {
				return err
			}

		case <-midnight.C:
			if err := r.regenerate(ctx, "midnight"); err != nil {
				return err
			}
			midnight.Reset(r.untilMidnight())

		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			util.LogDebugf("Sample event %s %s", event.Operation, event.Path)
			if debounce == nil {
				debounce = time.NewTimer(r.config.Debounce)
			} else {
				debounce.Stop()
				debounce.Reset(r.config.Debounce)
			}
			debounceC = debounce.C

		case <-debounceC:
			debounceC = nil
			if err := r.regenerate(ctx, "file"); err != nil {
				return err
			}
		}
	}
}

// regenerate logs failures and keeps the loop alive; only a degenerate window stops it.
func (r *Runner) regenerate(ctx context.Context, trigger string) error {
	result, err := r.Regenerate(ctx)
	if err != nil {
		if errors.Is(err, timeline.ErrDegenerateWindow) {
			return err
		}
		util.LogErrorf("Chart regeneration (%s) failed: %v", trigger, err)
		return nil
	}
	util.LogDebugf("Chart regenerated (%s) run=%s tracked=%s paused=%v",
		trigger, result.RunID, util.FormatDuration(result.Layout.TrackedTotal), result.Paused)
	return nil
}

func (r *Runner) untilMidnight() time.Duration {
	now := r.clock.Now()
	next := util.StartOfDay(now).AddDate(0, 0, 1)
	return next.Sub(now) + time.Second
}

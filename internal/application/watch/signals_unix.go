//go:build unix

package watch

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// HandlePauseSignals maps SIGUSR1 to pause and SIGUSR2 to resume until ctx is done.
func HandlePauseSignals(ctx context.Context, state *PauseState) {
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, unix.SIGUSR1, unix.SIGUSR2)

	go func() {
		defer signal.Stop(sigChan)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigChan:
				switch sig {
				case unix.SIGUSR1:
					state.Pause()
				case unix.SIGUSR2:
					state.Resume()
				}
			}
		}
	}()
}

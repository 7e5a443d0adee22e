//go:build !unix

package watch

import "context"

// HandlePauseSignals is a no-op where SIGUSR1/SIGUSR2 do not exist.
func HandlePauseSignals(ctx context.Context, state *PauseState) {}

package watch

import (
	"sync/atomic"

	"github.com/penwyp/go-activity-timeline/internal/util"
)

// PauseState is the paused flag shared between the signal handler and the loop.
// The loop reads it once per regeneration.
type PauseState struct {
	paused atomic.Bool
}

func (p *PauseState) Pause() {
	if !p.paused.Swap(true) {
		util.LogInfo("Tracking paused")
	}
}

func (p *PauseState) Resume() {
	if p.paused.Swap(false) {
		util.LogInfo("Tracking resumed")
	}
}

// Snapshot returns the current value of the flag.
func (p *PauseState) Snapshot() bool {
	return p.paused.Load()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sync"
	"time"
)

// lifecycleTimer drives the automatic end of a bounded poll and the 1 Hz
// remaining-time ticks. At most one schedule is live at a time: arm fully
// disarms any previous schedule first, so a new poll can never inherit a
// timer that would end it early.
//
// Disarm stops the schedule synchronously. A callback that already fired
// re-enters the engine through the same locked paths an explicit command
// uses, where a stale poll ID or a non-active state makes it a no-op.
type lifecycleTimer struct {
	mu   sync.Mutex
	stop chan struct{}
}

// arm schedules onEnd once after until, and onTick every tickEvery until
// then. Callbacks run on a dedicated goroutine.
func (t *lifecycleTimer) arm(until, tickEvery time.Duration, onEnd, onTick func()) {
	t.disarm()

	t.mu.Lock()
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go func() {
		end := time.NewTimer(until)
		defer end.Stop()
		ticker := time.NewTicker(tickEvery)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				onTick()
			case <-end.C:
				onEnd()
				return
			}
		}
	}()
}

// disarm cancels any pending schedule. Safe to call when nothing is armed.
func (t *lifecycleTimer) disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

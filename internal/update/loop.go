package update

import (
	"context"
	"fmt"
	"time"

	"github.com/qdm12/cfddns/internal/control"
)

func (c *Controller) run(ready chan<- struct{}, done chan<- struct{}) {
	defer close(done)
	close(ready)

	// Stop only acts at wait points, and never cancels
	// the network calls of a cycle in progress.
	ctx := context.Background()

	c.logger.Info(fmt.Sprintf("updating %d A and %d AAAA records every %s",
		len(c.ipv4), len(c.ipv6), c.period))

	for {
		if c.signal.Get() == control.Stop {
			return
		}

		c.runCycle(ctx)

		if !c.wait(ctx) {
			c.logger.Info("stopped")
			return
		}
	}
}

// wait blocks until the period elapses and the signal is Run, or until
// the signal is Stop, in which case it returns false. Forced updates
// are served while waiting, unless paused.
func (c *Controller) wait(ctx context.Context) (runNext bool) {
	timer := time.NewTimer(c.period)
	defer timer.Stop()
	elapsed := false

	for {
		state, changed := c.signal.Watch()
		switch state {
		case control.Stop:
			return false
		case control.Run:
			if elapsed {
				return true
			}
		case control.Pause:
		}

		timerCh := timer.C
		if elapsed {
			timerCh = nil
		}

		select {
		case <-timerCh:
			elapsed = true
		case <-changed:
		case resultCh := <-c.force:
			if state == control.Pause {
				resultCh <- forceResult{err: fmt.Errorf("%w", ErrPaused)}
				continue
			}
			resultCh <- forceResult{results: c.runCycle(ctx)}
		}
	}
}

//go:build !windows

package winsize

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// run publishes once up front, then re-measures on every SIGWINCH until ctx
// is cancelled. The kernel coalesces bursts of SIGWINCH, so a drag-resize
// arrives as a handful of signals rather than hundreds.
func (s *Source) run(ctx context.Context) {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	s.publish("initial")

	for {
		select {
		case <-ctx.Done():
			return
		case <-winch:
			s.publish("sigwinch")
		}
	}
}

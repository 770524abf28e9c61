//go:build windows

package winsize

import (
	"context"
	"time"

	"github.com/Wthomas48/smart-deals-iq-sub002/log"
)

// run publishes once up front, then polls the console every 500ms until ctx
// is cancelled. Windows has no resize signal, so polling stands in for the
// host event; only a changed measurement counts as an event.
func (s *Source) run(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	last, err := measure(s.tty, s.cell)
	if err != nil {
		log.Warning("could not measure console: %v", err)
	} else {
		s.deliver("initial", last)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dims, err := measure(s.tty, s.cell)
			if err != nil || dims == last {
				continue
			}
			last = dims
			s.deliver("poll", dims)
		}
	}
}

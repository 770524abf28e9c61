//go:build !windows

package winsize

import (
	"fmt"
	"os"

	"github.com/creack/pty"

	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// measure reads the tty geometry. Terminals that fill in the pixel fields
// of TIOCGWINSZ report exact dimensions; the rest are estimated from the
// cell count.
func measure(tty *os.File, cell CellSize) (viewport.Dimensions, error) {
	ws, err := pty.GetsizeFull(tty)
	if err != nil {
		return viewport.Dimensions{}, fmt.Errorf("failed to read terminal size: %w", err)
	}
	if ws.X > 0 && ws.Y > 0 {
		return viewport.Dimensions{Width: float64(ws.X), Height: float64(ws.Y)}, nil
	}
	return CellDimensions(int(ws.Cols), int(ws.Rows), cell), nil
}

//go:build windows

package winsize

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// measure reads the console geometry. The Windows console API reports cells
// only, so dimensions are always estimated from the cell count.
func measure(tty *os.File, cell CellSize) (viewport.Dimensions, error) {
	cols, rows, err := term.GetSize(int(tty.Fd()))
	if err != nil {
		return viewport.Dimensions{}, fmt.Errorf("failed to read console size: %w", err)
	}
	return CellDimensions(cols, rows, cell), nil
}

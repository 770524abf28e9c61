package overlay

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func grid(width, height int, fill rune) string {
	row := strings.Repeat(string(fill), width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestPlaceOverlayCentered(t *testing.T) {
	bg := grid(20, 9, '.')
	fg := "XXXX\nXXXX\nXXXX"

	out := PlaceOverlay(0, 0, fg, bg, true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)

	// Untouched rows above and below keep the background.
	assert.Equal(t, strings.Repeat(".", 20), lines[0])
	assert.Equal(t, strings.Repeat(".", 20), lines[8])

	// Overlaid rows keep the background on both sides of the box.
	assert.Equal(t, "........XXXX........", lines[4])
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
}

func TestPlaceOverlayAtOffset(t *testing.T) {
	bg := grid(12, 4, '.')

	out := PlaceOverlay(2, 1, "ab", bg, false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "..ab........", lines[1])
	assert.Equal(t, strings.Repeat(".", 12), lines[0])
}

func TestPlaceOverlayClampsOffset(t *testing.T) {
	bg := grid(10, 3, '.')

	// An offset past the edge pins the overlay inside the background.
	out := PlaceOverlay(50, 50, "zz", bg, false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "........zz", lines[2])
}

func TestPlaceOverlayCoveringForeground(t *testing.T) {
	bg := grid(4, 2, '.')
	fg := grid(6, 3, 'X')

	// A foreground at least as large as the background replaces it.
	assert.Equal(t, fg, PlaceOverlay(0, 0, fg, bg, true))
}

func TestCutLeft(t *testing.T) {
	assert.Equal(t, "cdef", cutLeft("abcdef", 2))
	assert.Equal(t, "", cutLeft("ab", 5))
	assert.Equal(t, "abc", cutLeft("abc", 0))
}

func TestTextOverlayWrapsBody(t *testing.T) {
	overlay := NewTextOverlay("Help", "measure the viewport and classify it by device and width thresholds")
	overlay.SetWidth(30)

	out := overlay.Render()
	lines := strings.Split(out, "\n")

	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "measure")
	// Body wraps inside the border instead of widening the box.
	assert.Greater(t, len(lines), 5)
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 30)
	}
}

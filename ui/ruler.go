package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"

	"github.com/Wthomas48/smart-deals-iq-sub002/inspect"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// rulerScaleMax is the pixel width mapped to the ruler's right edge. Wide
// enough to keep the large-desktop marker on screen; wider viewports pin
// the cursor to the edge.
const rulerScaleMax = 1600.0

var (
	rulerFillStyle  = lipgloss.NewStyle().Foreground(Primary)
	rulerTrackStyle = lipgloss.NewStyle().Foreground(TextMuted)
	markerOnStyle   = lipgloss.NewStyle().Foreground(BreakpointActive)
	markerOffStyle  = lipgloss.NewStyle().Foreground(BreakpointInactive)
	rulerLabelOn    = lipgloss.NewStyle().Foreground(BreakpointActive)
	rulerLabelOff   = lipgloss.NewStyle().Foreground(BreakpointInactive)
)

// Ruler visualizes the width axis: a bar filled up to the current viewport
// width with a marker at each size breakpoint. Crossed breakpoints and
// their labels render in the active color.
type Ruler struct {
	widthPx float64
	width   int
}

func NewRuler() *Ruler {
	return &Ruler{}
}

// SetWidthPx sets the viewport width the cursor reflects.
func (r *Ruler) SetWidthPx(px float64) {
	r.widthPx = px
}

// SetSize sets the render width in cells. The ruler is always two rows.
func (r *Ruler) SetSize(width, height int) {
	r.width = width
}

func (r *Ruler) markers() []float64 {
	return []float64{viewport.TabletWidth, viewport.DesktopWidth, viewport.LargeDesktopWidth}
}

// cellFor maps a pixel position onto a bar cell.
func (r *Ruler) cellFor(px float64) int {
	if r.width <= 0 {
		return 0
	}
	cell := int(px / rulerScaleMax * float64(r.width))
	if cell >= r.width {
		cell = r.width - 1
	}
	return cell
}

func (r *Ruler) String() string {
	if r.width <= 0 {
		return ""
	}

	fillEnd := -1
	if r.widthPx > 0 {
		fillEnd = r.cellFor(r.widthPx)
	}

	markerCells := make(map[int]float64, 3)
	for _, px := range r.markers() {
		markerCells[r.cellFor(px)] = px
	}

	var bar strings.Builder
	for i := 0; i < r.width; i++ {
		if px, ok := markerCells[i]; ok {
			style := markerOffStyle
			if r.widthPx >= px {
				style = markerOnStyle
			}
			bar.WriteString(style.Render("┼"))
			continue
		}
		if i <= fillEnd {
			bar.WriteString(rulerFillStyle.Render("█"))
		} else {
			bar.WriteString(rulerTrackStyle.Render("─"))
		}
	}

	return bar.String() + "\n" + r.labelRow()
}

// labelRow prints each threshold value under its marker. Styled chunks are
// measured with their printable width, not their byte length.
func (r *Ruler) labelRow() string {
	var b strings.Builder
	for _, px := range r.markers() {
		cell := r.cellFor(px)
		pad := cell - ansi.PrintableRuneWidth(b.String())
		if pad < 1 && b.Len() > 0 {
			pad = 1
		}
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}

		style := rulerLabelOff
		if r.widthPx >= px {
			style = rulerLabelOn
		}
		b.WriteString(style.Render(fmt.Sprintf("%g", px)))
	}
	return b.String()
}

// InspectNode implements inspect.Introspectable.
func (r *Ruler) InspectNode() *inspect.Node {
	return inspect.NewNode("Ruler").
		WithBounds(0, 0, r.width, 2).
		WithState("width_px", r.widthPx).
		WithState("scale_max", rulerScaleMax)
}

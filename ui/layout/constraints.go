package layout

// Constraints holds the computed geometry for every component.
type Constraints struct {
	// Terminal dimensions
	TermWidth  int
	TermHeight int

	// Computed mode
	Mode Mode

	// Component dimensions (computed)
	PanelWidth    int
	GridWidth     int
	ContentHeight int
	RulerHeight   int
	MenuWidth     int
	MenuHeight    int
	ErrBoxWidth   int
	ErrBoxHeight  int
	OverlayWidth  int

	// Layout flags
	ShowRuler      bool // Drop the ruler on short terminals so the grid keeps its rows
	ShowMinWarning bool // Terminal is below minimum size
}

// Compute calculates the geometry for the given terminal dimensions.
func Compute(width, height int) Constraints {
	c := Constraints{
		TermWidth:  width,
		TermHeight: height,
	}

	c.Mode = DetermineMode(width, height)
	c.ShowMinWarning = width < MinWidth || height < MinHeight

	// Fixed chrome first.
	c.ErrBoxWidth = int(float32(width) * 0.9)
	c.ErrBoxHeight = ErrBoxRows
	c.MenuWidth = width
	c.MenuHeight = MenuRows

	c.ShowRuler = height >= RulerHideHeight
	if c.ShowRuler {
		c.RulerHeight = RulerRows
	}

	// The info panel and the deal grid split what remains.
	c.ContentHeight = max(height-c.RulerHeight-c.MenuHeight-c.ErrBoxHeight, 0)
	c.PanelWidth = computePanelWidth(width, c.Mode)
	c.GridWidth = max(width-c.PanelWidth, 0)

	c.OverlayWidth = clamp(int(float32(width)*0.6), OverlayMinWidth, OverlayMaxWidth)

	return c
}

// computePanelWidth gives the info panel a larger relative share as the
// terminal shrinks, within fixed bounds.
func computePanelWidth(totalWidth int, mode Mode) int {
	var targetPercent float32

	switch mode {
	case ModeFull:
		targetPercent = 0.25
	case ModeStandard:
		targetPercent = 0.3
	case ModeCompact:
		targetPercent = 0.35
	default:
		// Minimal mode
		return PanelMinWidth
	}

	return clamp(int(float32(totalWidth)*targetPercent), PanelMinWidth, PanelMaxWidth)
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

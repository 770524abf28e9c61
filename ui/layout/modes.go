// Package layout computes the inspector's own chrome geometry from the
// terminal size in cells. It is deliberately separate from the px-based
// classification the tool displays: the host terminal and the simulated
// viewport are different surfaces and degrade on different thresholds.
package layout

// Mode is the chrome density for a terminal size.
type Mode int

const (
	// ModeFull is for large terminals. All components at full size.
	ModeFull Mode = iota

	// ModeStandard is the default comfortable layout.
	ModeStandard

	// ModeCompact reduces the panel share for smaller terminals.
	ModeCompact

	// ModeMinimal is for terminals below the minimum size.
	ModeMinimal
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeStandard:
		return "standard"
	case ModeCompact:
		return "compact"
	case ModeMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode picks the mode for the given terminal size. Width and height
// are bucketed independently and the more restrictive axis wins.
func DetermineMode(width, height int) Mode {
	if width < MinWidth || height < MinHeight {
		return ModeMinimal
	}

	widthMode := determineWidthMode(width)
	heightMode := determineHeightMode(height)

	// Higher value = more restrictive.
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(width int) Mode {
	switch {
	case width >= FullWidth:
		return ModeFull
	case width >= StandardWidth:
		return ModeStandard
	case width >= MinWidth:
		return ModeCompact
	default:
		return ModeMinimal
	}
}

func determineHeightMode(height int) Mode {
	switch {
	case height >= FullHeight:
		return ModeFull
	case height >= StandardHeight:
		return ModeStandard
	case height >= MinHeight:
		return ModeCompact
	default:
		return ModeMinimal
	}
}

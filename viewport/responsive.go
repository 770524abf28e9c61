package viewport

// Font scale applied to the app's type ramp at each size class.
const (
	FontScaleMobile  = 1.0
	FontScaleTablet  = 1.1
	FontScaleDesktop = 1.25
)

// Base spacing unit in device-independent pixels at each size class. Screens
// derive paddings and gutters as multiples of this.
const (
	SpacingUnitMobile  = 8.0
	SpacingUnitTablet  = 12.0
	SpacingUnitDesktop = 16.0
)

// ByBreakpoint selects one of three values by the active size flag: the
// mobile value at mobile sizes, the tablet value at tablet sizes, and the
// desktop value otherwise. Total over every Breakpoints value.
func ByBreakpoint[T any](bp Breakpoints, mobile, tablet, desktop T) T {
	switch {
	case bp.MobileSize:
		return mobile
	case bp.TabletSize:
		return tablet
	default:
		return desktop
	}
}

// ShowSidebar reports whether the vendor sidebar fits alongside the deal
// grid. Only desktop sizes carry the sidebar.
func ShowSidebar(bp Breakpoints) bool {
	return bp.DesktopSize
}

// FontScale returns the type-ramp multiplier for the active size class.
func FontScale(bp Breakpoints) float64 {
	return ByBreakpoint(bp, FontScaleMobile, FontScaleTablet, FontScaleDesktop)
}

// SpacingUnit returns the base spacing unit for the active size class.
func SpacingUnit(bp Breakpoints) float64 {
	return ByBreakpoint(bp, SpacingUnitMobile, SpacingUnitTablet, SpacingUnitDesktop)
}

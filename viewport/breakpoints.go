package viewport

// Width breakpoints, in device-independent pixels. These bucket the viewport
// width only; they are deliberately independent of the device thresholds in
// device.go, so a rotated tablet can land in a different size class than its
// device class suggests. Both axes are reported side by side and never
// reconciled.
const (
	// TabletWidth is the smallest width classified as tablet-size.
	TabletWidth = 640.0

	// DesktopWidth is the smallest width classified as desktop-size.
	DesktopWidth = 1024.0

	// LargeDesktopWidth is the smallest width additionally flagged as
	// large-desktop. Large-desktop widths are still desktop-size.
	LargeDesktopWidth = 1440.0
)

// SizeClass names the width bucket a viewport falls in.
type SizeClass int

const (
	// SizeMobile covers widths below 640dp.
	SizeMobile SizeClass = iota

	// SizeTablet covers widths in [640, 1024).
	SizeTablet

	// SizeDesktop covers widths of 1024dp and up.
	SizeDesktop
)

// String returns the lower-case name of the size class.
func (s SizeClass) String() string {
	switch s {
	case SizeMobile:
		return "mobile"
	case SizeTablet:
		return "tablet"
	case SizeDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Breakpoints holds the width-bucket flags for one measured width. The three
// size flags are mutually exclusive and cover every non-negative width;
// LargeDesktop is only ever set together with DesktopSize.
type Breakpoints struct {
	MobileSize   bool
	TabletSize   bool
	DesktopSize  bool
	LargeDesktop bool
}

// ClassifyWidth buckets a width into its breakpoint flags. Intervals are
// half-open with inclusive lower bounds: 639.9 is mobile, 640 is tablet.
// Negative widths classify as mobile.
func ClassifyWidth(width float64) Breakpoints {
	switch {
	case width < TabletWidth:
		return Breakpoints{MobileSize: true}
	case width < DesktopWidth:
		return Breakpoints{TabletSize: true}
	case width < LargeDesktopWidth:
		return Breakpoints{DesktopSize: true}
	default:
		return Breakpoints{DesktopSize: true, LargeDesktop: true}
	}
}

// SizeClass collapses the flags back into the enum, for display and for
// callers that switch rather than branch on flags.
func (b Breakpoints) SizeClass() SizeClass {
	switch {
	case b.MobileSize:
		return SizeMobile
	case b.TabletSize:
		return SizeTablet
	default:
		return SizeDesktop
	}
}

// GridColumns returns the deal-grid column count for a width: 1 below the
// tablet breakpoint, then 2, 3 and 4 as each breakpoint is crossed.
// Monotonic non-decreasing in width.
func GridColumns(width float64) int {
	switch {
	case width < TabletWidth:
		return 1
	case width < DesktopWidth:
		return 2
	case width < LargeDesktopWidth:
		return 3
	default:
		return 4
	}
}

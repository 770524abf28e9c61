package inspect

import (
	"fmt"
	"strings"
	"time"

	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// Snapshot is a complete picture of the responsive state at one moment.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Viewport describes the dimension pair and where it came from.
	Viewport ViewportInfo `json:"viewport"`

	// Host holds the raw host flags the platform was resolved from.
	Host hostenv.Flags `json:"host"`

	// Classification is the full resolved record, exactly as consumers
	// see it.
	Classification viewport.Info `json:"classification"`

	// Grid holds the derived layout parameters for the deal grid.
	Grid GridInfo `json:"grid"`

	// Breakpoints lists every threshold with its axis and whether the
	// current viewport has crossed it.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Styles maps registered style names to their resolved attributes.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`

	// Components is the root of the component tree.
	Components *Node `json:"components,omitempty"`

	// ErrorMessage is the error currently shown to the user, if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// ViewportInfo is the measured pair plus its provenance: "measured" for a
// host report, "simulated" for inspector overrides, "fallback" for the
// configured default.
type ViewportInfo struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Source string  `json:"source"`
}

// GridInfo holds the responsive layout parameters derived from the width.
type GridInfo struct {
	Columns     int     `json:"columns"`
	ShowSidebar bool    `json:"show_sidebar"`
	FontScale   float64 `json:"font_scale"`
	SpacingUnit float64 `json:"spacing_unit"`
}

// BreakpointInfo describes one classification threshold.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the value the axis is compared against, inclusive.
	Threshold float64 `json:"threshold"`

	// Active indicates the current viewport is at or past the threshold.
	Active bool `json:"active"`

	// Axis is "width" for the size breakpoints and "min-side" for the
	// device thresholds.
	Axis string `json:"axis"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithViewport fills in everything derived from one classification record:
// the raw pair, the record itself, the grid parameters and the breakpoint
// table.
func (s *Snapshot) WithViewport(info viewport.Info, host hostenv.Flags, source string) *Snapshot {
	s.Viewport = ViewportInfo{Width: info.Width, Height: info.Height, Source: source}
	s.Host = host
	s.Classification = info

	bp := info.Breakpoints()
	s.Grid = GridInfo{
		Columns:     viewport.GridColumns(info.Width),
		ShowSidebar: viewport.ShowSidebar(bp),
		FontScale:   viewport.FontScale(bp),
		SpacingUnit: viewport.SpacingUnit(bp),
	}

	minSide := info.Dimensions().MinSide()
	s.Breakpoints = []BreakpointInfo{
		{Name: "tablet_size", Threshold: viewport.TabletWidth, Active: info.Width >= viewport.TabletWidth, Axis: "width"},
		{Name: "desktop_size", Threshold: viewport.DesktopWidth, Active: info.Width >= viewport.DesktopWidth, Axis: "width"},
		{Name: "large_desktop", Threshold: viewport.LargeDesktopWidth, Active: info.IsLargeDesktop, Axis: "width"},
		{Name: "tablet_device", Threshold: viewport.TabletMinSide, Active: minSide >= viewport.TabletMinSide, Axis: "min-side"},
		{Name: "desktop_device", Threshold: viewport.DesktopMinSide, Active: minSide >= viewport.DesktopMinSide, Axis: "min-side"},
	}

	return s
}

// WithStyles attaches the currently registered named styles.
func (s *Snapshot) WithStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithError records the error message currently displayed.
func (s *Snapshot) WithError(msg string) *Snapshot {
	s.ErrorMessage = msg
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== Viewport Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Viewport: %gx%g px (%s)\n", s.Viewport.Width, s.Viewport.Height, s.Viewport.Source))
	b.WriteString(fmt.Sprintf("Platform: %s  Device: %s  Orientation: %s\n",
		s.Classification.Platform, s.Classification.Device, s.Classification.Orientation()))
	b.WriteString(fmt.Sprintf("Size class: %s  Large desktop: %v\n",
		s.Classification.SizeClass(), s.Classification.IsLargeDesktop))

	b.WriteString("\n--- Grid ---\n")
	b.WriteString(fmt.Sprintf("Columns: %d\n", s.Grid.Columns))
	b.WriteString(fmt.Sprintf("Sidebar: %v\n", s.Grid.ShowSidebar))
	b.WriteString(fmt.Sprintf("Font scale: x%g\n", s.Grid.FontScale))
	b.WriteString(fmt.Sprintf("Spacing unit: %gpx\n", s.Grid.SpacingUnit))

	b.WriteString("\n--- Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (>= %g %s)\n", status, bp.Name, bp.Threshold, bp.Axis))
	}

	if s.ErrorMessage != "" {
		b.WriteString(fmt.Sprintf("\nError: %s\n", s.ErrorMessage))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}

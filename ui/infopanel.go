package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wthomas48/smart-deals-iq-sub002/inspect"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// InfoPanel renders the resolved classification record: the dimension pair,
// both classification axes, the platform, and the derived layout parameters.
// It displays whatever Info it was last given; all derivation happens in the
// viewport package.
type InfoPanel struct {
	info   viewport.Info
	source string

	// lastEvent is when the displayed record arrived.
	lastEvent time.Time

	width, height int
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{source: "fallback"}
}

// SetInfo replaces the displayed record. source describes where the pair
// came from: "measured", "simulated" or "fallback".
func (p *InfoPanel) SetInfo(info viewport.Info, source string) {
	p.info = info
	p.source = source
	p.lastEvent = time.Now()
}

// Info returns the currently displayed record.
func (p *InfoPanel) Info() viewport.Info {
	return p.info
}

func (p *InfoPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *InfoPanel) row(label, value string) string {
	return LabelStyle.Render(fmt.Sprintf("%-12s", label)) + ValueStyle.Render(value)
}

func (p *InfoPanel) String() string {
	info := p.info
	bp := info.Breakpoints()

	var lastEvent *time.Time
	if !p.lastEvent.IsZero() {
		lastEvent = &p.lastEvent
	}

	sidebar := "hidden"
	if viewport.ShowSidebar(bp) {
		sidebar = "shown"
	}

	lines := []string{
		TitleStyle.Render("Smart Deals IQ viewport"),
		"",
		p.row("Viewport", fmt.Sprintf("%gx%g px (%s, %s)", info.Width, info.Height, p.source, FormatLastEvent(lastEvent))),
		p.row("Platform", string(info.Platform)),
		p.row("Device", info.Device.String()),
		p.row("Size class", info.SizeClass().String()),
		p.row("Orientation", info.Orientation()),
		"",
		p.row("Columns", fmt.Sprintf("%d", viewport.GridColumns(info.Width))),
		p.row("Sidebar", sidebar),
		p.row("Font scale", fmt.Sprintf("x%g", viewport.FontScale(bp))),
		p.row("Spacing", fmt.Sprintf("%gpx", viewport.SpacingUnit(bp))),
		"",
		p.row("Flags", p.flagLine()),
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(p.width).MaxHeight(p.height).Render(body)
}

// flagLine lists the set classification flags, the way the app's screens
// query them.
func (p *InfoPanel) flagLine() string {
	type flag struct {
		name string
		set  bool
	}
	flags := []flag{
		{"desktop", p.info.IsDesktop},
		{"mobile", p.info.IsMobile},
		{"tablet", p.info.IsTablet},
		{"shell", p.info.IsDesktopShell},
		{"landscape", p.info.IsLandscape},
		{"large-desktop", p.info.IsLargeDesktop},
	}

	var set []string
	for _, f := range flags {
		if f.set {
			set = append(set, f.name)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, " ")
}

// InspectNode implements inspect.Introspectable.
func (p *InfoPanel) InspectNode() *inspect.Node {
	return inspect.NewNode("InfoPanel").
		WithBounds(0, 0, p.width, p.height).
		WithState("platform", string(p.info.Platform)).
		WithState("device", p.info.Device.String()).
		WithState("size_class", p.info.SizeClass().String()).
		WithState("source", p.source).
		WithStyles(inspect.ExtractStyleInfo(ValueStyle, "value"))
}

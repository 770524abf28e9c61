package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Wthomas48/smart-deals-iq-sub002/inspect"
)

// Semantic Color Palette
// Designed for accessibility (colorblind-safe) with both color and shape differentiation.

// Deal accent colors - each deal tier has a distinct color and badge icon
var (
	// DealHot marks the steepest discounts
	// Color: Red, Icon: "▲"
	DealHot = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// DealTrending marks deals gaining traction
	// Color: Amber, Icon: "↑"
	DealTrending = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// DealFresh marks newly listed deals
	// Color: Green, Icon: "+"
	DealFresh = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// DealExpiring marks deals about to lapse
	// Color: Gray, Icon: "…"
	DealExpiring = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for cards, overlays, etc.
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// BreakpointActive marks thresholds the current viewport has crossed
	BreakpointActive = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// BreakpointInactive marks thresholds still ahead of the viewport
	BreakpointInactive = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"}
)

// Badge icons for accessibility (shape + color)
const (
	IconHot      = "▲"
	IconTrending = "↑"
	IconFresh    = "+"
	IconExpiring = "…"
)

// Pre-built styles for common UI elements

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// LabelStyle renders the left-hand labels in the info panel
var LabelStyle = lipgloss.NewStyle().Foreground(TextMuted)

// ValueStyle renders the resolved classification values
var ValueStyle = lipgloss.NewStyle().Foreground(TextPrimary).Bold(true)

// TitleStyle renders panel titles
var TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// DealBadge returns a formatted discount badge string
func DealBadge(text string, color lipgloss.TerminalColor) string {
	return BadgeStyle(color).Render(text)
}

// CardStyle creates a style for deal cards
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}

// SidebarStyle creates a style for the vendor sidebar shown at desktop sizes
func SidebarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus).
		Padding(1, 2).
		Background(BackgroundSubtle)
}

func init() {
	// Registered so snapshots can report which styles components rendered with.
	inspect.RegisterStyle("label", LabelStyle)
	inspect.RegisterStyle("value", ValueStyle)
	inspect.RegisterStyle("title", TitleStyle)
	inspect.RegisterStyle("card", CardStyle())
	inspect.RegisterStyle("sidebar", SidebarStyle())
	inspect.RegisterStyle("overlay", OverlayStyle())
}

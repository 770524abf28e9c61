package inspect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ExtractStyleInfo flattens a lipgloss style into the serializable form.
func ExtractStyleInfo(style lipgloss.Style, styleNames ...string) *StyleInfo {
	info := &StyleInfo{
		Foreground:    colorToString(style.GetForeground()),
		Background:    colorToString(style.GetBackground()),
		Bold:          style.GetBold(),
		Italic:        style.GetItalic(),
		Underline:     style.GetUnderline(),
		AppliedStyles: styleNames,
	}

	top := style.GetPaddingTop()
	right := style.GetPaddingRight()
	bottom := style.GetPaddingBottom()
	left := style.GetPaddingLeft()
	if top > 0 || right > 0 || bottom > 0 || left > 0 {
		info.Padding = []int{top, right, bottom, left}
	}

	if style.GetBorderTop() || style.GetBorderRight() || style.GetBorderBottom() || style.GetBorderLeft() {
		info.Border = borderName(style.GetBorderStyle())
		info.BorderColor = colorToString(style.GetBorderTopForeground())
	}

	return info
}

func borderName(b lipgloss.Border) string {
	switch b {
	case lipgloss.NormalBorder():
		return "normal"
	case lipgloss.RoundedBorder():
		return "rounded"
	case lipgloss.DoubleBorder():
		return "double"
	case lipgloss.ThickBorder():
		return "thick"
	case lipgloss.HiddenBorder():
		return "hidden"
	default:
		return "custom"
	}
}

// colorToString converts a lipgloss.TerminalColor to a string representation.
func colorToString(c lipgloss.TerminalColor) string {
	if c == nil {
		return ""
	}

	switch v := c.(type) {
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("adaptive(light=%s, dark=%s)", v.Light, v.Dark)
	case lipgloss.CompleteColor:
		return fmt.Sprintf("complete(true=%s, ansi=%s, ansi256=%s)",
			v.TrueColor, v.ANSI, v.ANSI256)
	case lipgloss.CompleteAdaptiveColor:
		return "complete_adaptive"
	default:
		return fmt.Sprintf("%v", c)
	}
}

// StyleRegistry tracks named styles so snapshots can report which styles a
// component rendered with.
type StyleRegistry struct {
	styles map[string]lipgloss.Style
}

var globalRegistry = &StyleRegistry{
	styles: make(map[string]lipgloss.Style),
}

// RegisterStyle registers a named style for inspection.
func RegisterStyle(name string, style lipgloss.Style) {
	globalRegistry.styles[name] = style
}

// GetRegisteredStyle retrieves a registered style by name.
func GetRegisteredStyle(name string) (lipgloss.Style, bool) {
	style, ok := globalRegistry.styles[name]
	return style, ok
}

// GetAllStyles returns info for all registered styles.
func GetAllStyles() map[string]*StyleInfo {
	result := make(map[string]*StyleInfo, len(globalRegistry.styles))
	for name, style := range globalRegistry.styles {
		result[name] = ExtractStyleInfo(style, name)
	}
	return result
}

package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// TextOverlay is a bordered box of wrapped text, used for the help screen.
type TextOverlay struct {
	title string
	body  string

	width int
}

// NewTextOverlay creates a text overlay with the given title and body.
func NewTextOverlay(title, body string) *TextOverlay {
	return &TextOverlay{
		title: title,
		body:  body,
	}
}

// SetWidth sets the overlay width, including the border.
func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// Render renders the text overlay.
func (t *TextOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	// lipgloss draws the border outside the set width.
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(t.width - 2)

	// Border and padding take six cells of wrap width.
	wrapWidth := t.width - 6
	if wrapWidth < 10 {
		wrapWidth = 10
	}

	content := titleStyle.Render(t.title) + "\n\n" + bodyStyle.Render(wordwrap.String(t.body, wrapWidth))
	return boxStyle.Render(content)
}

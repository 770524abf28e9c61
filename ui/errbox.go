package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var errStyle = lipgloss.NewStyle().Foreground(DealHot)

// ErrBox is the single-row error strip under the menu. It shows the most
// recent error until the app clears it.
type ErrBox struct {
	err           error
	width, height int
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

// SetError sets the error to display. A nil error clears it.
func (e *ErrBox) SetError(err error) {
	e.err = err
}

// Clear removes the displayed error.
func (e *ErrBox) Clear() {
	e.err = nil
}

// Err returns the currently displayed error, or nil.
func (e *ErrBox) Err() error {
	return e.err
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var text string
	if e.err != nil {
		text = e.err.Error()
		if e.width > 3 && runewidth.StringWidth(text) > e.width {
			text = runewidth.Truncate(text, e.width, "...")
		}
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, errStyle.Render(text))
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wthomas48/smart-deals-iq-sub002/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var simGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// Menu is the bottom key bar. Options are fixed; the simulation group is
// highlighted so it is obvious which keys change the classification rather
// than just reading it.
type Menu struct {
	options       []keys.KeyName
	height, width int

	// keyDown is the key currently pressed, underlined briefly. -1 when none.
	keyDown keys.KeyName
}

// Option order matters: the groups below index into it.
var menuOptions = []keys.KeyName{
	keys.KeyRefresh, keys.KeyCopy,
	keys.KeyPlatform, keys.KeyShell,
	keys.KeyHelp, keys.KeyQuit,
}

// menuGroups partitions menuOptions: action, simulation, system.
var menuGroups = []struct {
	start int
	end   int
}{
	{0, 2},
	{2, 4},
	{4, 6},
}

// simulation group index in menuGroups
const simGroup = 1

func NewMenu() *Menu {
	return &Menu{
		options: menuOptions,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetSize sets the area the menu centers itself in.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	for i, k := range m.options {
		binding := keys.GlobalkeyBindings[k]

		localKeyStyle := keyStyle
		localDescStyle := descStyle
		if i >= menuGroups[simGroup].start && i < menuGroups[simGroup].end {
			localKeyStyle = simGroupStyle
			localDescStyle = simGroupStyle
		}
		if m.keyDown == k {
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		s.WriteString(localKeyStyle.Render(binding.Help().Key))
		s.WriteString(" ")
		s.WriteString(localDescStyle.Render(binding.Help().Desc))

		if i != len(m.options)-1 {
			isGroupEnd := false
			for _, group := range menuGroups {
				if i == group.end-1 {
					s.WriteString(sepStyle.Render(verticalSeparator))
					isGroupEnd = true
					break
				}
			}
			if !isGroupEnd {
				s.WriteString(sepStyle.Render(separator))
			}
		}
	}

	centered := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centered)
}

package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeyRefresh KeyName = iota
	KeyCopy
	KeyPlatform
	KeyShell
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map from key string to KeyName.
var GlobalKeyStringsMap = map[string]KeyName{
	"r":      KeyRefresh,
	"c":      KeyCopy,
	"p":      KeyPlatform,
	"o":      KeyShell,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map from KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyRefresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "re-measure"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy snapshot"),
	),
	KeyPlatform: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "cycle platform"),
	),
	KeyShell: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "toggle shell"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

package layout

// Width thresholds (cells)
const (
	// MinWidth is the narrowest terminal the inspector lays out side by side.
	MinWidth = 60

	// StandardWidth is the threshold for the standard layout.
	StandardWidth = 90

	// FullWidth is the threshold for the full layout.
	FullWidth = 120
)

// Height thresholds (cells)
const (
	// MinHeight is the shortest terminal the inspector renders into.
	MinHeight = 16

	// StandardHeight is the threshold for the standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for the full layout.
	FullHeight = 36
)

// Info panel constraints
const (
	// PanelMinWidth keeps the classification lines readable.
	PanelMinWidth = 24

	// PanelMaxWidth stops the panel stretching on wide terminals.
	PanelMaxWidth = 44
)

// Fixed chrome rows
const (
	// RulerRows is the height of the breakpoint ruler.
	RulerRows = 2

	// MenuRows is the height of the key hint strip.
	MenuRows = 1

	// ErrBoxRows is the height of the error strip.
	ErrBoxRows = 1

	// RulerHideHeight drops the ruler so the deal grid keeps its rows.
	RulerHideHeight = 20
)

// Overlay constraints
const (
	// OverlayMinWidth keeps help text readable in small windows.
	OverlayMinWidth = 40

	// OverlayMaxWidth stops the help overlay stretching on wide terminals.
	OverlayMaxWidth = 80
)

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wthomas48/smart-deals-iq-sub002/config"
	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
	"github.com/Wthomas48/smart-deals-iq-sub002/inspect"
	"github.com/Wthomas48/smart-deals-iq-sub002/keys"
	"github.com/Wthomas48/smart-deals-iq-sub002/log"
	"github.com/Wthomas48/smart-deals-iq-sub002/ui"
	"github.com/Wthomas48/smart-deals-iq-sub002/ui/layout"
	"github.com/Wthomas48/smart-deals-iq-sub002/ui/overlay"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
	"github.com/Wthomas48/smart-deals-iq-sub002/winsize"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, appConfig *config.Config, host hostenv.Flags) error {
	p := tea.NewProgram(
		newHome(ctx, appConfig, host),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the help screen is displayed.
	stateHelp
)

// Dimension provenance, shown in the info panel and recorded in snapshots.
const (
	sourceMeasured  = "measured"
	sourceSimulated = "simulated"
	sourceFallback  = "fallback"
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState remembers the last viewport between runs
	appState *config.State

	// cell is the px estimate applied to the host's cell counts
	cell winsize.CellSize

	// -- State --

	// store owns the current dimensions and fans out classification changes
	store *viewport.Store
	// source tags where the current record came from: a host report, a
	// simulation override, or the configured fallback
	source string
	// state is the current discrete state of the application
	state state
	// pendingSave indicates that a state save is queued (for debouncing)
	pendingSave bool

	// termWidth and termHeight are the host size in cells
	termWidth, termHeight int
	// layout is the chrome geometry computed from the host size
	layout layout.Constraints

	// -- UI Components --

	// infoPanel displays the resolved classification record
	infoPanel *ui.InfoPanel
	// ruler visualizes the width axis against the breakpoints
	ruler *ui.Ruler
	// grid previews the deal cards at the derived column count
	grid *ui.DealGrid
	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// textOverlay displays the help screen
	textOverlay *overlay.TextOverlay
}

func newHome(ctx context.Context, appConfig *config.Config, host hostenv.Flags) *home {
	appState := config.LoadState()

	// Seed the store with the last recorded viewport, or the configured
	// fallback on first run. The first host report replaces it.
	seed := viewport.Dimensions{Width: appConfig.FallbackWidth, Height: appConfig.FallbackHeight}
	if w, h := appState.LastViewport(); w > 0 && h > 0 {
		seed = viewport.Dimensions{Width: w, Height: h}
	}

	h := &home{
		ctx:       ctx,
		appConfig: appConfig,
		appState:  appState,
		cell:      winsize.CellSize{Width: appConfig.CellWidth, Height: appConfig.CellHeight},
		store:     viewport.NewStore(seed, host),
		source:    sourceFallback,
		state:     stateDefault,
		infoPanel: ui.NewInfoPanel(),
		ruler:     ui.NewRuler(),
		grid:      ui.NewDealGrid(),
		menu:      ui.NewMenu(),
		errBox:    ui.NewErrBox(),
	}

	// All store writes happen while handling messages, so the subscription
	// callback always runs on the update goroutine. It stays registered for
	// the life of the program.
	h.store.Subscribe(h.applyInfo)
	h.applyInfo(h.store.Info())

	return h
}

// applyInfo pushes one classification record into every component.
func (m *home) applyInfo(info viewport.Info) {
	m.infoPanel.SetInfo(info, m.source)
	m.ruler.SetWidthPx(info.Width)
	m.grid.SetInfo(info)

	log.ClassifyTrace("%s cols=%d", info, viewport.GridColumns(info.Width))

	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
			log.Warning("failed to write inspect snapshot: %v", err)
		}
	}
}

// updateHandleWindowSizeEvent sets the sizes of the components and feeds the
// measured size through the store.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.layout = layout.Compute(msg.Width, msg.Height)

	m.errBox.SetSize(m.layout.ErrBoxWidth, m.layout.ErrBoxHeight)
	m.infoPanel.SetSize(m.layout.PanelWidth, m.layout.ContentHeight)
	m.grid.SetSize(m.layout.GridWidth, m.layout.ContentHeight)
	m.ruler.SetSize(msg.Width, m.layout.RulerHeight)
	m.menu.SetSize(m.layout.MenuWidth, m.layout.MenuHeight)

	if m.textOverlay != nil {
		m.textOverlay.SetWidth(m.layout.OverlayWidth)
	}

	// The store write notifies the subscription, which re-derives every
	// component's classification inputs.
	m.source = sourceMeasured
	m.store.Set(winsize.CellDimensions(msg.Width, msg.Height, m.cell))
}

func (m *home) Init() tea.Cmd {
	// Keep the relative "last event" stamp in the info panel fresh.
	return refreshTickCmd
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case refreshTickMsg:
		return m, refreshTickCmd
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case saveDebounceMsg:
		m.pendingSave = false
		dims := m.store.Dimensions()
		// Perform the save asynchronously to avoid blocking the UI
		go func() {
			if err := m.appState.SetLastViewport(dims.Width, dims.Height); err != nil {
				log.Error("failed to save state: %v", err)
			}
		}()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, m.requestSave()
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	dims := m.store.Dimensions()
	if err := m.appState.SetLastViewport(dims.Width, dims.Height); err != nil {
		return m, m.handleError(err)
	}
	return m, tea.Quit
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state == stateHelp {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	// Get the menu highlight command - this is batched with the action command later
	highlightCmd := m.handleMenuHighlighting(msg)

	if m.state == stateHelp {
		// Any key closes the help screen.
		m.state = stateDefault
		m.textOverlay = nil
		return m, nil
	}

	// Handle quit commands first
	if msg.String() == "ctrl+c" || msg.String() == "q" {
		return m.handleQuit()
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyRefresh:
		// Ask the host for a fresh size report. The store write happens
		// when the WindowSizeMsg arrives, like any other resize.
		return m, tea.Batch(highlightCmd, tea.WindowSize())
	case keys.KeyCopy:
		data, err := json.MarshalIndent(m.snapshot(), "", "  ")
		if err != nil {
			return m, tea.Batch(highlightCmd, m.handleError(err))
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return m, tea.Batch(highlightCmd, m.handleError(err))
		}
		return m, tea.Batch(highlightCmd, m.flashMessage("snapshot copied to clipboard"))
	case keys.KeyPlatform:
		m.source = sourceSimulated
		m.store.SetHostFlags(nextHostFlags(m.store.HostFlags()))
		return m, highlightCmd
	case keys.KeyShell:
		host := m.store.HostFlags()
		host.DesktopShell = !host.DesktopShell
		m.source = sourceSimulated
		m.store.SetHostFlags(host)
		return m, highlightCmd
	case keys.KeyHelp:
		return m.showHelpScreen(highlightCmd)
	case keys.KeyQuit:
		return m.handleQuit()
	default:
		return m, nil
	}
}

// nextHostFlags returns the next simulated host family, preserving the
// shell flag: ios, android, web, none, then back to ios.
func nextHostFlags(cur hostenv.Flags) hostenv.Flags {
	next := hostenv.Flags{DesktopShell: cur.DesktopShell}
	switch {
	case cur.IOS:
		next.Android = true
	case cur.Android:
		next.Web = true
	case cur.Web:
		// No family claimed: the host resolves as unknown.
	default:
		next.IOS = true
	}
	return next
}

const helpText = `The inspector shows how the deals app classifies the current viewport.

r  re-measure the host window
c  copy a JSON snapshot to the clipboard
p  cycle the simulated platform (ios, android, web, none)
o  toggle the desktop-shell embedding
?  show this help screen
q  quit

Device class buckets the smaller viewport side at 600 and 900.
Size class buckets the width alone at 640, 1024 and 1440.
The two axes are independent and may disagree; screens pick
whichever answers their question.

Press any key to close.`

func (m *home) showHelpScreen(extra tea.Cmd) (tea.Model, tea.Cmd) {
	m.state = stateHelp
	m.textOverlay = overlay.NewTextOverlay("Viewport Inspector", helpText)
	m.textOverlay.SetWidth(m.layout.OverlayWidth)
	return m, extra
}

// snapshot assembles the full introspection record for the current state.
func (m *home) snapshot() *inspect.Snapshot {
	snap := inspect.NewSnapshot().
		WithViewport(m.store.Info(), m.store.HostFlags(), m.source).
		WithStyles().
		WithComponents(m.inspectTree())
	if err := m.errBox.Err(); err != nil {
		snap.WithError(err.Error())
	}
	return snap
}

func (m *home) inspectTree() *inspect.Node {
	return inspect.NewNode("App").
		WithBounds(0, 0, m.termWidth, m.termHeight).
		WithState("state", int(m.state)).
		WithState("source", m.source).
		AddChild(m.infoPanel.InspectNode()).
		AddChild(m.ruler.InspectNode()).
		AddChild(m.grid.InspectNode())
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// refreshTickMsg implements tea.Msg and re-renders so relative timestamps age.
type refreshTickMsg struct{}

// saveDebounceMsg is sent after a debounce delay to trigger a save
type saveDebounceMsg struct{}

// saveDebounceDelay is how long to wait before persisting after a resize
const saveDebounceDelay = 500 * time.Millisecond

var refreshTickCmd = func() tea.Msg {
	time.Sleep(time.Second)
	return refreshTickMsg{}
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.Error("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

// flashMessage shows a transient confirmation in the error strip.
func (m *home) flashMessage(message string) tea.Cmd {
	m.errBox.SetError(fmt.Errorf("%s", message))
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

// requestSave schedules a debounced save operation.
// If a save is already pending, this does nothing (the pending save will include all changes).
func (m *home) requestSave() tea.Cmd {
	if m.pendingSave {
		return nil // Already have a pending save
	}
	m.pendingSave = true
	return func() tea.Msg {
		time.Sleep(saveDebounceDelay)
		return saveDebounceMsg{}
	}
}

func (m *home) View() string {
	if m.layout.ShowMinWarning {
		warning := fmt.Sprintf("Terminal too small: %dx%d. Need at least %dx%d.",
			m.termWidth, m.termHeight, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, warning)
	}

	panelWithPadding := lipgloss.NewStyle().PaddingTop(1).Render(m.infoPanel.String())
	gridWithPadding := lipgloss.NewStyle().PaddingTop(1).Render(m.grid.String())
	content := lipgloss.JoinHorizontal(lipgloss.Top, panelWithPadding, gridWithPadding)

	rows := []string{content}
	if m.layout.ShowRuler {
		rows = append(rows, m.ruler.String())
	}
	rows = append(rows, m.menu.String(), m.errBox.String())

	mainView := lipgloss.JoinVertical(lipgloss.Center, rows...)

	if m.state == stateHelp {
		if m.textOverlay == nil {
			log.Error("text overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true)
	}

	return mainView
}

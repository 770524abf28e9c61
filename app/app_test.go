package app

import (
	"context"
	"fmt"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wthomas48/smart-deals-iq-sub002/config"
	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
	"github.com/Wthomas48/smart-deals-iq-sub002/testing/harness"
	"github.com/Wthomas48/smart-deals-iq-sub002/testing/snapshot"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// newTestHome builds a home model backed by a throwaway config dir and
// wraps it in a harness sized 130x40 cells (1040x640 px at the default
// cell estimate).
func newTestHome(t *testing.T, host hostenv.Flags) (*harness.Harness, *home) {
	t.Helper()
	t.Setenv(config.ConfigDirEnv, t.TempDir())

	model := newHome(context.Background(), config.DefaultConfig(), host)
	h := harness.New(t, model, 130, 40)

	m, ok := h.Model().(*home)
	require.True(t, ok)
	return h, m
}

func TestHomeClassifiesWindowSize(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	assert.Equal(t, viewport.Dimensions{Width: 1040, Height: 640}, m.store.Dimensions())

	info := m.store.Info()
	assert.Equal(t, viewport.PlatformWeb, info.Platform)
	assert.True(t, info.IsDesktopSize)
	assert.Equal(t, viewport.DeviceTablet, info.Device)

	out := snapshot.StripANSI(h.View())
	assert.Contains(t, out, "1040x640 px")
	assert.Contains(t, out, "measured")
	assert.Contains(t, out, "web")
}

func TestHomeResizeReclassifies(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	// 70x24 cells is 560x384 px: a phone-sized viewport.
	h.Resize(70, 24)
	info := m.store.Info()
	assert.Equal(t, viewport.DevicePhone, info.Device)
	assert.True(t, info.IsMobileSize)
	assert.Equal(t, 1, viewport.GridColumns(info.Width))

	// 200x50 cells is 1600x800 px: large desktop.
	h.Resize(200, 50)
	info = m.store.Info()
	assert.True(t, info.IsLargeDesktop)
	assert.Equal(t, 4, viewport.GridColumns(info.Width))
}

func TestHomeTinyTerminalWarning(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	h.Resize(50, 12)
	assert.True(t, m.layout.ShowMinWarning)
	assert.Contains(t, snapshot.StripANSI(h.View()), "Terminal too small")

	// Recovering restores the normal layout.
	h.Resize(130, 40)
	assert.NotContains(t, snapshot.StripANSI(h.View()), "Terminal too small")
}

func TestHomeShortTerminalDropsRuler(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	// Ruler labels are visible at full height.
	assert.Contains(t, snapshot.StripANSI(h.View()), "1440")

	h.Resize(100, 18)
	assert.False(t, m.layout.ShowRuler)
	assert.NotContains(t, snapshot.StripANSI(h.View()), "1440")
}

func TestHomePlatformCycle(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	h.SendKey("p")
	assert.Equal(t, viewport.PlatformUnknown, m.store.Info().Platform)

	h.SendKey("p")
	assert.Equal(t, viewport.PlatformIOS, m.store.Info().Platform)

	h.SendKey("p")
	assert.Equal(t, viewport.PlatformAndroid, m.store.Info().Platform)

	h.SendKey("p")
	assert.Equal(t, viewport.PlatformWeb, m.store.Info().Platform)

	// Simulated overrides are labelled as such.
	assert.Contains(t, snapshot.StripANSI(h.View()), "simulated")
}

func TestHomeShellToggle(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{IOS: true})

	// Phone-sized viewport; device classification alone says mobile.
	h.Resize(70, 24)
	require.False(t, m.store.Info().IsDesktop)

	h.SendKey("o")
	info := m.store.Info()
	assert.True(t, info.IsDesktop)
	assert.True(t, info.IsDesktopShell)
	assert.Equal(t, viewport.PlatformDesktop, info.Platform)
	// The device axis is not rewritten by the shell flag.
	assert.Equal(t, viewport.DevicePhone, info.Device)

	h.SendKey("o")
	info = m.store.Info()
	assert.False(t, info.IsDesktop)
	assert.Equal(t, viewport.PlatformIOS, info.Platform)
}

func TestHomePlatformCyclePreservesShell(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	h.SendKey("o")
	require.True(t, m.store.HostFlags().DesktopShell)

	h.SendKey("p")
	flags := m.store.HostFlags()
	assert.True(t, flags.DesktopShell)
	assert.Equal(t, viewport.PlatformDesktop, m.store.Info().Platform)
}

func TestHomeHelpScreen(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	h.SendKey("?")
	assert.Equal(t, stateHelp, m.state)
	require.NotNil(t, m.textOverlay)

	out := snapshot.StripANSI(h.View())
	assert.Contains(t, out, "Viewport Inspector")
	assert.Contains(t, out, "600 and 900")

	// Any key closes the overlay.
	h.SendKey("x")
	assert.Equal(t, stateDefault, m.state)
	assert.Nil(t, m.textOverlay)
	assert.NotContains(t, snapshot.StripANSI(h.View()), "Viewport Inspector")
}

func TestHomeQuitSavesState(t *testing.T) {
	h, _ := newTestHome(t, hostenv.Flags{Web: true})

	cmd := h.SendKey("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// The last viewport survives the restart.
	w, ht := config.LoadState().LastViewport()
	assert.Equal(t, 1040.0, w)
	assert.Equal(t, 640.0, ht)
}

func TestHomeErrorFlash(t *testing.T) {
	h, _ := newTestHome(t, hostenv.Flags{Web: true})

	cmd := h.SendMsg(fmt.Errorf("clipboard unavailable"))
	require.NotNil(t, cmd)

	assert.Contains(t, snapshot.StripANSI(h.View()), "clipboard unavailable")

	h.SendMsg(hideErrMsg{})
	assert.NotContains(t, snapshot.StripANSI(h.View()), "clipboard unavailable")
}

func TestHomeRequestSaveDebounces(t *testing.T) {
	_, m := newTestHome(t, hostenv.Flags{Web: true})

	m.pendingSave = false
	cmd := m.requestSave()
	require.NotNil(t, cmd)
	assert.True(t, m.pendingSave)

	// A second request while one is pending is a no-op.
	assert.Nil(t, m.requestSave())
}

func TestHomeMenuHighlight(t *testing.T) {
	h, _ := newTestHome(t, hostenv.Flags{Web: true})

	// The platform key returns a batch carrying the keyup timer, and the
	// keyup message clears the highlight without disturbing anything else.
	cmd := h.SendKey("p")
	require.NotNil(t, cmd)

	h.SendMsg(keyupMsg{})
	assert.Contains(t, snapshot.StripANSI(h.View()), "cycle platform")
}

func TestHomeSeedsFromSavedState(t *testing.T) {
	t.Setenv(config.ConfigDirEnv, t.TempDir())

	require.NoError(t, config.DefaultState().SetLastViewport(800, 600))

	m := newHome(context.Background(), config.DefaultConfig(), hostenv.Flags{Web: true})
	assert.Equal(t, viewport.Dimensions{Width: 800, Height: 600}, m.store.Dimensions())
	assert.Equal(t, sourceFallback, m.source)
}

func TestHomeKeySequence(t *testing.T) {
	h, m := newTestHome(t, hostenv.Flags{Web: true})

	// Cycle through every simulated family and back while toggling the
	// shell; the model must stay consistent throughout.
	harness.NewKeySequence("p", "o", "p", "p", "o", "p").Play(h)

	info := m.store.Info()
	assert.False(t, info.IsDesktopShell)
	assert.Equal(t, viewport.PlatformWeb, info.Platform)
}

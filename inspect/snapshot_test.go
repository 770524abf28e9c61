package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

func TestSnapshotWithViewport(t *testing.T) {
	host := hostenv.Flags{Web: true}
	info := viewport.Resolve(viewport.Dimensions{Width: 1280, Height: 800}, host)

	snap := NewSnapshot().WithViewport(info, host, "measured")

	assert.Equal(t, 1280.0, snap.Viewport.Width)
	assert.Equal(t, "measured", snap.Viewport.Source)
	assert.Equal(t, info, snap.Classification)

	assert.Equal(t, 3, snap.Grid.Columns)
	assert.True(t, snap.Grid.ShowSidebar)
	assert.Equal(t, 1.25, snap.Grid.FontScale)
	assert.Equal(t, 16.0, snap.Grid.SpacingUnit)

	require.Len(t, snap.Breakpoints, 5)
	active := map[string]bool{}
	for _, bp := range snap.Breakpoints {
		active[bp.Name] = bp.Active
	}
	assert.True(t, active["tablet_size"])
	assert.True(t, active["desktop_size"])
	assert.False(t, active["large_desktop"])
	assert.True(t, active["tablet_device"], "min side 800 crosses the tablet threshold")
	assert.False(t, active["desktop_device"])
}

func TestSnapshotToText(t *testing.T) {
	host := hostenv.Flags{IOS: true}
	info := viewport.Resolve(viewport.Dimensions{Width: 390, Height: 844}, host)

	root := NewNode("InfoPanel").WithBounds(0, 0, 48, 20)
	root.AddChild(NewNode("DealCard").WithID("deal-1").WithTruncation(42, 20, true))

	text := NewSnapshot().
		WithViewport(info, host, "simulated").
		WithComponents(root).
		WithError("clipboard unavailable").
		ToText()

	assert.Contains(t, text, "Viewport: 390x844 px (simulated)")
	assert.Contains(t, text, "Platform: ios")
	assert.Contains(t, text, "Device: phone")
	assert.Contains(t, text, "Columns: 1")
	assert.Contains(t, text, "[ ] tablet_size")
	assert.Contains(t, text, "Error: clipboard unavailable")
	assert.Contains(t, text, "InfoPanel")
	assert.Contains(t, text, "DealCard [deal-1]")
	assert.Contains(t, text, "TRUNCATED(42->20)")
}

func TestNodeChaining(t *testing.T) {
	node := NewNode("DealGrid").
		WithID("grid").
		WithBounds(0, 2, 120, 30).
		WithState("columns", 3).
		WithContent("18 deals")

	assert.Equal(t, "DealGrid", node.Type)
	assert.Equal(t, 120, node.Bounds.Width)
	assert.Equal(t, 3, node.State["columns"])
	assert.True(t, node.Visible)
	assert.Nil(t, node.Truncated)
}

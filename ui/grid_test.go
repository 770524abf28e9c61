package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
	"github.com/Wthomas48/smart-deals-iq-sub002/testing/snapshot"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

func gridInfo(width float64) viewport.Info {
	return viewport.Resolve(viewport.Dimensions{Width: width, Height: 900}, hostenv.Flags{Web: true})
}

func TestDealGridColumns(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		columns int
	}{
		{"mobile single column", 375, 1},
		{"tablet two columns", 800, 2},
		{"desktop three columns", 1280, 3},
		{"large desktop four columns", 1600, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewDealGrid()
			grid.SetSize(160, 40)
			grid.SetInfo(gridInfo(tt.width))

			assert.Equal(t, tt.columns, grid.layout().columns)
		})
	}
}

func TestDealGridSidebar(t *testing.T) {
	grid := NewDealGrid()
	grid.SetSize(120, 40)

	// Desktop size shows the vendor sidebar.
	grid.SetInfo(gridInfo(1280))
	snapshot.New(t).AssertContains(grid.String(), "Vendors")

	// Mobile size hides it.
	grid.SetInfo(gridInfo(375))
	snapshot.New(t).AssertNotContains(grid.String(), "Vendors")
}

func TestDealGridRendersCards(t *testing.T) {
	grid := NewDealGrid()
	grid.SetSize(120, 40)
	grid.SetInfo(gridInfo(375))

	out := snapshot.StripANSI(grid.String())

	// Single column shows two rows of one card each.
	assert.Contains(t, out, "Espresso machine with grinder")
	assert.Contains(t, out, "Noise cancelling headphones")
	assert.NotContains(t, out, "Robot vacuum")
	assert.Contains(t, out, "-37%")
	assert.Contains(t, out, "KitchenHub · $189")
}

func TestDealGridTooSmall(t *testing.T) {
	grid := NewDealGrid()
	grid.SetInfo(gridInfo(1280))
	grid.SetSize(0, 0)

	snapshot.New(t).AssertContains(grid.String(), "too small")
}

func TestDealGridVisibleDeals(t *testing.T) {
	grid := NewDealGrid()

	assert.Len(t, grid.visibleDeals(1), 2)
	assert.Len(t, grid.visibleDeals(3), 6)
	// Capped at the fixture count.
	assert.Len(t, grid.visibleDeals(4), 8)
	assert.Len(t, grid.visibleDeals(5), 8)
}

func TestTruncateTitle(t *testing.T) {
	title, truncated := truncateTitle("Espresso machine with grinder", 12)
	assert.True(t, truncated)
	assert.LessOrEqual(t, len([]rune(title)), 12)
	assert.Contains(t, title, "...")

	title, truncated = truncateTitle("4K stick", 20)
	assert.False(t, truncated)
	assert.Equal(t, "4K stick", title)
}

func TestDealGridInspectNode(t *testing.T) {
	grid := NewDealGrid()
	grid.SetSize(90, 40)
	grid.SetInfo(gridInfo(1280))

	node := grid.InspectNode()
	require.NotNil(t, node)

	assert.Equal(t, "DealGrid", node.Type)
	assert.Equal(t, 3, node.State["columns"])
	assert.Equal(t, true, node.State["sidebar"])
	require.Len(t, node.Children, 6)

	first := node.Children[0]
	assert.Equal(t, "DealCard", first.Type)
	assert.Equal(t, "deal-1", first.ID)
	assert.Equal(t, "KitchenHub", first.State["vendor"])

	// The narrow cards at this size cut the long fixture titles, and the
	// cut is reported so tooling can flag it.
	require.NotNil(t, first.Truncated)
	assert.True(t, first.Truncated.Ellipsis)
	assert.Less(t, first.Truncated.DisplayLength, first.Truncated.OriginalLength)
}

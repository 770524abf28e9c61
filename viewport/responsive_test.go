package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByBreakpoint(t *testing.T) {
	mobile := ClassifyWidth(375)
	tablet := ClassifyWidth(800)
	desktop := ClassifyWidth(1280)
	large := ClassifyWidth(1600)

	assert.Equal(t, "m", ByBreakpoint(mobile, "m", "t", "d"))
	assert.Equal(t, "t", ByBreakpoint(tablet, "m", "t", "d"))
	assert.Equal(t, "d", ByBreakpoint(desktop, "m", "t", "d"))
	assert.Equal(t, "d", ByBreakpoint(large, "m", "t", "d"), "large desktop selects the desktop value")

	// Zero value selects desktop, the default branch.
	assert.Equal(t, "d", ByBreakpoint(Breakpoints{}, "m", "t", "d"))

	// Works for any value type.
	assert.Equal(t, 2, ByBreakpoint(tablet, 1, 2, 3))
}

func TestFontScale(t *testing.T) {
	assert.Equal(t, FontScaleMobile, FontScale(ClassifyWidth(375)))
	assert.Equal(t, FontScaleTablet, FontScale(ClassifyWidth(800)))
	assert.Equal(t, FontScaleDesktop, FontScale(ClassifyWidth(1280)))
	assert.Equal(t, FontScaleDesktop, FontScale(ClassifyWidth(1920)))
}

func TestSpacingUnit(t *testing.T) {
	assert.Equal(t, SpacingUnitMobile, SpacingUnit(ClassifyWidth(375)))
	assert.Equal(t, SpacingUnitTablet, SpacingUnit(ClassifyWidth(800)))
	assert.Equal(t, SpacingUnitDesktop, SpacingUnit(ClassifyWidth(1280)))
}

func TestShowSidebar(t *testing.T) {
	assert.False(t, ShowSidebar(ClassifyWidth(375)))
	assert.False(t, ShowSidebar(ClassifyWidth(1023)), "sidebar stays hidden through tablet sizes")
	assert.True(t, ShowSidebar(ClassifyWidth(1024)))
	assert.True(t, ShowSidebar(ClassifyWidth(1920)))
}

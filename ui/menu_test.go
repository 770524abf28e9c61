package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wthomas48/smart-deals-iq-sub002/keys"
	"github.com/Wthomas48/smart-deals-iq-sub002/testing/snapshot"
)

func TestMenuShowsAllBindings(t *testing.T) {
	menu := NewMenu()
	menu.SetSize(120, 1)

	out := snapshot.StripANSI(menu.String())

	for _, desc := range []string{"re-measure", "copy snapshot", "cycle platform", "toggle shell", "help", "quit"} {
		assert.Contains(t, out, desc)
	}
}

func TestMenuGroupSeparators(t *testing.T) {
	menu := NewMenu()
	menu.SetSize(120, 1)

	out := snapshot.StripANSI(menu.String())

	// Two group boundaries, one plain separator inside each group, and no
	// trailing separator after the last option.
	assert.Equal(t, 2, strings.Count(out, "│"))
	assert.Equal(t, 3, strings.Count(out, "•"))
	assert.False(t, strings.HasSuffix(strings.TrimRight(out, " \n"), "•"))
}

func TestMenuKeydown(t *testing.T) {
	menu := NewMenu()
	menu.SetSize(120, 1)

	menu.Keydown(keys.KeyPlatform)
	assert.Equal(t, keys.KeyPlatform, menu.keyDown)

	menu.ClearKeydown()
	assert.Equal(t, keys.KeyName(-1), menu.keyDown)
}

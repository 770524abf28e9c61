package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wthomas48/smart-deals-iq-sub002/testing/snapshot"
)

func TestErrBoxDisplaysError(t *testing.T) {
	box := NewErrBox()
	box.SetSize(60, 1)

	box.SetError(errors.New("clipboard write failed"))
	assert.Contains(t, snapshot.StripANSI(box.String()), "clipboard write failed")
	assert.Error(t, box.Err())

	box.Clear()
	assert.Equal(t, "", strings.TrimSpace(snapshot.StripANSI(box.String())))
	assert.NoError(t, box.Err())
}

func TestErrBoxTruncatesLongErrors(t *testing.T) {
	box := NewErrBox()
	box.SetSize(20, 1)
	box.SetError(errors.New("a very long error message that cannot possibly fit in the strip"))

	out := snapshot.StripANSI(box.String())
	assert.LessOrEqual(t, snapshot.Width(out), 20)
	assert.Contains(t, out, "...")
}

func TestErrBoxNilErrorClears(t *testing.T) {
	box := NewErrBox()
	box.SetError(errors.New("boom"))
	box.SetError(nil)
	assert.NoError(t, box.Err())
}

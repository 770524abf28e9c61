package hostenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobile(t *testing.T) {
	assert.False(t, Flags{}.Mobile())
	assert.True(t, Flags{IOS: true}.Mobile())
	assert.True(t, Flags{Android: true}.Mobile())
	assert.False(t, Flags{Web: true}.Mobile())
	assert.False(t, Flags{DesktopShell: true}.Mobile(), "the shell is an embedding, not a mobile OS")
}

func TestDetectOnce(t *testing.T) {
	// Detect resolves exactly once; later environment changes are ignored.
	t.Setenv(DesktopShellEnv, "1")
	first := Detect()
	assert.True(t, first.DesktopShell)

	t.Setenv(DesktopShellEnv, "")
	assert.Equal(t, first, Detect(), "second call returns the cached record")
}

func TestDetectOSFamily(t *testing.T) {
	// Test binaries build without the ios/android/js tags, so detection
	// claims no OS family.
	got := Detect()
	assert.False(t, got.IOS)
	assert.False(t, got.Android)
	assert.False(t, got.Web)
}

// Package hostenv resolves the host environment the app is running in:
// which native OS family (if any), whether the process is embedded in the
// desktop-shell wrapper, and whether it is a web host. The native family
// comes from build tags; the desktop-shell embedding is an injected
// capability flag read from the environment.
//
// Flags are resolved once at startup by the platform-integration layer and
// passed down. The classifier never probes the environment itself.
package hostenv

import (
	"os"
	"sync"
)

// DesktopShellEnv marks the desktop-shell embedding when set to "1". The
// shell wrapper injects it before launching the app; nothing else should.
const DesktopShellEnv = "SDIQ_DESKTOP_SHELL"

// Flags is the host capability record. At most one of IOS/Android/Web is
// set by detection; DesktopShell can combine with any of them and wins the
// platform resolution when it does.
type Flags struct {
	DesktopShell bool `json:"desktop_shell"`
	IOS          bool `json:"ios"`
	Android      bool `json:"android"`
	Web          bool `json:"web"`
}

// Mobile reports whether the host is a native mobile OS family.
func (f Flags) Mobile() bool {
	return f.IOS || f.Android
}

var (
	detectOnce sync.Once
	detected   Flags
)

// Detect resolves the host flags once and returns the same record on every
// subsequent call. The OS family comes from the build-tagged hostFlags value
// for this binary; the desktop-shell flag from the environment.
func Detect() Flags {
	detectOnce.Do(func() {
		detected = hostFlags
		detected.DesktopShell = os.Getenv(DesktopShellEnv) == "1"
	})
	return detected
}

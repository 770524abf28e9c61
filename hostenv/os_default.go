//go:build !ios && !android && !js

package hostenv

// hostFlags claims no OS family on plain desktop builds. Unless the
// desktop-shell flag is injected, such a host resolves to platform unknown.
var hostFlags = Flags{}

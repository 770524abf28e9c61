//go:build android

package hostenv

// hostFlags is the detected OS family for Android builds.
var hostFlags = Flags{Android: true}

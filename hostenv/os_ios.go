//go:build ios

package hostenv

// hostFlags is the detected OS family for iOS builds.
var hostFlags = Flags{IOS: true}

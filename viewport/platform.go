package viewport

import "github.com/Wthomas48/smart-deals-iq-sub002/hostenv"

// Platform identifies the runtime host family.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
	PlatformDesktop Platform = "desktop"
	PlatformUnknown Platform = "unknown"
)

// ResolvePlatform maps host flags onto a single platform, first match wins:
// a desktop-shell embedding beats the native OS family, native beats web,
// and a host that claims nothing is unknown.
func ResolvePlatform(host hostenv.Flags) Platform {
	switch {
	case host.DesktopShell:
		return PlatformDesktop
	case host.IOS:
		return PlatformIOS
	case host.Android:
		return PlatformAndroid
	case host.Web:
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

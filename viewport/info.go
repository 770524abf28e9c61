package viewport

import (
	"fmt"

	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
)

// Info is the classification snapshot the screens lay themselves out by.
// It is an immutable value recomputed from the current dimensions on every
// read; nothing caches one across dimension changes.
//
// The form-factor flags (IsMobile/IsTablet/IsDesktop) follow the device
// class, which buckets the smaller viewport side at 600/900. The size flags
// (IsMobileSize/IsTabletSize/IsDesktopSize/IsLargeDesktop) bucket the width
// alone at 640/1024/1440. The two axes can disagree (a 700x2000 window is
// device tablet but tablet-size only by accident of width) and they are
// reported independently, never reconciled.
type Info struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Platform Platform    `json:"platform"`
	Device   DeviceClass `json:"device"`

	// IsDesktop is device-size desktop OR a desktop-shell embedding; the
	// shell flag forces it regardless of measured size.
	IsDesktop bool `json:"is_desktop"`
	IsMobile  bool `json:"is_mobile"`
	IsTablet  bool `json:"is_tablet"`

	// IsDesktopShell reports the embedding itself; IsWeb/IsIOS/IsAndroid
	// mirror the resolved Platform field, so a shell-embedded iOS host
	// reports IsDesktopShell and not IsIOS.
	IsDesktopShell bool `json:"is_desktop_shell"`
	IsWeb          bool `json:"is_web"`
	IsIOS          bool `json:"is_ios"`
	IsAndroid      bool `json:"is_android"`

	// IsLandscape is strict: a square viewport is portrait.
	IsLandscape bool `json:"is_landscape"`

	IsMobileSize   bool `json:"is_mobile_size"`
	IsTabletSize   bool `json:"is_tablet_size"`
	IsDesktopSize  bool `json:"is_desktop_size"`
	IsLargeDesktop bool `json:"is_large_desktop"`
}

// Resolve derives the full classification for one dimension pair and one set
// of host flags. Pure: no I/O, no clock, no shared state. Dimensions are
// canonicalized first, so malformed input degrades to a 0-sized viewport
// rather than propagating NaN through the flags.
func Resolve(dims Dimensions, host hostenv.Flags) Info {
	d := dims.Canonical()
	device := ClassifyDevice(d.Width, d.Height)
	bp := ClassifyWidth(d.Width)
	platform := ResolvePlatform(host)

	return Info{
		Width:  d.Width,
		Height: d.Height,

		Platform: platform,
		Device:   device,

		IsDesktop: device == DeviceDesktop || host.DesktopShell,
		IsMobile:  device == DevicePhone,
		IsTablet:  device == DeviceTablet,

		IsDesktopShell: host.DesktopShell,
		IsWeb:          platform == PlatformWeb,
		IsIOS:          platform == PlatformIOS,
		IsAndroid:      platform == PlatformAndroid,

		IsLandscape: d.Landscape(),

		IsMobileSize:   bp.MobileSize,
		IsTabletSize:   bp.TabletSize,
		IsDesktopSize:  bp.DesktopSize,
		IsLargeDesktop: bp.LargeDesktop,
	}
}

// Dimensions returns the pair the Info was computed from.
func (i Info) Dimensions() Dimensions {
	return Dimensions{Width: i.Width, Height: i.Height}
}

// Breakpoints reassembles the width-bucket flags for the responsive helpers.
func (i Info) Breakpoints() Breakpoints {
	return Breakpoints{
		MobileSize:   i.IsMobileSize,
		TabletSize:   i.IsTabletSize,
		DesktopSize:  i.IsDesktopSize,
		LargeDesktop: i.IsLargeDesktop,
	}
}

// SizeClass returns the width bucket as an enum.
func (i Info) SizeClass() SizeClass {
	return i.Breakpoints().SizeClass()
}

// Orientation returns "landscape" or "portrait" for display.
func (i Info) Orientation() string {
	if i.IsLandscape {
		return "landscape"
	}
	return "portrait"
}

func (i Info) String() string {
	return fmt.Sprintf("%gx%g %s/%s %s", i.Width, i.Height, i.Platform, i.Device, i.Orientation())
}

package viewport

// Device thresholds, applied to the smaller viewport side. A tall narrow
// window on a large monitor still classifies by its narrow side, which is
// what the deal screens care about when choosing a phone or tablet layout.
const (
	// TabletMinSide is the smallest min-dimension classified as a tablet.
	TabletMinSide = 600.0

	// DesktopMinSide is the smallest min-dimension classified as a desktop.
	DesktopMinSide = 900.0
)

// DeviceClass is the form-factor classification derived from the smaller of
// width and height.
type DeviceClass int

const (
	// DevicePhone is any viewport whose smaller side is below 600dp.
	DevicePhone DeviceClass = iota

	// DeviceTablet covers smaller sides in [600, 900).
	DeviceTablet

	// DeviceDesktop covers smaller sides of 900dp and up.
	DeviceDesktop
)

// String returns the lower-case name of the device class.
func (c DeviceClass) String() string {
	switch c {
	case DevicePhone:
		return "phone"
	case DeviceTablet:
		return "tablet"
	case DeviceDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so classification records
// serialize with readable class names instead of enum ordinals.
func (c DeviceClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ClassifyDevice buckets a dimension pair by its smaller side. Exactly one
// class is returned for every pair of non-negative inputs. Callers are
// expected to hand in canonical dimensions; a NaN or negative side
// classifies as phone.
func ClassifyDevice(width, height float64) DeviceClass {
	minSide := Dimensions{Width: width, Height: height}.MinSide()

	switch {
	case minSide >= DesktopMinSide:
		return DeviceDesktop
	case minSide >= TabletMinSide:
		return DeviceTablet
	default:
		return DevicePhone
	}
}

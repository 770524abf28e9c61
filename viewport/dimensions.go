// Package viewport classifies measured window dimensions into the device,
// size and platform categories the Smart Deals IQ screens lay themselves out
// by. All classification is pure derivation: the only state in the package is
// the Store, which owns the current dimension pair and fans change events out
// to subscribers.
package viewport

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension reports a negative or non-finite width/height.
var ErrInvalidDimension = errors.New("invalid viewport dimension")

// Dimensions is a measured window size in device-independent pixels.
// Values are updated externally whenever the host reports a resize or
// rotation; each delivered pair fully supersedes the previous one.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Canonical maps malformed measurements onto the valid range. NaN, infinite
// and negative components become 0; well-formed values pass through
// unchanged. This is the clamping policy applied on every Store write, so
// downstream derivations only ever see finite, non-negative dimensions.
func (d Dimensions) Canonical() Dimensions {
	return Dimensions{
		Width:  canonicalSide(d.Width),
		Height: canonicalSide(d.Height),
	}
}

func canonicalSide(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Validate returns ErrInvalidDimension if either component is negative or
// non-finite. Callers that prefer rejection over clamping check this before
// handing dimensions to a Store.
func (d Dimensions) Validate() error {
	if math.IsNaN(d.Width) || math.IsInf(d.Width, 0) || d.Width < 0 {
		return fmt.Errorf("width %v: %w", d.Width, ErrInvalidDimension)
	}
	if math.IsNaN(d.Height) || math.IsInf(d.Height, 0) || d.Height < 0 {
		return fmt.Errorf("height %v: %w", d.Height, ErrInvalidDimension)
	}
	return nil
}

// MinSide returns the smaller of width and height, the measure device
// classification is based on.
func (d Dimensions) MinSide() float64 {
	return math.Min(d.Width, d.Height)
}

// Landscape reports whether width strictly exceeds height. A square viewport
// is not landscape.
func (d Dimensions) Landscape() bool {
	return d.Width > d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%g", d.Width, d.Height)
}

// Package winsize turns the hosting terminal into a dimension-change event
// source. It measures the window in device-independent pixels, exact where
// the terminal reports pixel geometry and estimated from the cell count
// everywhere else, and publishes one store write per host resize event.
//
// The bubbletea inspector does not use this package; inside bubbletea the
// host windowing callback is tea.WindowSizeMsg. winsize serves the plain
// CLI commands and non-bubbletea embedders.
package winsize

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/Wthomas48/smart-deals-iq-sub002/log"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// CellSize is the pixel estimate for one terminal cell, used when the
// terminal does not report pixel geometry. The defaults match a common
// 8x16 px monospace glyph box.
type CellSize struct {
	Width  float64
	Height float64
}

// DefaultCellSize is used wherever a CellSize component is zero or negative.
var DefaultCellSize = CellSize{Width: 8, Height: 16}

func (c CellSize) orDefault() CellSize {
	if c.Width <= 0 {
		c.Width = DefaultCellSize.Width
	}
	if c.Height <= 0 {
		c.Height = DefaultCellSize.Height
	}
	return c
}

// CellDimensions converts a host cell count into estimated pixel dimensions.
// Bubbletea consumers use this to feed tea.WindowSizeMsg values through the
// same estimate the CLI commands use.
func CellDimensions(cols, rows int, cell CellSize) viewport.Dimensions {
	cell = cell.orDefault()
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return viewport.Dimensions{
		Width:  float64(cols) * cell.Width,
		Height: float64(rows) * cell.Height,
	}
}

// Measure samples the controlling terminal once.
func Measure(cell CellSize) (viewport.Dimensions, error) {
	return measure(os.Stdin, cell.orDefault())
}

// ErrStarted is returned by Start when the source already has an active
// registration.
var ErrStarted = errors.New("winsize: source already started")

// Source watches the terminal for size changes and publishes each new
// measurement into a viewport.Store. At most one registration is active per
// source; cancelling the Start context releases it.
type Source struct {
	store *viewport.Store
	cell  CellSize
	tty   *os.File

	mu      sync.Mutex
	started bool
}

// NewSource creates a source publishing into store, measuring the process's
// controlling terminal.
func NewSource(store *viewport.Store, cell CellSize) *Source {
	return &Source{
		store: store,
		cell:  cell.orDefault(),
		tty:   os.Stdin,
	}
}

// Start launches the watch goroutine. The goroutine publishes an initial
// measurement immediately, then once per host resize event until ctx is
// cancelled. A second Start on the same source returns ErrStarted.
func (s *Source) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrStarted
	}
	s.started = true

	go s.run(ctx)
	return nil
}

// deliver records one host event and writes it through. Every delivered
// event becomes exactly one store write; suppression, if any, happens at
// the host-event layer, never here.
func (s *Source) deliver(reason string, dims viewport.Dimensions) {
	log.GetEventCounter().Record(reason)
	log.EventTrace("%s %gx%g", reason, dims.Width, dims.Height)
	s.store.Set(dims)
}

// publish measures the terminal and delivers the result. Measurement
// failures are logged and skipped; the store keeps its previous value.
func (s *Source) publish(reason string) {
	dims, err := measure(s.tty, s.cell)
	if err != nil {
		log.Warning("could not measure terminal: %v", err)
		return
	}
	s.deliver(reason, dims)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/uibridge"
)

// ErrOutdated is returned by Surface.Acquire when the swapchain no longer
// matches the window and must be reconfigured.
var ErrOutdated = errors.New("surface: outdated")

// Config is the geometry a surface is configured for.
type Config struct {
	Width  int     // physical pixels
	Height int     // physical pixels
	Scale  float64 // physical pixels per logical point
}

// ConfigFor returns the configuration matching vp.
func ConfigFor(vp uibridge.Viewport) Config {
	return Config{
		Width:  vp.PhysicalWidth,
		Height: vp.PhysicalHeight,
		Scale:  vp.PixelsPerPoint(),
	}
}

// Viewport returns the viewport c was derived from.
func (c Config) Viewport() uibridge.Viewport {
	return uibridge.NewViewport(c.Width, c.Height, c.Scale)
}

// CanvasSize returns the logical size of a gg context covering c.
func (c Config) CanvasSize() (width, height int) {
	return c.Viewport().CanvasSize()
}

// Options configure backend construction.
type Options struct {
	// PresentMode selects vsync behavior for backends that own a swapchain.
	// Zero means FIFO.
	PresentMode gputypes.PresentMode

	// PowerPreference selects between integrated and discrete adapters.
	PowerPreference gputypes.PowerPreference

	// ForceSoftware requests a software (fallback) adapter.
	ForceSoftware bool

	// Probe, when set, validates native window handles before a surface
	// is created for them.
	Probe HandleProbe
}

// HandleProbe checks that native window handles refer to a live window.
type HandleProbe interface {
	// Probe returns the window's size in physical pixels.
	Probe(display, window uintptr) (width, height int, err error)
}

// Backend creates surfaces for windows. A backend owns whatever GPU
// device its surfaces share.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string

	// CreateSurface creates a surface for win configured to cfg.
	CreateSurface(win Window, cfg Config) (Surface, error)

	// Close releases the backend's device. Surfaces must be released first.
	Close() error
}

// Surface is a drawable target bound to one window.
type Surface interface {
	// Configure resizes or rescales the surface.
	Configure(win Window, cfg Config) error

	// Acquire returns the target for the next frame. It returns an error
	// matching ErrOutdated or uibridge.ErrSurfaceLost when the surface
	// must be configured again.
	Acquire(win Window) (Target, error)

	// Present shows the frame drawn into t.
	Present(win Window, t Target) error

	// Release frees the surface's GPU resources. Idempotent.
	Release()
}

// Target is one frame's drawing destination.
type Target interface {
	// Context returns the gg context to draw into, sized in logical points
	// with the surface scale as device scale.
	Context() *gg.Context

	// Size returns the target size in physical pixels.
	Size() (width, height int)
}

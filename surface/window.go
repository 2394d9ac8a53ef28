// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// Window is a host window borrowed for the duration of one call.
//
// Implementations must not be retained by backends beyond the call that
// received them; the host may destroy the window between cycles.
type Window interface {
	// Size returns the drawable size in physical pixels.
	Size() (width, height int)

	// ScaleFactor returns physical pixels per logical point.
	ScaleFactor() float64

	// Valid reports whether the window still exists.
	Valid() bool
}

// NativeWindow is a window that exposes platform handles, used by backends
// that create their own swapchain.
type NativeWindow interface {
	Window

	// NativeHandles returns the platform display connection and window
	// handle (X11 Display*/Window, Wayland wl_display/wl_surface, or
	// 0/HWND on Windows, 0/CAMetalLayer on macOS).
	NativeHandles() (display, window uintptr)
}

// HostedWindow is a window whose host already owns a GPU device and
// swapchain, as gogpu applications do.
type HostedWindow interface {
	Window

	// DeviceProvider returns the host's GPU device.
	DeviceProvider() gpucontext.DeviceProvider

	// RenderTarget returns the host's target for the current draw.
	// It is only valid inside the host's draw callback.
	RenderTarget() ggcanvas.RenderTarget
}

// ProviderWindow adapts a gpucontext.WindowProvider, which reports its size
// in logical points, to a Window.
type ProviderWindow struct {
	gpucontext.WindowProvider
}

// Size returns the provider's size converted to physical pixels.
func (w ProviderWindow) Size() (width, height int) {
	lw, lh := w.WindowProvider.Size()
	s := w.ScaleFactor()
	return int(math.Round(float64(lw) * s)), int(math.Round(float64(lh) * s))
}

// ScaleFactor returns the provider's scale, or 1 when it reports none.
func (w ProviderWindow) ScaleFactor() float64 {
	if s := w.WindowProvider.ScaleFactor(); s > 0 {
		return s
	}
	return 1
}

// Valid reports whether a provider is set.
func (w ProviderWindow) Valid() bool {
	return w.WindowProvider != nil
}

func windowValid(win Window) bool {
	return win != nil && win.Valid()
}

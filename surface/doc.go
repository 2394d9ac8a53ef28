// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface binds a host window to a drawable GPU target.
//
// The host owns the window. This package only borrows it for the duration
// of a call, asks a [Backend] for a [Surface] sized to the current viewport,
// and hands out one [Target] per frame to draw into.
//
// # Binder
//
// [Binder] drives the surface lifecycle:
//
//	b := surface.NewBinder(backend)
//	defer b.Dispose()
//
//	if err := b.EnsureSurface(win, vp); err != nil {
//	    return // skip this cycle, try again on the next one
//	}
//	t, err := b.AcquireFrame(win)
//	if err != nil {
//	    return
//	}
//	draw(t.Context())
//	b.Present(win, t)
//
// EnsureSurface is idempotent: it creates the surface on first use and
// reconfigures it only when the viewport changed or the previous present
// failed. AcquireFrame refuses to hand out a target for a surface that went
// stale, so a frame is never drawn at the wrong size.
//
// # Backends
//
// Backends live in subpackages and register themselves with the registry
// on import, the same way database/sql drivers do:
//
//	import _ "github.com/gogpu/uibridge/surface/wgpusurface"
//
//	backend, err := surface.NewBestBackend(surface.Options{})
//
// Backends with priority zero or below are only selected by name.
//
//   - wgpusurface (100): native window handles, wgpu swapchain, GPU raster
//   - hosted (50): host-owned swapchain via gpucontext, ggcanvas upload
//   - offscreen (0): image-backed, for tests and headless replay
package surface

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package uibridge renders an immediate-mode UI onto a window that belongs to
// someone else.
//
// # Overview
//
// The host runtime (for example a gogpu application) owns the window, the
// event loop and the decision of when to redraw. uibridge sits between that
// host, an immediate-mode UI library, and a GPU drawing backend:
//
//	host events  -> input.Translator -> frame.Manager -> UI.Run(snapshot)
//	host redraw  -> adapter.RunOneCycle -> surface.Binder -> paint -> present
//
// The adapter owns no window, no goroutine and no timer. Every entry point is
// called from the host's callback thread and returns before the host continues.
//
// # Packages
//
//   - uibridge (this package): Viewport, geometry, error taxonomy, logger
//   - input: host event and neutral event models, translation, gpucontext binding
//   - frame: input accumulation, frame snapshots, frame output
//   - paint: texture store and rasterization of frame output with gg
//   - surface: presentation surface lifecycle and backend registry
//   - adapter: the per-redraw render cycle and its state machine
//   - config: YAML configuration
//
// # Coordinate System
//
// Hosts report pixels. Everything handed to the UI is in logical points:
// physical pixels divided by the window scale factor. Origin is top-left,
// X grows right, Y grows down.
//
// # Errors
//
// Surface failures are expected during resize drags and window teardown.
// They are reported as [ErrSurfaceCreation] or [ErrSurfaceLost] and the
// adapter degrades them to a skipped frame. Only [ErrNoDevice] at setup is
// fatal.
package uibridge

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package adapter runs an immediate-mode UI on a host-owned window.
//
// The host forwards its events with HandleEvent and calls RunOneCycle from
// its redraw callback. Each cycle makes sure the surface matches the window,
// asks the UI for one frame, rasterizes the frame into the surface and
// presents it:
//
//	a, err := adapter.NewAuto(ui, surface.Options{}, adapter.WithHost(app))
//	if err != nil {
//	    log.Fatal(err) // no GPU device
//	}
//	defer a.Close()
//
//	a.Bind(app.EventSource())
//	app.OnDraw(func() {
//	    a.RunOneCycle(window)
//	})
//
// Surface failures never escape a cycle. A cycle that cannot draw is
// reported in its Result, forwarded to a host implementing FailureReporter,
// and followed by a repaint request so the host tries again.
//
// The adapter starts no goroutines and sets no timers. Delayed repaints are
// only honored when the host implements RedrawScheduler.
package adapter

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adapter

import (
	"time"

	"github.com/gogpu/uibridge/frame"
)

// UI is the immediate-mode UI library. Run builds one frame from the
// snapshot and returns what to draw. A nil output draws nothing.
type UI interface {
	Run(s *frame.Snapshot) *frame.Output
}

// UIFunc adapts a function to the UI interface.
type UIFunc func(s *frame.Snapshot) *frame.Output

// Run calls f(s).
func (f UIFunc) Run(s *frame.Snapshot) *frame.Output {
	return f(s)
}

// The host value given to WithHost may implement any of the interfaces
// below. gpucontext.PlatformProvider covers the cursor and clipboard,
// gpucontext.WindowProvider covers redraw requests.
type (
	// CursorSetter changes the mouse cursor.
	CursorSetter = frame.CursorSetter

	// ClipboardWriter receives text the UI copied.
	ClipboardWriter = frame.ClipboardWriter

	// RedrawRequester schedules a redraw as soon as possible.
	RedrawRequester interface {
		RequestRedraw()
	}

	// RedrawScheduler schedules a redraw after a delay.
	RedrawScheduler interface {
		ScheduleRedraw(after time.Duration)
	}

	// FailureReporter is told about cycles skipped because of surface
	// failures.
	FailureReporter interface {
		ReportSurfaceError(err error)
	}
)

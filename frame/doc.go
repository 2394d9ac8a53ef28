// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame manages UI input state between frames and defines what a
// frame consumes ([Snapshot]) and produces ([Output]).
//
// A frame is bracketed by [Manager.BeginFrame] and [Manager.EndFrame]:
//
//	snap := m.BeginFrame()   // drains pending events
//	out := ui.Run(snap)
//	repaint := m.EndFrame(out)
//
// Pointer position, held buttons and keys, modifiers and focus carry over
// from frame to frame. Events do not: each event appears in exactly one
// snapshot, in the order it was ingested.
package frame

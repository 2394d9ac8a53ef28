// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"slices"
	"time"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/input"
)

// Snapshot is the input for exactly one UI frame.
//
// A Snapshot owns its slices; the manager never touches them after
// BeginFrame returns, so the UI may keep or modify them freely.
type Snapshot struct {
	Frame uint64        // 1 for the first frame
	Time  time.Duration // since the manager was created
	Delta time.Duration // since the previous frame, zero on the first

	Viewport uibridge.Viewport

	Pointer    uibridge.Pos2
	HasPointer bool
	Buttons    [input.NumButtons]bool
	Keys       []input.KeyName // sorted
	Modifiers  input.Modifiers
	Focused    bool

	// Events are all events ingested since the previous frame, in order.
	Events []input.Event
}

// ScreenRect returns the window area in logical points.
func (s *Snapshot) ScreenRect() uibridge.Rect {
	return s.Viewport.LogicalRect()
}

// PixelsPerPoint returns the viewport scale factor.
func (s *Snapshot) PixelsPerPoint() float64 {
	return s.Viewport.PixelsPerPoint()
}

// IsButtonDown reports whether b is held.
func (s *Snapshot) IsButtonDown(b input.Button) bool {
	return int(b) < len(s.Buttons) && s.Buttons[b]
}

// IsKeyDown reports whether k is held.
func (s *Snapshot) IsKeyDown(k input.KeyName) bool {
	_, found := slices.BinarySearch(s.Keys, k)
	return found
}

// Discrete returns the discrete events (clicks, keys, text, scroll, IME).
func (s *Snapshot) Discrete() []input.Event {
	var out []input.Event
	for _, e := range s.Events {
		if input.IsDiscrete(e) {
			out = append(out, e)
		}
	}
	return out
}

// Clicks returns the primary button releases, which is what most widgets
// treat as a click.
func (s *Snapshot) Clicks() []input.PointerButton {
	var out []input.PointerButton
	for _, e := range s.Events {
		if b, ok := e.(input.PointerButton); ok && b.Button == input.ButtonPrimary && !b.Pressed {
			out = append(out, b)
		}
	}
	return out
}

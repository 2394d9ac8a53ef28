// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import "github.com/gogpu/uibridge"

// Event is a host-agnostic input event. Positions are logical points.
type Event interface {
	event()
}

// PointerMoved reports the pointer position.
type PointerMoved struct {
	Pos uibridge.Pos2
}

// PointerButton reports a button transition at Pos.
//
// The translator cannot know where the pointer is; the frame manager stamps
// Pos and Modifiers from its accumulated state when the event is ingested.
type PointerButton struct {
	Pos       uibridge.Pos2
	Button    Button
	Pressed   bool
	Modifiers Modifiers
}

// PointerGone reports that the pointer left the window.
type PointerGone struct{}

// Key reports a key transition.
type Key struct {
	Key       KeyName
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

// Text reports printable text input, NFC-normalized.
type Text struct {
	Text string
}

// Scroll reports a scroll delta in logical points.
// Positive Y scrolls content down.
type Scroll struct {
	Delta     uibridge.Vec2
	Modifiers Modifiers
}

// ImeKind distinguishes IME composition updates from commits.
type ImeKind uint8

const (
	// ImePreedit carries the in-progress composition. Empty text clears it.
	ImePreedit ImeKind = iota
	// ImeCommit carries the final text.
	ImeCommit
)

// String returns the kind name.
func (k ImeKind) String() string {
	switch k {
	case ImePreedit:
		return "Preedit"
	case ImeCommit:
		return "Commit"
	default:
		return "Unknown"
	}
}

// Ime reports IME composition state.
type Ime struct {
	Kind ImeKind
	Text string
}

// WindowResized reports a new physical size.
type WindowResized struct {
	Width, Height int
}

// ScaleChanged reports a new device pixel ratio.
type ScaleChanged struct {
	Scale float64
}

// WindowFocused reports keyboard focus.
type WindowFocused struct {
	Focused bool
}

// CloseRequested reports that the host asked to close the window.
type CloseRequested struct{}

func (PointerMoved) event()   {}
func (PointerButton) event()  {}
func (PointerGone) event()    {}
func (Key) event()            {}
func (Text) event()           {}
func (Scroll) event()         {}
func (Ime) event()            {}
func (WindowResized) event()  {}
func (ScaleChanged) event()   {}
func (WindowFocused) event()  {}
func (CloseRequested) event() {}

// IsDiscrete reports whether e is a discrete UI event (click, key, text,
// scroll, IME) rather than a state update.
func IsDiscrete(e Event) bool {
	switch e.(type) {
	case PointerButton, Key, Text, Scroll, Ime:
		return true
	default:
		return false
	}
}

// Button is a pointer button.
type Button uint8

// Pointer buttons.
const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
	ButtonExtra1
	ButtonExtra2
)

// NumButtons is the number of distinct pointer buttons.
const NumButtons = 5

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	case ButtonExtra1:
		return "Extra1"
	case ButtonExtra2:
		return "Extra2"
	default:
		return "Unknown"
	}
}

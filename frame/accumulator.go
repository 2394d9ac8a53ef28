// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"slices"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/input"
)

// accumulator holds input state between frames.
// Pointer, buttons, keys, modifiers and focus persist; pending is drained by
// every frame.
type accumulator struct {
	pointer    uibridge.Pos2
	hasPointer bool
	buttons    [input.NumButtons]bool
	keys       map[input.KeyName]int // press count per name
	modifiers  input.Modifiers
	focused    bool
	pending    []input.Event
}

func newAccumulator() accumulator {
	return accumulator{
		keys:    make(map[input.KeyName]int),
		focused: true,
	}
}

// push applies e and appends it to pending. It returns the event as stored,
// which for pointer buttons carries the stamped position and modifiers.
func (a *accumulator) push(e input.Event) input.Event {
	switch ev := e.(type) {
	case input.PointerMoved:
		a.pointer = ev.Pos
		a.hasPointer = true

	case input.PointerButton:
		ev.Pos = a.pointer
		ev.Modifiers = a.modifiers
		if int(ev.Button) < len(a.buttons) {
			a.buttons[ev.Button] = ev.Pressed
		}
		e = ev

	case input.PointerGone:
		a.hasPointer = false

	case input.Key:
		a.modifiers = ev.Modifiers
		a.key(ev)

	case input.Scroll:
		a.modifiers = ev.Modifiers

	case input.WindowFocused:
		a.focused = ev.Focused
		if !ev.Focused {
			a.releaseAll()
		}
	}
	a.pending = append(a.pending, e)
	return e
}

// key counts presses per name. Left and right variants of a modifier share
// a name, so releasing one of them must not release the other.
func (a *accumulator) key(ev input.Key) {
	n := a.keys[ev.Key]
	switch {
	case ev.Pressed && ev.Repeat:
		if n == 0 {
			a.keys[ev.Key] = 1
		}
	case ev.Pressed:
		a.keys[ev.Key] = n + 1
	case n > 1:
		a.keys[ev.Key] = n - 1
	default:
		delete(a.keys, ev.Key)
	}
}

// releaseAll forgets held keys and buttons. Release events for them will
// never arrive once the window lost focus.
func (a *accumulator) releaseAll() {
	clear(a.keys)
	a.buttons = [input.NumButtons]bool{}
	a.modifiers = input.Modifiers{}
}

// rescale keeps the pointer on the same physical pixel after a scale change.
func (a *accumulator) rescale(oldScale, newScale float64) {
	if oldScale <= 0 || newScale <= 0 {
		return
	}
	f := oldScale / newScale
	a.pointer = uibridge.Pos2{X: a.pointer.X * f, Y: a.pointer.Y * f}
}

// drain returns pending events and starts a new list.
func (a *accumulator) drain() []input.Event {
	events := a.pending
	a.pending = nil
	return events
}

func (a *accumulator) sortedKeys() []input.KeyName {
	keys := make([]input.KeyName, 0, len(a.keys))
	for k := range a.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import "github.com/gogpu/gpucontext"

// HostEvent is an event as reported by the host runtime.
// Positions and sizes are physical pixels.
type HostEvent interface {
	hostEvent()
}

// HostPointerMoved reports the pointer position.
type HostPointerMoved struct {
	X, Y float64
}

// HostPointerButton reports a mouse button transition. The position is the
// last reported pointer position.
type HostPointerButton struct {
	Button  gpucontext.MouseButton
	Pressed bool
}

// HostPointerLeft reports that the pointer left the window.
type HostPointerLeft struct{}

// HostKey reports a key transition.
type HostKey struct {
	Code    gpucontext.Key
	Pressed bool
	Repeat  bool
	Mods    gpucontext.Modifiers
}

// HostText reports committed text input after keyboard layout processing.
type HostText struct {
	Text string
}

// HostScroll reports a wheel or touchpad scroll. Mode gives the delta unit.
type HostScroll struct {
	DX, DY float64
	Mode   gpucontext.ScrollDeltaMode
	Mods   gpucontext.Modifiers
}

// HostResized reports a new physical size of the drawable area.
type HostResized struct {
	Width, Height int
}

// HostScaleChanged reports a new device pixel ratio.
type HostScaleChanged struct {
	Factor float64
}

// HostFocus reports keyboard focus gained or lost.
type HostFocus struct {
	Gained bool
}

// HostCloseRequested reports that the user asked to close the window.
type HostCloseRequested struct{}

// HostIMEPreedit reports in-progress IME composition text.
type HostIMEPreedit struct {
	Text string
}

// HostIMECommit reports the text committed at the end of IME composition.
type HostIMECommit struct {
	Text string
}

// HostUnknown is any host event without a UI meaning. It always translates
// to nothing.
type HostUnknown struct {
	Kind string
}

func (HostPointerMoved) hostEvent()   {}
func (HostPointerButton) hostEvent()  {}
func (HostPointerLeft) hostEvent()    {}
func (HostKey) hostEvent()            {}
func (HostText) hostEvent()           {}
func (HostScroll) hostEvent()         {}
func (HostResized) hostEvent()        {}
func (HostScaleChanged) hostEvent()   {}
func (HostFocus) hostEvent()          {}
func (HostCloseRequested) hostEvent() {}
func (HostIMEPreedit) hostEvent()     {}
func (HostIMECommit) hostEvent()      {}
func (HostUnknown) hostEvent()        {}

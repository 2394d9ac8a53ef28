// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"math"

	"github.com/gogpu/gpucontext"
)

// Source turns gpucontext callbacks into host events.
//
// gpucontext reports positions and sizes in logical points. Source multiplies
// them by the window scale factor it last saw so that every HostEvent it emits
// is in physical pixels, like events from any other host.
//
// Source is not safe for concurrent use. gpucontext delivers callbacks on the
// main thread, which is also where the adapter runs.
type Source struct {
	sink    func(HostEvent)
	scale   float64
	width   int
	height  int
	synced  bool
	pressed map[gpucontext.Key]bool

	hasScrollEvents bool
}

// NewSource creates a Source that delivers events to sink.
func NewSource(sink func(HostEvent)) *Source {
	return &Source{
		sink:    sink,
		scale:   1,
		pressed: make(map[gpucontext.Key]bool),
	}
}

// Scale returns the scale factor used to convert positions.
func (s *Source) Scale() float64 {
	return s.scale
}

// Bind registers callbacks on es.
//
// If es also implements gpucontext.ScrollEventSource, detailed scroll events
// with delta modes are used instead of OnScroll. If it implements
// gpucontext.PointerEventSource, pointer-leave notifications are forwarded.
func (s *Source) Bind(es gpucontext.EventSource) {
	if es == nil {
		return
	}

	es.OnMouseMove(func(x, y float64) {
		s.emit(HostPointerMoved{X: x * s.scale, Y: y * s.scale})
	})
	es.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		s.emit(HostPointerMoved{X: x * s.scale, Y: y * s.scale})
		s.emit(HostPointerButton{Button: b, Pressed: true})
	})
	es.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		s.emit(HostPointerMoved{X: x * s.scale, Y: y * s.scale})
		s.emit(HostPointerButton{Button: b, Pressed: false})
	})

	es.OnKeyPress(func(k gpucontext.Key, mods gpucontext.Modifiers) {
		repeat := s.pressed[k]
		s.pressed[k] = true
		s.emit(HostKey{Code: k, Pressed: true, Repeat: repeat, Mods: mods})
	})
	es.OnKeyRelease(func(k gpucontext.Key, mods gpucontext.Modifiers) {
		delete(s.pressed, k)
		s.emit(HostKey{Code: k, Pressed: false, Mods: mods})
	})
	es.OnTextInput(func(text string) {
		s.emit(HostText{Text: text})
	})

	if ses, ok := es.(gpucontext.ScrollEventSource); ok {
		s.hasScrollEvents = true
		ses.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
			dx, dy := ev.DeltaX, ev.DeltaY
			if ev.DeltaMode == gpucontext.ScrollDeltaPixel {
				dx, dy = dx*s.scale, dy*s.scale
			}
			s.emit(HostScroll{DX: dx, DY: dy, Mode: ev.DeltaMode, Mods: ev.Modifiers})
		})
	}
	es.OnScroll(func(dx, dy float64) {
		if s.hasScrollEvents {
			return
		}
		s.emit(HostScroll{DX: dx, DY: dy, Mode: gpucontext.ScrollDeltaLine})
	})

	if pes, ok := es.(gpucontext.PointerEventSource); ok {
		pes.OnPointer(func(ev gpucontext.PointerEvent) {
			if ev.Type == gpucontext.PointerLeave && ev.IsPrimary {
				s.emit(HostPointerLeft{})
			}
		})
	}

	es.OnResize(func(w, h int) {
		s.resize(w, h)
	})
	es.OnFocus(func(focused bool) {
		if !focused {
			clear(s.pressed)
		}
		s.emit(HostFocus{Gained: focused})
	})

	es.OnIMECompositionStart(func() {})
	es.OnIMECompositionUpdate(func(st gpucontext.IMEState) {
		s.emit(HostIMEPreedit{Text: st.CompositionText})
	})
	es.OnIMECompositionEnd(func(committed string) {
		s.emit(HostIMECommit{Text: committed})
	})
}

// SyncWindow reads the window's current size and scale and emits
// HostScaleChanged and HostResized for whatever changed since the last sync.
// Call it once after Bind and whenever the host reports a display change.
func (s *Source) SyncWindow(wp gpucontext.WindowProvider) {
	if wp == nil {
		return
	}
	if f := wp.ScaleFactor(); f > 0 && (f != s.scale || !s.synced) {
		s.scale = f
		s.emit(HostScaleChanged{Factor: f})
	}
	w, h := wp.Size()
	s.resize(w, h)
	s.synced = true
}

func (s *Source) resize(logicalW, logicalH int) {
	w := int(math.Round(float64(logicalW) * s.scale))
	h := int(math.Round(float64(logicalH) * s.scale))
	if s.synced && w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.synced = true
	s.emit(HostResized{Width: w, Height: h})
}

func (s *Source) emit(ev HostEvent) {
	if s.sink != nil {
		s.sink(ev)
	}
}

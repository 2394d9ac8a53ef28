// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/input"
)

// CursorSetter receives cursor changes. gpucontext.PlatformProvider
// satisfies it.
type CursorSetter interface {
	SetCursor(cursor gpucontext.CursorShape)
}

// ClipboardWriter receives copied text. gpucontext.PlatformProvider
// satisfies it.
type ClipboardWriter interface {
	ClipboardWrite(text string) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithTranslator sets the translator used by HandleHostEvent.
func WithTranslator(t input.Translator) Option {
	return func(m *Manager) { m.translator = t }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCursorSetter forwards cursor changes to c.
func WithCursorSetter(c CursorSetter) Option {
	return func(m *Manager) { m.cursor = c }
}

// WithClipboard forwards copied text to c.
func WithClipboard(c ClipboardWriter) Option {
	return func(m *Manager) { m.clipboard = c }
}

// Manager owns the input state between frames and brackets each frame with
// BeginFrame and EndFrame.
//
// Manager is not safe for concurrent use. All calls must come from the host
// callback thread.
type Manager struct {
	translator input.Translator
	viewport   uibridge.Viewport
	acc        accumulator

	now       func() time.Time
	start     time.Time
	lastFrame time.Time
	frame     uint64
	inFrame   bool

	cursor     CursorSetter
	clipboard  ClipboardWriter
	lastCursor CursorIcon
	cursorSent bool
}

// NewManager creates a Manager for the given initial viewport.
func NewManager(vp uibridge.Viewport, opts ...Option) *Manager {
	m := &Manager{
		translator: input.DefaultTranslator(),
		viewport:   vp,
		acc:        newAccumulator(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.start = m.now()
	return m
}

// Viewport returns the current viewport.
func (m *Manager) Viewport() uibridge.Viewport {
	return m.viewport
}

// FrameNumber returns the number of frames begun so far.
func (m *Manager) FrameNumber() uint64 {
	return m.frame
}

// InFrame reports whether a frame has begun and not yet ended.
func (m *Manager) InFrame() bool {
	return m.inFrame
}

// Pending returns the number of events waiting for the next frame.
func (m *Manager) Pending() int {
	return len(m.acc.pending)
}

// Ingest merges one neutral event into the accumulated state.
// Resize and scale events update the viewport immediately, so events
// translated afterwards use the new scale.
func (m *Manager) Ingest(e input.Event) {
	if e == nil {
		return
	}
	switch ev := e.(type) {
	case input.WindowResized:
		m.viewport = m.viewport.Resize(ev.Width, ev.Height)
	case input.ScaleChanged:
		old := m.viewport.PixelsPerPoint()
		m.viewport = m.viewport.Rescale(ev.Scale)
		m.acc.rescale(old, m.viewport.PixelsPerPoint())
	}
	m.acc.push(e)
}

// HandleHostEvent translates ev against the current viewport and ingests the
// result. It returns the neutral event, or false when ev translated to nothing.
func (m *Manager) HandleHostEvent(ev input.HostEvent) (input.Event, bool) {
	e, ok := m.translator.Translate(ev, m.viewport)
	if !ok {
		return nil, false
	}
	m.Ingest(e)
	return e, true
}

// BeginFrame builds the snapshot for the next frame and clears the pending
// events. It panics if the previous frame was not ended.
func (m *Manager) BeginFrame() *Snapshot {
	if m.inFrame {
		panic("frame: BeginFrame called twice without EndFrame")
	}
	m.inFrame = true
	m.frame++

	now := m.now()
	var delta time.Duration
	if !m.lastFrame.IsZero() {
		delta = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	events := m.acc.drain()
	uibridge.Logger().Debug("frame: begin",
		"frame", m.frame, "events", len(events),
		"width", m.viewport.PhysicalWidth, "height", m.viewport.PhysicalHeight,
	)

	return &Snapshot{
		Frame:      m.frame,
		Time:       now.Sub(m.start),
		Delta:      delta,
		Viewport:   m.viewport,
		Pointer:    m.acc.pointer,
		HasPointer: m.acc.hasPointer,
		Buttons:    m.acc.buttons,
		Keys:       m.acc.sortedKeys(),
		Modifiers:  m.acc.modifiers,
		Focused:    m.acc.focused,
		Events:     events,
	}
}

// EndFrame consumes the UI output of the current frame: it forwards a changed
// cursor and any copied text to the host and returns the repaint decision.
// A nil output is treated as empty. It panics if no frame has begun.
func (m *Manager) EndFrame(out *Output) RepaintRequest {
	if !m.inFrame {
		panic("frame: EndFrame called without BeginFrame")
	}
	m.inFrame = false
	if out == nil {
		return RepaintRequest{}
	}

	if m.cursor != nil && (!m.cursorSent || out.Cursor != m.lastCursor) {
		m.cursor.SetCursor(out.Cursor.Shape())
		m.lastCursor = out.Cursor
		m.cursorSent = true
	}

	if out.CopiedText != "" && m.clipboard != nil {
		if err := m.clipboard.ClipboardWrite(out.CopiedText); err != nil {
			uibridge.Logger().Warn("frame: clipboard write failed", "err", err)
		}
	}

	r := out.Repaint
	if r.Requested && r.After < 0 {
		r.After = 0
	}
	return r
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"math"
	"strings"
	"unicode"

	"github.com/gogpu/gpucontext"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/uibridge"
)

// DefaultScrollLinePoints is the scroll distance of one wheel notch.
const DefaultScrollLinePoints = 50

// Translator maps host events to neutral events.
//
// A Translator holds configuration only. Translate has no side effects and
// reads the viewport it is given, so the same Translator can be shared.
type Translator struct {
	// ScrollLinePoints converts line-based scroll deltas to logical points.
	// Zero means DefaultScrollLinePoints.
	ScrollLinePoints float64
}

// DefaultTranslator returns a Translator with default settings.
func DefaultTranslator() Translator {
	return Translator{ScrollLinePoints: DefaultScrollLinePoints}
}

// Translate converts one host event against the current viewport.
//
// The second result is false when the event has no neutral counterpart:
// unknown host events, unmapped keys, text without printable characters,
// and invalid sizes or scale factors.
func (t Translator) Translate(ev HostEvent, vp uibridge.Viewport) (Event, bool) {
	switch e := ev.(type) {
	case HostPointerMoved:
		return PointerMoved{Pos: vp.ToLogical(e.X, e.Y)}, true

	case HostPointerButton:
		b, ok := ButtonFrom(e.Button)
		if !ok {
			return nil, false
		}
		return PointerButton{Button: b, Pressed: e.Pressed}, true

	case HostPointerLeft:
		return PointerGone{}, true

	case HostKey:
		name, ok := KeyNameFrom(e.Code)
		if !ok {
			return nil, false
		}
		return Key{
			Key:       name,
			Pressed:   e.Pressed,
			Repeat:    e.Repeat && e.Pressed,
			Modifiers: ModifiersFrom(e.Mods),
		}, true

	case HostText:
		s := FilterText(e.Text)
		if s == "" {
			return nil, false
		}
		return Text{Text: s}, true

	case HostScroll:
		d := t.scrollDelta(e, vp)
		if d.IsZero() {
			return nil, false
		}
		return Scroll{Delta: d, Modifiers: ModifiersFrom(e.Mods)}, true

	case HostResized:
		if e.Width < 0 || e.Height < 0 {
			return nil, false
		}
		return WindowResized{Width: e.Width, Height: e.Height}, true

	case HostScaleChanged:
		if !(e.Factor > 0) || math.IsInf(e.Factor, 0) {
			return nil, false
		}
		return ScaleChanged{Scale: e.Factor}, true

	case HostFocus:
		return WindowFocused{Focused: e.Gained}, true

	case HostCloseRequested:
		return CloseRequested{}, true

	case HostIMEPreedit:
		return Ime{Kind: ImePreedit, Text: FilterText(e.Text)}, true

	case HostIMECommit:
		s := FilterText(e.Text)
		if s == "" {
			return nil, false
		}
		return Ime{Kind: ImeCommit, Text: s}, true

	default:
		return nil, false
	}
}

func (t Translator) scrollDelta(e HostScroll, vp uibridge.Viewport) uibridge.Vec2 {
	switch e.Mode {
	case gpucontext.ScrollDeltaLine:
		line := t.ScrollLinePoints
		if line <= 0 {
			line = DefaultScrollLinePoints
		}
		return uibridge.Vec2{X: e.DX * line, Y: e.DY * line}
	case gpucontext.ScrollDeltaPage:
		w, h := vp.LogicalSize()
		return uibridge.Vec2{X: e.DX * w, Y: e.DY * h}
	default:
		p := vp.ToLogical(e.DX, e.DY)
		return uibridge.Vec2{X: p.X, Y: p.Y}
	}
}

// FilterText removes control characters and private-use code points, then
// NFC-normalizes the rest. Function keys on some platforms arrive as text
// in the private-use area, so they are stripped here.
func FilterText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.Is(unicode.Co, r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
	return norm.NFC.String(s)
}

// Translate converts ev with the default translator.
func Translate(ev HostEvent, vp uibridge.Viewport) (Event, bool) {
	return DefaultTranslator().Translate(ev, vp)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"runtime"

	"github.com/gogpu/gpucontext"
)

// KeyName is a logical key name, independent of the host key code scheme.
// Letters are upper case ("A"), digits are "0".."9", everything else uses
// the W3C key names ("ArrowLeft", "Enter", "F5").
type KeyName string

// Modifiers is the neutral modifier state.
//
// Command is the platform's shortcut modifier: Super on macOS, Ctrl
// elsewhere. UIs should bind shortcuts to Command rather than Ctrl.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	Super   bool
	Command bool
}

// IsNone reports whether no modifier is held.
func (m Modifiers) IsNone() bool {
	return m == Modifiers{}
}

// commandIsSuper is true when the shortcut modifier is the Super key.
var commandIsSuper = runtime.GOOS == "darwin" || runtime.GOOS == "ios"

// ModifiersFrom converts a gpucontext modifier mask.
func ModifiersFrom(m gpucontext.Modifiers) Modifiers {
	mods := Modifiers{
		Alt:   m.HasAlt(),
		Ctrl:  m.HasControl(),
		Shift: m.HasShift(),
		Super: m.HasSuper(),
	}
	if commandIsSuper {
		mods.Command = mods.Super
	} else {
		mods.Command = mods.Ctrl
	}
	return mods
}

// ButtonFrom converts a gpucontext mouse button.
func ButtonFrom(b gpucontext.MouseButton) (Button, bool) {
	switch b {
	case gpucontext.MouseButtonLeft:
		return ButtonPrimary, true
	case gpucontext.MouseButtonRight:
		return ButtonSecondary, true
	case gpucontext.MouseButtonMiddle:
		return ButtonMiddle, true
	case gpucontext.MouseButton4:
		return ButtonExtra1, true
	case gpucontext.MouseButton5:
		return ButtonExtra2, true
	default:
		return 0, false
	}
}

// KeyNameFrom looks up the logical name of a gpucontext key code.
// KeyUnknown and unlisted codes report false.
func KeyNameFrom(k gpucontext.Key) (KeyName, bool) {
	name, ok := keyNames[k]
	return name, ok
}

// KeyCodeFor returns a gpucontext key code producing name. Where several
// codes share a name (left and right Shift, digits and numpad digits) the
// lowest code is returned.
func KeyCodeFor(name KeyName) (gpucontext.Key, bool) {
	k, ok := keyCodes[name]
	return k, ok
}

var keyCodes = func() map[KeyName]gpucontext.Key {
	m := make(map[KeyName]gpucontext.Key, len(keyNames))
	for k, name := range keyNames {
		if prev, ok := m[name]; !ok || k < prev {
			m[name] = k
		}
	}
	return m
}()

var keyNames = map[gpucontext.Key]KeyName{
	gpucontext.KeyA: "A", gpucontext.KeyB: "B", gpucontext.KeyC: "C",
	gpucontext.KeyD: "D", gpucontext.KeyE: "E", gpucontext.KeyF: "F",
	gpucontext.KeyG: "G", gpucontext.KeyH: "H", gpucontext.KeyI: "I",
	gpucontext.KeyJ: "J", gpucontext.KeyK: "K", gpucontext.KeyL: "L",
	gpucontext.KeyM: "M", gpucontext.KeyN: "N", gpucontext.KeyO: "O",
	gpucontext.KeyP: "P", gpucontext.KeyQ: "Q", gpucontext.KeyR: "R",
	gpucontext.KeyS: "S", gpucontext.KeyT: "T", gpucontext.KeyU: "U",
	gpucontext.KeyV: "V", gpucontext.KeyW: "W", gpucontext.KeyX: "X",
	gpucontext.KeyY: "Y", gpucontext.KeyZ: "Z",

	gpucontext.Key0: "0", gpucontext.Key1: "1", gpucontext.Key2: "2",
	gpucontext.Key3: "3", gpucontext.Key4: "4", gpucontext.Key5: "5",
	gpucontext.Key6: "6", gpucontext.Key7: "7", gpucontext.Key8: "8",
	gpucontext.Key9: "9",

	gpucontext.KeyF1: "F1", gpucontext.KeyF2: "F2", gpucontext.KeyF3: "F3",
	gpucontext.KeyF4: "F4", gpucontext.KeyF5: "F5", gpucontext.KeyF6: "F6",
	gpucontext.KeyF7: "F7", gpucontext.KeyF8: "F8", gpucontext.KeyF9: "F9",
	gpucontext.KeyF10: "F10", gpucontext.KeyF11: "F11", gpucontext.KeyF12: "F12",

	gpucontext.KeyEscape:    "Escape",
	gpucontext.KeyTab:       "Tab",
	gpucontext.KeyBackspace: "Backspace",
	gpucontext.KeyEnter:     "Enter",
	gpucontext.KeySpace:     "Space",
	gpucontext.KeyInsert:    "Insert",
	gpucontext.KeyDelete:    "Delete",
	gpucontext.KeyHome:      "Home",
	gpucontext.KeyEnd:       "End",
	gpucontext.KeyPageUp:    "PageUp",
	gpucontext.KeyPageDown:  "PageDown",
	gpucontext.KeyLeft:      "ArrowLeft",
	gpucontext.KeyRight:     "ArrowRight",
	gpucontext.KeyUp:        "ArrowUp",
	gpucontext.KeyDown:      "ArrowDown",

	gpucontext.KeyLeftShift:    "Shift",
	gpucontext.KeyRightShift:   "Shift",
	gpucontext.KeyLeftControl:  "Control",
	gpucontext.KeyRightControl: "Control",
	gpucontext.KeyLeftAlt:      "Alt",
	gpucontext.KeyRightAlt:     "Alt",
	gpucontext.KeyLeftSuper:    "Meta",
	gpucontext.KeyRightSuper:   "Meta",

	gpucontext.KeyMinus:        "Minus",
	gpucontext.KeyEqual:        "Equals",
	gpucontext.KeyLeftBracket:  "OpenBracket",
	gpucontext.KeyRightBracket: "CloseBracket",
	gpucontext.KeyBackslash:    "Backslash",
	gpucontext.KeySemicolon:    "Semicolon",
	gpucontext.KeyApostrophe:   "Quote",
	gpucontext.KeyGrave:        "Backtick",
	gpucontext.KeyComma:        "Comma",
	gpucontext.KeyPeriod:       "Period",
	gpucontext.KeySlash:        "Slash",

	gpucontext.KeyNumpad0: "0", gpucontext.KeyNumpad1: "1", gpucontext.KeyNumpad2: "2",
	gpucontext.KeyNumpad3: "3", gpucontext.KeyNumpad4: "4", gpucontext.KeyNumpad5: "5",
	gpucontext.KeyNumpad6: "6", gpucontext.KeyNumpad7: "7", gpucontext.KeyNumpad8: "8",
	gpucontext.KeyNumpad9: "9",

	gpucontext.KeyNumpadDecimal:  "Period",
	gpucontext.KeyNumpadDivide:   "Slash",
	gpucontext.KeyNumpadMultiply: "Multiply",
	gpucontext.KeyNumpadSubtract: "Minus",
	gpucontext.KeyNumpadAdd:      "Plus",
	gpucontext.KeyNumpadEnter:    "Enter",

	gpucontext.KeyCapsLock:    "CapsLock",
	gpucontext.KeyScrollLock:  "ScrollLock",
	gpucontext.KeyNumLock:     "NumLock",
	gpucontext.KeyPrintScreen: "PrintScreen",
	gpucontext.KeyPause:       "Pause",
}

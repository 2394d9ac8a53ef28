// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/config"
	"github.com/gogpu/uibridge/frame"
	"github.com/gogpu/uibridge/input"
)

const session = `
window: {width: 200, height: 240, scale: 2}
steps:
  - snapshot: true
  - events:
      - {type: move, x: 40, y: 60}
      - {type: press}
      - {type: release}
  - events:
      - {type: move, x: 100, y: 180}
      - {type: text, text: "héllo"}
      - {type: key, key: Backspace}
      - {type: key, key: C, mods: [ctrl, super]}
    snapshot: true
  - events:
      - {type: resize, width: 300, height: 160}
    snapshot: true
  - events:
      - {type: close}
  - snapshot: true
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(session))
	if err != nil {
		t.Fatal(err)
	}
	if s.Window.Width != 200 || s.Window.Scale != 2 {
		t.Errorf("Window = %+v", s.Window)
	}
	if len(s.Steps) != 6 {
		t.Fatalf("steps = %d, want 6", len(s.Steps))
	}
	ev, err := s.Steps[1].Events[1].HostEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev != (input.HostPointerButton{Button: gpucontext.MouseButtonLeft, Pressed: true}) {
		t.Errorf("event = %#v", ev)
	}
	key, _ := s.Steps[2].Events[3].HostEvent()
	if k := key.(input.HostKey); !k.Pressed || !k.Mods.HasControl() {
		t.Errorf("key = %#v", k)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no window", "steps: []"},
		{"unknown field", "window: {width: 1, height: 1}\nframes: []"},
		{"unknown type", "window: {width: 1, height: 1}\nsteps: [{events: [{type: wiggle}]}]"},
		{"unknown key", "window: {width: 1, height: 1}\nsteps: [{events: [{type: key, key: Hyper}]}]"},
		{"unknown button", "window: {width: 1, height: 1}\nsteps: [{events: [{type: press, button: side}]}]"},
		{"unknown modifier", "window: {width: 1, height: 1}\nsteps: [{events: [{type: scroll, mods: [fn]}]}]"},
		{"unknown scroll mode", "window: {width: 1, height: 1}\nsteps: [{events: [{type: scroll, mode: inch}]}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReplay(t *testing.T) {
	s, err := ParseScript([]byte(session))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	sum, err := replay(s, config.Default(), dir, false)
	if err != nil {
		t.Fatal(err)
	}

	if sum.Frames != 4 || sum.Skipped != 0 {
		t.Errorf("Frames = %d, Skipped = %d; want 4, 0", sum.Frames, sum.Skipped)
	}
	if len(sum.Written) != 3 {
		t.Fatalf("written = %v, want 3 files", sum.Written)
	}
	if sum.Clipboard != "héll" {
		t.Errorf("Clipboard = %q, want %q", sum.Clipboard, "héll")
	}
	if sum.Cursor != gpucontext.CursorText {
		t.Errorf("Cursor = %v, want text cursor over the field", sum.Cursor)
	}
	if sum.Redraws == 0 {
		t.Error("no redraw requests")
	}

	f, err := os.Open(filepath.Join(dir, "frame-004.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 160 {
		t.Errorf("resized frame = %v, want 300x160", b)
	}
}

func TestDefaultScriptReplays(t *testing.T) {
	s, err := LoadScript("")
	if err != nil {
		t.Fatal(err)
	}
	sum, err := replay(s, config.Default(), t.TempDir(), true)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Frames != len(s.Steps) || len(sum.Written) != len(s.Steps) {
		t.Errorf("Frames = %d, written = %d, want %d", sum.Frames, len(sum.Written), len(s.Steps))
	}
}

func TestDemoUI(t *testing.T) {
	d := &demoUI{}
	m := frame.NewManager(uibridge.NewViewport(320, 200, 1))

	m.Ingest(input.PointerMoved{Pos: uibridge.Pt(30, 30)})
	m.Ingest(input.PointerButton{Button: input.ButtonPrimary, Pressed: true})
	m.Ingest(input.PointerButton{Button: input.ButtonPrimary, Pressed: false})
	out := d.Run(m.BeginFrame())
	m.EndFrame(out)

	if d.clicks != 1 {
		t.Errorf("clicks = %d, want 1", d.clicks)
	}
	if out.Cursor != frame.CursorPointingHand {
		t.Errorf("Cursor = %v, want pointing hand over the button", out.Cursor)
	}
	if len(out.Textures.Set) != 1 {
		t.Errorf("texture sets = %d, want 1 on the first frame", len(out.Textures.Set))
	}

	out = d.Run(m.BeginFrame())
	m.EndFrame(out)
	if len(out.Textures.Set) != 0 {
		t.Error("texture uploaded twice")
	}
	if d.clicks != 1 {
		t.Errorf("clicks = %d after an idle frame", d.clicks)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/frame"
	"github.com/gogpu/uibridge/input"
)

const checkerTexture frame.TextureID = 1

var (
	background  = color.RGBA{R: 0x1e, G: 0x22, B: 0x2a, A: 0xff}
	buttonIdle  = color.RGBA{R: 0x3a, G: 0x6e, B: 0xa5, A: 0xff}
	buttonHover = color.RGBA{R: 0x4f, G: 0x8f, B: 0xd0, A: 0xff}
	fieldFill   = color.RGBA{R: 0x12, G: 0x14, B: 0x18, A: 0xff}
	fieldBorder = color.RGBA{R: 0x60, G: 0x66, B: 0x70, A: 0xff}
	foreground  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	accent      = color.RGBA{R: 0xf0, G: 0xa0, B: 0x30, A: 0xff}
)

// demoUI is a small immediate-mode UI: a click counter, a text field fed
// by text input, a textured swatch and a pointer marker.
type demoUI struct {
	clicks   int
	typed    string
	uploaded bool
}

func (d *demoUI) Run(s *frame.Snapshot) *frame.Output {
	out := &frame.Output{}
	screen := s.ScreenRect()
	all := uibridge.EverythingRect

	button := uibridge.RectFromXYWH(16, 16, 128, 32)
	field := uibridge.RectFromXYWH(16, 64, max(screen.Width()-32, 0), 28)
	swatch := uibridge.RectFromXYWH(16, 108, 64, 64)

	for _, c := range s.Clicks() {
		if button.Contains(c.Pos) {
			d.clicks++
		}
	}
	for _, e := range s.Events {
		switch ev := e.(type) {
		case input.Text:
			d.typed += ev.Text
		case input.Key:
			if !ev.Pressed {
				continue
			}
			switch {
			case ev.Key == "Backspace" && d.typed != "":
				_, n := utf8.DecodeLastRuneInString(d.typed)
				d.typed = d.typed[:len(d.typed)-n]
			case ev.Key == "C" && ev.Modifiers.Command:
				out.CopiedText = d.typed
			}
		}
	}

	hover := s.HasPointer && button.Contains(s.Pointer)
	fill := buttonIdle
	if hover {
		fill = buttonHover
		out.Cursor = frame.CursorPointingHand
	} else if s.HasPointer && field.Contains(s.Pointer) {
		out.Cursor = frame.CursorText
	}

	out.Add(all, frame.RectShape{Rect: screen, Fill: background})
	out.Add(all, frame.RectShape{Rect: button, Radius: 6, Fill: fill})
	out.Add(button, frame.TextShape{
		Pos:   button.Min.Add(uibridge.Vec2{X: 10, Y: 8}),
		Text:  fmt.Sprintf("clicked %d", d.clicks),
		Color: foreground,
	})
	out.Add(all, frame.RectShape{Rect: field, Radius: 3, Fill: fieldFill, StrokeWidth: 1, Stroke: fieldBorder})
	out.Add(field, frame.TextShape{
		Pos:   field.Min.Add(uibridge.Vec2{X: 6, Y: 6}),
		Text:  d.typed,
		Color: foreground,
	})

	if !d.uploaded {
		out.Textures.Set = append(out.Textures.Set, frame.TextureSet{
			ID:    checkerTexture,
			Delta: frame.ImageDelta{Image: checker(8, 2), Filter: frame.FilterNearest},
		})
		d.uploaded = true
	}
	out.Add(all, frame.ImageShape{Texture: checkerTexture, Rect: swatch})

	if s.HasPointer {
		out.Add(all, frame.CircleShape{Center: s.Pointer, Radius: 4, Fill: accent})
	}
	return out
}

// checker returns a size x size black and white checkerboard with cells of
// cell pixels.
func checker(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := color.RGBA{A: 0xff}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

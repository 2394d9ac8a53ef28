// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uibridge"
)

// TextureID identifies a texture managed through TexturesDelta.
// The zero ID is reserved for "no texture".
type TextureID uint64

// Shape is one paint primitive. Coordinates are logical points.
type Shape interface {
	shape()
}

// RectShape is an optionally rounded rectangle.
type RectShape struct {
	Rect        uibridge.Rect
	Radius      float64
	Fill        color.RGBA
	StrokeWidth float64
	Stroke      color.RGBA
}

// CircleShape is a filled and/or stroked circle.
type CircleShape struct {
	Center      uibridge.Pos2
	Radius      float64
	Fill        color.RGBA
	StrokeWidth float64
	Stroke      color.RGBA
}

// PathShape is a polyline or polygon.
type PathShape struct {
	Points      []uibridge.Pos2
	Closed      bool
	Fill        color.RGBA
	StrokeWidth float64
	Stroke      color.RGBA
}

// Vertex is a mesh vertex. UV is normalized texture space.
type Vertex struct {
	Pos   uibridge.Pos2
	UV    uibridge.Pos2
	Color color.RGBA
}

// MeshShape is an indexed triangle list, optionally textured.
type MeshShape struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// ImageShape draws the UV region of a texture into Rect.
// A zero UV rectangle means the whole texture. Tint multiplies the
// texture; the zero value means no tint.
type ImageShape struct {
	Texture TextureID
	Rect    uibridge.Rect
	UV      uibridge.Rect
	Tint    color.RGBA
}

// TextShape is a single line of text. Pos is the top-left corner.
type TextShape struct {
	Pos   uibridge.Pos2
	Text  string
	Size  float64
	Color color.RGBA
}

func (RectShape) shape()   {}
func (CircleShape) shape() {}
func (PathShape) shape()   {}
func (MeshShape) shape()   {}
func (ImageShape) shape()  {}
func (TextShape) shape()   {}

// ClippedShape is a shape with its clip rectangle.
// Use uibridge.EverythingRect for no clipping.
type ClippedShape struct {
	Clip  uibridge.Rect
	Shape Shape
}

// Filter selects texture sampling.
type Filter uint8

// Texture filters.
const (
	FilterLinear Filter = iota
	FilterNearest
)

// ImageDelta is a whole or partial texture update.
//
// When Pos is nil the texture is (re)created from Image. Otherwise Image is
// copied into the existing texture with its top-left corner at *Pos.
type ImageDelta struct {
	Image  *image.RGBA
	Pos    *image.Point
	Filter Filter
}

// IsWhole reports whether the delta replaces the whole texture.
func (d ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// TextureSet pairs a texture with its update.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta lists texture changes for one frame.
// Set is applied before painting, Free after presenting.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// IsEmpty reports whether there is nothing to do.
func (t TexturesDelta) IsEmpty() bool {
	return len(t.Set) == 0 && len(t.Free) == 0
}

// CursorIcon is the cursor the UI wants over the window.
type CursorIcon uint8

// Cursor icons.
const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorText
	CursorCrosshair
	CursorMove
	CursorResizeVertical
	CursorResizeHorizontal
	CursorResizeNwSe
	CursorResizeNeSw
	CursorNotAllowed
	CursorWait
	CursorNone
)

// Shape maps the icon to the gpucontext cursor shape.
func (c CursorIcon) Shape() gpucontext.CursorShape {
	switch c {
	case CursorPointingHand:
		return gpucontext.CursorPointer
	case CursorText:
		return gpucontext.CursorText
	case CursorCrosshair:
		return gpucontext.CursorCrosshair
	case CursorMove:
		return gpucontext.CursorMove
	case CursorResizeVertical:
		return gpucontext.CursorResizeNS
	case CursorResizeHorizontal:
		return gpucontext.CursorResizeEW
	case CursorResizeNwSe:
		return gpucontext.CursorResizeNWSE
	case CursorResizeNeSw:
		return gpucontext.CursorResizeNESW
	case CursorNotAllowed:
		return gpucontext.CursorNotAllowed
	case CursorWait:
		return gpucontext.CursorWait
	case CursorNone:
		return gpucontext.CursorNone
	default:
		return gpucontext.CursorDefault
	}
}

// RepaintRequest asks the host for another redraw.
// The zero value means no request: wait for the next host-driven redraw.
type RepaintRequest struct {
	Requested bool
	After     time.Duration
}

// RepaintNow requests an immediate repaint.
func RepaintNow() RepaintRequest {
	return RepaintRequest{Requested: true}
}

// RepaintIn requests a repaint after d. Non-positive d means immediately.
func RepaintIn(d time.Duration) RepaintRequest {
	return RepaintRequest{Requested: true, After: max(d, 0)}
}

// Immediate reports whether the repaint should happen right away.
func (r RepaintRequest) Immediate() bool {
	return r.Requested && r.After <= 0
}

// Output is everything the UI produced for one frame. It is consumed by the
// render cycle and then dropped.
type Output struct {
	Shapes     []ClippedShape
	Textures   TexturesDelta
	Cursor     CursorIcon
	Repaint    RepaintRequest
	CopiedText string
}

// Add appends a shape clipped to clip.
func (o *Output) Add(clip uibridge.Rect, s Shape) {
	o.Shapes = append(o.Shapes, ClippedShape{Clip: clip, Shape: s})
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uibridge

import "math"

// Viewport describes the drawable area of the host window.
//
// Physical size is in device pixels. Scale is the number of physical pixels
// per logical point (1.0 on standard displays, 2.0 on Retina). The logical
// size handed to the UI is derived from both.
//
// Viewport is a value type. It only changes in response to resize and
// scale-change events.
type Viewport struct {
	PhysicalWidth  int
	PhysicalHeight int
	Scale          float64
}

// NewViewport creates a viewport. Negative sizes are clamped to zero and a
// non-positive scale becomes 1.
func NewViewport(physicalWidth, physicalHeight int, scale float64) Viewport {
	return Viewport{
		PhysicalWidth:  max(physicalWidth, 0),
		PhysicalHeight: max(physicalHeight, 0),
		Scale:          sanitizeScale(scale),
	}
}

func sanitizeScale(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

// Resize returns a copy of v with a new physical size.
func (v Viewport) Resize(physicalWidth, physicalHeight int) Viewport {
	return NewViewport(physicalWidth, physicalHeight, v.Scale)
}

// Rescale returns a copy of v with a new scale factor.
func (v Viewport) Rescale(scale float64) Viewport {
	return NewViewport(v.PhysicalWidth, v.PhysicalHeight, scale)
}

// PixelsPerPoint returns the effective scale, never zero.
func (v Viewport) PixelsPerPoint() float64 {
	return sanitizeScale(v.Scale)
}

// IsEmpty reports whether the viewport has no drawable pixels.
// A minimized window or a resize drag through zero produces an empty viewport.
func (v Viewport) IsEmpty() bool {
	return v.PhysicalWidth <= 0 || v.PhysicalHeight <= 0
}

// LogicalSize returns the size in logical points.
func (v Viewport) LogicalSize() (width, height float64) {
	s := v.PixelsPerPoint()
	return float64(v.PhysicalWidth) / s, float64(v.PhysicalHeight) / s
}

// LogicalRect returns the screen rectangle in logical points.
func (v Viewport) LogicalRect() Rect {
	w, h := v.LogicalSize()
	return RectFromXYWH(0, 0, w, h)
}

// CanvasSize returns the integer logical size used to size a gg context.
// Rounded up so the context never covers less than the physical surface.
func (v Viewport) CanvasSize() (width, height int) {
	w, h := v.LogicalSize()
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// ToLogical converts a physical pixel position to logical points.
func (v Viewport) ToLogical(x, y float64) Pos2 {
	s := v.PixelsPerPoint()
	return Pos2{X: x / s, Y: y / s}
}

// ToPhysical converts a logical position to physical pixels.
func (v Viewport) ToPhysical(p Pos2) (x, y float64) {
	s := v.PixelsPerPoint()
	return p.X * s, p.Y * s
}

// Equal reports whether two viewports describe the same drawable area.
func (v Viewport) Equal(o Viewport) bool {
	return v.PhysicalWidth == o.PhysicalWidth &&
		v.PhysicalHeight == o.PhysicalHeight &&
		v.PixelsPerPoint() == o.PixelsPerPoint()
}

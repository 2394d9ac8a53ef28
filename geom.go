// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uibridge

import "math"

// Pos2 is a position in logical points.
type Pos2 struct {
	X, Y float64
}

// Pt is a shorthand for Pos2{X: x, Y: y}.
func Pt(x, y float64) Pos2 {
	return Pos2{X: x, Y: y}
}

// Add returns p translated by v.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vec2 is a displacement in logical points.
type Vec2 struct {
	X, Y float64
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle in logical points.
// Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Pos2
}

// RectFromXYWH builds a Rect from its origin and size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Pos2{X: x, Y: y}, Max: Pos2{X: x + w, Y: y + h}}
}

// EverythingRect covers the whole plane. It is the clip of an unclipped shape.
var EverythingRect = Rect{
	Min: Pos2{X: math.Inf(-1), Y: math.Inf(-1)},
	Max: Pos2{X: math.Inf(1), Y: math.Inf(1)},
}

// Width returns the horizontal extent, never negative.
func (r Rect) Width() float64 {
	return math.Max(0, r.Max.X-r.Min.X)
}

// Height returns the vertical extent, never negative.
func (r Rect) Height() float64 {
	return math.Max(0, r.Max.Y-r.Min.Y)
}

// IsEmpty reports whether the rectangle contains no area.
func (r Rect) IsEmpty() bool {
	return !(r.Max.X > r.Min.X) || !(r.Max.Y > r.Min.Y)
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and o. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{X: math.Max(r.Min.X, o.Min.X), Y: math.Max(r.Min.Y, o.Min.Y)},
		Max: Pos2{X: math.Min(r.Max.X, o.Max.X), Y: math.Min(r.Max.Y, o.Max.Y)},
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() Pos2 {
	return Pos2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float64) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets the box to empty: min = +Inf, max = -Inf, so that any
// point expanded into it becomes the box.
func (b *Box2) SetEmpty() {
	b.Min.Set(math.Inf(1), math.Inf(1))
	b.Max.Set(math.Inf(-1), math.Inf(-1))
}

// IsEmpty returns whether the box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this box: max - min.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ExpandByPoint expands the box to include the given point.
func (b *Box2) ExpandByPoint(pt Vector2) {
	b.Min = b.Min.Min(pt)
	b.Max = b.Max.Max(pt)
}

// ExpandByBox expands the box to include the other given box.
func (b *Box2) ExpandByBox(other Box2) {
	b.ExpandByPoint(other.Min)
	b.ExpandByPoint(other.Max)
}

// Union returns the union of this box with the other box.
func (b Box2) Union(other Box2) Box2 {
	u := b
	u.ExpandByBox(other)
	return u
}

// ContainsPoint returns whether the box contains the given point.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X && pt.Y >= b.Min.Y && pt.Y <= b.Max.Y
}

// MulMatrix2 multiplies the box corners by the given matrix and returns
// the axis-aligned bounding box of the result.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	out := B2Empty()
	out.ExpandByPoint(m.MulVector2AsPoint(b.Min))
	out.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)))
	out.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)))
	out.ExpandByPoint(m.MulVector2AsPoint(b.Max))
	return out
}

// ToRect returns the box as a [Rect]. An empty box yields the zero Rect.
func (b Box2) ToRect() Rect {
	if b.IsEmpty() {
		return Rect{}
	}
	sz := b.Size()
	return Rect{X: b.Min.X, Y: b.Min.Y, Width: sz.X, Height: sz.Y}
}

// Rect is an axis-aligned rectangle defined by its minimum corner and
// size. Width and Height may be zero but are never negative: use
// [NewRect] to construct one from possibly unordered coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect returns a Rect with the given origin and size, normalizing
// negative sizes by shifting the origin.
func NewRect(x, y, width, height float64) Rect {
	if width < 0 {
		x += width
		width = -width
	}
	if height < 0 {
		y += height
		height = -height
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// ToBox2 returns the rect as a [Box2].
func (r Rect) ToBox2() Box2 {
	return B2(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"github.com/deckforge/svg2pptx/geom"
)

// ViewBox is the SVG coordinate system declaration: the user-space
// rectangle mapped onto the viewport, with its aspect ratio policy.
type ViewBox struct {
	Min  geom.Vector2
	Size geom.Vector2
	PreserveAspectRatio
}

// PreserveAspectRatio controls how the view box scales into a viewport
// of a different aspect ratio.
type PreserveAspectRatio struct {
	AlignX Align // min, mid or max along x
	AlignY Align // min, mid or max along y
	None   bool  // stretch non-uniformly, ignoring alignment
	Slice  bool  // cover the viewport instead of fitting inside it
}

// Align is one axis of a preserveAspectRatio alignment.
type Align int

const (
	AlignMid Align = iota
	AlignMin
	AlignMax
)

// parseViewBox reads a viewBox attribute value.
func parseViewBox(v string) (ViewBox, error) {
	pts, err := geom.ReadPoints(v)
	if err != nil {
		return ViewBox{}, err
	}
	if len(pts) != 4 {
		return ViewBox{}, fmt.Errorf("viewBox needs 4 numbers, got %d", len(pts))
	}
	if pts[2] <= 0 || pts[3] <= 0 {
		return ViewBox{}, fmt.Errorf("viewBox has non-positive size %gx%g", pts[2], pts[3])
	}
	return ViewBox{
		Min:                 geom.Vec2(pts[0], pts[1]),
		Size:                geom.Vec2(pts[2], pts[3]),
		PreserveAspectRatio: PreserveAspectRatio{AlignX: AlignMid, AlignY: AlignMid},
	}, nil
}

// SetString parses a preserveAspectRatio value, e.g. "xMidYMid meet".
// The default is xMidYMid meet.
func (pa *PreserveAspectRatio) SetString(v string) {
	*pa = PreserveAspectRatio{AlignX: AlignMid, AlignY: AlignMid}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return
	}
	align := fields[0]
	if align == "none" {
		pa.None = true
	} else if len(align) == 8 && strings.HasPrefix(align, "x") {
		pa.AlignX = alignFromString(align[1:4])
		pa.AlignY = alignFromString(align[5:8])
	}
	if len(fields) > 1 && fields[1] == "slice" {
		pa.Slice = true
	}
}

func alignFromString(v string) Align {
	switch strings.ToLower(v) {
	case "min":
		return AlignMin
	case "max":
		return AlignMax
	}
	return AlignMid
}

// Transform returns the matrix mapping view box coordinates onto a
// viewport of the given size.
func (vb ViewBox) Transform(width, height float64) geom.Matrix2 {
	if width <= 0 || height <= 0 {
		return geom.Translate2D(-vb.Min.X, -vb.Min.Y)
	}
	sx := width / vb.Size.X
	sy := height / vb.Size.Y
	if !vb.None {
		s := min(sx, sy)
		if vb.Slice {
			s = max(sx, sy)
		}
		sx, sy = s, s
	}
	tx := -vb.Min.X * sx
	ty := -vb.Min.Y * sy
	switch vb.AlignX {
	case AlignMid:
		tx += (width - vb.Size.X*sx) / 2
	case AlignMax:
		tx += width - vb.Size.X*sx
	}
	switch vb.AlignY {
	case AlignMid:
		ty += (height - vb.Size.Y*sy) / 2
	case AlignMax:
		ty += height - vb.Size.Y*sy
	}
	return geom.Matrix2{XX: sx, YY: sy, X0: tx, Y0: ty}
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"fmt"

	"github.com/deckforge/svg2pptx/geom"
)

// SegmentKind is the discriminator for the [Segment] union.
type SegmentKind int32

const (
	// SegLine is a straight line segment from Start to End.
	SegLine SegmentKind = iota

	// SegBezier is a cubic bezier segment. Quadratic curves are
	// elevated to cubic at parse time, so cubic is the only curve
	// form in the IR.
	SegBezier
)

func (k SegmentKind) String() string {
	if k == SegBezier {
		return "bezier"
	}
	return "line"
}

// MarshalText implements [encoding.TextMarshaler].
func (k SegmentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *SegmentKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "line":
		*k = SegLine
	case "bezier":
		*k = SegBezier
	default:
		return fmt.Errorf("ir.SegmentKind: unknown kind %q", text)
	}
	return nil
}

// Segment is one drawing segment of a [Path]: either a line or a cubic
// bezier, per Kind. Control1 and Control2 are meaningful only for
// [SegBezier].
type Segment struct {
	Kind     SegmentKind  `json:"kind"`
	Start    geom.Vector2 `json:"start"`
	Control1 geom.Vector2 `json:"control1,omitzero"`
	Control2 geom.Vector2 `json:"control2,omitzero"`
	End      geom.Vector2 `json:"end"`
}

// LineSeg returns a line [Segment] from start to end.
func LineSeg(start, end geom.Vector2) Segment {
	return Segment{Kind: SegLine, Start: start, End: end}
}

// BezierSeg returns a cubic bezier [Segment].
func BezierSeg(start, control1, control2, end geom.Vector2) Segment {
	return Segment{Kind: SegBezier, Start: start, Control1: control1, Control2: control2, End: end}
}

// SegmentsBounds returns the bounding box of the given segments'
// on-curve and control points. Control points bound the true curve
// conservatively, which is sufficient for clip extents.
func SegmentsBounds(segs []Segment) geom.Box2 {
	bb := geom.B2Empty()
	for _, sg := range segs {
		bb.ExpandByPoint(sg.Start)
		bb.ExpandByPoint(sg.End)
		if sg.Kind == SegBezier {
			bb.ExpandByPoint(sg.Control1)
			bb.ExpandByPoint(sg.Control2)
		}
	}
	return bb
}

// TransformSegments returns a copy of the segments with all points
// multiplied by the given matrix.
func TransformSegments(segs []Segment, m geom.Matrix2) []Segment {
	out := make([]Segment, len(segs))
	for i, sg := range segs {
		sg.Start = m.MulVector2AsPoint(sg.Start)
		sg.End = m.MulVector2AsPoint(sg.End)
		if sg.Kind == SegBezier {
			sg.Control1 = m.MulVector2AsPoint(sg.Control1)
			sg.Control2 = m.MulVector2AsPoint(sg.Control2)
		}
		out[i] = sg
	}
	return out
}

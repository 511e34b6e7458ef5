// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

func testConverter() *converter {
	return &converter{logger: slog.Default(), res: newResult()}
}

func TestPathLines(t *testing.T) {
	segs := testConverter().parsePathData("M 10 10 L 20 10 V 20 H 10 Z")
	require.Len(t, segs, 4)
	for _, sg := range segs {
		assert.Equal(t, ir.SegLine, sg.Kind)
	}
	assert.Equal(t, geom.Vec2(20, 10), segs[0].End)
	assert.Equal(t, geom.Vec2(20, 20), segs[1].End)
	assert.Equal(t, geom.Vec2(10, 20), segs[2].End)
	// Z returns to the subpath start
	assert.Equal(t, geom.Vec2(10, 10), segs[3].End)
}

func TestPathRelativeCommands(t *testing.T) {
	segs := testConverter().parsePathData("m 10 10 l 10 0 v 10 h -10 z")
	require.Len(t, segs, 4)
	assert.Equal(t, geom.Vec2(20, 10), segs[0].End)
	assert.Equal(t, geom.Vec2(20, 20), segs[1].End)
	assert.Equal(t, geom.Vec2(10, 20), segs[2].End)
	assert.Equal(t, geom.Vec2(10, 10), segs[3].End)
}

func TestPathImplicitLineTo(t *testing.T) {
	// coordinate pairs after the first M pair are implicit line-tos
	segs := testConverter().parsePathData("M 0 0 10 0 10 10")
	require.Len(t, segs, 2)
	assert.Equal(t, ir.SegLine, segs[0].Kind)
	assert.Equal(t, geom.Vec2(10, 0), segs[0].End)
	assert.Equal(t, geom.Vec2(10, 10), segs[1].End)
}

func TestQuadraticElevation(t *testing.T) {
	segs := testConverter().parsePathData("M 0 0 Q 30 60 60 0")
	require.Len(t, segs, 1)
	sg := segs[0]
	require.Equal(t, ir.SegBezier, sg.Kind)
	// control1 = start + 2/3*(q-start), control2 = end + 2/3*(q-end)
	assert.InDelta(t, 20, sg.Control1.X, 1e-9)
	assert.InDelta(t, 40, sg.Control1.Y, 1e-9)
	assert.InDelta(t, 40, sg.Control2.X, 1e-9)
	assert.InDelta(t, 40, sg.Control2.Y, 1e-9)
	assert.Equal(t, geom.Vec2(60, 0), sg.End)
}

func TestSmoothCubicReflection(t *testing.T) {
	segs := testConverter().parsePathData("M 0 0 C 0 10 10 10 10 0 S 20 -10 20 0")
	require.Len(t, segs, 2)
	// reflected control: 2*(10,0) - (10,10) = (10,-10)
	assert.InDelta(t, 10, segs[1].Control1.X, 1e-9)
	assert.InDelta(t, -10, segs[1].Control1.Y, 1e-9)
}

func TestSmoothQuadReflection(t *testing.T) {
	segs := testConverter().parsePathData("M 0 0 Q 10 10 20 0 T 40 0")
	require.Len(t, segs, 2)
	// the reflection happens on the pre-elevation control (30,-10),
	// then elevates: control1 = (20,0) + 2/3*((30,-10)-(20,0))
	assert.InDelta(t, 20+20.0/3, segs[1].Control1.X, 1e-9)
	assert.InDelta(t, -20.0/3, segs[1].Control1.Y, 1e-9)
}

func TestSmoothWithoutPredecessor(t *testing.T) {
	// S without a preceding cubic uses the current point as control1
	segs := testConverter().parsePathData("M 5 5 S 20 10 20 0")
	require.Len(t, segs, 1)
	assert.Equal(t, geom.Vec2(5, 5), segs[0].Control1)
}

func TestArcSemicircle(t *testing.T) {
	segs := testConverter().parsePathData("M 0 0 A 10 10 0 0 1 20 0")
	require.NotEmpty(t, segs)
	// a half circle splits into two quarter-circle cubics
	assert.Len(t, segs, 2)
	for _, sg := range segs {
		assert.Equal(t, ir.SegBezier, sg.Kind)
	}
	last := segs[len(segs)-1]
	assert.InDelta(t, 20, last.End.X, 1e-9)
	assert.InDelta(t, 0, last.End.Y, 1e-9)
	// contiguous joins
	for i := 1; i < len(segs); i++ {
		assert.InDelta(t, segs[i-1].End.X, segs[i].Start.X, 1e-9)
		assert.InDelta(t, segs[i-1].End.Y, segs[i].Start.Y, 1e-9)
	}
	// sweep=1 goes clockwise in SVG's y-down space, through (10,-10)...
	// for this arc the midpoint join sits on the circle
	mid := segs[0].End
	assert.InDelta(t, 10, math.Hypot(mid.X-10, mid.Y), 1e-6)
}

func TestArcDegenerateRadiusIsLine(t *testing.T) {
	segs := testConverter().parsePathData("M 0 0 A 0 10 0 0 1 20 0")
	require.Len(t, segs, 1)
	assert.Equal(t, ir.SegLine, segs[0].Kind)
	assert.Equal(t, geom.Vec2(20, 0), segs[0].End)
}

func TestArcRadiiScaleUp(t *testing.T) {
	// radii too small to span the endpoints get scaled up
	segs := testConverter().parsePathData("M 0 0 A 1 1 0 0 1 20 0")
	require.NotEmpty(t, segs)
	last := segs[len(segs)-1]
	assert.InDelta(t, 20, last.End.X, 1e-9)
	assert.InDelta(t, 0, last.End.Y, 1e-9)
}

func TestBadCommandSkipped(t *testing.T) {
	// the underparameterized L is dropped, parsing continues
	segs := testConverter().parsePathData("M 0 0 L 5 L 10 10")
	require.Len(t, segs, 1)
	assert.Equal(t, geom.Vec2(10, 10), segs[0].End)
}

func TestMultipleSubpaths(t *testing.T) {
	segs := testConverter().parsePathData("M 0 0 L 10 0 Z M 20 0 L 30 0 Z")
	require.Len(t, segs, 4)
	assert.Equal(t, geom.Vec2(0, 0), segs[1].End)
	assert.Equal(t, geom.Vec2(20, 0), segs[2].Start)
	assert.Equal(t, geom.Vec2(20, 0), segs[3].End)
}

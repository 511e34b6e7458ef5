// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() Scene {
	tx := geom.Translate2D(5, 5)
	focal := geom.Vec2(0.3, 0.3)
	return Scene{
		&Group{
			Opacity:   1,
			Transform: &tx,
			Children: Scene{
				&Rectangle{
					Bounds:  geom.Rect{X: 0, Y: 0, Width: 10, Height: 10},
					Fill:    SolidPaint("FF0000", 1),
					Opacity: 1,
				},
				&Path{
					Segments: []Segment{
						LineSeg(geom.Vec2(0, 0), geom.Vec2(10, 0)),
						BezierSeg(geom.Vec2(10, 0), geom.Vec2(12, 2), geom.Vec2(12, 8), geom.Vec2(10, 10)),
					},
					Stroke: &Stroke{
						Paint:      Paint{Kind: PaintSolid, RGB: "000000", Opacity: 1},
						Width:      2,
						Join:       JoinRound,
						Cap:        CapSquare,
						MiterLimit: 4,
						DashArray:  []float64{4, 2},
					},
					Opacity: 0.5,
					Clip:    &ClipRef{ClipID: "clip0"},
				},
			},
		},
		&TextFrame{
			Origin: geom.Vec2(3, 20),
			Runs: []Run{
				{Text: "hello", FontFamily: "Arial", FontSizePt: 12, Bold: true, RGB: "336699",
					Nav: &NavigationSpec{Kind: NavExternal, URL: "https://example.com", Tooltip: "go"}},
			},
			BBox:   geom.Rect{X: 3, Y: 10, Width: 40, Height: 12},
			Anchor: AnchorMiddle,
		},
		&Circle{Center: geom.Vec2(5, 5), Radius: 4, Opacity: 1,
			Fill: &Paint{
				Kind:   PaintRadialGradient,
				Center: geom.Vec2(0.5, 0.5),
				Radius: 0.5,
				Focal:  &focal,
				Stops: []GradientStop{
					{Offset: 0, RGB: "FFFFFF", Opacity: 1},
					{Offset: 1, RGB: "000000", Opacity: 0.8},
				},
				Opacity: 1,
			}},
		&Image{Bounds: geom.Rect{X: 0, Y: 0, Width: 16, Height: 16},
			Data: []byte{0x89, 0x50, 0x4e, 0x47}, Format: "png", Opacity: 1},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	scene := testScene()
	data, err := scene.WriteJSON()
	require.NoError(t, err)

	back, err := ReadJSON(data)
	require.NoError(t, err)
	assert.Equal(t, scene, back)
}

func TestJSONUnknownKind(t *testing.T) {
	_, err := ReadJSON([]byte(`[{"kind":"blob","node":{}}]`))
	assert.Error(t, err)
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "rich-text-frame", (&RichTextFrame{}).Kind().String())
	assert.Equal(t, "group", (&Group{}).Kind().String())
	assert.Equal(t, "bezier", SegBezier.String())
	assert.Equal(t, "radial-gradient", PaintRadialGradient.String())
}

func TestSegmentsBounds(t *testing.T) {
	segs := []Segment{
		LineSeg(geom.Vec2(1, 1), geom.Vec2(4, 1)),
		BezierSeg(geom.Vec2(4, 1), geom.Vec2(5, 2), geom.Vec2(5, 5), geom.Vec2(4, 6)),
	}
	bb := SegmentsBounds(segs)
	assert.Equal(t, geom.B2(1, 1, 5, 6), bb)
}

func TestTransformSegments(t *testing.T) {
	segs := []Segment{LineSeg(geom.Vec2(0, 0), geom.Vec2(1, 0))}
	got := TransformSegments(segs, geom.Translate2D(2, 3))
	assert.Equal(t, LineSeg(geom.Vec2(2, 3), geom.Vec2(3, 3)), got[0])
	// original untouched
	assert.Equal(t, LineSeg(geom.Vec2(0, 0), geom.Vec2(1, 0)), segs[0])
}

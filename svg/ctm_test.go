// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deckforge/svg2pptx/geom"
)

func TestCoordinateSpacePushPop(t *testing.T) {
	cs := NewCoordinateSpace(geom.Identity2())
	assert.Equal(t, 1, cs.Depth())
	cs.Push(geom.Translate2D(10, 0))
	cs.Push(geom.Scale2D(2, 2))
	assert.Equal(t, 3, cs.Depth())
	// translate applied after scale of the local point
	p := cs.Apply(geom.Vec2(1, 1))
	assert.InDelta(t, 12, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
	cs.Pop()
	cs.Pop()
	assert.Equal(t, 1, cs.Depth())
	assert.True(t, cs.Current().IsIdentity())
	// popping past the viewport entry is a no-op
	cs.Pop()
	assert.Equal(t, 1, cs.Depth())
}

func TestTransformInverseRoundTrip(t *testing.T) {
	m := geom.Translate2D(3, 4).Mul(geom.Rotate2D(geom.DegToRad(30))).Mul(geom.Scale2D(2, 5))
	id := m.Mul(m.Inverse())
	assert.InDelta(t, 1, id.XX, 1e-9)
	assert.InDelta(t, 0, id.YX, 1e-9)
	assert.InDelta(t, 0, id.XY, 1e-9)
	assert.InDelta(t, 1, id.YY, 1e-9)
	assert.InDelta(t, 0, id.X0, 1e-9)
	assert.InDelta(t, 0, id.Y0, 1e-9)
}

// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1e-9

func TestIdentity(t *testing.T) {
	id := Identity2()
	v := Vec2(3.5, -2.25)
	assert.Equal(t, v, id.MulVector2AsPoint(v))
	assert.True(t, id.IsIdentity())
	assert.Equal(t, id, id.Mul(id))
}

func TestMulComposition(t *testing.T) {
	// translate-then-scale differs from scale-then-translate
	ts := Translate2D(10, 20).Mul(Scale2D(2, 2))
	st := Scale2D(2, 2).Mul(Translate2D(10, 20))
	p := Vec2(1, 1)
	assert.Equal(t, Vec2(12, 22), ts.MulVector2AsPoint(p))
	assert.Equal(t, Vec2(22, 42), st.MulVector2AsPoint(p))
}

func TestRotate(t *testing.T) {
	rot := Rotate2D(math.Pi / 2)
	got := rot.MulVector2AsPoint(Vec2(1, 0))
	assert.True(t, got.AlmostEqual(Vec2(0, 1), standardTol))
}

func TestInverse(t *testing.T) {
	m := Translate2D(5, -3).Rotate(0.3).Scale(2, 0.5)
	inv := m.Inverse()
	p := Vec2(7, 11)
	back := inv.MulVector2AsPoint(m.MulVector2AsPoint(p))
	assert.True(t, back.AlmostEqual(p, 1e-9))
}

func TestSetString(t *testing.T) {
	var m Matrix2
	assert.NoError(t, m.SetString("translate(5, 5)"))
	assert.Equal(t, Translate2D(5, 5), m)

	assert.NoError(t, m.SetString("matrix(1,2,3,4,5,6)"))
	assert.Equal(t, Matrix2{1, 2, 3, 4, 5, 6}, m)

	// left-to-right composition: translate applied to incoming
	// coordinates after scale
	assert.NoError(t, m.SetString("translate(10,0) scale(2)"))
	assert.Equal(t, Vec2(12, 0), m.MulVector2AsPoint(Vec2(1, 0)))

	assert.NoError(t, m.SetString("rotate(90)"))
	assert.True(t, m.MulVector2AsPoint(Vec2(1, 0)).AlmostEqual(Vec2(0, 1), standardTol))

	assert.NoError(t, m.SetString("rotate(90, 5, 5)"))
	assert.True(t, m.MulVector2AsPoint(Vec2(5, 5)).AlmostEqual(Vec2(5, 5), standardTol))

	assert.NoError(t, m.SetString("skewX(45)"))
	assert.InDelta(t, 1, m.XY, standardTol)

	assert.NoError(t, m.SetString("none"))
	assert.True(t, m.IsIdentity())
}

func TestSetStringErrors(t *testing.T) {
	var m Matrix2
	assert.Error(t, m.SetString("translate(1,2,3)"))
	assert.True(t, m.IsIdentity())
	assert.Error(t, m.SetString("bogus(1)"))
	assert.True(t, m.IsIdentity())
	assert.Error(t, m.SetString("translate(1"))
	assert.True(t, m.IsIdentity())
	assert.Error(t, m.SetString("matrix(1,2)"))
	assert.True(t, m.IsIdentity())
}

func TestExtract(t *testing.T) {
	m := Translate2D(3, 4).Rotate(0.25)
	assert.Equal(t, Vec2(3, 4), m.ExtractTranslation())
	assert.InDelta(t, 0.25, m.ExtractRotation(), standardTol)
	sx, sy := Scale2D(3, 7).ExtractScale()
	assert.InDelta(t, 3, sx, standardTol)
	assert.InDelta(t, 7, sy, standardTol)
}

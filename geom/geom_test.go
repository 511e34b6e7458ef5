// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadPoints(t *testing.T) {
	pts, err := ReadPoints("0,0 10 0 10,10")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 10, 0, 10, 10}, pts)

	pts, err = ReadPoints(" 1.5, -2e1\t3 ")
	assert.NoError(t, err)
	assert.Equal(t, []float64{1.5, -20, 3}, pts)

	pts, err = ReadPoints("")
	assert.NoError(t, err)
	assert.Nil(t, pts)

	_, err = ReadPoints("1 x 3")
	assert.Error(t, err)
}

func TestParseFloat(t *testing.T) {
	f, err := ParseFloat(" 12.5px ")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, f)

	_, err = ParseFloat("wide")
	assert.Error(t, err)
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 2, 1, 5), b)
	assert.Equal(t, Vec2(2, 3), b.Size())
	assert.Equal(t, Rect{X: -1, Y: 2, Width: 2, Height: 3}, b.ToRect())
}

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(0, 0, 2, 2)
	got := b.MulMatrix2(Translate2D(1, 1))
	assert.Equal(t, B2(1, 1, 3, 3), got)
}

func TestNewRect(t *testing.T) {
	r := NewRect(10, 10, -4, -6)
	assert.Equal(t, Rect{X: 6, Y: 4, Width: 4, Height: 6}, r)
}

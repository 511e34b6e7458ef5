// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/deckforge/svg2pptx/geom"
)

// CoordinateSpace tracks the current transformation matrix through the
// element tree: a stack of matrices where each entry is the composition
// of every transform from the viewport down to the current element.
type CoordinateSpace struct {
	stack []geom.Matrix2
}

// NewCoordinateSpace returns a coordinate space holding only the given
// viewport matrix.
func NewCoordinateSpace(viewport geom.Matrix2) *CoordinateSpace {
	return &CoordinateSpace{stack: []geom.Matrix2{viewport}}
}

// Reset discards all pushed transforms and restores the given viewport
// matrix as the sole entry.
func (cs *CoordinateSpace) Reset(viewport geom.Matrix2) {
	cs.stack = cs.stack[:0]
	cs.stack = append(cs.stack, viewport)
}

// Current returns the active matrix, the top of the stack.
func (cs *CoordinateSpace) Current() geom.Matrix2 {
	return cs.stack[len(cs.stack)-1]
}

// Push composes local onto the current matrix, with local applied
// first, and makes the result current.
func (cs *CoordinateSpace) Push(local geom.Matrix2) {
	cs.stack = append(cs.stack, cs.Current().Mul(local))
}

// Pop restores the matrix that was current before the last Push. The
// viewport entry is never popped.
func (cs *CoordinateSpace) Pop() {
	if len(cs.stack) > 1 {
		cs.stack = cs.stack[:len(cs.stack)-1]
	}
}

// Depth returns the number of matrices on the stack, including the
// viewport entry.
func (cs *CoordinateSpace) Depth() int {
	return len(cs.stack)
}

// Apply transforms the point p by the current matrix.
func (cs *CoordinateSpace) Apply(p geom.Vector2) geom.Vector2 {
	return cs.Current().MulVector2AsPoint(p)
}

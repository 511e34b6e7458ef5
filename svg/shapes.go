// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/beevik/etree"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

// kappa is the control arm fraction for approximating a quarter circle
// with one cubic bezier.
const kappa = 0.5522847498307936

// floatAttr parses a numeric attribute, returning def when absent or
// unparseable.
func floatAttr(e *etree.Element, def float64, names ...string) float64 {
	v := attr(e, "", names...)
	if v == "" {
		return def
	}
	f, err := geom.ParseFloat(v)
	if err != nil {
		return def
	}
	return f
}

// ownTransform parses the element's transform attribute. A malformed
// value is logged and treated as identity.
func (c *converter) ownTransform(e *etree.Element) geom.Matrix2 {
	v := attr(e, "", "transform")
	if v == "" {
		return geom.Identity2()
	}
	m := geom.Identity2()
	if err := m.SetString(v); err != nil {
		c.logger.Warn("svg: cannot parse transform", "transform", v, "err", err)
		return geom.Identity2()
	}
	return m
}

// needsDecompose reports whether a basic shape must be converted to a
// path: any clip, filter or mask reference, or a non-identity own
// transform, cannot be expressed on the primitive node kinds.
func needsDecompose(st *style, xf geom.Matrix2) bool {
	if st.prop("clip-path", "") != "" || st.prop("filter", "") != "" || st.prop("mask", "") != "" {
		return true
	}
	return !xf.IsIdentity()
}

// shapePath finishes a decomposed shape: bakes the own transform into
// the segments and attaches paint, clip and navigation.
func (c *converter) shapePath(segs []ir.Segment, xf geom.Matrix2, ps paintStyle, st *style, nav *ir.NavigationSpec) ir.Node {
	if !xf.IsIdentity() {
		segs = ir.TransformSegments(segs, xf)
	}
	return &ir.Path{
		Segments: segs,
		Fill:     ps.fill,
		Stroke:   ps.stroke,
		Opacity:  ps.opacity,
		Clip:     c.clipRefFor(st),
		Nav:      nav,
	}
}

func (c *converter) convertRect(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	w := floatAttr(e, 0, "width")
	h := floatAttr(e, 0, "height")
	if w <= 0 || h <= 0 {
		c.logger.Debug("svg: dropping rect with empty extent", "width", w, "height", h)
		return nil
	}
	x := floatAttr(e, 0, "x")
	y := floatAttr(e, 0, "y")
	rx, ry := rectRadii(e, w, h)
	ps := c.paintStyleFor(st)
	xf := c.ownTransform(e)
	if needsDecompose(st, xf) || rx != ry {
		return c.shapePath(roundedRectSegments(geom.NewRect(x, y, w, h), rx, ry), xf, ps, st, nav)
	}
	return &ir.Rectangle{
		Bounds:  geom.NewRect(x, y, w, h),
		Radius:  geom.Vec2(rx, ry),
		Fill:    ps.fill,
		Stroke:  ps.stroke,
		Opacity: ps.opacity,
		Nav:     nav,
	}
}

// rectRadii resolves rx/ry with the SVG defaulting rules: a missing
// one takes the other's value, and both clamp to half the extent.
func rectRadii(e *etree.Element, w, h float64) (rx, ry float64) {
	rx = floatAttr(e, -1, "rx")
	ry = floatAttr(e, -1, "ry")
	if rx < 0 && ry < 0 {
		return 0, 0
	}
	if rx < 0 {
		rx = ry
	}
	if ry < 0 {
		ry = rx
	}
	rx = min(rx, w/2)
	ry = min(ry, h/2)
	return rx, ry
}

func (c *converter) convertCircle(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	r := floatAttr(e, 0, "r")
	if r <= 0 {
		c.logger.Debug("svg: dropping circle with non-positive radius", "r", r)
		return nil
	}
	ctr := geom.Vec2(floatAttr(e, 0, "cx"), floatAttr(e, 0, "cy"))
	ps := c.paintStyleFor(st)
	xf := c.ownTransform(e)
	if needsDecompose(st, xf) {
		return c.shapePath(ellipseSegments(ctr, r, r), xf, ps, st, nav)
	}
	return &ir.Circle{
		Center:  ctr,
		Radius:  r,
		Fill:    ps.fill,
		Stroke:  ps.stroke,
		Opacity: ps.opacity,
		Nav:     nav,
	}
}

func (c *converter) convertEllipse(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	rx := floatAttr(e, 0, "rx")
	ry := floatAttr(e, 0, "ry")
	if rx <= 0 || ry <= 0 {
		c.logger.Debug("svg: dropping ellipse with non-positive radii", "rx", rx, "ry", ry)
		return nil
	}
	ctr := geom.Vec2(floatAttr(e, 0, "cx"), floatAttr(e, 0, "cy"))
	ps := c.paintStyleFor(st)
	xf := c.ownTransform(e)
	if needsDecompose(st, xf) {
		return c.shapePath(ellipseSegments(ctr, rx, ry), xf, ps, st, nav)
	}
	return &ir.Ellipse{
		Center:  ctr,
		Radii:   geom.Vec2(rx, ry),
		Fill:    ps.fill,
		Stroke:  ps.stroke,
		Opacity: ps.opacity,
		Nav:     nav,
	}
}

func (c *converter) convertLine(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	p1 := geom.Vec2(floatAttr(e, 0, "x1"), floatAttr(e, 0, "y1"))
	p2 := geom.Vec2(floatAttr(e, 0, "x2"), floatAttr(e, 0, "y2"))
	ps := c.paintStyleFor(st)
	ps.fill = nil // a line is never filled
	return c.shapePath([]ir.Segment{ir.LineSeg(p1, p2)}, c.ownTransform(e), ps, st, nav)
}

func (c *converter) convertPoly(e *etree.Element, st *style, nav *ir.NavigationSpec, closed bool) ir.Node {
	pts, err := geom.ReadPoints(attr(e, "", "points"))
	if err != nil {
		c.logger.Warn("svg: cannot parse points", "points", attr(e, "", "points"), "err", err)
		return nil
	}
	// an odd trailing coordinate is dropped
	np := len(pts) / 2
	if np < 2 {
		return nil
	}
	segs := make([]ir.Segment, 0, np)
	for i := 1; i < np; i++ {
		segs = append(segs, ir.LineSeg(
			geom.Vec2(pts[2*i-2], pts[2*i-1]),
			geom.Vec2(pts[2*i], pts[2*i+1]),
		))
	}
	ps := c.paintStyleFor(st)
	if closed {
		first := geom.Vec2(pts[0], pts[1])
		last := geom.Vec2(pts[2*np-2], pts[2*np-1])
		if !last.AlmostEqual(first, 1e-12) {
			segs = append(segs, ir.LineSeg(last, first))
		}
	} else {
		ps.fill = nil // an open polyline is never filled
	}
	return c.shapePath(segs, c.ownTransform(e), ps, st, nav)
}

func (c *converter) convertPath(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	segs := c.parsePathData(attr(e, "", "d"))
	if len(segs) == 0 {
		return nil
	}
	ps := c.paintStyleFor(st)
	return c.shapePath(segs, c.ownTransform(e), ps, st, nav)
}

////////  Shape decomposition

// roundedRectSegments builds the outline of a rectangle with the given
// corner radii, clockwise from the top-left corner. Zero radii give
// four line segments.
func roundedRectSegments(r geom.Rect, rx, ry float64) []ir.Segment {
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	if rx <= 0 || ry <= 0 {
		return []ir.Segment{
			ir.LineSeg(geom.Vec2(x, y), geom.Vec2(x+w, y)),
			ir.LineSeg(geom.Vec2(x+w, y), geom.Vec2(x+w, y+h)),
			ir.LineSeg(geom.Vec2(x+w, y+h), geom.Vec2(x, y+h)),
			ir.LineSeg(geom.Vec2(x, y+h), geom.Vec2(x, y)),
		}
	}
	ax := kappa * rx
	ay := kappa * ry
	segs := make([]ir.Segment, 0, 8)
	segs = append(segs,
		ir.LineSeg(geom.Vec2(x+rx, y), geom.Vec2(x+w-rx, y)),
		ir.BezierSeg(geom.Vec2(x+w-rx, y), geom.Vec2(x+w-rx+ax, y), geom.Vec2(x+w, y+ry-ay), geom.Vec2(x+w, y+ry)),
		ir.LineSeg(geom.Vec2(x+w, y+ry), geom.Vec2(x+w, y+h-ry)),
		ir.BezierSeg(geom.Vec2(x+w, y+h-ry), geom.Vec2(x+w, y+h-ry+ay), geom.Vec2(x+w-rx+ax, y+h), geom.Vec2(x+w-rx, y+h)),
		ir.LineSeg(geom.Vec2(x+w-rx, y+h), geom.Vec2(x+rx, y+h)),
		ir.BezierSeg(geom.Vec2(x+rx, y+h), geom.Vec2(x+rx-ax, y+h), geom.Vec2(x, y+h-ry+ay), geom.Vec2(x, y+h-ry)),
		ir.LineSeg(geom.Vec2(x, y+h-ry), geom.Vec2(x, y+ry)),
		ir.BezierSeg(geom.Vec2(x, y+ry), geom.Vec2(x, y+ry-ay), geom.Vec2(x+rx-ax, y), geom.Vec2(x+rx, y)),
	)
	return segs
}

// ellipseSegments builds an ellipse outline as four cubic beziers,
// clockwise from the rightmost point.
func ellipseSegments(ctr geom.Vector2, rx, ry float64) []ir.Segment {
	ax := kappa * rx
	ay := kappa * ry
	right := geom.Vec2(ctr.X+rx, ctr.Y)
	bottom := geom.Vec2(ctr.X, ctr.Y+ry)
	left := geom.Vec2(ctr.X-rx, ctr.Y)
	top := geom.Vec2(ctr.X, ctr.Y-ry)
	return []ir.Segment{
		ir.BezierSeg(right, geom.Vec2(right.X, right.Y+ay), geom.Vec2(bottom.X+ax, bottom.Y), bottom),
		ir.BezierSeg(bottom, geom.Vec2(bottom.X-ax, bottom.Y), geom.Vec2(left.X, left.Y+ay), left),
		ir.BezierSeg(left, geom.Vec2(left.X, left.Y-ay), geom.Vec2(top.X-ax, top.Y), top),
		ir.BezierSeg(top, geom.Vec2(top.X+ax, top.Y), geom.Vec2(right.X, right.Y-ay), right),
	}
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/beevik/etree"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

// clipDef is a resolved clipPath definition: the union outline of its
// child shapes, in the clip path's own user space.
type clipDef struct {
	segments []ir.Segment
	bounds   geom.Rect
	rule     string
}

// collectClipPaths resolves every clipPath definition in the document
// into segment outlines, indexed by id.
func (c *converter) collectClipPaths(root *etree.Element) {
	for _, e := range root.FindElements("//clipPath") {
		id := attr(e, "", "id")
		if id == "" {
			continue
		}
		own := c.ownTransform(e)
		def := &clipDef{rule: "nonzero"}
		for _, ch := range e.ChildElements() {
			segs := c.clipShapeSegments(ch)
			if len(segs) == 0 {
				continue
			}
			// the clipPath's own transform applies on top of each
			// child's transform
			if xf := own.Mul(c.ownTransform(ch)); !xf.IsIdentity() {
				segs = ir.TransformSegments(segs, xf)
			}
			def.segments = append(def.segments, segs...)
			if r := clipRule(ch); r != "" {
				def.rule = r
			}
		}
		if len(def.segments) == 0 {
			c.logger.Debug("svg: clipPath has no usable shapes", "id", id)
			continue
		}
		def.bounds = ir.SegmentsBounds(def.segments).ToRect()
		c.clips[id] = def
	}
}

// clipRule reads a clip shape's clip-rule, with an inline style
// declaration taking precedence over the presentation attribute.
func clipRule(e *etree.Element) string {
	rule := attr(e, "", "clip-rule")
	if inline := attr(e, "", "style"); inline != "" {
		if decls, err := parser.ParseDeclarations(inline); err == nil {
			for _, d := range decls {
				if strings.TrimSpace(d.Property) == "clip-rule" {
					rule = strings.TrimSpace(d.Value)
				}
			}
		}
	}
	return rule
}

// clipShapeSegments converts one clipPath child to its outline.
func (c *converter) clipShapeSegments(e *etree.Element) []ir.Segment {
	switch localTag(e) {
	case "rect":
		w := floatAttr(e, 0, "width")
		h := floatAttr(e, 0, "height")
		if w <= 0 || h <= 0 {
			return nil
		}
		rx, ry := rectRadii(e, w, h)
		return roundedRectSegments(geom.NewRect(floatAttr(e, 0, "x"), floatAttr(e, 0, "y"), w, h), rx, ry)
	case "circle":
		r := floatAttr(e, 0, "r")
		if r <= 0 {
			return nil
		}
		return ellipseSegments(geom.Vec2(floatAttr(e, 0, "cx"), floatAttr(e, 0, "cy")), r, r)
	case "ellipse":
		rx := floatAttr(e, 0, "rx")
		ry := floatAttr(e, 0, "ry")
		if rx <= 0 || ry <= 0 {
			return nil
		}
		return ellipseSegments(geom.Vec2(floatAttr(e, 0, "cx"), floatAttr(e, 0, "cy")), rx, ry)
	case "path":
		return c.parsePathData(attr(e, "", "d"))
	case "polygon", "polyline":
		pts, err := geom.ReadPoints(attr(e, "", "points"))
		if err != nil {
			return nil
		}
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
		if localTag(e) == "polygon" {
			segs = append(segs, ir.LineSeg(
				geom.Vec2(pts[2*np-2], pts[2*np-1]),
				geom.Vec2(pts[0], pts[1]),
			))
		}
		return segs
	}
	c.logger.Debug("svg: unsupported clipPath shape", "tag", localTag(e))
	return nil
}

// clipRefFor resolves the style's clip-path reference. A reference to
// an unknown or empty clipPath still yields a ClipRef carrying the id,
// so downstream consumers can tell a failed resolution from no clip.
func (c *converter) clipRefFor(st *style) *ir.ClipRef {
	v := st.prop("clip-path", "")
	if v == "" || v == "none" {
		return nil
	}
	id := nameFromURL(v)
	if id == "" {
		return nil
	}
	def, has := c.clips[id]
	if !has {
		c.logger.Warn("svg: unresolvable clip-path reference", "id", id)
		return &ir.ClipRef{ClipID: id}
	}
	bounds := def.bounds
	return &ir.ClipRef{
		ClipID:      id,
		Segments:    def.segments,
		BoundingBox: &bounds,
		ClipRule:    def.rule,
	}
}

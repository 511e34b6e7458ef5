// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/beevik/etree"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

// maxGradientHrefDepth bounds href chains between gradients, guarding
// against reference cycles.
const maxGradientHrefDepth = 8

// collectGradients indexes every linearGradient and radialGradient in
// the document by id, wherever they appear.
func (c *converter) collectGradients(root *etree.Element) {
	for _, tag := range []string{"linearGradient", "radialGradient"} {
		for _, e := range root.FindElements("//" + tag) {
			if id := attr(e, "", "id"); id != "" {
				c.gradients[id] = e
			}
		}
	}
}

// gradientPaint resolves a gradient reference to a paint. A missing
// id or a gradient with fewer than two usable stops yields nil.
func (c *converter) gradientPaint(id string) *ir.Paint {
	e, has := c.gradients[id]
	if !has {
		return nil
	}
	stops := c.gradientStops(e, 0)
	if len(stops) < 2 {
		return nil
	}
	p := &ir.Paint{
		Opacity: 1,
		Stops:   stops,
		Units:   attr(e, "objectBoundingBox", "gradientUnits"),
	}
	if xf := attr(e, "", "gradientTransform"); xf != "" {
		m := geom.Identity2()
		if err := m.SetString(xf); err == nil {
			p.Transform = &m
		} else {
			c.logger.Warn("svg: cannot parse gradientTransform", "transform", xf, "err", err)
		}
	}
	switch localTag(e) {
	case "linearGradient":
		p.Kind = ir.PaintLinearGradient
		p.Start = geom.Vec2(fractionAttr(e, 0, "x1"), fractionAttr(e, 0, "y1"))
		p.End = geom.Vec2(fractionAttr(e, 1, "x2"), fractionAttr(e, 0, "y2"))
	case "radialGradient":
		p.Kind = ir.PaintRadialGradient
		p.Center = geom.Vec2(fractionAttr(e, 0.5, "cx"), fractionAttr(e, 0.5, "cy"))
		p.Radius = fractionAttr(e, 0.5, "r")
		if hasAttr(e, "fx") || hasAttr(e, "fy") {
			focal := geom.Vec2(fractionAttr(e, p.Center.X, "fx"), fractionAttr(e, p.Center.Y, "fy"))
			p.Focal = &focal
		}
	}
	return p
}

// gradientStops reads the stop children of a gradient. A gradient
// without stops of its own inherits them from its href target.
func (c *converter) gradientStops(e *etree.Element, depth int) []ir.GradientStop {
	var stops []ir.GradientStop
	for _, s := range e.ChildElements() {
		if localTag(s) != "stop" {
			continue
		}
		stops = append(stops, c.gradientStop(s))
	}
	if len(stops) > 0 {
		return stops
	}
	ref := nameFromURL(href(e))
	if ref == "" {
		ref = strings.TrimPrefix(href(e), "#")
	}
	if ref == "" || depth >= maxGradientHrefDepth {
		return nil
	}
	if target, has := c.gradients[ref]; has {
		return c.gradientStops(target, depth+1)
	}
	return nil
}

// gradientStop reads one stop: offset, stop-color and stop-opacity,
// each settable as an attribute or through the style attribute.
func (c *converter) gradientStop(s *etree.Element) ir.GradientStop {
	color := attr(s, "", "stop-color")
	opacity := attr(s, "", "stop-opacity")
	if inline := attr(s, "", "style"); inline != "" {
		if decls, err := parser.ParseDeclarations(inline); err == nil {
			for _, d := range decls {
				switch strings.TrimSpace(d.Property) {
				case "stop-color":
					color = strings.TrimSpace(d.Value)
				case "stop-opacity":
					opacity = strings.TrimSpace(d.Value)
				}
			}
		}
	}
	hex, ok := parseColor(color)
	if !ok {
		hex = "000000"
	}
	op := 1.0
	if opacity != "" {
		if f, err := strconv.ParseFloat(opacity, 64); err == nil {
			op = clampUnit(f)
		}
	}
	return ir.GradientStop{
		Offset:  clampUnit(readFraction(attr(s, "0", "offset"))),
		RGB:     hex,
		Opacity: op,
	}
}

// fractionAttr parses an attribute as a number or percentage.
func fractionAttr(e *etree.Element, def float64, name string) float64 {
	v := attr(e, "", name)
	if v == "" {
		return def
	}
	return readFraction(v)
}

// readFraction parses a number or percentage into a fraction, clamped
// to [0,1] only for percentages.
func readFraction(v string) float64 {
	v = strings.TrimSpace(v)
	pct := strings.HasSuffix(v, "%")
	v = strings.TrimSuffix(v, "%")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	if pct {
		f /= 100
		f = clampUnit(f)
	}
	return f
}

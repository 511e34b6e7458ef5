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

// stylePropertyNames is the set of presentation attributes the
// converter resolves through the style cascade.
var stylePropertyNames = map[string]bool{
	"fill":              true,
	"fill-opacity":      true,
	"fill-rule":         true,
	"stroke":            true,
	"stroke-opacity":    true,
	"stroke-width":      true,
	"stroke-linejoin":   true,
	"stroke-linecap":    true,
	"stroke-miterlimit": true,
	"stroke-dasharray":  true,
	"opacity":           true,
	"color":             true,
	"font-family":       true,
	"font-size":         true,
	"font-style":        true,
	"font-weight":       true,
	"text-anchor":       true,
	"text-decoration":   true,
	"clip-rule":         true,
	"clip-path":         true,
	"filter":            true,
	"mask":              true,
	"display":           true,
	"visibility":        true,
}

// nonInherited are style properties that apply only to the element
// they are set on and never cascade to children.
var nonInherited = map[string]bool{
	"opacity":   true,
	"clip-path": true,
	"filter":    true,
	"mask":      true,
	"display":   true,
}

// style is the effective resolved style of one element: the cascade of
// parent-inherited values, presentation attributes, stylesheet rules,
// and inline style declarations, in that precedence order.
type style struct {
	props map[string]string
}

func newStyle() *style {
	return &style{props: map[string]string{}}
}

// prop returns the resolved property value, or def if unset.
func (s *style) prop(name, def string) string {
	if v, has := s.props[name]; has && v != "" {
		return v
	}
	return def
}

// float returns the resolved property parsed as a float, or def when
// unset or unparseable.
func (s *style) float(name string, def float64) float64 {
	v, has := s.props[name]
	if !has {
		return def
	}
	f, err := geom.ParseFloat(v)
	if err != nil {
		return def
	}
	return f
}

// inheritable returns a copy of the inheritable subset of the style,
// for cascading into child elements.
func (s *style) inheritable() *style {
	ch := newStyle()
	for k, v := range s.props {
		if !nonInherited[k] {
			ch.props[k] = v
		}
	}
	return ch
}

// styleFor computes the effective style for the given element by
// cascading, lowest to highest precedence: parent-inherited values,
// presentation attributes, stylesheet rules matching the element, and
// inline style="" declarations.
func (c *converter) styleFor(e *etree.Element, parent *style) *style {
	var st *style
	if parent != nil {
		st = parent.inheritable()
	} else {
		st = newStyle()
	}
	for _, a := range e.Attr {
		if a.Space == "" && stylePropertyNames[a.Key] {
			st.props[a.Key] = a.Value
		}
	}
	c.applyStylesheet(e, st)
	c.applyInlineStyle(e, st)
	return st
}

// applyInlineStyle parses the element's style attribute as CSS
// declarations and applies them at highest precedence. A malformed
// declaration list is logged and skipped, never fatal.
func (c *converter) applyInlineStyle(e *etree.Element, st *style) {
	inline := attr(e, "", "style")
	if inline == "" {
		return
	}
	decls, err := parser.ParseDeclarations(inline)
	if err != nil {
		c.logger.Warn("svg: cannot parse style declarations", "style", inline, "err", err)
		return
	}
	for _, d := range decls {
		name := strings.TrimSpace(d.Property)
		if stylePropertyNames[name] {
			st.props[name] = strings.TrimSpace(d.Value)
		}
	}
}

////////  Paint style

// paintStyle is the resolved fill/stroke/opacity state of an element.
type paintStyle struct {
	fill    *ir.Paint
	stroke  *ir.Stroke
	opacity float64
}

// paintStyleFor resolves the element's paint style from its cascaded
// style. fill="none" yields a nil fill, which is a different outcome
// from an unparseable color, which yields solid black.
func (c *converter) paintStyleFor(st *style) paintStyle {
	ps := paintStyle{opacity: clampUnit(st.float("opacity", 1))}
	ps.fill = c.resolvePaint(st.prop("fill", ""), clampUnit(st.float("fill-opacity", 1)))
	if sp := c.resolvePaint(st.prop("stroke", ""), clampUnit(st.float("stroke-opacity", 1))); sp != nil {
		w := st.float("stroke-width", 1)
		if w < 0 {
			w = 0
		}
		ps.stroke = &ir.Stroke{
			Paint:      *sp,
			Width:      w,
			Join:       lineJoinFromString(st.prop("stroke-linejoin", "miter")),
			Cap:        lineCapFromString(st.prop("stroke-linecap", "butt")),
			MiterLimit: st.float("stroke-miterlimit", 4),
			DashArray:  dashArrayFromString(st.prop("stroke-dasharray", "")),
		}
	}
	return ps
}

// resolvePaint resolves one paint-valued property: none/absent yields
// nil, url(#id) yields the referenced gradient (nil if unresolvable),
// and anything else is parsed as a color with black fallback.
func (c *converter) resolvePaint(val string, opacity float64) *ir.Paint {
	val = strings.TrimSpace(val)
	if val == "" || val == "none" {
		return nil
	}
	if id := nameFromURL(val); id != "" {
		p := c.gradientPaint(id)
		if p == nil {
			c.logger.Warn("svg: unresolvable paint reference", "url", val)
		}
		return p
	}
	hex, ok := parseColor(val)
	if !ok {
		c.logger.Warn("svg: unparseable color, using black", "color", val)
		hex = "000000"
	}
	return ir.SolidPaint(hex, opacity)
}

func lineJoinFromString(v string) ir.LineJoin {
	switch strings.TrimSpace(v) {
	case "round":
		return ir.JoinRound
	case "bevel":
		return ir.JoinBevel
	}
	return ir.JoinMiter
}

func lineCapFromString(v string) ir.LineCap {
	switch strings.TrimSpace(v) {
	case "round":
		return ir.CapRound
	case "square":
		return ir.CapSquare
	}
	return ir.CapButt
}

func dashArrayFromString(v string) []float64 {
	v = strings.TrimSpace(v)
	if v == "" || v == "none" {
		return nil
	}
	pts, err := geom.ReadPoints(v)
	if err != nil {
		return nil
	}
	return pts
}

////////  Text style

// textStyle is the resolved typographic state of a text element or
// tspan: everything a [ir.Run] needs.
type textStyle struct {
	family    string
	sizePt    float64
	bold      bool
	italic    bool
	underline bool
	strike    bool
	rgb       string
	anchor    ir.Anchor
}

// textStyleFor resolves the typographic style from a cascaded style.
func textStyleFor(st *style) textStyle {
	ts := textStyle{
		family: fontFamilyFromString(st.prop("font-family", "Arial")),
		sizePt: fontSizePt(st.prop("font-size", "")),
		italic: strings.Contains(st.prop("font-style", ""), "italic"),
		rgb:    "000000",
	}
	weight := fontWeightName(st.prop("font-weight", "normal"))
	ts.bold = weight == "semibold" || weight == "bold" || weight == "bolder"
	deco := st.prop("text-decoration", "")
	ts.underline = strings.Contains(deco, "underline")
	ts.strike = strings.Contains(deco, "line-through")
	if fill := st.prop("fill", ""); fill != "" && fill != "none" {
		if hex, ok := parseColor(fill); ok {
			ts.rgb = hex
		}
	}
	switch st.prop("text-anchor", "start") {
	case "middle":
		ts.anchor = ir.AnchorMiddle
	case "end":
		ts.anchor = ir.AnchorEnd
	default:
		ts.anchor = ir.AnchorStart
	}
	return ts
}

// fontFamilyFromString returns the first entry of a comma-separated
// font fallback list, with quotes stripped.
func fontFamilyFromString(v string) string {
	first, _, _ := strings.Cut(v, ",")
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `'"`)
	if first == "" {
		return "Arial"
	}
	return first
}

// fontSizePt converts a font-size value to points: pt as-is, px
// multiplied by 0.75, em relative to the 12pt base, bare numbers as pt.
// The default is 12pt.
func fontSizePt(v string) float64 {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return 12
	}
	unit := ""
	num := v
	for _, u := range []string{"pt", "px", "em"} {
		if strings.HasSuffix(v, u) {
			unit = u
			num = strings.TrimSuffix(v, u)
			break
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || f <= 0 {
		return 12
	}
	switch unit {
	case "px":
		return f * 0.75
	case "em":
		return f * 12
	}
	return f
}

// fontWeightName normalizes a font-weight value to one of lighter,
// light, normal, semibold, bold, bolder, mapping numeric weights to
// keywords by bucket.
func fontWeightName(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "lighter", "light", "normal", "semibold", "bold", "bolder":
		return v
	case "":
		return "normal"
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return "normal"
	}
	switch {
	case n <= 200:
		return "lighter"
	case n <= 300:
		return "light"
	case n <= 500:
		return "normal"
	case n <= 600:
		return "semibold"
	case n <= 700:
		return "bold"
	default:
		return "bolder"
	}
}

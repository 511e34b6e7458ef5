// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

// foreign content classes
const (
	foreignNestedSVG = "nested_svg"
	foreignImage     = "image"
	foreignXHTML     = "xhtml"
	foreignMathML    = "mathml"
	foreignUnknown   = "unknown"
)

// metadataTags are skipped when looking for a foreignObject's first
// significant child.
var metadataTags = map[string]bool{
	"defs": true, "metadata": true, "title": true, "desc": true,
}

// classifyForeign determines what kind of content a foreignObject
// carries, from its first significant child element.
func classifyForeign(e *etree.Element) string {
	for _, ch := range e.ChildElements() {
		if metadataTags[localTag(ch)] {
			continue
		}
		switch localTag(ch) {
		case "svg":
			return foreignNestedSVG
		case "img", "image":
			return foreignImage
		case "math":
			return foreignMathML
		case "div", "span", "p", "body", "html":
			return foreignXHTML
		}
		if strings.Contains(attr(ch, "", "xmlns"), "xhtml") {
			return foreignXHTML
		}
		return foreignUnknown
	}
	return foreignUnknown
}

func (c *converter) convertForeignObject(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	w := floatAttr(e, 0, "width")
	h := floatAttr(e, 0, "height")
	if w <= 0 || h <= 0 {
		return nil
	}
	bounds := geom.NewRect(floatAttr(e, 0, "x"), floatAttr(e, 0, "y"), w, h)
	class := classifyForeign(e)
	c.res.ForeignObjects[class]++
	switch class {
	case foreignNestedSVG:
		for _, ch := range e.ChildElements() {
			if localTag(ch) == "svg" {
				return c.convertNestedSVG(ch, st, nav, bounds)
			}
		}
	case foreignImage:
		for _, ch := range e.ChildElements() {
			if localTag(ch) == "img" || localTag(ch) == "image" {
				return c.convertForeignImage(ch, bounds, st, nav)
			}
		}
	case foreignXHTML:
		if frame := c.flattenXHTML(e, bounds, st, nav); frame != nil {
			return frame
		}
	}
	// mathml and anything unrecognized render as a placeholder
	c.logger.Warn("svg: foreignObject content not convertible, using placeholder", "class", class)
	return c.foreignPlaceholder(bounds, st, nav)
}

// boundsClip builds a clip confining a node to the given rectangle.
func boundsClip(bounds geom.Rect) *ir.ClipRef {
	b := bounds
	return &ir.ClipRef{
		Segments:    roundedRectSegments(bounds, 0, 0),
		BoundingBox: &b,
		ClipRule:    "nonzero",
	}
}

// convertNestedSVG converts an inner svg element to a group positioned
// at and clipped to the enclosing bounds.
func (c *converter) convertNestedSVG(e *etree.Element, st *style, nav *ir.NavigationSpec, bounds geom.Rect) ir.Node {
	grp := &ir.Group{Opacity: 1}
	c.convertChildren(e, grp, c.styleFor(e, st), nav)
	if len(grp.Children) == 0 {
		return nil
	}
	if bounds.Width > 0 && bounds.Height > 0 {
		grp.Clip = boundsClip(bounds)
	}
	if bounds.X != 0 || bounds.Y != 0 {
		xf := geom.Translate2D(bounds.X, bounds.Y)
		grp.Transform = &xf
	}
	grp.Nav = nav
	return grp
}

// convertForeignImage converts an html img (or svg image) inside a
// foreignObject, sized to the foreignObject bounds when the element
// gives no extent of its own.
func (c *converter) convertForeignImage(e *etree.Element, bounds geom.Rect, st *style, nav *ir.NavigationSpec) ir.Node {
	ref := href(e)
	if ref == "" {
		ref = attr(e, "", "src")
	}
	if ref == "" {
		return nil
	}
	img := &ir.Image{
		Bounds:  bounds,
		Opacity: clampUnit(st.float("opacity", 1)),
		Clip:    boundsClip(bounds),
		Nav:     nav,
	}
	switch {
	case strings.HasPrefix(ref, "data:"):
		data, format, err := decodeDataURI(ref)
		if err != nil {
			c.logger.Warn("svg: cannot decode foreignObject image", "err", err)
			return nil
		}
		img.Data = data
		img.Format = format
	case isRemoteRef(ref):
		c.res.ExternalRefs = append(c.res.ExternalRefs, ref)
		img.Href = ref
		img.Format = formatFromExtension(ref)
	default:
		img.Href = ref
		img.Format = formatFromExtension(ref)
	}
	return img
}

// flattenXHTML reduces XHTML content to styled text lines. Block
// elements and br start new lines; b/strong, i/em and u toggle run
// styling. Layout beyond that is out of scope for slide output.
func (c *converter) flattenXHTML(e *etree.Element, bounds geom.Rect, st *style, nav *ir.NavigationSpec) ir.Node {
	var buf strings.Builder
	for _, ch := range e.ChildElements() {
		doc := etree.NewDocument()
		doc.SetRoot(ch.Copy())
		s, err := doc.WriteToString()
		if err != nil {
			continue
		}
		buf.WriteString(s)
	}
	root, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		c.logger.Warn("svg: cannot parse foreignObject content", "err", err)
		return nil
	}
	base := textStyleFor(st)
	fl := &xhtmlFlattener{nav: nav}
	fl.walk(root, base)
	fl.endLine()
	if len(fl.lines) == 0 {
		return nil
	}
	rt := &ir.RichTextFrame{
		Position: geom.Vec2(bounds.X, bounds.Y),
		Bounds:   bounds,
		Nav:      nav,
	}
	lineH := base.sizePt * 1.2
	for i, runs := range fl.lines {
		rt.Lines = append(rt.Lines, ir.TextLine{
			Runs:   runs,
			Origin: geom.Vec2(bounds.X, bounds.Y+float64(i+1)*lineH),
			Anchor: ir.AnchorStart,
		})
	}
	return rt
}

type xhtmlFlattener struct {
	nav   *ir.NavigationSpec
	lines [][]ir.Run
	cur   []ir.Run
}

var xhtmlBlockTags = map[string]bool{
	"div": true, "p": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "li": true, "tr": true,
}

func (fl *xhtmlFlattener) endLine() {
	if len(fl.cur) > 0 {
		fl.lines = append(fl.lines, fl.cur)
		fl.cur = nil
	}
}

func (fl *xhtmlFlattener) walk(n *html.Node, ts textStyle) {
	switch n.Type {
	case html.TextNode:
		if text := collapseSpace(n.Data); text != "" {
			fl.cur = append(fl.cur, styledRun(text, ts, fl.nav))
		}
	case html.ElementNode:
		switch n.Data {
		case "br":
			fl.endLine()
			return
		case "b", "strong":
			ts.bold = true
		case "i", "em":
			ts.italic = true
		case "u":
			ts.underline = true
		}
		if xhtmlBlockTags[n.Data] {
			fl.endLine()
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			fl.walk(ch, ts)
		}
		if xhtmlBlockTags[n.Data] {
			fl.endLine()
		}
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		fl.walk(ch, ts)
	}
}

// foreignPlaceholder renders a light gray box standing in for content
// that cannot be converted.
func (c *converter) foreignPlaceholder(bounds geom.Rect, st *style, nav *ir.NavigationSpec) ir.Node {
	return &ir.Path{
		Segments: roundedRectSegments(bounds, 0, 0),
		Fill:     ir.SolidPaint("CCCCCC", 1),
		Opacity:  clampUnit(st.float("opacity", 1)),
		Nav:      nav,
	}
}

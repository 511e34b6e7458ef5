// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

// textBuilder accumulates the runs and lines of one text element.
// A tspan with explicit coordinates starts a new line; everything else
// appends runs to the current one.
type textBuilder struct {
	lines []ir.TextLine
	cur   *ir.TextLine
}

func (tb *textBuilder) newLine(origin geom.Vector2, anchor ir.Anchor) {
	tb.flush()
	tb.cur = &ir.TextLine{Origin: origin, Anchor: anchor}
}

func (tb *textBuilder) addRun(r ir.Run) {
	if r.Text == "" {
		return
	}
	tb.cur.Runs = append(tb.cur.Runs, r)
}

func (tb *textBuilder) flush() {
	if tb.cur != nil && len(tb.cur.Runs) > 0 {
		tb.lines = append(tb.lines, *tb.cur)
	}
	tb.cur = nil
}

func (c *converter) convertText(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	ts := textStyleFor(st)
	origin := geom.Vec2(floatAttr(e, 0, "x"), floatAttr(e, 0, "y"))
	tb := &textBuilder{}
	tb.newLine(origin, ts.anchor)
	c.collectRuns(e, st, nav, tb, origin)
	tb.flush()
	if len(tb.lines) == 0 {
		return nil
	}

	xf := c.ownTransform(e)
	if len(tb.lines) == 1 && xf.IsIdentity() {
		line := tb.lines[0]
		return &ir.TextFrame{
			Origin: line.Origin,
			Runs:   line.Runs,
			BBox:   estimateTextBounds(line),
			Anchor: line.Anchor,
			Nav:    nav,
		}
	}

	rt := &ir.RichTextFrame{Lines: tb.lines, Position: origin, Nav: nav}
	box := geom.B2Empty()
	for _, ln := range tb.lines {
		box.ExpandByBox(estimateTextBounds(ln).ToBox2())
	}
	rt.Bounds = box.ToRect()
	if !xf.IsIdentity() {
		rt.Transform = &xf
	}
	return rt
}

// collectRuns walks the children of a text or tspan element in
// document order, turning character data into runs and recursing into
// tspan and inline a elements.
func (c *converter) collectRuns(e *etree.Element, st *style, nav *ir.NavigationSpec, tb *textBuilder, origin geom.Vector2) {
	ts := textStyleFor(st)
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			tb.addRun(styledRun(collapseSpace(t.Data), ts, nav))
		case *etree.Element:
			switch localTag(t) {
			case "tspan":
				chSt := c.styleFor(t, st)
				chOrigin := origin
				explicit := hasAttr(t, "x") || hasAttr(t, "y")
				if explicit {
					chOrigin = geom.Vec2(floatAttr(t, origin.X, "x"), floatAttr(t, origin.Y, "y"))
					tb.newLine(chOrigin, textStyleFor(chSt).anchor)
				}
				c.collectRuns(t, chSt, nav, tb, chOrigin)
			case "a":
				chNav := c.navigationFor(t, nav)
				c.collectRuns(t, c.styleFor(t, st), chNav, tb, origin)
			}
		}
	}
}

func styledRun(text string, ts textStyle, nav *ir.NavigationSpec) ir.Run {
	return ir.Run{
		Text:       text,
		FontFamily: ts.family,
		FontSizePt: ts.sizePt,
		Bold:       ts.bold,
		Italic:     ts.italic,
		Underline:  ts.underline,
		Strike:     ts.strike,
		RGB:        ts.rgb,
		Nav:        nav,
	}
}

// collapseSpace normalizes XML whitespace runs to single spaces.
func collapseSpace(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}

// estimateTextBounds gives a rough bounding box for a text line from
// its font metrics: average glyph width at 0.6em and 1.2em line
// height. Exact shaping is out of reach without font access.
func estimateTextBounds(line ir.TextLine) geom.Rect {
	var width, size float64
	for _, r := range line.Runs {
		width += float64(len([]rune(r.Text))) * r.FontSizePt * 0.6
		if r.FontSizePt > size {
			size = r.FontSizePt
		}
	}
	if size == 0 {
		size = 12
	}
	x := line.Origin.X
	switch line.Anchor {
	case ir.AnchorMiddle:
		x -= width / 2
	case ir.AnchorEnd:
		x -= width
	}
	// the origin is the baseline, so the box extends mostly upward
	return geom.NewRect(x, line.Origin.Y-size, width, size*1.2)
}

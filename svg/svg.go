// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg converts SVG documents into the slide-oriented scene
// representation of package ir. Conversion always degrades instead of
// aborting: an element the converter cannot handle is logged and
// dropped, and only a document that is not XML at all, or whose root
// is not svg, fails as a whole.
package svg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/beevik/etree"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

// DefaultMaxDepth bounds element nesting, guarding against reference
// cycles through use and nested svg elements.
const DefaultMaxDepth = 50

var (
	errNotSVG     = errors.New("document root is not an svg element")
	errBadDataURI = errors.New("malformed data URI")
)

// Options configure a [Parser].
type Options struct {
	// Logger receives degradation warnings. Defaults to slog.Default.
	Logger *slog.Logger

	// MaxDepth bounds element nesting. Defaults to DefaultMaxDepth.
	MaxDepth int
}

// Parser converts SVG documents to scenes. A Parser is safe for
// concurrent use; each conversion carries its own state.
type Parser struct {
	opts Options
}

// NewParser returns a parser with the given options.
func NewParser(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{opts: opts}
}

// Result is the outcome of one conversion: the scene plus document
// metadata. Success is false only for structural failures; every
// element-level problem degrades and leaves Success true.
type Result struct {
	Scene   ir.Scene
	Success bool
	Err     error

	// viewport geometry
	Width   float64
	Height  float64
	ViewBox *ViewBox

	// document metadata
	ElementCounts   map[string]int
	NamespaceCounts map[string]int
	ForeignObjects  map[string]int
	ExternalRefs    []string
}

func newResult() *Result {
	return &Result{
		ElementCounts:   map[string]int{},
		NamespaceCounts: map[string]int{},
		ForeignObjects:  map[string]int{},
	}
}

func failedResult(err error) *Result {
	res := newResult()
	res.Err = err
	return res
}

// Parse converts the SVG document read from r.
func (p *Parser) Parse(r io.Reader) *Result {
	doc, err := readDocument(r)
	if err != nil {
		return failedResult(fmt.Errorf("reading document: %w", err))
	}
	root := doc.Root()
	if root == nil || localTag(root) != "svg" {
		return failedResult(errNotSVG)
	}
	c := &converter{
		logger:    p.opts.Logger,
		maxDepth:  p.opts.MaxDepth,
		clips:     map[string]*clipDef{},
		gradients: map[string]*etree.Element{},
		ids:       map[string]*etree.Element{},
		inUse:     map[string]bool{},
		res:       newResult(),
	}
	c.convert(root)
	return c.res
}

// ParseString converts an SVG document held in a string.
func (p *Parser) ParseString(s string) *Result {
	return p.Parse(strings.NewReader(s))
}

// ParseFile converts the SVG document at the given path.
func (p *Parser) ParseFile(path string) *Result {
	f, err := os.Open(path)
	if err != nil {
		return failedResult(fmt.Errorf("opening %s: %w", path, err))
	}
	defer f.Close()
	return p.Parse(f)
}

// converter holds the state of one conversion.
type converter struct {
	logger   *slog.Logger
	maxDepth int

	coord     *CoordinateSpace
	clips     map[string]*clipDef
	gradients map[string]*etree.Element
	ids       map[string]*etree.Element
	inUse     map[string]bool // use references on the current chain
	rules     []*css.Rule
	res       *Result
	depth     int
}

func (c *converter) convert(root *etree.Element) {
	c.res.Success = true
	c.countTree(root)
	c.collectIDs(root)
	c.collectStylesheets(root)
	c.collectGradients(root)
	c.collectClipPaths(root)

	c.res.Width = floatAttr(root, 0, "width")
	c.res.Height = floatAttr(root, 0, "height")
	viewport := geom.Identity2()
	if v := attr(root, "", "viewBox"); v != "" {
		vb, err := parseViewBox(v)
		if err != nil {
			c.logger.Warn("svg: cannot parse viewBox", "viewBox", v, "err", err)
		} else {
			vb.PreserveAspectRatio.SetString(attr(root, "", "preserveAspectRatio"))
			c.res.ViewBox = &vb
			if c.res.Width <= 0 {
				c.res.Width = vb.Size.X
			}
			if c.res.Height <= 0 {
				c.res.Height = vb.Size.Y
			}
			viewport = vb.Transform(floatAttr(root, 0, "width"), floatAttr(root, 0, "height"))
		}
	}
	c.coord = NewCoordinateSpace(viewport)

	top := &ir.Group{Opacity: 1}
	c.convertChildren(root, top, c.styleFor(root, nil), nil)
	if viewport.IsIdentity() {
		c.res.Scene = top.Children
		return
	}
	// a non-trivial viewport mapping wraps the scene once
	top.Transform = &viewport
	if len(top.Children) > 0 {
		c.res.Scene = ir.Scene{top}
	}
}

// countTree tallies element and namespace usage over the whole
// document, before any conversion decisions.
func (c *converter) countTree(e *etree.Element) {
	c.res.ElementCounts[localTag(e)]++
	if e.Space != "" {
		c.res.NamespaceCounts[e.Space]++
	}
	for _, ch := range e.ChildElements() {
		c.countTree(ch)
	}
}

func (c *converter) collectIDs(e *etree.Element) {
	if id := attr(e, "", "id"); id != "" {
		if _, dup := c.ids[id]; !dup {
			c.ids[id] = e
		}
	}
	for _, ch := range e.ChildElements() {
		c.collectIDs(ch)
	}
}

// nonRenderedTags are elements that define resources or metadata and
// produce no scene nodes of their own.
var nonRenderedTags = map[string]bool{
	"defs":           true,
	"style":          true,
	"clipPath":       true,
	"linearGradient": true,
	"radialGradient": true,
	"pattern":        true,
	"marker":         true,
	"mask":           true,
	"filter":         true,
	"symbol":         true,
	"metadata":       true,
	"title":          true,
	"desc":           true,
	"script":         true,
}

// convertChildren converts the renderable children of e into parent.
func (c *converter) convertChildren(e *etree.Element, parent *ir.Group, st *style, nav *ir.NavigationSpec) {
	for _, ch := range e.ChildElements() {
		if n := c.convertElement(ch, st, nav); n != nil {
			parent.Children = append(parent.Children, n)
		}
	}
}

// convertElement converts one element to a scene node, or nil when the
// element renders nothing.
func (c *converter) convertElement(e *etree.Element, parentStyle *style, nav *ir.NavigationSpec) ir.Node {
	tag := localTag(e)
	if nonRenderedTags[tag] {
		return nil
	}
	if c.depth >= c.maxDepth {
		c.logger.Warn("svg: element nesting too deep, dropping subtree", "tag", tag, "depth", c.depth)
		return nil
	}
	c.depth++
	defer func() { c.depth-- }()

	st := c.styleFor(e, parentStyle)
	if st.prop("display", "") == "none" || st.prop("visibility", "") == "hidden" {
		return nil
	}
	switch tag {
	case "g":
		return c.convertGroup(e, st, nav)
	case "a":
		return c.convertGroup(e, st, c.navigationFor(e, nav))
	case "svg":
		return c.convertNestedSVG(e, parentStyle, nav, geom.NewRect(
			floatAttr(e, 0, "x"), floatAttr(e, 0, "y"),
			floatAttr(e, 0, "width"), floatAttr(e, 0, "height")))
	case "use":
		return c.convertUse(e, st, nav)
	case "switch":
		return c.convertSwitch(e, parentStyle, nav)
	case "rect":
		return c.convertRect(e, st, nav)
	case "circle":
		return c.convertCircle(e, st, nav)
	case "ellipse":
		return c.convertEllipse(e, st, nav)
	case "line":
		return c.convertLine(e, st, nav)
	case "polygon":
		return c.convertPoly(e, st, nav, true)
	case "polyline":
		return c.convertPoly(e, st, nav, false)
	case "path":
		return c.convertPath(e, st, nav)
	case "text":
		return c.convertText(e, st, nav)
	case "image":
		return c.convertImage(e, st, nav)
	case "foreignObject":
		return c.convertForeignObject(e, st, nav)
	}
	c.logger.Debug("svg: unsupported element, skipping", "tag", tag)
	return nil
}

// convertGroup converts a g or a element. The group's transform stays
// on the group node; child coordinates are not rewritten.
func (c *converter) convertGroup(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	grp := &ir.Group{
		Opacity: clampUnit(st.float("opacity", 1)),
		Clip:    c.clipRefFor(st),
		Nav:     nav,
	}
	xf := c.ownTransform(e)
	if !xf.IsIdentity() {
		grp.Transform = &xf
	}
	c.coord.Push(xf)
	c.convertChildren(e, grp, st, nav)
	c.coord.Pop()
	if len(grp.Children) == 0 {
		return nil
	}
	return grp
}

// convertUse instantiates the element referenced by a use, translated
// by the use's x/y and transform. Reference cycles are dropped.
func (c *converter) convertUse(e *etree.Element, st *style, nav *ir.NavigationSpec) ir.Node {
	id := strings.TrimPrefix(href(e), "#")
	if id == "" {
		return nil
	}
	target, has := c.ids[id]
	if !has {
		c.logger.Warn("svg: unresolvable use reference", "id", id)
		return nil
	}
	if c.inUse[id] {
		c.logger.Warn("svg: use reference cycle, dropping", "id", id)
		return nil
	}
	c.inUse[id] = true
	defer delete(c.inUse, id)

	inner := c.convertElement(target, st, nav)
	if inner == nil {
		return nil
	}
	xf := c.ownTransform(e)
	x := floatAttr(e, 0, "x")
	y := floatAttr(e, 0, "y")
	if x != 0 || y != 0 {
		xf = xf.Mul(geom.Translate2D(x, y))
	}
	grp := &ir.Group{Children: ir.Scene{inner}, Opacity: 1, Nav: nav}
	if !xf.IsIdentity() {
		grp.Transform = &xf
	}
	return grp
}

// convertSwitch renders the first child that converts to anything.
func (c *converter) convertSwitch(e *etree.Element, parentStyle *style, nav *ir.NavigationSpec) ir.Node {
	for _, ch := range e.ChildElements() {
		if n := c.convertElement(ch, parentStyle, nav); n != nil {
			return n
		}
	}
	return nil
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir defines the intermediate representation produced by the
// SVG conversion pipeline: a canonical, DOM-free scene graph of paths,
// shapes, text frames, groups, and images, ready for mapping into
// DrawingML by the downstream embedding layer.
//
// All IR nodes are constructed once during a single document traversal
// and are not mutated afterward. A scene is an ordered list of nodes at
// the top level and a tree where groups nest; groups exclusively own
// their children.
package ir

import (
	"github.com/deckforge/svg2pptx/geom"
)

// Node is the interface for all IR scene graph elements.
// The concrete types are [Path], [Rectangle], [Circle], [Ellipse],
// [TextFrame], [RichTextFrame], [Group], and [Image].
type Node interface {
	// Kind returns the node kind discriminator.
	Kind() Kind
}

// Kind is the discriminator for the [Node] union.
type Kind int32

const (
	KindPath Kind = iota
	KindRectangle
	KindCircle
	KindEllipse
	KindTextFrame
	KindRichTextFrame
	KindGroup
	KindImage
)

var kindNames = map[Kind]string{
	KindPath:          "path",
	KindRectangle:     "rectangle",
	KindCircle:        "circle",
	KindEllipse:       "ellipse",
	KindTextFrame:     "text-frame",
	KindRichTextFrame: "rich-text-frame",
	KindGroup:         "group",
	KindImage:         "image",
}

func (k Kind) String() string { return kindNames[k] }

// Scene is an ordered list of IR nodes: the top-level output of a
// conversion, and the child list of each [Group].
type Scene []Node

// Path is a generic vector shape: an ordered list of line and cubic
// bezier segments in the element's local coordinate space.
type Path struct {
	// Segments is non-empty for any emitted Path; converters suppress
	// empty results instead of emitting a zero-segment Path.
	Segments []Segment `json:"segments"`

	Fill    *Paint          `json:"fill,omitempty"`
	Stroke  *Stroke         `json:"stroke,omitempty"`
	Opacity float64         `json:"opacity"`
	Clip    *ClipRef        `json:"clip,omitempty"`
	Nav     *NavigationSpec `json:"nav,omitempty"`
}

func (p *Path) Kind() Kind { return KindPath }

// Rectangle is the direct IR variant for a rect element with no
// filter, clip-path, or mask complicating the shape; otherwise the
// rect is decomposed into a [Path].
type Rectangle struct {
	Bounds geom.Rect `json:"bounds"`

	// Radius holds the rx, ry corner radii; zero for square corners.
	Radius geom.Vector2 `json:"radius"`

	Fill    *Paint          `json:"fill,omitempty"`
	Stroke  *Stroke         `json:"stroke,omitempty"`
	Opacity float64         `json:"opacity"`
	Nav     *NavigationSpec `json:"nav,omitempty"`
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

// Circle is the direct IR variant for an unclipped, unfiltered circle.
type Circle struct {
	Center  geom.Vector2    `json:"center"`
	Radius  float64         `json:"radius"`
	Fill    *Paint          `json:"fill,omitempty"`
	Stroke  *Stroke         `json:"stroke,omitempty"`
	Opacity float64         `json:"opacity"`
	Nav     *NavigationSpec `json:"nav,omitempty"`
}

func (c *Circle) Kind() Kind { return KindCircle }

// Ellipse is the direct IR variant for an unclipped, unfiltered ellipse.
type Ellipse struct {
	Center  geom.Vector2    `json:"center"`
	Radii   geom.Vector2    `json:"radii"`
	Fill    *Paint          `json:"fill,omitempty"`
	Stroke  *Stroke         `json:"stroke,omitempty"`
	Opacity float64         `json:"opacity"`
	Nav     *NavigationSpec `json:"nav,omitempty"`
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

// Group is a container of child nodes mirroring an svg g element.
// It carries its own transform rather than baking it into child
// coordinates; consumers needing global positions compose the CTM
// explicitly.
type Group struct {
	Children  Scene           `json:"children"`
	Opacity   float64         `json:"opacity"`
	Transform *geom.Matrix2   `json:"transform,omitempty"`
	Clip      *ClipRef        `json:"clip,omitempty"`
	Nav       *NavigationSpec `json:"nav,omitempty"`
}

func (g *Group) Kind() Kind { return KindGroup }

// Image is an embedded raster (or nested vector) image reference.
type Image struct {
	Bounds geom.Rect `json:"bounds"`

	// Data holds the decoded payload for data: URIs; nil when only an
	// external Href is recorded.
	Data []byte `json:"data,omitempty"`

	// Format is one of jpg, gif, svg, png.
	Format string `json:"format"`

	Href      string          `json:"href,omitempty"`
	Opacity   float64         `json:"opacity"`
	Transform *geom.Matrix2   `json:"transform,omitempty"`
	Clip      *ClipRef        `json:"clip,omitempty"`
	Nav       *NavigationSpec `json:"nav,omitempty"`
}

func (im *Image) Kind() Kind { return KindImage }

// ClipRef is a by-identifier back-reference from an IR element to a
// resolved clip-path definition; it never owns the definition. When the
// reference could not be resolved, only ClipID is populated so that
// downstream code can degrade gracefully.
type ClipRef struct {
	ClipID      string     `json:"clipId"`
	Segments    []Segment  `json:"segments,omitempty"`
	BoundingBox *geom.Rect `json:"boundingBox,omitempty"`
	ClipRule    string     `json:"clipRule,omitempty"`
}

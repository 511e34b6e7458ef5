// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"fmt"

	"github.com/deckforge/svg2pptx/geom"
)

// PaintKind is the discriminator for the [Paint] union.
type PaintKind int32

const (
	PaintSolid PaintKind = iota
	PaintLinearGradient
	PaintRadialGradient
)

var paintKindNames = map[PaintKind]string{
	PaintSolid:          "solid",
	PaintLinearGradient: "linear-gradient",
	PaintRadialGradient: "radial-gradient",
}

func (k PaintKind) String() string { return paintKindNames[k] }

// MarshalText implements [encoding.TextMarshaler].
func (k PaintKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *PaintKind) UnmarshalText(text []byte) error {
	for pk, nm := range paintKindNames {
		if nm == string(text) {
			*k = pk
			return nil
		}
	}
	return fmt.Errorf("ir.PaintKind: unknown kind %q", text)
}

// Paint is a resolved fill or stroke paint: a solid color or a
// linear/radial gradient, per Kind. Absence of paint (fill="none") is
// represented by a nil *Paint, never by a Paint value.
type Paint struct {
	Kind PaintKind `json:"kind"`

	// RGB is the canonical 6-digit uppercase hex color without the
	// leading #, for solid paints.
	RGB     string  `json:"rgb,omitempty"`
	Opacity float64 `json:"opacity"`

	// Stops has at least 2 entries for any gradient paint; gradients
	// with fewer stops are rejected upstream by treating the paint as
	// absent.
	Stops []GradientStop `json:"stops,omitempty"`

	// Start and End are the linear gradient axis endpoints.
	Start geom.Vector2 `json:"start,omitzero"`
	End   geom.Vector2 `json:"end,omitzero"`

	// Center, Radius, and Focal define radial gradient geometry.
	Center geom.Vector2  `json:"center,omitzero"`
	Radius float64       `json:"radius,omitempty"`
	Focal  *geom.Vector2 `json:"focal,omitempty"`

	// Transform carries a gradientTransform through to the consumer.
	Transform *geom.Matrix2 `json:"transform,omitempty"`

	// Units is the gradientUnits value (objectBoundingBox or
	// userSpaceOnUse); empty means the SVG default objectBoundingBox.
	Units string `json:"units,omitempty"`
}

// SolidPaint returns a solid [Paint] with the given canonical hex color
// and opacity.
func SolidPaint(rgb string, opacity float64) *Paint {
	return &Paint{Kind: PaintSolid, RGB: rgb, Opacity: opacity}
}

// GradientStop is one color stop of a gradient paint.
type GradientStop struct {
	// Offset is the stop position in [0, 1].
	Offset float64 `json:"offset"`

	RGB string `json:"rgb"`

	// Opacity is the stop opacity in [0, 1].
	Opacity float64 `json:"opacity"`
}

// LineJoin is the stroke line join style.
type LineJoin int32

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

var lineJoinNames = map[LineJoin]string{JoinMiter: "miter", JoinRound: "round", JoinBevel: "bevel"}

func (j LineJoin) String() string { return lineJoinNames[j] }

// MarshalText implements [encoding.TextMarshaler].
func (j LineJoin) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (j *LineJoin) UnmarshalText(text []byte) error {
	for lj, nm := range lineJoinNames {
		if nm == string(text) {
			*j = lj
			return nil
		}
	}
	return fmt.Errorf("ir.LineJoin: unknown join %q", text)
}

// LineCap is the stroke line cap style.
type LineCap int32

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

var lineCapNames = map[LineCap]string{CapButt: "butt", CapRound: "round", CapSquare: "square"}

func (c LineCap) String() string { return lineCapNames[c] }

// MarshalText implements [encoding.TextMarshaler].
func (c LineCap) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *LineCap) UnmarshalText(text []byte) error {
	for lc, nm := range lineCapNames {
		if nm == string(text) {
			*c = lc
			return nil
		}
	}
	return fmt.Errorf("ir.LineCap: unknown cap %q", text)
}

// Stroke is a resolved stroke style.
type Stroke struct {
	Paint      Paint     `json:"paint"`
	Width      float64   `json:"width"`
	Join       LineJoin  `json:"join"`
	Cap        LineCap   `json:"cap"`
	MiterLimit float64   `json:"miterLimit"`
	DashArray  []float64 `json:"dashArray,omitempty"`
}

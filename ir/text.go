// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"fmt"

	"github.com/deckforge/svg2pptx/geom"
)

// Anchor is the text-anchor alignment of a text line or frame.
type Anchor int32

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

var anchorNames = map[Anchor]string{AnchorStart: "start", AnchorMiddle: "middle", AnchorEnd: "end"}

func (a Anchor) String() string { return anchorNames[a] }

// MarshalText implements [encoding.TextMarshaler].
func (a Anchor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Anchor) UnmarshalText(text []byte) error {
	for an, nm := range anchorNames {
		if nm == string(text) {
			*a = an
			return nil
		}
	}
	return fmt.Errorf("ir.Anchor: unknown anchor %q", text)
}

// Run is one contiguous styled text span. Runs are immutable once
// constructed.
type Run struct {
	Text       string  `json:"text"`
	FontFamily string  `json:"fontFamily"`
	FontSizePt float64 `json:"fontSizePt"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Underline  bool    `json:"underline,omitempty"`
	Strike     bool    `json:"strike,omitempty"`

	// RGB is the canonical 6-digit uppercase hex text color.
	RGB string `json:"rgb"`

	Nav *NavigationSpec `json:"nav,omitempty"`
}

// TextLine is an ordered list of runs sharing one text-anchor value and
// one baseline origin.
type TextLine struct {
	Runs   []Run        `json:"runs"`
	Origin geom.Vector2 `json:"origin"`
	Anchor Anchor       `json:"anchor"`
}

// TextFrame is the IR element for single-line text: one baseline, one
// anchor, one or more runs.
type TextFrame struct {
	Origin geom.Vector2    `json:"origin"`
	Runs   []Run           `json:"runs"`
	BBox   geom.Rect       `json:"bbox"`
	Anchor Anchor          `json:"anchor"`
	Nav    *NavigationSpec `json:"nav,omitempty"`
}

func (t *TextFrame) Kind() Kind { return KindTextFrame }

// RichTextFrame is the IR element a text element is promoted to when it
// has multiple lines or mixed per-line anchors.
type RichTextFrame struct {
	Lines     []TextLine      `json:"lines"`
	Position  geom.Vector2    `json:"position"`
	Bounds    geom.Rect       `json:"bounds"`
	Transform *geom.Matrix2   `json:"transform,omitempty"`
	Nav       *NavigationSpec `json:"nav,omitempty"`
}

func (t *RichTextFrame) Kind() Kind { return KindRichTextFrame }

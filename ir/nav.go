// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "fmt"

// NavKind is the discriminator for the [NavigationSpec] union.
type NavKind int32

const (
	// NavExternal is an external URL hyperlink.
	NavExternal NavKind = iota

	// NavSlide jumps to a slide by 1-based index.
	NavSlide

	// NavBookmark jumps to a named bookmark/section.
	NavBookmark

	// NavCustomShow starts a named custom slide show.
	NavCustomShow

	// NavJump is a relative jump action (nextslide, previousslide,
	// firstslide, lastslide, endshow).
	NavJump
)

var navKindNames = map[NavKind]string{
	NavExternal:   "external",
	NavSlide:      "slide",
	NavBookmark:   "bookmark",
	NavCustomShow: "custom-show",
	NavJump:       "jump",
}

func (k NavKind) String() string { return navKindNames[k] }

// MarshalText implements [encoding.TextMarshaler].
func (k NavKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *NavKind) UnmarshalText(text []byte) error {
	for nk, nm := range navKindNames {
		if nm == string(text) {
			*k = nk
			return nil
		}
	}
	return fmt.Errorf("ir.NavKind: unknown kind %q", text)
}

// NavigationSpec is resolved hyperlink/jump metadata attached to IR
// elements and text runs descending from an svg a element.
type NavigationSpec struct {
	Kind NavKind `json:"kind"`

	// URL is the external target for [NavExternal].
	URL string `json:"url,omitempty"`

	// SlideIndex is the 1-based slide number for [NavSlide].
	SlideIndex int `json:"slideIndex,omitempty"`

	// Target is the bookmark name, custom show name, or jump action
	// keyword, depending on Kind.
	Target string `json:"target,omitempty"`

	// Tooltip is the optional hover text, from a nested title element.
	Tooltip string `json:"tooltip,omitempty"`
}

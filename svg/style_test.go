// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#ff0000", "FF0000", true},
		{"#F0a", "FF00AA", true},
		{"rgb(255, 0, 0)", "FF0000", true},
		{"rgb(100%, 0%, 50%)", "FF0080", true},
		{"rgb(300, -5, 0)", "FF0000", true},
		{"red", "FF0000", true},
		{"Navy", "000080", true},
		{"notacolor", "", false},
		{"#12345", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		got, ok := parseColor(test.in)
		assert.Equal(t, test.ok, ok, "parseColor(%q)", test.in)
		if test.ok {
			assert.Equal(t, test.want, got, "parseColor(%q)", test.in)
		}
	}
}

func TestFontWeightName(t *testing.T) {
	tests := map[string]string{
		"":       "normal",
		"normal": "normal",
		"bold":   "bold",
		"100":    "lighter",
		"200":    "lighter",
		"300":    "light",
		"400":    "normal",
		"500":    "normal",
		"600":    "semibold",
		"700":    "bold",
		"800":    "bolder",
		"900":    "bolder",
		"junk":   "normal",
	}
	for in, want := range tests {
		assert.Equal(t, want, fontWeightName(in), "fontWeightName(%q)", in)
	}
}

func TestFontSizePt(t *testing.T) {
	assert.InDelta(t, 14, fontSizePt("14pt"), 1e-9)
	assert.InDelta(t, 12, fontSizePt("16px"), 1e-9)
	assert.InDelta(t, 18, fontSizePt("1.5em"), 1e-9)
	assert.InDelta(t, 10, fontSizePt("10"), 1e-9)
	assert.InDelta(t, 12, fontSizePt(""), 1e-9)
	assert.InDelta(t, 12, fontSizePt("bogus"), 1e-9)
	assert.InDelta(t, 12, fontSizePt("-4pt"), 1e-9)
}

func TestFontFamilyFirstEntry(t *testing.T) {
	assert.Equal(t, "Helvetica Neue", fontFamilyFromString(`"Helvetica Neue", Arial, sans-serif`))
	assert.Equal(t, "Georgia", fontFamilyFromString("Georgia"))
	assert.Equal(t, "Arial", fontFamilyFromString(""))
}

func TestDashArray(t *testing.T) {
	assert.Equal(t, []float64{5, 2, 1, 2}, dashArrayFromString("5,2 1,2"))
	assert.Nil(t, dashArrayFromString("none"))
	assert.Nil(t, dashArrayFromString(""))
	assert.Nil(t, dashArrayFromString("5,bad"))
}

func TestStyleInheritance(t *testing.T) {
	parent := newStyle()
	parent.props["fill"] = "#ff0000"
	parent.props["opacity"] = "0.5"
	parent.props["clip-path"] = "url(#c)"
	child := parent.inheritable()
	assert.Equal(t, "#ff0000", child.prop("fill", ""))
	// per-element properties never cascade
	assert.Equal(t, "", child.prop("opacity", ""))
	assert.Equal(t, "", child.prop("clip-path", ""))
}

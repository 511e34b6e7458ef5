// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// namedColors is the fixed table of CSS named colors recognized by the
// converter. Unrecognized names fall back to black rather than failing
// the element.
var namedColors = map[string]string{
	"black":   "000000",
	"silver":  "C0C0C0",
	"gray":    "808080",
	"grey":    "808080",
	"white":   "FFFFFF",
	"maroon":  "800000",
	"red":     "FF0000",
	"purple":  "800080",
	"fuchsia": "FF00FF",
	"magenta": "FF00FF",
	"green":   "008000",
	"lime":    "00FF00",
	"olive":   "808000",
	"yellow":  "FFFF00",
	"navy":    "000080",
	"blue":    "0000FF",
	"teal":    "008080",
	"aqua":    "00FFFF",
	"cyan":    "00FFFF",
	"orange":  "FFA500",
	"pink":    "FFC0CB",
	"brown":   "A52A2A",
}

// parseColor resolves a CSS color string to a canonical 6-digit
// uppercase hex value without the leading #. It handles #rgb shorthand,
// #rrggbb, rgb(r,g,b) functional notation with channels clamped to
// [0,255], and the fixed named-color table. The ok result is false for
// strings that could not be parsed; callers map those to black, which
// is a different outcome from "none" (no paint at all).
func parseColor(str string) (hex string, ok bool) {
	str = strings.TrimSpace(strings.ToLower(str))
	switch {
	case strings.HasPrefix(str, "#"):
		return parseHexColor(str[1:])
	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		return parseRGBColor(str[4 : len(str)-1])
	default:
		if hex, has := namedColors[str]; has {
			return hex, true
		}
		return "", false
	}
}

func parseHexColor(hex string) (string, bool) {
	switch len(hex) {
	case 3:
		var sb strings.Builder
		for i := 0; i < 3; i++ {
			sb.WriteByte(hex[i])
			sb.WriteByte(hex[i])
		}
		hex = sb.String()
	case 6:
	default:
		return "", false
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", false
	}
	return strings.ToUpper(hex), true
}

func parseRGBColor(body string) (string, bool) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return "", false
	}
	var ch [3]int
	for i, p := range parts {
		p = strings.TrimSpace(p)
		pct := strings.HasSuffix(p, "%")
		p = strings.TrimSuffix(p, "%")
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return "", false
		}
		if pct {
			f = f * 255 / 100
		}
		v := int(math.Round(f))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		ch[i] = v
	}
	return fmt.Sprintf("%02X%02X%02X", ch[0], ch[1], ch[2]), true
}

// clampUnit clamps an opacity-like value to [0, 1].
func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

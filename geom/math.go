// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// ParseFloat parses a float value from the given SVG attribute string,
// tolerating leading/trailing space and a trailing px or pt unit suffix.
func ParseFloat(str string) (float64, error) {
	str = strings.TrimSpace(str)
	str = strings.TrimSuffix(str, "px")
	str = strings.TrimSuffix(str, "pt")
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, fmt.Errorf("geom.ParseFloat: unable to parse %q: %w", str, err)
	}
	return f, nil
}

// ReadPoints reads a set of floats from the given comma and/or
// whitespace separated list, as used in the SVG points and viewBox
// attributes and in transform function parameters.
func ReadPoints(str string) ([]float64, error) {
	str = strings.ReplaceAll(str, ",", " ")
	flds := strings.Fields(str)
	if len(flds) == 0 {
		return nil, nil
	}
	pts := make([]float64, 0, len(flds))
	for _, fld := range flds {
		f, err := strconv.ParseFloat(fld, 64)
		if err != nil {
			return nil, fmt.Errorf("geom.ReadPoints: unable to parse %q: %w", fld, err)
		}
		pts = append(pts, f)
	}
	return pts, nil
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"math"
	"regexp"
	"strconv"

	"github.com/deckforge/svg2pptx/geom"
	"github.com/deckforge/svg2pptx/ir"
)

var (
	pathCmdRx = regexp.MustCompile(`([MmLlHhVvCcSsQqTtAaZz])([^MmLlHhVvCcSsQqTtAaZz]*)`)
	pathNumRx = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)
)

// pathCmdParams gives the parameter count of each path command.
var pathCmdParams = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// pathParser converts SVG path data into absolute line and cubic
// bezier segments. Quadratic curves are elevated to cubics and arcs
// are approximated by cubics, so the output needs only two segment
// kinds. A malformed command is skipped and parsing continues with the
// next one.
type pathParser struct {
	segs    []ir.Segment
	cur     geom.Vector2
	start   geom.Vector2 // current subpath start, for Z and implicit moves
	started bool

	lastCubicCtrl geom.Vector2 // control2 of the previous C/S
	lastQuadCtrl  geom.Vector2 // control of the previous Q/T, pre-elevation
	prevCubic     bool
	prevQuad      bool
}

// parsePathData parses the d attribute into segments in user space.
// Unparseable commands are logged and dropped, never fatal.
func (c *converter) parsePathData(d string) []ir.Segment {
	pp := &pathParser{}
	for _, m := range pathCmdRx.FindAllStringSubmatch(d, -1) {
		cmd := m[1][0]
		params, ok := parsePathNumbers(m[2])
		if !ok {
			c.logger.Warn("svg: unparseable path command parameters", "cmd", string(cmd), "params", m[2])
			continue
		}
		if !pp.command(cmd, params) {
			c.logger.Warn("svg: bad parameter count for path command", "cmd", string(cmd), "count", len(params))
		}
	}
	return pp.segs
}

// parsePathNumbers extracts the numeric parameters of one command.
func parsePathNumbers(s string) ([]float64, bool) {
	toks := pathNumRx.FindAllString(s, -1)
	out := make([]float64, 0, len(toks))
	for _, t := range toks {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// command executes one path command with its full parameter list,
// handling implicit repetition. It reports whether the parameter count
// was valid.
func (pp *pathParser) command(cmd byte, params []float64) bool {
	rel := cmd >= 'a'
	upper := cmd &^ 0x20
	n := pathCmdParams[upper]
	if upper == 'Z' {
		if len(params) != 0 {
			return false
		}
		pp.close()
		return true
	}
	if n == 0 || len(params) == 0 || len(params)%n != 0 {
		return false
	}
	for i := 0; i < len(params); i += n {
		p := params[i : i+n]
		switch upper {
		case 'M':
			if i == 0 {
				pp.moveTo(pp.point(p[0], p[1], rel))
			} else {
				// extra coordinate pairs are implicit line-tos
				pp.lineTo(pp.point(p[0], p[1], rel))
			}
		case 'L':
			pp.lineTo(pp.point(p[0], p[1], rel))
		case 'H':
			x := p[0]
			if rel {
				x += pp.cur.X
			}
			pp.lineTo(geom.Vec2(x, pp.cur.Y))
		case 'V':
			y := p[0]
			if rel {
				y += pp.cur.Y
			}
			pp.lineTo(geom.Vec2(pp.cur.X, y))
		case 'C':
			pp.cubicTo(pp.point(p[0], p[1], rel), pp.point(p[2], p[3], rel), pp.point(p[4], p[5], rel))
		case 'S':
			pp.smoothCubicTo(pp.point(p[0], p[1], rel), pp.point(p[2], p[3], rel))
		case 'Q':
			pp.quadTo(pp.point(p[0], p[1], rel), pp.point(p[2], p[3], rel))
		case 'T':
			pp.smoothQuadTo(pp.point(p[0], p[1], rel))
		case 'A':
			pp.arcTo(p[0], p[1], p[2], p[3] != 0, p[4] != 0, pp.point(p[5], p[6], rel))
		}
	}
	return true
}

func (pp *pathParser) point(x, y float64, rel bool) geom.Vector2 {
	if rel {
		return geom.Vec2(pp.cur.X+x, pp.cur.Y+y)
	}
	return geom.Vec2(x, y)
}

func (pp *pathParser) resetReflection() {
	pp.prevCubic = false
	pp.prevQuad = false
}

func (pp *pathParser) moveTo(p geom.Vector2) {
	pp.cur = p
	pp.start = p
	pp.started = true
	pp.resetReflection()
}

func (pp *pathParser) lineTo(p geom.Vector2) {
	pp.segs = append(pp.segs, ir.LineSeg(pp.cur, p))
	pp.cur = p
	pp.resetReflection()
}

func (pp *pathParser) cubicTo(c1, c2, end geom.Vector2) {
	pp.segs = append(pp.segs, ir.BezierSeg(pp.cur, c1, c2, end))
	pp.lastCubicCtrl = c2
	pp.cur = end
	pp.prevCubic = true
	pp.prevQuad = false
}

// smoothCubicTo reflects the previous cubic's second control point
// about the current point; without a preceding cubic the first control
// point coincides with the current point.
func (pp *pathParser) smoothCubicTo(c2, end geom.Vector2) {
	c1 := pp.cur
	if pp.prevCubic {
		c1 = pp.cur.MulScalar(2).Sub(pp.lastCubicCtrl)
	}
	pp.cubicTo(c1, c2, end)
}

// quadTo elevates a quadratic bezier to the equivalent cubic:
// control1 = start + 2/3*(qc-start), control2 = end + 2/3*(qc-end).
func (pp *pathParser) quadTo(qc, end geom.Vector2) {
	c1 := pp.cur.Add(qc.Sub(pp.cur).MulScalar(2.0 / 3.0))
	c2 := end.Add(qc.Sub(end).MulScalar(2.0 / 3.0))
	pp.segs = append(pp.segs, ir.BezierSeg(pp.cur, c1, c2, end))
	pp.lastQuadCtrl = qc
	pp.cur = end
	pp.prevQuad = true
	pp.prevCubic = false
}

// smoothQuadTo reflects the previous quadratic's control point, in its
// pre-elevation form, about the current point.
func (pp *pathParser) smoothQuadTo(end geom.Vector2) {
	qc := pp.cur
	if pp.prevQuad {
		qc = pp.cur.MulScalar(2).Sub(pp.lastQuadCtrl)
	}
	pp.quadTo(qc, end)
}

func (pp *pathParser) close() {
	if pp.started && !pp.cur.AlmostEqual(pp.start, 1e-12) {
		pp.segs = append(pp.segs, ir.LineSeg(pp.cur, pp.start))
	}
	pp.cur = pp.start
	pp.resetReflection()
}

// arcTo appends cubic approximations of an elliptical arc.
func (pp *pathParser) arcTo(rx, ry, xRotDeg float64, largeArc, sweep bool, end geom.Vector2) {
	segs := arcToCubics(pp.cur, rx, ry, xRotDeg, largeArc, sweep, end)
	pp.segs = append(pp.segs, segs...)
	pp.cur = end
	pp.resetReflection()
}

// arcToCubics converts an SVG elliptical arc from start to end into
// cubic bezier segments, using the endpoint to center parameterization
// of the SVG spec (appendix B.2.4) and splitting the sweep into arcs
// of at most 90 degrees.
func arcToCubics(start geom.Vector2, rx, ry, xRotDeg float64, largeArc, sweep bool, end geom.Vector2) []ir.Segment {
	if start.AlmostEqual(end, 1e-12) {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		// degenerate arc is a straight line
		return []ir.Segment{ir.LineSeg(start, end)}
	}
	phi := geom.DegToRad(xRotDeg)
	sinPhi, cosPhi := math.Sincos(phi)

	// rotated midpoint coordinates
	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// scale radii up if the arc cannot reach the endpoint
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	nsegs := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if nsegs == 0 {
		return nil
	}
	delta := dTheta / float64(nsegs)
	// control arm length for a cubic approximating a delta sweep
	alpha := 4.0 / 3.0 * math.Tan(delta/4)

	ellipsePoint := func(theta float64) geom.Vector2 {
		st, ct := math.Sincos(theta)
		return geom.Vec2(
			cx+rx*ct*cosPhi-ry*st*sinPhi,
			cy+rx*ct*sinPhi+ry*st*cosPhi,
		)
	}
	ellipseTangent := func(theta float64) geom.Vector2 {
		st, ct := math.Sincos(theta)
		return geom.Vec2(
			-rx*st*cosPhi-ry*ct*sinPhi,
			-rx*st*sinPhi+ry*ct*cosPhi,
		)
	}

	segs := make([]ir.Segment, 0, nsegs)
	p0 := start
	for i := 0; i < nsegs; i++ {
		t0 := theta1 + float64(i)*delta
		t1 := t0 + delta
		p1 := ellipsePoint(t1)
		if i == nsegs-1 {
			p1 = end // land exactly on the endpoint
		}
		c1 := p0.Add(ellipseTangent(t0).MulScalar(alpha))
		c2 := p1.Sub(ellipseTangent(t1).MulScalar(alpha))
		segs = append(segs, ir.BezierSeg(p0, c1, c2, p1))
		p0 = p1
	}
	return segs
}

// vectorAngle returns the signed angle between vectors (ux,uy) and
// (vx,vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	mag := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if mag == 0 {
		return 0
	}
	r := dot / mag
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return sign * math.Acos(r)
}

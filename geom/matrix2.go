// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Matrix2 is a 3x2 affine transformation matrix with the implicit bottom
// row [0 0 1]. The coefficients correspond to the SVG transform notation
// matrix(a b c d e f) as XX=a, YX=b, XY=c, YY=d, X0=e, Y0=f, so that a
// point is transformed as:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix2 struct {
	XX, YX, XY, YY float64
	X0, Y0         float64
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// IsIdentity returns whether the matrix is the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Translate2D returns a Matrix2 for translating by x and y.
func Translate2D(x, y float64) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a Matrix2 for scaling by x and y.
func Scale2D(x, y float64) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a Matrix2 for rotating counterclockwise by the given
// angle in radians.
func Rotate2D(angle float64) Matrix2 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// Shear2D returns a Matrix2 for shearing by the given x and y factors.
func Shear2D(x, y float64) Matrix2 {
	return Matrix2{XX: 1, YX: y, XY: x, YY: 1}
}

// SkewX2D returns a Matrix2 for skewing along the X axis by the given
// angle in radians.
func SkewX2D(angle float64) Matrix2 {
	return Shear2D(math.Tan(angle), 0)
}

// SkewY2D returns a Matrix2 for skewing along the Y axis by the given
// angle in radians.
func SkewY2D(angle float64) Matrix2 {
	return Shear2D(0, math.Tan(angle))
}

// Mul returns a*b, the composition that applies b first and then a,
// matching SVG nested-transform semantics: a parent matrix multiplied
// by a child's local matrix yields the child's cumulative transform.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets the matrix to a*b, as in [Matrix2.Mul].
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsPoint multiplies the matrix by the vector as a point with
// translation applied.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y + m.X0,
		Y: m.YX*v.X + m.YY*v.Y + m.Y0,
	}
}

// MulVector2AsVector multiplies the matrix by the vector as a vector,
// without translation.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y,
		Y: m.YX*v.X + m.YY*v.Y,
	}
}

// Translate returns m composed with a translation by x, y.
func (m Matrix2) Translate(x, y float64) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns m composed with a scale by x, y.
func (m Matrix2) Scale(x, y float64) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns m composed with a rotation by angle radians.
func (m Matrix2) Rotate(angle float64) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix2) Determinant() float64 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of the matrix. Returns identity if the
// matrix is singular.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Determinant()
	if det == 0 {
		return Identity2()
	}
	id := 1 / det
	return Matrix2{
		XX: m.YY * id,
		YX: -m.YX * id,
		XY: -m.XY * id,
		YY: m.XX * id,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * id,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * id,
	}
}

// ExtractTranslation returns the translation component of the matrix.
func (m Matrix2) ExtractTranslation() Vector2 {
	return Vector2{m.X0, m.Y0}
}

// ExtractRotation returns the rotation component of the matrix, in radians.
func (m Matrix2) ExtractRotation() float64 {
	return math.Atan2(m.YX, m.XX)
}

// ExtractScale returns the x and y scale factors of the matrix.
func (m Matrix2) ExtractScale() (sx, sy float64) {
	sx = Vec2(m.XX, m.YX).Length()
	det := m.Determinant()
	sy = det / sx
	return
}

// String returns the SVG matrix(a,b,c,d,e,f) representation of the matrix.
func (m Matrix2) String() string {
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

var errTransformParse = errors.New("geom.Matrix2 SetString: unable to parse transform string")

// SetString sets the matrix from the SVG transform attribute grammar:
// a whitespace-separated list of translate, scale, rotate, skewX, skewY,
// and matrix functions, composed left-to-right with each function's
// matrix right-multiplied onto the accumulated result. Angles are given
// in degrees. Returns an error and leaves the matrix as identity if the
// string cannot be parsed.
func (m *Matrix2) SetString(str string) error {
	*m = Identity2()
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "none" || str == "" {
		return nil
	}
	rest := str
	for rest != "" {
		pidx := strings.IndexByte(rest, '(')
		if pidx < 0 {
			return fmt.Errorf("%w: no params for %q", errTransformParse, rest)
		}
		cmd := strings.TrimSpace(rest[:pidx])
		vals, nrest, err := readTransformParams(rest[pidx+1:])
		if err != nil {
			*m = Identity2()
			return err
		}
		rest = nrest
		n := len(vals)
		switch cmd {
		case "matrix":
			if n != 6 {
				*m = Identity2()
				return fmt.Errorf("%w: matrix needs 6 params, got %d", errTransformParse, n)
			}
			m.SetMul(Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]})
		case "translate":
			switch n {
			case 1:
				m.SetMul(Translate2D(vals[0], 0))
			case 2:
				m.SetMul(Translate2D(vals[0], vals[1]))
			default:
				*m = Identity2()
				return fmt.Errorf("%w: translate needs 1 or 2 params, got %d", errTransformParse, n)
			}
		case "scale":
			switch n {
			case 1:
				m.SetMul(Scale2D(vals[0], vals[0]))
			case 2:
				m.SetMul(Scale2D(vals[0], vals[1]))
			default:
				*m = Identity2()
				return fmt.Errorf("%w: scale needs 1 or 2 params, got %d", errTransformParse, n)
			}
		case "rotate":
			ang := DegToRad(vals[0])
			switch n {
			case 1:
				m.SetMul(Rotate2D(ang))
			case 3:
				m.SetMul(Translate2D(vals[1], vals[2]).Rotate(ang).Translate(-vals[1], -vals[2]))
			default:
				*m = Identity2()
				return fmt.Errorf("%w: rotate needs 1 or 3 params, got %d", errTransformParse, n)
			}
		case "skewx":
			if n != 1 {
				*m = Identity2()
				return fmt.Errorf("%w: skewX needs 1 param, got %d", errTransformParse, n)
			}
			m.SetMul(SkewX2D(DegToRad(vals[0])))
		case "skewy":
			if n != 1 {
				*m = Identity2()
				return fmt.Errorf("%w: skewY needs 1 param, got %d", errTransformParse, n)
			}
			m.SetMul(SkewY2D(DegToRad(vals[0])))
		default:
			*m = Identity2()
			return fmt.Errorf("%w: unknown function %q", errTransformParse, cmd)
		}
	}
	return nil
}

// readTransformParams reads the numbers up to the closing paren,
// returning the values and the remainder of the string after it.
func readTransformParams(s string) ([]float64, string, error) {
	cidx := strings.IndexByte(s, ')')
	if cidx < 0 {
		return nil, "", fmt.Errorf("%w: missing close paren", errTransformParse)
	}
	vals, err := ReadPoints(s[:cidx])
	if err != nil {
		return nil, "", err
	}
	rest := strings.TrimLeft(s[cidx+1:], " \t\r\n,")
	return vals, rest, nil
}

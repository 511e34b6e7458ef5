// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float64) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(s float64) Vector2 {
	return Vector2{s, s}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2) AddScalar(s float64) Vector2 {
	return Vector2{v.X + s, v.Y + s}
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2) SubScalar(s float64) Vector2 {
	return Vector2{v.X - s, v.Y - s}
}

// Mul multiplies each component of this vector by the corresponding one of the
// other vector and returns the resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns new vector.
func (v Vector2) MulScalar(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar divides each component of this vector by the scalar s and returns new vector.
// If scalar is zero, returns zero.
func (v Vector2) DivScalar(scalar float64) Vector2 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2{}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{math.Min(v.X, other.X), math.Min(v.Y, other.Y)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance of this point to the other point.
func (v Vector2) DistanceTo(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Dot returns the dot product of this vector with the other one.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the cross product of this vector with the other one.
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Lerp returns a vector composed of this vector's components interpolated
// linearly toward the other vector's components, by factor t.
func (v Vector2) Lerp(other Vector2, t float64) Vector2 {
	return Vector2{v.X + (other.X-v.X)*t, v.Y + (other.Y-v.Y)*t}
}

// AlmostEqual returns whether the vector is almost equal to the other vector,
// within the given tolerance on each component.
func (v Vector2) AlmostEqual(other Vector2, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol && math.Abs(v.Y-other.Y) <= tol
}

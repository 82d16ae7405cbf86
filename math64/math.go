// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 is a float64 based vector, matrix, and math package
// for 3D geometry, following the same API as the float32 [math32]
// package. It is used where picking and intersection math needs the
// extra precision, such as accumulated transform stacks and hit
// coordinates.
package math64

import "math"

// Mathematical constants.
const (
	E  = math.E
	Pi = math.Pi

	Sqrt2 = math.Sqrt2

	Ln2   = math.Ln2
	Log2E = math.Log2E
)

// Floating-point limit values.
// MaxFloat64 is the largest finite value representable by the type.
// SmallestNonzeroFloat64 is the smallest positive, non-zero value
// representable by the type.
const (
	MaxFloat64             = math.MaxFloat64
	SmallestNonzeroFloat64 = math.SmallestNonzeroFloat64
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = math.Inf(1)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Sign returns -1 if x < 0 and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Acos returns the arccosine, in radians, of x.
func Acos(x float64) float64 {
	return math.Acos(x)
}

// Asin returns the arcsine, in radians, of x.
func Asin(x float64) float64 {
	return math.Asin(x)
}

// Atan returns the arctangent, in radians, of x.
func Atan(x float64) float64 {
	return math.Atan(x)
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float64) float64 {
	return math.Atan2(y, x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float64) float64 {
	return math.Ceil(x)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Copysign returns a value with the magnitude of f
// and the sign of sign.
func Copysign(f, sign float64) float64 {
	return math.Copysign(f, sign)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float64) float64 {
	return math.Cos(x)
}

// Exp returns e**x, the base-e exponential of x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float64) float64 {
	return math.Floor(x)
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid unnecessary
// overflow and underflow.
func Hypot(p, q float64) float64 {
	return math.Hypot(p, q)
}

// Inf returns positive infinity if sign >= 0, negative infinity
// if sign < 0.
func Inf(sign int) float64 {
	return math.Inf(sign)
}

// IsInf reports whether f is an infinity, according to sign.
func IsInf(x float64, sign int) bool {
	return math.IsInf(x, sign)
}

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(x float64) bool {
	return math.IsNaN(x)
}

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// Log returns the natural logarithm of x.
func Log(x float64) float64 {
	return math.Log(x)
}

// Max returns the larger of x or y.
func Max(x, y float64) float64 {
	return math.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float64) float64 {
	return math.Min(x, y)
}

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float64) float64 {
	return math.Mod(x, y)
}

// NaN returns an IEEE 754 "not-a-number" value.
func NaN() float64 {
	return math.NaN()
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float64) float64 {
	return math.Pow(x, y)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float64) float64 {
	return math.Round(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float64) float64 {
	return math.Sin(x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float64) (sin, cos float64) {
	return math.Sincos(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float64) float64 {
	return math.Tan(x)
}

// Trunc returns the integer value of x.
func Trunc(x float64) float64 {
	return math.Trunc(x)
}

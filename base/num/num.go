// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides interfaces for generic numeric types.
package num

// Signed is a constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint for integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for all numeric types.
type Number interface {
	Integer | Float
}

// Abs returns the absolute value of the given signed or floating point number.
func Abs[T Signed | Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// ToFloat64 converts the given number to a float64.
func ToFloat64[T Number](v T) float64 {
	return float64(v)
}

// FromFloat64 converts the given float64 to the given number type.
func FromFloat64[T Number](v float64) T {
	return T(v)
}

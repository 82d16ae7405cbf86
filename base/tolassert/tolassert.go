// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (ie: in inexact floating point situations).
package tolassert

import (
	"github.com/stretchr/testify/assert"

	"cogentcore.org/pick/base/num"
)

// Equal asserts that the two given numbers are within 1.0e-4 of each other.
func Equal[T num.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 1.0e-4, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the given
// tolerance of each other.
func EqualTol[T num.Float](t assert.TestingT, expected T, actual T, tol T, msgAndArgs ...any) bool {
	if num.Abs(expected-actual) <= tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

// EqualTolSlice asserts that the numbers in the two given slices are
// within the given tolerance of each other, element by element.
func EqualTolSlice[T num.Float](t assert.TestingT, expected, actual []T, tol T, msgAndArgs ...any) bool {
	if len(expected) != len(actual) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	for i, ex := range expected {
		if num.Abs(ex-actual[i]) > tol {
			return assert.Equal(t, expected, actual, msgAndArgs...)
		}
	}
	return true
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/pick/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vec3(3, 5, 7), v.Add(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(-1, -1, -1), v.Sub(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(2, 6, 12), v.Mul(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(2, 4, 6), v.MulScalar(2))
	assert.Equal(t, Vector3{}, v.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), v.Negate())

	tolassert.Equal(t, float32(14), v.Dot(v))
	tolassert.Equal(t, float32(1), v.Normal().Length())

	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))

	v.SetZero()
	assert.True(t, v.IsNil())
}

func TestVector3Dims(t *testing.T) {
	var v Vector3
	v.SetDim(X, 1)
	v.SetDim(Y, 2)
	v.SetDim(Z, 3)
	assert.Equal(t, Vec3(1, 2, 3), v)
	tolassert.Equal(t, float32(2), v.Dim(Y))

	var vi Vector3i
	vi.SetDim(Z, 4)
	assert.Equal(t, int32(4), vi.Dim(Z))
	assert.Equal(t, Vec3i(1, 1, 4), vi.Max(Vector3iScalar(1)))
}

func TestVector3Slice(t *testing.T) {
	vals := []float32{9, 1, 2, 3}
	var v Vector3
	v.FromSlice(vals, 1)
	assert.Equal(t, Vec3(1, 2, 3), v)

	out := make([]float32, 4)
	v.ToSlice(out, 0)
	assert.Equal(t, []float32{1, 2, 3, 0}, out)
}

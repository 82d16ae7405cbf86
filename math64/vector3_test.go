// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"testing"

	"cogentcore.org/pick/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestVector3Basic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, -10, 18), a.Mul(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, Vec3(1, -5, 3), a.Min(b))
	assert.Equal(t, Vec3(4, 2, 6), a.Max(b))

	c := a
	c.SetAdd(b)
	assert.Equal(t, a.Add(b), c)
	c = a
	c.SetSub(b)
	assert.Equal(t, a.Sub(b), c)

	assert.True(t, Vector3{}.IsNil())
	assert.False(t, a.IsNil())
}

func TestVector3Oracle(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)
	oa := vec3.T{a.X, a.Y, a.Z}
	ob := vec3.T{b.X, b.Y, b.Z}

	tolassert.EqualTol(t, vec3.Dot(&oa, &ob), a.Dot(b), StandardTol)
	tolassert.EqualTol(t, oa.Length(), a.Length(), StandardTol)

	ocross := vec3.Cross(&oa, &ob)
	TolAssertEqualVector(t, StandardTol, Vec3(ocross[0], ocross[1], ocross[2]), a.Cross(b))

	onorm := oa.Normalized()
	TolAssertEqualVector(t, StandardTol, Vec3(onorm[0], onorm[1], onorm[2]), a.Normal())
}

func TestVector3NormalZero(t *testing.T) {
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestVector3Lerp(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(2, 4, 8)
	TolAssertEqualVector(t, StandardTol, Vec3(1, 2, 4), a.Lerp(b, 0.5))
	TolAssertEqualVector(t, StandardTol, a, a.Lerp(b, 0))
	TolAssertEqualVector(t, StandardTol, b, a.Lerp(b, 1))
}

func TestVector3MulMatrix4AsVector4(t *testing.T) {
	var m Matrix4
	m.SetTranslation(5, 6, 7)

	// w=1 transforms as a point, w=0 as a direction
	TolAssertEqualVector(t, StandardTol, Vec3(6, 6, 7), Vec3(1, 0, 0).MulMatrix4AsVector4(&m, 1))
	TolAssertEqualVector(t, StandardTol, Vec3(1, 0, 0), Vec3(1, 0, 0).MulMatrix4AsVector4(&m, 0))
}

func TestVector3Slice(t *testing.T) {
	array := []float64{0, 1, 2, 3, 4, 5}
	var v Vector3
	v.FromSlice(array, 1)
	assert.Equal(t, Vec3(1, 2, 3), v)
	v.ToSlice(array, 3)
	assert.Equal(t, []float64{0, 1, 2, 1, 2, 3}, array)
}

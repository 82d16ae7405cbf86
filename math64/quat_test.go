// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"testing"

	"cogentcore.org/pick/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestQuatAxisAngleOracle(t *testing.T) {
	axes := []Vector3{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}, Vec3(1, 1, 0).Normal()}
	angles := []float64{0, DegToRad(45), DegToRad(-120), Pi}
	pts := []Vector3{{1, 0, 0}, {0, 2, 0}, {1, -1, 3}}

	for _, axis := range axes {
		for _, ang := range angles {
			q := NewQuatAxisAngle(axis, ang)
			oaxis := vec3.T{axis.X, axis.Y, axis.Z}
			oq := quaternion.FromAxisAngle(&oaxis, ang)
			for _, p := range pts {
				op := oq.RotatedVec3(&vec3.T{p.X, p.Y, p.Z})
				TolAssertEqualVector(t, StandardTol, Vec3(op[0], op[1], op[2]), p.MulQuat(q))
			}
		}
	}
}

func TestQuatMatrixAgreement(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(1, 2, -1).Normal(), DegToRad(72))
	var m Matrix4
	m.SetRotationFromQuat(q)

	pts := []Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}}
	for _, p := range pts {
		TolAssertEqualVector(t, StandardTol, p.MulQuat(q), p.MulMatrix4(&m))
	}
}

func TestQuatFromRotationMatrix(t *testing.T) {
	angles := []float64{DegToRad(10), DegToRad(95), DegToRad(-150)}
	for _, ang := range angles {
		var m Matrix4
		m.SetRotationY(ang)
		var q Quat
		q.SetFromRotationMatrix(&m)

		var back Matrix4
		back.SetRotationFromQuat(q)
		TolAssertEqualMatrix(t, StandardTol, &m, &back)
	}
}

func TestQuatMul(t *testing.T) {
	qa := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	qb := NewQuatAxisAngle(Vec3(1, 0, 0), DegToRad(90))
	q := qa.Mul(qb)

	// b is applied first, then a
	p := Vec3(0, 1, 0)
	TolAssertEqualVector(t, StandardTol, p.MulQuat(qb).MulQuat(qa), p.MulQuat(q))
}

func TestQuatInverse(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(1, 0, 1).Normal(), DegToRad(33))
	p := Vec3(3, -2, 1)
	TolAssertEqualVector(t, StandardTol, p, p.MulQuat(q).MulQuat(q.Inverse()))
}

func TestQuatIdentity(t *testing.T) {
	var q Quat
	assert.True(t, q.IsNil())
	q.SetIdentity()
	assert.True(t, q.IsIdentity())
	p := Vec3(1, 2, 3)
	assert.Equal(t, p, p.MulQuat(q))
	tolassert.EqualTol(t, 1.0, q.Length(), StandardTol)
}

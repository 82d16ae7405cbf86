// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"testing"

	"cogentcore.org/pick/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSphereIsValid(t *testing.T) {
	var s Sphere
	assert.False(t, s.IsValid())
	s.Set(Vec3(1, 2, 3), 0)
	assert.False(t, s.IsValid())
	s.Radius = 0.001
	assert.True(t, s.IsValid())
	s.Radius = -1
	assert.False(t, s.IsValid())
}

func TestSphereContainsPoint(t *testing.T) {
	s := NewSphere(Vec3(1, 0, 0), 2)
	assert.True(t, s.ContainsPoint(Vec3(1, 0, 0)))
	assert.True(t, s.ContainsPoint(Vec3(3, 0, 0)))
	assert.False(t, s.ContainsPoint(Vec3(3.01, 0, 0)))
	tolassert.EqualTol(t, 1.0, s.DistanceToPoint(Vec3(4, 0, 0)), StandardTol)
}

func TestSphereSetFromPoints(t *testing.T) {
	pts := []Vector3{{-1, 0, 0}, {1, 0, 0}, {0, 2, 0}, {0, 0, -3}}
	var s Sphere
	s.SetFromPoints(pts, nil)
	assert.True(t, s.IsValid())
	for _, p := range pts {
		assert.True(t, s.ContainsPoint(p))
	}

	var sc Sphere
	ctr := Vec3(0, 0, 0)
	sc.SetFromPoints(pts, &ctr)
	assert.Equal(t, ctr, sc.Center)
	tolassert.EqualTol(t, 3.0, sc.Radius, StandardTol)
}

func TestSphereIntersectTranslate(t *testing.T) {
	a := NewSphere(Vec3(0, 0, 0), 1)
	b := NewSphere(Vec3(1.5, 0, 0), 1)
	c := NewSphere(Vec3(3, 0, 0), 0.5)
	assert.True(t, a.IntersectSphere(b))
	assert.False(t, a.IntersectSphere(c))

	a.Translate(Vec3(3, 0, 0))
	assert.True(t, a.IntersectSphere(c))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())

	b.SetFromPoints([]Vector3{{-1, 0, 2}, {3, -2, 1}, {0, 0, 0}})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(-1, -2, 0), b.Min)
	assert.Equal(t, Vec3(3, 0, 2), b.Max)
	assert.Equal(t, Vec3(1, -1, 1), b.Center())
	assert.Equal(t, Vec3(4, 2, 2), b.Size())

	assert.True(t, b.ContainsPoint(Vec3(0, -1, 1)))
	assert.False(t, b.ContainsPoint(Vec3(0, 1, 1)))

	b.ExpandByPoint(Vec3(0, 4, 0))
	assert.True(t, b.ContainsPoint(Vec3(0, 1, 1)))
}

func TestBox3Ops(t *testing.T) {
	a := B3(0, 0, 0, 2, 2, 2)
	c := B3(1, 1, 1, 3, 3, 3)
	assert.True(t, a.IntersectsBox(c))
	assert.Equal(t, B3(1, 1, 1, 2, 2, 2), a.Intersect(c))
	assert.Equal(t, B3(0, 0, 0, 3, 3, 3), a.Union(c))

	d := B3(4, 4, 4, 5, 5, 5)
	assert.False(t, a.IntersectsBox(d))

	assert.Equal(t, Vec3(2, 2, 2), a.ClampPoint(Vec3(5, 5, 5)))
	assert.Equal(t, B3(1, 0, 0, 3, 2, 2), a.Translate(Vec3(1, 0, 0)))
}

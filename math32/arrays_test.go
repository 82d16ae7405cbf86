// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayF32(t *testing.T) {
	a := NewArrayF32(0, 9)
	a.AppendVector3(Vec3(1, 2, 3), Vec3(4, 5, 6))
	a.Append(7, 8, 9)
	assert.Equal(t, 3, a.NumVector3())
	assert.Equal(t, 36, a.NumBytes())

	var v Vector3
	a.GetVector3(3, &v)
	assert.Equal(t, Vec3(4, 5, 6), v)

	a.SetVector3(6, Vec3(10, 11, 12))
	assert.Equal(t, float32(11), a[7])

	a.Set(0, 0, 0)
	assert.Equal(t, float32(0), a[1])
	assert.Equal(t, float32(3), a[2])
}

func TestArrayIndex(t *testing.T) {
	ix := NewArrayU32(3, 3)
	ix.Set(0, 2, 1, 0)
	assert.Equal(t, ArrayU32{2, 1, 0}, ix)
	ix.Append(3)
	assert.Equal(t, 16, ix.NumBytes())

	sx := NewArrayU16(0, 3)
	sx.Append(0, 1, 2)
	assert.Equal(t, 6, sx.NumBytes())
	sx.Set(1, 9)
	assert.Equal(t, ArrayU16{0, 9, 2}, sx)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/pick/math64"
	"github.com/stretchr/testify/assert"
)

func TestNodeNames(t *testing.T) {
	sc := NewScene("sc")
	gp := NewChild[*Group](sc)
	assert.Equal(t, "group-0", gp.Name)

	tr := NewChild[*Transform](sc, "arm")
	assert.Equal(t, "arm", tr.Name)

	ge := NewChild[*Geometry](tr)
	assert.Equal(t, "geometry-0", ge.Name)

	assert.Equal(t, 2, sc.NumChildren())
	assert.Same(t, tr, sc.ChildByName("arm"))
	assert.Nil(t, sc.ChildByName("leg"))
	assert.Same(t, sc, gp.Parent)

	rt := NewRoot[*Group]()
	assert.Equal(t, "group", rt.Name)
}

func TestNodePath(t *testing.T) {
	sc := NewScene("sc")
	arm := NewChild[*Transform](sc, "arm")
	hand := NewChild[*Geometry](arm, "hand")
	assert.Equal(t, "/sc/arm/hand", hand.Path())

	slashed := NewChild[*Group](sc, "a/b")
	assert.Equal(t, `/sc/a\\b`, slashed.Path())

	assert.Same(t, hand, sc.FindPath("arm/hand"))
	assert.Same(t, arm, sc.FindPath("arm"))
	assert.Same(t, slashed, sc.FindPath(`a\\b`))
	assert.Same(t, sc, sc.FindPath(""))
	assert.Nil(t, sc.FindPath("arm/foot"))
}

func TestWalkDown(t *testing.T) {
	sc := NewScene("sc")
	a := NewChild[*Group](sc, "a")
	NewChild[*Group](a, "aa")
	NewChild[*Group](sc, "b")

	var names []string
	sc.WalkDown(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		return Continue
	})
	assert.Equal(t, []string{"sc", "a", "aa", "b"}, names)

	// Break stops the walk within a branch but not across siblings
	names = nil
	sc.WalkDown(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		if n.AsNodeBase().Name == "a" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"sc", "a", "b"}, names)
}

func TestCopyFrom(t *testing.T) {
	src := New[*Transform]("src")
	src.SetPos(1, 2, 3).SetScale(2, 2, 2)

	dst := New[*Transform]("dst")
	dst.CopyFrom(src)
	assert.Equal(t, math64.Vec3(1, 2, 3), dst.Pose.Pos)
	assert.Equal(t, math64.Vec3(2, 2, 2), dst.Pose.Scale)

	// tree identity fields are not copied
	assert.Equal(t, "dst", dst.Name)
	assert.Same(t, dst, dst.This)
}

func TestTransformMatrix(t *testing.T) {
	tr := New[*Transform]()
	tr.SetPos(2, -1, 4).SetAxisRotation(0, 1, 0, 30)

	var local math64.Matrix4
	local.SetTransform(math64.Vec3(2, -1, 4),
		math64.NewQuatAxisAngle(math64.Vec3(0, 1, 0), math64.DegToRad(30)),
		math64.Vec3(1, 1, 1))

	parent := math64.Identity4()
	got := tr.Transform(parent)
	assert.Equal(t, local, got)

	// the parent frame composes on the left
	var pm math64.Matrix4
	pm.SetTranslation(0, 0, -5)
	got = tr.Transform(&pm)
	assert.Equal(t, *pm.Mul(&local), got)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"cogentcore.org/pick/base/tolassert"
	"cogentcore.org/pick/math64"
	"github.com/stretchr/testify/assert"
)

// testCamera is a fixed-matrix [Camera] for constructing polytopes
// without a scene.
type testCamera struct {
	viewport Viewport
	proj     math64.Matrix4
	view     math64.Matrix4
}

func (tc *testCamera) PickViewport() Viewport         { return tc.viewport }
func (tc *testCamera) PickProjection() math64.Matrix4 { return tc.proj }
func (tc *testCamera) PickView() math64.Matrix4       { return tc.view }

// perspectiveCamera returns a 90 degree camera at the origin looking
// down -z, with an 800x800 window. Swapping near and far produces the
// reversed depth convention.
func perspectiveCamera(near, far float64) *testCamera {
	tc := &testCamera{
		viewport: Viewport{X: 0, Y: 0, Width: 800, Height: 800, MinDepth: 0, MaxDepth: 1},
	}
	tc.proj.SetPerspective(90, 1, near, far)
	tc.view.SetIdentity()
	return tc
}

func TestPolytopeContainsPoint(t *testing.T) {
	p := boxPolytope(1)
	assert.True(t, p.ContainsPoint(math64.Vec3(0, 0, 0)))
	assert.True(t, p.ContainsPoint(math64.Vec3(1, 0, 0))) // boundary is inside
	assert.True(t, p.ContainsPoint(math64.Vec3(0.9, -0.9, 0.9)))
	assert.False(t, p.ContainsPoint(math64.Vec3(1.5, 0, 0)))
	assert.False(t, p.ContainsPoint(math64.Vec3(0, 0, -1.01)))
}

func TestPolytopeContainsSphere(t *testing.T) {
	p := boxPolytope(1)
	assert.True(t, p.ContainsSphere(math64.Vec3(0, 0, 0), 0.5))
	assert.True(t, p.ContainsSphere(math64.Vec3(2, 0, 0), 1.5)) // overlaps the +x face
	assert.False(t, p.ContainsSphere(math64.Vec3(2, 0, 0), 0.5))
	assert.False(t, p.ContainsSphere(math64.Vec3(0, -3, 0), 1))
}

func TestPolytopeContainsTriangle(t *testing.T) {
	p := boxPolytope(1)
	assert.True(t, p.ContainsTriangle(
		math64.Vec3(-0.5, 0, 0), math64.Vec3(0.5, 0, 0), math64.Vec3(0, 0.5, 0)))
	// straddling a face
	assert.True(t, p.ContainsTriangle(
		math64.Vec3(0.5, 0, 0), math64.Vec3(2, 0, 0), math64.Vec3(2, 1, 0)))
	// all vertices beyond the +x face
	assert.False(t, p.ContainsTriangle(
		math64.Vec3(2, 0, 0), math64.Vec3(3, 0, 0), math64.Vec3(2, 1, 0)))
	// past a corner but not fully outside any single face: the test is
	// conservative and keeps it
	assert.True(t, p.ContainsTriangle(
		math64.Vec3(2, 0, 0), math64.Vec3(0, 2, 0), math64.Vec3(2, 2, 0)))
}

func TestPolytopeTransform(t *testing.T) {
	p := boxPolytope(1)
	var m math64.Matrix4
	m.SetTranslation(5, 0, 0)

	tp := p.Transform(&m)
	assert.Len(t, tp, len(p))
	// pure translation leaves normals unchanged and shifts offsets
	assertVector3(t, StandardTol, math64.Vec3(1, 0, 0), tp[0].Norm)
	tolassert.EqualTol(t, 6.0, tp[0].Off, StandardTol)
	assertVector3(t, StandardTol, math64.Vec3(-1, 0, 0), tp[1].Norm)
	tolassert.EqualTol(t, -4.0, tp[1].Off, StandardTol)

	// the local-frame polytope contains the world region re-expressed
	// locally: world origin is local (-5,0,0)
	assert.True(t, tp.ContainsPoint(math64.Vec3(-5, 0, 0)))
	assert.False(t, tp.ContainsPoint(math64.Vec3(0, 0, 0)))
}

// Transforming by A then B must match transforming by the composed
// matrix A*B, plane by plane.
func TestPolytopeTransformCompose(t *testing.T) {
	p := boxPolytope(1)

	var a, b math64.Matrix4
	q := math64.NewQuatAxisAngle(math64.Vec3(0, 1, 0), math64.DegToRad(30))
	a.SetTransform(math64.Vec3(2, -1, 4), q, math64.Vec3(1, 1, 1))
	b.SetScale(2, 1, 0.5)

	stepwise := p.Transform(&a).Transform(&b)
	composed := p.Transform(a.Mul(&b))

	assert.Len(t, stepwise, len(composed))
	for i := range stepwise {
		assertVector3(t, StandardTol, composed[i].Norm, stepwise[i].Norm)
		tolassert.EqualTol(t, composed[i].Off, stepwise[i].Off, StandardTol)
	}
}

func TestNewPolytopeFromCamera(t *testing.T) {
	cam := perspectiveCamera(1, 11)
	p := NewPolytopeFromCamera(cam, 0, 0, 800, 800)
	assert.Len(t, p, 6)
	for i := range p {
		tolassert.EqualTol(t, 1.0, p[i].Norm.Length(), StandardTol)
	}

	assert.True(t, p.ContainsPoint(math64.Vec3(0, 0, -5)))
	assert.False(t, p.ContainsPoint(math64.Vec3(0, 0, -0.5))) // closer than near
	assert.False(t, p.ContainsPoint(math64.Vec3(0, 0, -20)))  // beyond far
	assert.False(t, p.ContainsPoint(math64.Vec3(0, 0, 5)))    // behind the camera

	// 90 degree fov: half extent equals distance
	assert.True(t, p.ContainsPoint(math64.Vec3(4.9, 0, -5)))
	assert.False(t, p.ContainsPoint(math64.Vec3(5.1, 0, -5)))
	assert.True(t, p.ContainsPoint(math64.Vec3(0, -4.9, -5)))
	assert.False(t, p.ContainsPoint(math64.Vec3(0, -5.1, -5)))
}

// Sub-window rectangles select the matching world-space region;
// window y runs down, so the top half of the window is +y in world.
func TestNewPolytopeFromCameraSubRect(t *testing.T) {
	cam := perspectiveCamera(1, 11)

	right := NewPolytopeFromCamera(cam, 400, 0, 800, 800)
	assert.True(t, right.ContainsPoint(math64.Vec3(2, 0, -5)))
	assert.False(t, right.ContainsPoint(math64.Vec3(-2, 0, -5)))

	top := NewPolytopeFromCamera(cam, 0, 0, 800, 400)
	assert.True(t, top.ContainsPoint(math64.Vec3(0, 2, -5)))
	assert.False(t, top.ContainsPoint(math64.Vec3(0, -2, -5)))
}

// The reversed depth convention (swapped near/far projection) selects
// the same world region, with the near face still at plane index 4.
func TestNewPolytopeFromCameraReversedDepth(t *testing.T) {
	normal := perspectiveCamera(1, 11)
	reversed := perspectiveCamera(11, 1)
	assert.False(t, reversedDepth(&normal.proj))
	assert.True(t, reversedDepth(&reversed.proj))

	pts := []math64.Vector3{
		{X: 0, Y: 0, Z: -5}, {X: 0, Y: 0, Z: -0.5}, {X: 0, Y: 0, Z: -20},
		{X: 4.9, Y: 0, Z: -5}, {X: 5.1, Y: 0, Z: -5},
	}
	pn := NewPolytopeFromCamera(normal, 0, 0, 800, 800)
	pr := NewPolytopeFromCamera(reversed, 0, 0, 800, 800)
	for _, pt := range pts {
		assert.Equal(t, pn.ContainsPoint(pt), pr.ContainsPoint(pt), "point %v", pt)
	}

	// index 4 is the logical near face in both conventions
	tooClose := math64.Vec3(0, 0, -0.5)
	tooFar := math64.Vec3(0, 0, -20)
	for _, p := range []Polytope{pn, pr} {
		assert.Negative(t, p[4].DistanceToPoint(tooClose))
		assert.Positive(t, p[5].DistanceToPoint(tooClose))
		assert.Positive(t, p[4].DistanceToPoint(tooFar))
		assert.Negative(t, p[5].DistanceToPoint(tooFar))
	}
}

// All eight frustum corners, nudged slightly inward, are inside the
// full-window polytope in both depth conventions; nudged outward on
// any axis they are not. The 90 degree camera has half extent equal
// to distance, so the corners at depth d are (±d, ±d, -d).
func TestNewPolytopeFromCameraCorners(t *testing.T) {
	center := math64.Vec3(0, 0, -6)
	for _, cam := range []*testCamera{perspectiveCamera(1, 11), perspectiveCamera(11, 1)} {
		p := NewPolytopeFromCamera(cam, 0, 0, 800, 800)
		for _, d := range []float64{1, 11} {
			for _, sx := range []float64{-1, 1} {
				for _, sy := range []float64{-1, 1} {
					corner := math64.Vec3(sx*d, sy*d, -d)
					assert.True(t, p.ContainsPoint(corner.Lerp(center, 0.01)), "corner %v", corner)
					out := math64.Vec3(sx*d*1.05, sy*d, -d)
					assert.False(t, p.ContainsPoint(out), "outside %v", out)
				}
			}
		}
	}
}

// A zero-extent viewport passes the query rectangle through as raw
// NDC values.
func TestNewPolytopeFromCameraZeroViewport(t *testing.T) {
	cam := perspectiveCamera(1, 11)
	cam.viewport = Viewport{MinDepth: 0, MaxDepth: 1}

	p := NewPolytopeFromCamera(cam, -1, -1, 1, 1)
	assert.True(t, p.ContainsPoint(math64.Vec3(0, 0, -5)))
	assert.True(t, p.ContainsPoint(math64.Vec3(4.9, 0, -5)))
	assert.False(t, p.ContainsPoint(math64.Vec3(5.1, 0, -5)))
	assert.False(t, p.ContainsPoint(math64.Vec3(0, 0, -20)))
}

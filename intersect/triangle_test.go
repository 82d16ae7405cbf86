// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"cogentcore.org/pick/base/tolassert"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
	"github.com/stretchr/testify/assert"
)

const StandardTol = 1.0e-6

func assertVector3(t *testing.T, tol float64, expected, actual math64.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

// boxPolytope returns a normalized polytope bounding the axis-aligned
// cube of the given half extent around the origin.
func boxPolytope(half float64) Polytope {
	p := Polytope{
		math64.NewPlane(math64.Vec3(1, 0, 0), half),
		math64.NewPlane(math64.Vec3(-1, 0, 0), half),
		math64.NewPlane(math64.Vec3(0, 1, 0), half),
		math64.NewPlane(math64.Vec3(0, -1, 0), half),
		math64.NewPlane(math64.Vec3(0, 0, 1), half),
		math64.NewPlane(math64.Vec3(0, 0, -1), half),
	}
	p.Normalize()
	return p
}

// canonicalTriangle is a triangle in the z=0 plane spanning the query
// segments used throughout these tests.
func canonicalTriangle() math32.ArrayF32 {
	var verts math32.ArrayF32
	verts.AppendVector3(
		math32.Vec3(-1, -1, 0),
		math32.Vec3(1, -1, 0),
		math32.Vec3(0, 1, 0),
	)
	return verts
}

// assertHitValid checks the general hit record invariants: barycentric
// weights in [0,1] summing to 1, and ratio in [0,1].
func assertHitValid(t *testing.T, in *Intersection) {
	t.Helper()
	sum := 0.0
	for _, ir := range in.IndexRatios {
		assert.GreaterOrEqual(t, ir.Ratio, -StandardTol)
		assert.LessOrEqual(t, ir.Ratio, 1+StandardTol)
		sum += ir.Ratio
	}
	tolassert.EqualTol(t, 1.0, sum, StandardTol)
	assert.GreaterOrEqual(t, in.Ratio, 0.0)
	assert.LessOrEqual(t, in.Ratio, 1.0)
}

func TestIntersectTriangle(t *testing.T) {
	start := math64.Vec3(0, 0, -1)
	end := math64.Vec3(0, 0, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, canonicalTriangle(), 0)

	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	assert.Len(t, pi.Hits, 1)

	in := pi.Hits[0]
	assertHitValid(t, in)
	assertVector3(t, StandardTol, math64.Vec3(0, 0, 0), in.LocalCoord)
	assertVector3(t, StandardTol, math64.Vec3(0, 0, 0), in.WorldCoord)
	tolassert.EqualTol(t, 0.5, in.Ratio, StandardTol)
	tolassert.EqualTol(t, 0.25, in.IndexRatios[0].Ratio, StandardTol)
	tolassert.EqualTol(t, 0.25, in.IndexRatios[1].Ratio, StandardTol)
	tolassert.EqualTol(t, 0.5, in.IndexRatios[2].Ratio, StandardTol)
	assert.Equal(t, uint32(0), in.IndexRatios[0].Index)
	assert.Equal(t, uint32(1), in.IndexRatios[1].Index)
	assert.Equal(t, uint32(2), in.IndexRatios[2].Index)
}

// A segment through the triangle centroid weights all three corners
// equally.
func TestIntersectTriangleCentroid(t *testing.T) {
	start := math64.Vec3(0, -1.0/3.0, -1)
	end := math64.Vec3(0, -1.0/3.0, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, canonicalTriangle(), 0)

	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	assert.Len(t, pi.Hits, 1)

	in := pi.Hits[0]
	assertHitValid(t, in)
	assertVector3(t, StandardTol, math64.Vec3(0, -1.0/3.0, 0), in.LocalCoord)
	tolassert.EqualTol(t, 0.5, in.Ratio, StandardTol)
	for i := range 3 {
		tolassert.EqualTol(t, 1.0/3.0, in.IndexRatios[i].Ratio, StandardTol)
	}
}

// The opposite winding order exercises the positive-determinant branch
// and must produce the same hit point.
func TestIntersectTriangleWinding(t *testing.T) {
	start := math64.Vec3(0, 0, -1)
	end := math64.Vec3(0, 0, 1)
	var verts math32.ArrayF32
	verts.AppendVector3(
		math32.Vec3(-1, -1, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(1, -1, 0),
	)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, verts, 0)

	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	in := pi.Hits[0]
	assertHitValid(t, in)
	assertVector3(t, StandardTol, math64.Vec3(0, 0, 0), in.LocalCoord)
	tolassert.EqualTol(t, 0.5, in.Ratio, StandardTol)
	tolassert.EqualTol(t, 0.25, in.IndexRatios[0].Ratio, StandardTol)
	tolassert.EqualTol(t, 0.5, in.IndexRatios[1].Ratio, StandardTol)
	tolassert.EqualTol(t, 0.25, in.IndexRatios[2].Ratio, StandardTol)
}

// A triangle beyond the segment's far end is rejected by the length
// bound even though the infinite line would cross it.
func TestIntersectTriangleBeyondSegment(t *testing.T) {
	start := math64.Vec3(0, 0, -1)
	end := math64.Vec3(0, 0, 1)
	var verts math32.ArrayF32
	verts.AppendVector3(
		math32.Vec3(-1, -1, 5),
		math32.Vec3(1, -1, 5),
		math32.Vec3(0, 1, 5),
	)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, verts, 0)

	assert.False(t, ti.IntersectTriangle(0, 1, 2))
	assert.Empty(t, pi.Hits)
}

func TestIntersectTriangleMiss(t *testing.T) {
	start := math64.Vec3(5, 5, -1)
	end := math64.Vec3(5, 5, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, canonicalTriangle(), 0)

	assert.False(t, ti.IntersectTriangle(0, 1, 2))
	assert.Empty(t, pi.Hits)
}

// A segment parallel to the triangle plane has a near-zero determinant
// and is rejected without division.
func TestIntersectTriangleParallel(t *testing.T) {
	start := math64.Vec3(0, 0, -1)
	end := math64.Vec3(0, 0, 1)
	var verts math32.ArrayF32
	verts.AppendVector3(
		math32.Vec3(1, -1, -1),
		math32.Vec3(1, 1, -1),
		math32.Vec3(1, 0, 1),
	)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, verts, 0)

	assert.False(t, ti.IntersectTriangle(0, 1, 2))
}

func TestIntersectTriangleZeroLengthSegment(t *testing.T) {
	pt := math64.Vec3(0, 0, 0)
	pi := NewPolytopeIntersector(boxPolytope(10), pt, pt)
	ti := NewTriangleIntersector[float64](pi, pt, pt, canonicalTriangle(), 0)

	assert.NotPanics(t, func() {
		assert.False(t, ti.IntersectTriangle(0, 1, 2))
	})
	assert.Empty(t, pi.Hits)
}

// A segment endpoint exactly on a triangle vertex resolves as a hit:
// the bound comparisons are inclusive.
func TestIntersectTriangleVertexInclusive(t *testing.T) {
	start := math64.Vec3(0, 1, -1)
	end := math64.Vec3(0, 1, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, canonicalTriangle(), 0)

	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	in := pi.Hits[0]
	assertHitValid(t, in)
	assertVector3(t, StandardTol, math64.Vec3(0, 1, 0), in.LocalCoord)
	tolassert.EqualTol(t, 0.0, in.IndexRatios[0].Ratio, StandardTol)
	tolassert.EqualTol(t, 0.0, in.IndexRatios[1].Ratio, StandardTol)
	tolassert.EqualTol(t, 1.0, in.IndexRatios[2].Ratio, StandardTol)
}

func TestIntersectTriangleIndexOutOfRange(t *testing.T) {
	start := math64.Vec3(0, 0, -1)
	end := math64.Vec3(0, 0, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, canonicalTriangle(), 0)

	assert.NotPanics(t, func() {
		assert.False(t, ti.IntersectTriangle(0, 1, 3))
	})
	assert.Empty(t, pi.Hits)
}

// Repeated calls on the same inputs must produce identical results.
func TestIntersectTriangleDeterminism(t *testing.T) {
	start := math64.Vec3(0.1, -0.2, -1)
	end := math64.Vec3(-0.05, 0.1, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float64](pi, start, end, canonicalTriangle(), 0)

	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	assert.Len(t, pi.Hits, 2)
	assert.Equal(t, pi.Hits[0].LocalCoord, pi.Hits[1].LocalCoord)
	assert.Equal(t, pi.Hits[0].Ratio, pi.Hits[1].Ratio)
	assert.Equal(t, pi.Hits[0].IndexRatios, pi.Hits[1].IndexRatios)
}

// The float32 working precision variant must agree with float64 within
// single-precision tolerance, and still reports float64 coordinates.
func TestIntersectTriangleFloat32(t *testing.T) {
	start := math64.Vec3(0, -1.0/3.0, -1)
	end := math64.Vec3(0, -1.0/3.0, 1)
	pi := NewPolytopeIntersector(boxPolytope(10), start, end)
	ti := NewTriangleIntersector[float32](pi, start, end, canonicalTriangle(), 0)

	assert.True(t, ti.IntersectTriangle(0, 1, 2))
	in := pi.Hits[0]
	assertHitValid(t, in)
	assertVector3(t, 1.0e-4, math64.Vec3(0, -1.0/3.0, 0), in.LocalCoord)
	tolassert.EqualTol(t, 0.5, in.Ratio, 1.0e-4)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"cogentcore.org/pick/base/num"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
)

// vec3 is a minimal vector of the working precision used by
// [TriangleIntersector]. Only the operations the intersection kernel
// needs are defined.
type vec3[T num.Float] struct {
	X, Y, Z T
}

func vec3From64[T num.Float](v math64.Vector3) vec3[T] {
	return vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

func vec3From32[T num.Float](v math32.Vector3) vec3[T] {
	return vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

func (v vec3[T]) sub(o vec3[T]) vec3[T] {
	return vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v vec3[T]) dot(o vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v vec3[T]) cross(o vec3[T]) vec3[T] {
	return vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v vec3[T]) mulScalar(s T) vec3[T] {
	return vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

func (v vec3[T]) length() T {
	return T(math64.Sqrt(float64(v.dot(v))))
}

// divComponent returns the vector divided by the given component
// value, or the zero vector if the component is zero.
func (v vec3[T]) divComponent(c T) vec3[T] {
	if c == 0 {
		return vec3[T]{}
	}
	return vec3[T]{v.X / c, v.Y / c, v.Z / c}
}

// triEpsilon is the determinant magnitude below which a triangle is
// treated as parallel to (or degenerate against) the query segment.
const triEpsilon = 1e-10

// TriangleIntersector intersects the central query segment against
// individual triangles of one vertex array, recording hits on the
// owning [PolytopeIntersector]. The type parameter selects the working
// precision of the rejection arithmetic; the hit coordinate is always
// accumulated in float64 from the original float32 vertex values, so
// a float32 working precision cannot degrade reported positions.
type TriangleIntersector[T num.Float] struct {
	pi       *PolytopeIntersector
	verts    math32.ArrayF32
	instance uint32

	start vec3[T]
	end   vec3[T]

	// dir is the unit direction from start to end, zero for a
	// zero-length segment.
	dir       vec3[T]
	length    T
	invLength T

	// component-inverse directions (dir scaled so the respective
	// component is 1, zero vector where that component is 0).
	// Precomputed alongside the rest but not consulted by the
	// triangle kernel itself.
	dirInvX vec3[T]
	dirInvY vec3[T]
	dirInvZ vec3[T]
}

// NewTriangleIntersector returns an intersector for one vertex array
// and instance, testing against the world or local segment from start
// to end. A zero-length segment is tolerated: every triangle test
// simply fails.
func NewTriangleIntersector[T num.Float](pi *PolytopeIntersector, start, end math64.Vector3, verts math32.ArrayF32, instance uint32) *TriangleIntersector[T] {
	ti := &TriangleIntersector[T]{
		pi:       pi,
		verts:    verts,
		instance: instance,
		start:    vec3From64[T](start),
		end:      vec3From64[T](end),
	}
	ti.dir = ti.end.sub(ti.start)
	ti.length = ti.dir.length()
	if ti.length != 0 {
		ti.invLength = 1 / ti.length
	}
	ti.dir = ti.dir.mulScalar(ti.invLength)
	ti.dirInvX = ti.dir.divComponent(ti.dir.X)
	ti.dirInvY = ti.dir.divComponent(ti.dir.Y)
	ti.dirInvZ = ti.dir.divComponent(ti.dir.Z)
	return ti
}

// IntersectTriangle tests the segment against the triangle with the
// given corner indices into the vertex array, recording a hit on the
// owning intersector and returning true if the segment crosses the
// triangle within its length. Indices at or beyond the vertex count
// return false.
func (ti *TriangleIntersector[T]) IntersectTriangle(i0, i1, i2 uint32) bool {
	nv := uint32(ti.verts.NumVector3())
	if i0 >= nv || i1 >= nv || i2 >= nv {
		return false
	}
	var fv0, fv1, fv2 math32.Vector3
	ti.verts.GetVector3(int(i0)*3, &fv0)
	ti.verts.GetVector3(int(i1)*3, &fv1)
	ti.verts.GetVector3(int(i2)*3, &fv2)

	v0 := vec3From32[T](fv0)
	v1 := vec3From32[T](fv1)
	v2 := vec3From32[T](fv2)

	tv := ti.start.sub(v0)
	e2 := v2.sub(v0)
	e1 := v1.sub(v0)

	p := ti.dir.cross(e2)
	det := p.dot(e1)

	var ratio, r0, r1, r2 T

	epsilon := T(triEpsilon)
	switch {
	case det > epsilon:
		u := p.dot(tv)
		if u < 0 || u > det {
			return false
		}
		q := tv.cross(e1)
		v := q.dot(ti.dir)
		if v < 0 || v > det {
			return false
		}
		if u+v > det {
			return false
		}
		invDet := 1 / det
		t := q.dot(e2) * invDet
		if t < 0 || t > ti.length {
			return false
		}
		u *= invDet
		v *= invDet
		r0 = 1 - u - v
		r1 = u
		r2 = v
		ratio = t * ti.invLength
	case det < -epsilon:
		u := p.dot(tv)
		if u > 0 || u < det {
			return false
		}
		q := tv.cross(e1)
		v := q.dot(ti.dir)
		if v > 0 || v < det {
			return false
		}
		if u+v < det {
			return false
		}
		invDet := 1 / det
		t := q.dot(e2) * invDet
		if t < 0 || t > ti.length {
			return false
		}
		u *= invDet
		v *= invDet
		r0 = 1 - u - v
		r1 = u
		r2 = v
		ratio = t * ti.invLength
	default:
		return false
	}

	// the hit coordinate is accumulated in float64 from the source
	// float32 vertices, independent of the working precision.
	coord := vector3From32(fv0).MulScalar(float64(r0)).
		Add(vector3From32(fv1).MulScalar(float64(r1))).
		Add(vector3From32(fv2).MulScalar(float64(r2)))

	ti.pi.Add(coord, float64(ratio), IndexRatios{
		{Index: i0, Ratio: float64(r0)},
		{Index: i1, Ratio: float64(r1)},
		{Index: i2, Ratio: float64(r2)},
	}, ti.instance)
	return true
}

// vector3From32 widens a float32 vector to float64.
func vector3From32(v math32.Vector3) math64.Vector3 {
	return math64.Vec3(float64(v.X), float64(v.Y), float64(v.Z))
}

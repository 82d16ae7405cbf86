// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"cmp"
	"log/slog"
	"slices"

	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
)

// Segment is a directed line segment between two points, in whatever
// coordinate frame its endpoints are expressed in.
type Segment struct {
	Start math64.Vector3
	End   math64.Vector3
}

// IndexRatio pairs a vertex index with its barycentric weight in an
// intersection.
type IndexRatio struct {
	Index uint32
	Ratio float64
}

// IndexRatios holds the three corner contributions of an intersected
// triangle. The weights sum to 1.
type IndexRatios [3]IndexRatio

// Intersection is one recorded hit of the query segment against a
// triangle. It is immutable once recorded.
type Intersection struct {

	// LocalCoord is the hit position in the local frame of the
	// drawable that produced it.
	LocalCoord math64.Vector3

	// WorldCoord is the hit position in world coordinates.
	WorldCoord math64.Vector3

	// Ratio is the normalized position of the hit along the central
	// query segment: 0 at the start (near) end, 1 at the end (far).
	Ratio float64

	// LocalToWorld is the accumulated transform that was in effect
	// when the hit was recorded.
	LocalToWorld math64.Matrix4

	// NodePath is the ordered list of node names from the root to the
	// drawable, copied at the moment of the hit.
	NodePath []string

	// Arrays are the vertex attribute arrays of the drawable,
	// shared read-only with the scene.
	Arrays []math32.ArrayF32

	// IndexRatios are the hit triangle's corner indices with their
	// barycentric weights.
	IndexRatios IndexRatios

	// Instance is the instance index of the draw call that was hit.
	Instance uint32
}

// Intersections is the append-only hit collection of one query pass,
// in recording order.
type Intersections []*Intersection

// SortByRatio sorts the hits from nearest to farthest along the query
// segment, keeping recording order for equal ratios.
func (in Intersections) SortByRatio() {
	slices.SortStableFunc(in, func(a, b *Intersection) int {
		return cmp.Compare(a.Ratio, b.Ratio)
	})
}

// PolytopeIntersector tests a convex query region against the
// triangles of a scene graph. An external traversal drives it through
// the [Intersector] interface: the world-space polytope and central
// query segment established at construction are re-expressed in each
// local coordinate frame as transforms are pushed, and draw-call tests
// append to [PolytopeIntersector.Hits].
//
// One instance serves exactly one query pass and must not be shared
// across concurrent queries; the geometry it reads is never mutated.
type PolytopeIntersector struct {
	IntersectorBase

	// Hits are the recorded intersections, in traversal order.
	// Callers rank them afterwards, typically with
	// [Intersections.SortByRatio].
	Hits Intersections

	// Logger, if non-nil, receives debug-level traversal diagnostics.
	Logger *slog.Logger

	// polytopes and segments parallel the matrix stacks: index 0 is
	// the world-space query, the top is the current local frame's.
	polytopes []Polytope
	segments  []Segment
}

// NewPolytopeIntersector returns an intersector for an explicit
// world-space polytope and central query segment from start to end.
// The polytope's planes should be normalized if sphere rejection
// distances are to be metric; [NewPolytopeFromCamera] returns
// normalized planes.
func NewPolytopeIntersector(polytope Polytope, start, end math64.Vector3) *PolytopeIntersector {
	pi := &PolytopeIntersector{}
	pi.pushMatrices(*math64.Identity4(), *math64.Identity4())
	pi.polytopes = append(pi.polytopes, polytope)
	pi.segments = append(pi.segments, Segment{Start: start, End: end})
	return pi
}

// NewPolytopeIntersectorFromCamera returns an intersector for the
// window-space rectangle (xMin, yMin) to (xMax, yMax) seen through the
// given camera: the world polytope is built per [NewPolytopeFromCamera]
// and the query segment runs through the rectangle center from the
// near to the far depth bound.
func NewPolytopeIntersectorFromCamera(cam Camera, xMin, yMin, xMax, yMax float64) *PolytopeIntersector {
	polytope := NewPolytopeFromCamera(cam, xMin, yMin, xMax, yMax)
	start, end := cameraSegment(cam, xMin, yMin, xMax, yMax)
	return NewPolytopeIntersector(polytope, start, end)
}

// polytope returns the query polytope in the current local frame.
func (pi *PolytopeIntersector) polytope() Polytope {
	return pi.polytopes[len(pi.polytopes)-1]
}

// segment returns the query segment in the current local frame.
func (pi *PolytopeIntersector) segment() Segment {
	return pi.segments[len(pi.segments)-1]
}

func (pi *PolytopeIntersector) logDebug(msg string, args ...any) {
	if pi.Logger != nil {
		pi.Logger.Debug(msg, args...)
	}
}

// PushTransform enters the local coordinate frame established by the
// given transform node: the accumulated local-to-world matrix and its
// inverse are pushed, and the query polytope and segment are
// re-expressed in the new frame. Both are always re-derived from the
// root world-space entries, not from the parent frame's, so error
// does not accumulate with nesting depth.
func (pi *PolytopeIntersector) PushTransform(t Transformer) {
	ltw := t.Transform(pi.LocalToWorld())
	wtl := errors.Log1(ltw.Inverse())
	pi.pushMatrices(ltw, *wtl)

	local := pi.polytopes[0].Transform(&ltw)
	local.Normalize()
	pi.polytopes = append(pi.polytopes, local)

	world := pi.segments[0]
	pi.segments = append(pi.segments, Segment{
		Start: world.Start.MulMatrix4(wtl),
		End:   world.End.MulMatrix4(wtl),
	})
	pi.logDebug("PushTransform", "depth", pi.Depth())
}

// PopTransform restores the parent coordinate frame. It panics if the
// intersector is already at the root frame: the traversal must balance
// every PushTransform with exactly one PopTransform.
func (pi *PolytopeIntersector) PopTransform() {
	if len(pi.polytopes) <= 1 {
		panic("intersect.PolytopeIntersector: PopTransform called below the root transform level")
	}
	pi.polytopes = pi.polytopes[:len(pi.polytopes)-1]
	pi.segments = pi.segments[:len(pi.segments)-1]
	pi.popMatrices()
	pi.logDebug("PopTransform", "depth", pi.Depth())
}

// Intersects reports whether the query region could intersect geometry
// bounded by the given sphere in the current local frame. An invalid
// sphere is never intersected. The test is conservative: it never
// rejects a sphere the polytope touches.
func (pi *PolytopeIntersector) Intersects(sphere math64.Sphere) bool {
	if !sphere.IsValid() {
		return false
	}
	return pi.polytope().ContainsSphere(sphere.Center, sphere.Radius)
}

// IntersectDraw tests the triangles of a non-indexed triangle-list
// draw call: consecutive vertex triples from firstVertex, with the
// count truncated down to a whole number of triangles, for each
// instance in [firstInstance, firstInstance+instanceCount) (a single
// instance when instanceCount <= 1). Hits are appended to Hits;
// returns whether at least one was. Non-triangle-list topologies or
// vertexCount < 3 are a no-op returning false. A nil vertex array for
// any instance stops the draw.
func (pi *PolytopeIntersector) IntersectDraw(firstVertex, vertexCount, firstInstance, instanceCount uint32) bool {
	before := len(pi.Hits)
	as := pi.ArrayState()
	if as == nil || as.Topology() != TriangleList || vertexCount < 3 {
		pi.logDebug("IntersectDraw rejected", "vertexCount", vertexCount)
		return false
	}
	seg := pi.segment()
	poly := pi.polytope()

	lastInstance := firstInstance + 1
	if instanceCount > 1 {
		lastInstance = firstInstance + instanceCount
	}
	for instance := firstInstance; instance < lastInstance; instance++ {
		verts := as.VertexArray(instance)
		if verts == nil {
			return false
		}
		ti := NewTriangleIntersector[float64](pi, seg.Start, seg.End, verts, instance)

		first := int(firstVertex)
		end := first + int(vertexCount) - int(vertexCount%3)
		if nv := verts.NumVector3(); end > nv {
			end = nv
		}
		for i := first; i+3 <= end; i += 3 {
			pi.intersectCulled(ti, poly, verts, uint32(i), uint32(i+1), uint32(i+2))
		}
	}
	return len(pi.Hits) != before
}

// IntersectDrawIndexed tests the triangles of an indexed triangle-list
// draw call: corner indices are read from the bound 16-bit or 32-bit
// index array at consecutive positions from firstIndex, with the count
// truncated down to a whole number of triangles, for each instance as
// in [PolytopeIntersector.IntersectDraw]. Returns whether at least one
// hit was appended. With neither index array bound it is a no-op
// returning false; a nil vertex array skips that instance.
func (pi *PolytopeIntersector) IntersectDrawIndexed(firstIndex, indexCount, firstInstance, instanceCount uint32) bool {
	before := len(pi.Hits)
	as := pi.ArrayState()
	if as == nil || as.Topology() != TriangleList || indexCount < 3 {
		pi.logDebug("IntersectDrawIndexed rejected", "indexCount", indexCount)
		return false
	}
	if pi.indexes16 == nil && pi.indexes32 == nil {
		pi.logDebug("IntersectDrawIndexed rejected", "reason", "no index array bound")
		return false
	}
	seg := pi.segment()
	poly := pi.polytope()

	lastInstance := firstInstance + 1
	if instanceCount > 1 {
		lastInstance = firstInstance + instanceCount
	}
	for instance := firstInstance; instance < lastInstance; instance++ {
		verts := as.VertexArray(instance)
		if verts == nil {
			continue
		}
		ti := NewTriangleIntersector[float64](pi, seg.Start, seg.End, verts, instance)

		first := int(firstIndex)
		end := first + int(indexCount) - int(indexCount%3)
		if pi.indexes16 != nil {
			if n := len(pi.indexes16); end > n {
				end = n
			}
			for i := first; i+3 <= end; i += 3 {
				pi.intersectCulled(ti, poly, verts,
					uint32(pi.indexes16[i]), uint32(pi.indexes16[i+1]), uint32(pi.indexes16[i+2]))
			}
		} else {
			if n := len(pi.indexes32); end > n {
				end = n
			}
			for i := first; i+3 <= end; i += 3 {
				pi.intersectCulled(ti, poly, verts,
					pi.indexes32[i], pi.indexes32[i+1], pi.indexes32[i+2])
			}
		}
	}
	return len(pi.Hits) != before
}

// intersectCulled runs one indexed triangle through the polytope
// all-outside cull and then the segment test. Out-of-range corner
// indices skip the triangle.
func (pi *PolytopeIntersector) intersectCulled(ti *TriangleIntersector[float64], poly Polytope, verts math32.ArrayF32, i0, i1, i2 uint32) {
	nv := uint32(verts.NumVector3())
	if i0 >= nv || i1 >= nv || i2 >= nv {
		return
	}
	var a, b, c math32.Vector3
	verts.GetVector3(int(i0)*3, &a)
	verts.GetVector3(int(i1)*3, &b)
	verts.GetVector3(int(i2)*3, &c)
	if !poly.ContainsTriangle(vector3From32(a), vector3From32(b), vector3From32(c)) {
		return
	}
	ti.IntersectTriangle(i0, i1, i2)
}

// Add records a hit at the given local-frame coordinate. The world
// coordinate is derived through the current accumulated local-to-world
// matrix, and the node path and the current array state's arrays are
// captured. Returns the recorded intersection.
func (pi *PolytopeIntersector) Add(localCoord math64.Vector3, ratio float64, ir IndexRatios, instance uint32) *Intersection {
	ltw := *pi.LocalToWorld()
	in := &Intersection{
		LocalCoord:   localCoord,
		WorldCoord:   localCoord.MulMatrix4(&ltw),
		Ratio:        ratio,
		LocalToWorld: ltw,
		NodePath:     slices.Clone(pi.NodePath),
		IndexRatios:  ir,
		Instance:     instance,
	}
	if as := pi.ArrayState(); as != nil {
		in.Arrays = as.Arrays()
	}
	pi.Hits = append(pi.Hits, in)
	return in
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
)

// Geometry is a leaf node that draws a [Mesh], or a sub-range of one,
// in the coordinate frame established by the transforms above it.
// It implements [intersect.ArrayState] so that intersectors can test
// its triangles directly.
type Geometry struct {
	NodeBase

	// Mesh is the mesh this node draws.
	Mesh *Mesh

	// FirstVertex and VertexCount select the vertex range drawn for
	// a non-indexed mesh. A zero VertexCount draws from FirstVertex
	// to the end of the vertex array.
	FirstVertex, VertexCount uint32

	// FirstIndex and IndexCount select the index range drawn for an
	// indexed mesh. A zero IndexCount draws from FirstIndex to the
	// end of the index array.
	FirstIndex, IndexCount uint32

	// FirstInstance and InstanceCount select the instances drawn.
	// A zero InstanceCount draws one instance.
	FirstInstance, InstanceCount uint32
}

// SetMesh sets the mesh this node draws.
func (ge *Geometry) SetMesh(ms *Mesh) *Geometry {
	ge.Mesh = ms
	return ge
}

// Topology implements [intersect.ArrayState].
func (ge *Geometry) Topology() intersect.Topologies {
	if ge.Mesh == nil {
		return intersect.PointList
	}
	return ge.Mesh.Topology
}

// VertexArray implements [intersect.ArrayState]. The same vertex
// array is shared by all instances of the draw.
func (ge *Geometry) VertexArray(instance uint32) math32.ArrayF32 {
	if ge.Mesh == nil {
		return nil
	}
	return ge.Mesh.Vertex
}

// Arrays implements [intersect.ArrayState].
func (ge *Geometry) Arrays() []math32.ArrayF32 {
	if ge.Mesh == nil {
		return nil
	}
	return []math32.ArrayF32{ge.Mesh.Vertex}
}

// Bounds returns the bounding sphere of the drawn mesh, in this
// node's local coordinates.
func (ge *Geometry) Bounds() math64.Sphere {
	if ge.Mesh == nil {
		return math64.Sphere{Radius: -1}
	}
	return ge.Mesh.Bounds()
}

// intersect tests this node's draw call against the given
// intersector, whose current frame must be this node's local frame.
// The mesh bounding sphere is tested first so that meshes entirely
// away from the query region are rejected without per-triangle work.
func (ge *Geometry) intersect(in intersect.Intersector) {
	ms := ge.Mesh
	if ms == nil || len(ms.Vertex) == 0 {
		return
	}
	if !in.Intersects(ms.Bounds()) {
		return
	}
	in.PushArrayState(ge)
	in.BindIndexes(ms.IndexU16, ms.IndexU32)
	instances := ge.InstanceCount
	if instances == 0 {
		instances = 1
	}
	if ms.Indexed() {
		count := ge.IndexCount
		if count == 0 && ge.FirstIndex < uint32(ms.NumIndex()) {
			count = uint32(ms.NumIndex()) - ge.FirstIndex
		}
		in.IntersectDrawIndexed(ge.FirstIndex, count, ge.FirstInstance, instances)
	} else {
		count := ge.VertexCount
		if count == 0 && ge.FirstVertex < uint32(ms.NumVertex()) {
			count = uint32(ms.NumVertex()) - ge.FirstVertex
		}
		in.IntersectDraw(ge.FirstVertex, count, ge.FirstInstance, instances)
	}
	in.BindIndexes(nil, nil)
	in.PopArrayState()
}

var _ intersect.ArrayState = (*Geometry)(nil)

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
)

// Mesh holds the vertex data that [Geometry] nodes draw. Meshes are
// shared scene resources: they are registered with a [Scene] by name
// via [Scene.SetMesh], and any number of geometries can reference the
// same mesh.
type Mesh struct {

	// Name is the name the mesh is registered under in the [Scene].
	// Geometries are linked to meshes by name in scene descriptions,
	// so this matters.
	Name string

	// Vertex is the vertex position data, 3 floats per vertex.
	Vertex math32.ArrayF32

	// IndexU16 is the 16-bit index data for an indexed mesh.
	// At most one of IndexU16 and IndexU32 may be set.
	IndexU16 math32.ArrayU16

	// IndexU32 is the 32-bit index data for an indexed mesh.
	// At most one of IndexU16 and IndexU32 may be set.
	IndexU32 math32.ArrayU32

	// Topology is the primitive topology the mesh is drawn with.
	// Only [intersect.TriangleList] meshes are tested by intersectors.
	Topology intersect.Topologies

	// bounds is the cached bounding sphere from [Mesh.Bounds].
	bounds      math64.Sphere
	boundsValid bool
}

// NewMesh returns a new mesh with the given name,
// with the [intersect.TriangleList] topology.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name, Topology: intersect.TriangleList}
}

// NumVertex returns the number of vertex points in the mesh.
func (ms *Mesh) NumVertex() int {
	return ms.Vertex.NumVector3()
}

// NumIndex returns the number of indexes, zero for a non-indexed mesh.
func (ms *Mesh) NumIndex() int {
	if ms.IndexU16 != nil {
		return len(ms.IndexU16)
	}
	return len(ms.IndexU32)
}

// Indexed returns whether the mesh has index data.
func (ms *Mesh) Indexed() bool {
	return ms.IndexU16 != nil || ms.IndexU32 != nil
}

// SetVertex sets the vertex position data,
// invalidating any cached bounds.
func (ms *Mesh) SetVertex(vtx math32.ArrayF32) *Mesh {
	ms.Vertex = vtx
	ms.boundsValid = false
	return ms
}

// Bounds returns the bounding sphere of the mesh vertices, in mesh
// local coordinates, computing and caching it on first use. The
// center is the center of the axis-aligned bounding box of the
// vertices. An empty mesh yields an invalid sphere that intersects
// nothing.
func (ms *Mesh) Bounds() math64.Sphere {
	if ms.boundsValid {
		return ms.bounds
	}
	bb := math32.B3Empty()
	nv := ms.Vertex.NumVector3()
	var v math32.Vector3
	for i := 0; i < nv; i++ {
		ms.Vertex.GetVector3(i*3, &v)
		bb.ExpandByPoint(v)
	}
	if bb.IsEmpty() {
		ms.bounds = math64.Sphere{Radius: -1}
		ms.boundsValid = true
		return ms.bounds
	}
	ctr := vec64(bb.Center())
	maxDist := 0.0
	for i := 0; i < nv; i++ {
		ms.Vertex.GetVector3(i*3, &v)
		d := vec64(v).DistanceToSquared(ctr)
		if d > maxDist {
			maxDist = d
		}
	}
	ms.bounds.Set(ctr, math64.Sqrt(maxDist))
	ms.boundsValid = true
	return ms.bounds
}

// vec64 converts a float32 vector to float64.
func vec64(v math32.Vector3) math64.Vector3 {
	return math64.Vec3(float64(v.X), float64(v.Y), float64(v.Z))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates triangle meshes for standard parametric
// shapes: boxes, planes, and spheres. Each shape reports the number
// of vertex and index points it needs via N, and writes its data
// into preallocated arrays via Set, so that multiple shapes can be
// composed into one set of arrays. NewMesh wraps a single shape as
// a [scene.Mesh].
package shape

import (
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/scene"
)

// Shape is the interface for all shape-constructing elements.
type Shape interface {

	// N returns the number of vertex and index points in this shape.
	N() (numVertex, numIndex int)

	// Offsets returns the starting offsets for vertexes and indexes
	// in the full shape arrays, in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets the starting offsets for vertexes and indexes
	// in the full shape arrays, in terms of points, not floats.
	SetOffsets(vtxOffset, idxOffset int)

	// Set writes this shape's triangle data into the given arrays,
	// at the configured offsets.
	Set(vtx math32.ArrayF32, idx math32.ArrayU32)

	// BBox returns the bounding box of the shape, typically centered
	// around its position offset. It is only valid after Set.
	BBox() math32.Box3
}

// ShapeBase is the base shape element that all shapes embed.
type ShapeBase struct {

	// VtxOffset is the starting offset for this shape's vertexes,
	// in points.
	VtxOffset int

	// IdxOffset is the starting offset for this shape's indexes,
	// in points.
	IdxOffset int

	// CBBox is the bounding box of the shape in local coordinates,
	// set by Set.
	CBBox math32.Box3

	// Pos is a 3D position offset applied to all points,
	// to enable composing shapes.
	Pos math32.Vector3
}

// Offsets returns the starting offsets for vertexes and indexes,
// in terms of points, not floats.
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset int) {
	return sb.VtxOffset, sb.IdxOffset
}

// SetOffsets sets the starting offsets for vertexes and indexes,
// in terms of points, not floats.
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset int) {
	sb.VtxOffset, sb.IdxOffset = vtxOffset, idxOffset
}

// BBox returns the bounding box of the shape,
// only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// NewMesh returns a new [scene.Mesh] with the given name, filled
// with the shape's triangle data as 32-bit indexed triangles.
func NewMesh(name string, sp Shape) *scene.Mesh {
	numVtx, numIdx := sp.N()
	vtx := make(math32.ArrayF32, numVtx*3)
	idx := make(math32.ArrayU32, numIdx)
	sp.SetOffsets(0, 0)
	sp.Set(vtx, idx)
	ms := scene.NewMesh(name)
	ms.SetVertex(vtx)
	ms.IndexU32 = idx
	return ms
}

// PlaneN returns the number of vertex and index points for a single
// plane with the given number of segments, which are enforced to be
// at least 1.
func PlaneN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * hsegs * 6
	return
}

// SetPlane writes plane vertex and index data into the given arrays,
// at the given vertex and index offsets (in points). The plane is a
// grid of wsegs x hsegs cells sweeping along the waxis and haxis
// dimensions in the given directions (-1 or 1), starting at woff and
// hoff, with the remaining dimension fixed at zoff.
func SetPlane(vtx math32.ArrayF32, idx math32.ArrayU32, vtxOff, idxOff int, waxis, haxis math32.Dims, wdir, hdir int, width, height, woff, hoff, zoff float32, wsegs, hsegs int) {
	w := math32.Z
	if (waxis == math32.X && haxis == math32.Z) || (waxis == math32.Z && haxis == math32.X) {
		w = math32.Y
	} else if (waxis == math32.Z && haxis == math32.Y) || (waxis == math32.Y && haxis == math32.Z) {
		w = math32.X
	}
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)

	wsegs1 := wsegs + 1
	hsegs1 := hsegs + 1
	segWidth := width / float32(wsegs)
	segHeight := height / float32(hsegs)

	fwdir := float32(wdir)
	fhdir := float32(hdir)

	vidx := vtxOff * 3
	var pt math32.Vector3
	for iy := 0; iy < hsegs1; iy++ {
		for ix := 0; ix < wsegs1; ix++ {
			pt.SetZero()
			pt.SetDim(waxis, (woff+float32(ix)*segWidth)*fwdir)
			pt.SetDim(haxis, (hoff+float32(iy)*segHeight)*fhdir)
			pt.SetDim(w, zoff)
			vtx.SetVector3(vidx+(iy*wsegs1+ix)*3, pt)
		}
	}

	sidx := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := ix + wsegs1*iy
			b := ix + wsegs1*(iy+1)
			c := (ix + 1) + wsegs1*(iy+1)
			d := (ix + 1) + wsegs1*iy
			idx.Set(sidx, uint32(a+vtxOff), uint32(b+vtxOff), uint32(d+vtxOff),
				uint32(b+vtxOff), uint32(c+vtxOff), uint32(d+vtxOff))
			sidx += 6
		}
	}
}

// BBoxFromVertex returns the bounding box of the given range of
// vertex points, starting at the given offset (in points).
func BBoxFromVertex(vtx math32.ArrayF32, vtxOff, numVtx int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOff * 3
	var pt math32.Vector3
	for vi := 0; vi < numVtx; vi++ {
		vtx.GetVector3(vidx+vi*3, &pt)
		bb.ExpandByPoint(pt)
	}
	return bb
}

// TranslateVertex adds the given offset to the given range of vertex
// points, starting at the given offset (in points).
func TranslateVertex(vtx math32.ArrayF32, vtxOff, numVtx int, offset math32.Vector3) {
	if offset == (math32.Vector3{}) {
		return
	}
	vidx := vtxOff * 3
	var pt math32.Vector3
	for vi := 0; vi < numVtx; vi++ {
		vtx.GetVector3(vidx+vi*3, &pt)
		pt.SetAdd(offset)
		vtx.SetVector3(vidx+vi*3, pt)
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/pick/math32"

// Box is a rectangular-shaped solid (cuboid).
type Box struct {
	ShapeBase

	// Size along each dimension.
	Size math32.Vector3

	// Segs is the number of segments to divide each plane into
	// (enforced to be at least 1).
	Segs math32.Vector3i
}

// NewBox returns a [Box] shape with the given size.
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
	bx.Segs.Set(1, 1, 1)
}

func (bx *Box) N() (numVertex, numIndex int) {
	xyv, xyi := PlaneN(int(bx.Segs.X), int(bx.Segs.Y))
	xzv, xzi := PlaneN(int(bx.Segs.X), int(bx.Segs.Z))
	zyv, zyi := PlaneN(int(bx.Segs.Z), int(bx.Segs.Y))
	numVertex = 2 * (xyv + xzv + zyv)
	numIndex = 2 * (xyi + xzi + zyi)
	return
}

// Set sets box points in the given allocated arrays.
func (bx *Box) Set(vtx math32.ArrayF32, idx math32.ArrayU32) {
	hSz := bx.Size.DivScalar(2)

	xyv, xyi := PlaneN(int(bx.Segs.X), int(bx.Segs.Y))
	xzv, xzi := PlaneN(int(bx.Segs.X), int(bx.Segs.Z))
	zyv, zyi := PlaneN(int(bx.Segs.Z), int(bx.Segs.Y))

	voff := bx.VtxOffset
	ioff := bx.IdxOffset

	// start with neg z as typically back
	SetPlane(vtx, idx, voff, ioff, math32.X, math32.Y, -1, -1, bx.Size.X, bx.Size.Y, -hSz.X, -hSz.Y, -hSz.Z, int(bx.Segs.X), int(bx.Segs.Y)) // nz
	voff += xyv
	ioff += xyi
	SetPlane(vtx, idx, voff, ioff, math32.X, math32.Z, 1, -1, bx.Size.X, bx.Size.Z, -hSz.X, -hSz.Z, -hSz.Y, int(bx.Segs.X), int(bx.Segs.Z)) // ny
	voff += xzv
	ioff += xzi
	SetPlane(vtx, idx, voff, ioff, math32.Z, math32.Y, -1, -1, bx.Size.Z, bx.Size.Y, -hSz.Z, -hSz.Y, hSz.X, int(bx.Segs.Z), int(bx.Segs.Y)) // px
	voff += zyv
	ioff += zyi
	SetPlane(vtx, idx, voff, ioff, math32.Z, math32.Y, 1, -1, bx.Size.Z, bx.Size.Y, -hSz.Z, -hSz.Y, -hSz.X, int(bx.Segs.Z), int(bx.Segs.Y)) // nx
	voff += zyv
	ioff += zyi
	SetPlane(vtx, idx, voff, ioff, math32.X, math32.Z, 1, 1, bx.Size.X, bx.Size.Z, -hSz.X, -hSz.Z, hSz.Y, int(bx.Segs.X), int(bx.Segs.Z)) // py
	voff += xzv
	ioff += xzi
	SetPlane(vtx, idx, voff, ioff, math32.X, math32.Y, 1, -1, bx.Size.X, bx.Size.Y, -hSz.X, -hSz.Y, hSz.Z, int(bx.Segs.X), int(bx.Segs.Y)) // pz

	numVtx, _ := bx.N()
	TranslateVertex(vtx, bx.VtxOffset, numVtx, bx.Pos)

	mn := bx.Pos.Sub(hSz)
	mx := bx.Pos.Add(hSz)
	bx.CBBox.Set(&mn, &mx)
}

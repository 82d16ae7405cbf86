// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/pick/math32"

// Plane is a flat 2D plane, which can be oriented along any
// axis facing either positive or negative.
type Plane struct {
	ShapeBase

	// NormAxis is the axis along which the normal perpendicular to
	// the plane points. E.g., a ground plane has a Y axis normal.
	NormAxis math32.Dims

	// NormNeg inverts the normal to point in the negative direction
	// along the NormAxis.
	NormNeg bool

	// Width is the size along the first of the two axes spanned by
	// the plane: X for a Y or Z normal, Z for an X normal.
	Width float32

	// Height is the size along the second of the two axes spanned by
	// the plane: Y for an X or Z normal, Z for a Y normal.
	Height float32

	// WidthSegs is the number of segments along the width
	// (enforced to be at least 1).
	WidthSegs int

	// HeightSegs is the number of segments along the height
	// (enforced to be at least 1).
	HeightSegs int

	// Offset is the distance of the plane from the origin along
	// the NormAxis.
	Offset float32
}

// NewPlane returns a [Plane] shape with the given normal axis
// and size.
func NewPlane(axis math32.Dims, width, height float32) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.NormAxis = axis
	pl.Width = width
	pl.Height = height
	return pl
}

func (pl *Plane) Defaults() {
	pl.NormAxis = math32.Y
	pl.Width = 1
	pl.Height = 1
	pl.WidthSegs = 1
	pl.HeightSegs = 1
}

func (pl *Plane) N() (numVertex, numIndex int) {
	return PlaneN(pl.WidthSegs, pl.HeightSegs)
}

// Set sets plane points in the given allocated arrays.
func (pl *Plane) Set(vtx math32.ArrayF32, idx math32.ArrayU32) {
	hw := pl.Width / 2
	hh := pl.Height / 2
	switch pl.NormAxis {
	case math32.X:
		if pl.NormNeg {
			SetPlane(vtx, idx, pl.VtxOffset, pl.IdxOffset, math32.Z, math32.Y, 1, -1, pl.Width, pl.Height, -hw, -hh, -pl.Offset, pl.WidthSegs, pl.HeightSegs) // nx
		} else {
			SetPlane(vtx, idx, pl.VtxOffset, pl.IdxOffset, math32.Z, math32.Y, -1, -1, pl.Width, pl.Height, -hw, -hh, pl.Offset, pl.WidthSegs, pl.HeightSegs) // px
		}
	case math32.Y:
		if pl.NormNeg {
			SetPlane(vtx, idx, pl.VtxOffset, pl.IdxOffset, math32.X, math32.Z, 1, -1, pl.Width, pl.Height, -hw, -hh, -pl.Offset, pl.WidthSegs, pl.HeightSegs) // ny
		} else {
			SetPlane(vtx, idx, pl.VtxOffset, pl.IdxOffset, math32.X, math32.Z, 1, 1, pl.Width, pl.Height, -hw, -hh, pl.Offset, pl.WidthSegs, pl.HeightSegs) // py
		}
	case math32.Z:
		if pl.NormNeg {
			SetPlane(vtx, idx, pl.VtxOffset, pl.IdxOffset, math32.X, math32.Y, -1, -1, pl.Width, pl.Height, -hw, -hh, -pl.Offset, pl.WidthSegs, pl.HeightSegs) // nz
		} else {
			SetPlane(vtx, idx, pl.VtxOffset, pl.IdxOffset, math32.X, math32.Y, 1, -1, pl.Width, pl.Height, -hw, -hh, pl.Offset, pl.WidthSegs, pl.HeightSegs) // pz
		}
	}
	numVtx, _ := pl.N()
	TranslateVertex(vtx, pl.VtxOffset, numVtx, pl.Pos)
	pl.CBBox = BBoxFromVertex(vtx, pl.VtxOffset, numVtx)
}

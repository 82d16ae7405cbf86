// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/geometry
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package shape

import "cogentcore.org/pick/math32"

// Sphere is a sphere shape, or a sector thereof.
type Sphere struct {
	ShapeBase

	// Radius of the sphere.
	Radius float32

	// WidthSegs is the number of segments around the width of the
	// sphere (enforced to be at least 3). 32 is a reasonable default
	// for a full circle.
	WidthSegs int

	// HeightSegs is the number of height segments (enforced to be at
	// least 3). 32 is a reasonable default for a full height.
	HeightSegs int

	// AngStart is the starting radial angle in degrees,
	// relative to the -1,0,0 left side starting point.
	AngStart float32

	// AngLen is the total radial angle to generate in degrees
	// (max of 360).
	AngLen float32

	// ElevStart is the starting elevation (height) angle in degrees,
	// where 0 is the top of the sphere and 180 is the bottom.
	ElevStart float32

	// ElevLen is the total elevation angle to generate in degrees
	// (max of 180).
	ElevLen float32
}

// NewSphere returns a [Sphere] shape with the given radius and
// number of segments in each dimension.
func NewSphere(radius float32, segs int) *Sphere {
	sp := &Sphere{}
	sp.Defaults()
	sp.Radius = radius
	sp.WidthSegs = segs
	sp.HeightSegs = segs
	return sp
}

func (sp *Sphere) Defaults() {
	sp.Radius = 1
	sp.WidthSegs = 32
	sp.HeightSegs = 32
	sp.AngStart = 0
	sp.AngLen = 360
	sp.ElevStart = 0
	sp.ElevLen = 180
}

func (sp *Sphere) N() (numVertex, numIndex int) {
	return SphereSectorN(sp.WidthSegs, sp.HeightSegs, sp.ElevStart, sp.ElevLen)
}

// Set sets sphere sector points in the given allocated arrays.
func (sp *Sphere) Set(vtx math32.ArrayF32, idx math32.ArrayU32) {
	sp.CBBox = SetSphereSector(vtx, idx, sp.VtxOffset, sp.IdxOffset, sp.Radius, sp.WidthSegs, sp.HeightSegs, sp.AngStart, sp.AngLen, sp.ElevStart, sp.ElevLen, sp.Pos)
}

// SphereSectorN returns the number of vertex and index points for a
// sphere sector with the given number of segments (enforced to be at
// least 3) and elevation range. The top and bottom rows collapse to
// the poles when the sector includes them, dropping one triangle per
// width segment there.
func SphereSectorN(widthSegs, heightSegs int, elevStart, elevLen float32) (numVertex, numIndex int) {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 3)
	numVertex = (widthSegs + 1) * (heightSegs + 1)
	numIndex = 6 * widthSegs * heightSegs
	elevStRad := math32.DegToRad(elevStart)
	elevEndRad := elevStRad + math32.DegToRad(elevLen)
	if elevStRad <= 0 {
		numIndex -= 3 * widthSegs
	}
	if elevEndRad >= math32.Pi {
		numIndex -= 3 * widthSegs
	}
	return
}

// SetSphereSector writes sphere sector vertex and index data into the
// given arrays, at the given vertex and index offsets (in points).
// The sector has the given radius, number of radial segments in each
// dimension (enforced to be at least 3), radial sector start angle
// and length in degrees (0 - 360, start = -1,0,0), elevation start
// angle and length in degrees (0 - 180, top = 0, bottom = 180), and
// arbitrary position offset for composing shapes. Returns the
// bounding box of the points written.
func SetSphereSector(vtx math32.ArrayF32, idx math32.ArrayU32, vtxOff, idxOff int, radius float32, widthSegs, heightSegs int, angStart, angLen, elevStart, elevLen float32, pos math32.Vector3) math32.Box3 {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 3)

	angStRad := math32.DegToRad(angStart)
	angLenRad := math32.DegToRad(angLen)
	elevStRad := math32.DegToRad(elevStart)
	elevLenRad := math32.DegToRad(elevLen)
	elevEndRad := elevStRad + elevLenRad

	bb := math32.B3Empty()

	vidx := vtxOff * 3
	vtxs := make([][]uint32, 0, heightSegs+1)
	var pt math32.Vector3
	vi := 0
	for y := 0; y <= heightSegs; y++ {
		vtxsRow := make([]uint32, 0, widthSegs+1)
		v := float32(y) / float32(heightSegs)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			px := -radius * math32.Cos(angStRad+u*angLenRad) * math32.Sin(elevStRad+v*elevLenRad)
			py := radius * math32.Cos(elevStRad+v*elevLenRad)
			pz := radius * math32.Sin(angStRad+u*angLenRad) * math32.Sin(elevStRad+v*elevLenRad)
			pt.Set(px, py, pz)
			pt.SetAdd(pos)
			vtx.SetVector3(vidx+vi*3, pt)
			bb.ExpandByPoint(pt)
			vtxsRow = append(vtxsRow, uint32(vi))
			vi++
		}
		vtxs = append(vtxs, vtxsRow)
	}

	sidx := idxOff
	stidx := uint32(vtxOff)
	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := vtxs[y][x+1]
			v2 := vtxs[y][x]
			v3 := vtxs[y+1][x]
			v4 := vtxs[y+1][x+1]
			if y != 0 || elevStRad > 0 {
				idx.Set(sidx, stidx+v1, stidx+v2, stidx+v4)
				sidx += 3
			}
			if y != heightSegs-1 || elevEndRad < math32.Pi {
				idx.Set(sidx, stidx+v2, stidx+v3, stidx+v4)
				sidx += 3
			}
		}
	}
	return bb
}

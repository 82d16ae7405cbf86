// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

// Topologies are the supported primitive topologies for vertex
// and index arrays bound to a draw call.
type Topologies int32

const (
	// PointList is a list of points.
	PointList Topologies = iota

	// LineList is a list of lines: pairs of vertices.
	LineList

	// LineStrip is a strip of lines: each vertex after the first
	// extends the previous line.
	LineStrip

	// TriangleList is a list of triangles: triples of vertices.
	// This is the only topology the polytope intersector tests.
	TriangleList

	// TriangleStrip is a strip of triangles: each vertex after the
	// first two forms a triangle with the previous two.
	TriangleStrip
)

func (t Topologies) String() string {
	switch t {
	case PointList:
		return "PointList"
	case LineList:
		return "LineList"
	case LineStrip:
		return "LineStrip"
	case TriangleList:
		return "TriangleList"
	case TriangleStrip:
		return "TriangleStrip"
	}
	return "TopologiesN"
}

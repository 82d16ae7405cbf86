// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/math64"
)

// Polytope is a convex region of space expressed as an ordered list
// of inward-oriented half-space planes: a point p is inside iff
// Norm·p + Off >= 0 for every plane. The order is significant: plane
// index i refers to the same logical face (left, right, bottom, top,
// near, far for camera-derived polytopes) across transforms.
type Polytope []math64.Plane

// Transform returns a new polytope with every plane multiplied by the
// given matrix, preserving plane count and order. If m maps points
// from a local frame to the frame the polytope is expressed in, the
// result is the same region expressed in the local frame.
func (p Polytope) Transform(m *math64.Matrix4) Polytope {
	np := make(Polytope, len(p))
	for i := range p {
		np[i] = p[i].MulMatrix4(m)
	}
	return np
}

// Normalize normalizes every plane in place so that plane distances
// are metric. Planes with a degenerate zero normal are left unchanged.
func (p Polytope) Normalize() {
	for i := range p {
		if p[i].Norm.LengthSquared() > 0 {
			p[i].Normalize()
		}
	}
}

// ContainsPoint reports whether the given point is inside or on the
// boundary of every half-space.
func (p Polytope) ContainsPoint(pt math64.Vector3) bool {
	for i := range p {
		if p[i].DistanceToPoint(pt) < 0 {
			return false
		}
	}
	return true
}

// ContainsSphere reports whether a sphere overlaps the polytope:
// false iff the sphere lies entirely outside one of the planes.
// Requires normalized planes for the radius comparison to be metric.
func (p Polytope) ContainsSphere(center math64.Vector3, radius float64) bool {
	for i := range p {
		if p[i].DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsTriangle conservatively reports whether a triangle could
// overlap the polytope: false iff all three vertices lie outside one
// of the planes. A true result does not guarantee overlap.
func (p Polytope) ContainsTriangle(a, b, c math64.Vector3) bool {
	for i := range p {
		if p[i].DistanceToPoint(a) < 0 &&
			p[i].DistanceToPoint(b) < 0 &&
			p[i].DistanceToPoint(c) < 0 {
			return false
		}
	}
	return true
}

// ndcRect converts a window-space rectangle to NDC bounds using the
// viewport. Window y runs down while NDC y runs up, so the rect's y
// extremes swap under the conversion; min/max are taken afterwards so
// the bounds stay ordered in both the converted and the zero-extent
// fallback (raw passthrough) cases.
func ndcRect(vp Viewport, xMin, yMin, xMax, yMax float64) (nxMin, nyMin, nxMax, nyMax float64) {
	nx0, nx1 := xMin, xMax
	if vp.Width > 0 {
		nx0 = -1 + 2*(xMin-vp.X)/vp.Width
		nx1 = -1 + 2*(xMax-vp.X)/vp.Width
	}
	ny0, ny1 := yMin, yMax
	if vp.Height > 0 {
		ny0 = 1 - 2*(yMin-vp.Y)/vp.Height
		ny1 = 1 - 2*(yMax-vp.Y)/vp.Height
	}
	return math64.Min(nx0, nx1), math64.Min(ny0, ny1), math64.Max(nx0, nx1), math64.Max(ny0, ny1)
}

// reversedDepth reports whether a projection matrix encodes the
// reversed depth convention (near mapping to MaxDepth and far to
// MinDepth), indicated by a positive element at row 2, column 2.
func reversedDepth(proj *math64.Matrix4) bool {
	return proj[10] > 0
}

// NewPolytopeFromCamera builds the world-space polytope for a
// screen-space rectangle query through the given camera: the rect is
// converted to NDC via the viewport (zero viewport extent falls back
// to the raw input values), six inward-oriented clip-space planes are
// constructed, and the set is transformed clip to eye via the
// projection matrix and eye to world via the view matrix.
//
// Plane order is left, right, bottom, top, near, far. Under the
// reversed depth convention the near face is the MaxDepth plane and
// the far face the MinDepth plane, so the two depth planes swap
// positions to keep the order logical; the planes themselves bound
// the same [MinDepth, MaxDepth] range either way, keeping the whole
// set consistently inward-oriented in both conventions.
func NewPolytopeFromCamera(cam Camera, xMin, yMin, xMax, yMax float64) Polytope {
	vp := cam.PickViewport()
	nxMin, nyMin, nxMax, nyMax := ndcRect(vp, xMin, yMin, xMax, yMax)

	proj := cam.PickProjection()
	view := cam.PickView()

	clip := Polytope{
		math64.NewPlane(math64.Vec3(1, 0, 0), -nxMin),
		math64.NewPlane(math64.Vec3(-1, 0, 0), nxMax),
		math64.NewPlane(math64.Vec3(0, 1, 0), -nyMin),
		math64.NewPlane(math64.Vec3(0, -1, 0), nyMax),
	}
	lo := math64.NewPlane(math64.Vec3(0, 0, 1), -vp.MinDepth)
	hi := math64.NewPlane(math64.Vec3(0, 0, -1), vp.MaxDepth)
	if reversedDepth(&proj) {
		clip = append(clip, hi, lo)
	} else {
		clip = append(clip, lo, hi)
	}

	world := clip.Transform(&proj).Transform(&view)
	world.Normalize()
	return world
}

// cameraSegment derives the world-space central query segment for a
// screen-space rectangle: the rect center unprojected to the near and
// far depth bounds. Ratio 0 along the segment is the near end.
func cameraSegment(cam Camera, xMin, yMin, xMax, yMax float64) (start, end math64.Vector3) {
	vp := cam.PickViewport()
	nxMin, nyMin, nxMax, nyMax := ndcRect(vp, xMin, yMin, xMax, yMax)
	cx := (nxMin + nxMax) / 2
	cy := (nyMin + nyMax) / 2

	proj := cam.PickProjection()
	view := cam.PickView()
	nearZ, farZ := vp.MinDepth, vp.MaxDepth
	if reversedDepth(&proj) {
		nearZ, farZ = vp.MaxDepth, vp.MinDepth
	}

	invProj := errors.Log1(proj.Inverse())
	invView := errors.Log1(view.Inverse())

	eyeNear := math64.Vector4FromVector3(math64.Vec3(cx, cy, nearZ), 1).MulMatrix4(invProj).PerspDiv()
	eyeFar := math64.Vector4FromVector3(math64.Vec3(cx, cy, farZ), 1).MulMatrix4(invProj).PerspDiv()
	start = eyeNear.MulMatrix4(invView)
	end = eyeFar.MulMatrix4(invView)
	return start, end
}
